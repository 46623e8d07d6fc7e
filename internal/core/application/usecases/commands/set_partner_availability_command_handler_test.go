package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/partner"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSetPartnerAvailabilityCommand(t *testing.T) {
	partnerID := kernel.NewUUID()

	cmd, err := commands.NewSetPartnerAvailabilityCommand(partnerID, partnerID, true)
	require.NoError(t, err)
	assert.Equal(t, partnerID, cmd.PartnerID())
	assert.Equal(t, partnerID, cmd.CallerID())
	assert.True(t, cmd.Available())

	_, err = commands.NewSetPartnerAvailabilityCommand(kernel.UUID{}, partnerID, true)
	require.Error(t, err)
}

func TestSetPartnerAvailabilityCommandHandler_Handle_GoAvailable(t *testing.T) {
	ctx := t.Context()
	aggregate := newBusyPartner(t, kernel.NewUUID())
	cmd, err := commands.NewSetPartnerAvailabilityCommand(aggregate.ID(), aggregate.ID(), true)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("HasOpenForPartner", mock.Anything, aggregate.ID()).
			Return(false, nil).Once(),
		partnerRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetPartnerAvailabilityCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, aggregate.IsAvailable())
	partnerRepo.AssertExpectations(t)
	assignmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetPartnerAvailabilityCommandHandler_Handle_GoUnavailable(t *testing.T) {
	ctx := t.Context()
	aggregate := newDispatchablePartner(t, 48.8566, 2.3522)
	cmd, err := commands.NewSetPartnerAvailabilityCommand(aggregate.ID(), aggregate.ID(), false)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		partnerRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetPartnerAvailabilityCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, aggregate.IsAvailable())
	assignmentRepo.AssertNotCalled(t, "HasOpenForPartner", mock.Anything, mock.Anything)
}

func TestSetPartnerAvailabilityCommandHandler_Handle_OpenAssignment(t *testing.T) {
	ctx := t.Context()
	aggregate := newBusyPartner(t, kernel.NewUUID())
	cmd, err := commands.NewSetPartnerAvailabilityCommand(aggregate.ID(), aggregate.ID(), true)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("HasOpenForPartner", mock.Anything, aggregate.ID()).
			Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetPartnerAvailabilityCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.False(t, aggregate.IsAvailable())
	partnerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetPartnerAvailabilityCommandHandler_Handle_UnverifiedPartner(t *testing.T) {
	ctx := t.Context()
	aggregate, err := partner.NewDeliveryPartner(
		kernel.NewUUID(), "Alice", testHash, partner.Bicycle, "")
	require.NoError(t, err)
	cmd, err := commands.NewSetPartnerAvailabilityCommand(aggregate.ID(), aggregate.ID(), true)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("HasOpenForPartner", mock.Anything, aggregate.ID()).
			Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetPartnerAvailabilityCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	partnerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetPartnerAvailabilityCommandHandler_Handle_Forbidden(t *testing.T) {
	cmd, err := commands.NewSetPartnerAvailabilityCommand(
		kernel.NewUUID(), kernel.NewUUID(), true)
	require.NoError(t, err)

	factory := new(MockPartnerAssignmentUoWFactory)

	h := commands.NewSetPartnerAvailabilityCommandHandler(factory)
	err = h.Handle(t.Context(), cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
