package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdatePartnerLocationCommand(t *testing.T) {
	partnerID := kernel.NewUUID()
	point := testGeoPoint(t)

	cmd, err := commands.NewUpdatePartnerLocationCommand(partnerID, partnerID, point)
	require.NoError(t, err)
	assert.Equal(t, partnerID, cmd.PartnerID())
	assert.Equal(t, partnerID, cmd.CallerID())
	equal, err := cmd.Location().IsEqual(point)
	require.NoError(t, err)
	assert.True(t, equal)

	_, err = commands.NewUpdatePartnerLocationCommand(kernel.UUID{}, partnerID, point)
	require.Error(t, err)

	_, err = commands.NewUpdatePartnerLocationCommand(partnerID, partnerID, kernel.GeoPoint{})
	require.Error(t, err)
}

func TestUpdatePartnerLocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newDispatchablePartner(t, 48.8566, 2.3522)
	point, err := kernel.NewGeoPoint(48.8606, 2.3376)
	require.NoError(t, err)
	cmd, err := commands.NewUpdatePartnerLocationCommand(aggregate.ID(), aggregate.ID(), point)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		partnerRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdatePartnerLocationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, aggregate.Location())
	equal, err := aggregate.Location().IsEqual(point)
	require.NoError(t, err)
	assert.True(t, equal)
	partnerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdatePartnerLocationCommandHandler_Handle_Forbidden(t *testing.T) {
	partnerID := kernel.NewUUID()
	strangerID := kernel.NewUUID()
	cmd, err := commands.NewUpdatePartnerLocationCommand(partnerID, strangerID, testGeoPoint(t))
	require.NoError(t, err)

	factory := new(MockPartnerUoWFactory)

	h := commands.NewUpdatePartnerLocationCommandHandler(factory)
	err = h.Handle(t.Context(), cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
