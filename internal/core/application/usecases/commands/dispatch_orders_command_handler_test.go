package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/partner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDispatchHandler(
	readFactory *MockOrderUoWFactory,
	resolver *MockPickupResolver,
	writeFactory *MockUoWFactory,
) commands.DispatchOrdersCommandHandler {
	assignmentHandler := commands.NewCreateAssignmentCommandHandler(writeFactory, testSearchRadiusMeters)
	return commands.NewDispatchOrdersCommandHandler(readFactory, assignmentHandler, resolver)
}

func TestDispatchOrdersCommandHandler_Handle_NothingToDispatch(t *testing.T) {
	ctx := t.Context()

	orderRepo := new(MockOrderRepository)
	readUoW := new(MockUoW)
	mock.InOrder(
		readUoW.On("Begin", ctx).Return(nil).Once(),
		readUoW.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPaidUnassigned", mock.Anything).Return([]*order.Order{}, nil).Once(),
		readUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	readFactory := new(MockOrderUoWFactory)
	readFactory.On("Create").Return(readUoW).Once()
	resolver := new(MockPickupResolver)
	writeFactory := new(MockUoWFactory)

	h := newDispatchHandler(readFactory, resolver, writeFactory)
	err := h.Handle(ctx, commands.NewDispatchOrdersCommand())
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNothingToDispatch)
	resolver.AssertNotCalled(t, "ResolvePickup", mock.Anything, mock.Anything)
	writeFactory.AssertNotCalled(t, "Create")
}

func TestDispatchOrdersCommandHandler_Handle_DispatchesPendingOrder(t *testing.T) {
	ctx := t.Context()
	aggregate := newPaidOrder(t)
	near := newDispatchablePartner(t, 48.8570, 2.3530)

	orderRepo := new(MockOrderRepository)
	readUoW := new(MockUoW)
	mock.InOrder(
		readUoW.On("Begin", ctx).Return(nil).Once(),
		readUoW.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPaidUnassigned", mock.Anything).
			Return([]*order.Order{aggregate}, nil).Once(),
		readUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	resolver := new(MockPickupResolver)
	resolver.On("ResolvePickup", mock.Anything, aggregate.RestaurantID()).
		Return(testGeoPoint(t), "12 Restaurant Row", nil).Once()

	dispatchOrderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	assignmentRepo := new(MockAssignmentRepository)
	writeUoW := new(MockUoW)
	mock.InOrder(
		writeUoW.On("Begin", mock.Anything).Return(nil).Once(),
		writeUoW.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetByOrderID", mock.Anything, aggregate.ID()).Return(nil, nil).Once(),
		writeUoW.On("OrderRepository").Return(dispatchOrderRepo).Once(),
		dispatchOrderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		writeUoW.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetAllAvailableVerified", mock.Anything).
			Return([]*partner.DeliveryPartner{near}, nil).Once(),
		partnerRepo.On("ReserveAvailable", mock.Anything, near.ID()).Return(nil).Once(),
		dispatchOrderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		assignmentRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		writeUoW.On("Commit", mock.Anything).Return(nil).Once(),
		writeUoW.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	readFactory := new(MockOrderUoWFactory)
	readFactory.On("Create").Return(readUoW).Once()
	writeFactory := new(MockUoWFactory)
	writeFactory.On("Create").Return(writeUoW).Once()

	h := newDispatchHandler(readFactory, resolver, writeFactory)
	err := h.Handle(ctx, commands.NewDispatchOrdersCommand())
	require.NoError(t, err)
	require.NotNil(t, aggregate.Partner())
	assert.True(t, aggregate.Partner().IsEqual(near.ID()))
	resolver.AssertExpectations(t)
	writeUoW.AssertExpectations(t)
}

func TestDispatchOrdersCommandHandler_Handle_SkipsOrderWithoutCandidates(t *testing.T) {
	ctx := t.Context()
	aggregate := newPaidOrder(t)
	distant := newDispatchablePartner(t, 43.2965, 5.3698) // Marseille

	orderRepo := new(MockOrderRepository)
	readUoW := new(MockUoW)
	mock.InOrder(
		readUoW.On("Begin", ctx).Return(nil).Once(),
		readUoW.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPaidUnassigned", mock.Anything).
			Return([]*order.Order{aggregate}, nil).Once(),
		readUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	resolver := new(MockPickupResolver)
	resolver.On("ResolvePickup", mock.Anything, aggregate.RestaurantID()).
		Return(testGeoPoint(t), "12 Restaurant Row", nil).Once()

	dispatchOrderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	assignmentRepo := new(MockAssignmentRepository)
	writeUoW := new(MockUoW)
	mock.InOrder(
		writeUoW.On("Begin", mock.Anything).Return(nil).Once(),
		writeUoW.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetByOrderID", mock.Anything, aggregate.ID()).Return(nil, nil).Once(),
		writeUoW.On("OrderRepository").Return(dispatchOrderRepo).Once(),
		dispatchOrderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		writeUoW.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetAllAvailableVerified", mock.Anything).
			Return([]*partner.DeliveryPartner{distant}, nil).Once(),
		writeUoW.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	readFactory := new(MockOrderUoWFactory)
	readFactory.On("Create").Return(readUoW).Once()
	writeFactory := new(MockUoWFactory)
	writeFactory.On("Create").Return(writeUoW).Once()

	h := newDispatchHandler(readFactory, resolver, writeFactory)
	err := h.Handle(ctx, commands.NewDispatchOrdersCommand())
	require.NoError(t, err)
	assert.Nil(t, aggregate.Partner())
	assignmentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
