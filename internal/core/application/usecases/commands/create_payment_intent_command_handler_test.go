package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreatePaymentIntentCommand(t *testing.T) {
	paymentID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreatePaymentIntentCommand(paymentID, orderID, "card")
	require.NoError(t, err)
	assert.Equal(t, paymentID, cmd.PaymentID())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "card", cmd.Method())

	_, err = commands.NewCreatePaymentIntentCommand(kernel.UUID{}, orderID, "")
	require.Error(t, err)

	_, err = commands.NewCreatePaymentIntentCommand(paymentID, kernel.UUID{}, "")
	require.Error(t, err)
}

func TestCreatePaymentIntentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t)
	paymentID := kernel.NewUUID()
	cmd, err := commands.NewCreatePaymentIntentCommand(paymentID, aggregate.ID(), "card")
	require.NoError(t, err)

	gatewayIntent := &ports.GatewayIntent{
		Ref:          "pi_123",
		ClientSecret: "pi_123_secret",
		Status:       "requires_payment_method",
	}

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	gateway := new(MockPaymentGateway)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetActiveByOrderID", mock.Anything, aggregate.ID()).Return(nil, nil).Once(),
		gateway.On("CreateIntent", mock.Anything, aggregate.ID(), aggregate.Total(), "card").
			Return(gatewayIntent, nil).Once(),
		paymentRepo.On("Add", mock.Anything, mock.MatchedBy(func(p *payment.PaymentIntent) bool {
			return p.ID().IsEqual(paymentID) &&
				p.OrderID().IsEqual(aggregate.ID()) &&
				p.Amount().Equal(aggregate.Total()) &&
				p.Status() == payment.Pending &&
				p.GatewayRef() == "pi_123"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePaymentIntentCommandHandler(factory, gateway)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, paymentID.String(), result.PaymentID)
	assert.Equal(t, "pi_123", result.GatewayRef)
	assert.Equal(t, "pi_123_secret", result.ClientSecret)
	paymentRepo.AssertExpectations(t)
	gateway.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreatePaymentIntentCommandHandler_Handle_OrderAlreadyPaid(t *testing.T) {
	ctx := t.Context()
	aggregate := newPaidOrder(t)
	cmd, err := commands.NewCreatePaymentIntentCommand(kernel.NewUUID(), aggregate.ID(), "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	gateway := new(MockPaymentGateway)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePaymentIntentCommandHandler(factory, gateway)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	gateway.AssertNotCalled(t, "CreateIntent",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePaymentIntentCommandHandler_Handle_ActiveIntentExists(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t)
	cmd, err := commands.NewCreatePaymentIntentCommand(kernel.NewUUID(), aggregate.ID(), "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	gateway := new(MockPaymentGateway)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetActiveByOrderID", mock.Anything, aggregate.ID()).
			Return(newPendingIntent(t, aggregate.ID()), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePaymentIntentCommandHandler(factory, gateway)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	gateway.AssertNotCalled(t, "CreateIntent",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePaymentIntentCommandHandler_Handle_GatewayError(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t)
	cmd, err := commands.NewCreatePaymentIntentCommand(kernel.NewUUID(), aggregate.ID(), "")
	require.NoError(t, err)

	gatewayErr := errs.NewUpstreamGatewayError(
		"create payment intent", assert.AnError)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	gateway := new(MockPaymentGateway)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetActiveByOrderID", mock.Anything, aggregate.ID()).Return(nil, nil).Once(),
		gateway.On("CreateIntent", mock.Anything, aggregate.ID(), aggregate.Total(), "").
			Return(nil, gatewayErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePaymentIntentCommandHandler(factory, gateway)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUpstreamGateway)
	paymentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreatePaymentIntentCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderPaymentUoWFactory)
	gateway := new(MockPaymentGateway)

	h := commands.NewCreatePaymentIntentCommandHandler(factory, gateway)
	_, err := h.Handle(t.Context(), commands.CreatePaymentIntentCommand{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreatePaymentIntentCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
