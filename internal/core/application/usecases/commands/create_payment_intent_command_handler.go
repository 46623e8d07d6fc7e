package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CreatePaymentIntentResult carries what the client needs to complete the
// charge with the gateway.
type CreatePaymentIntentResult struct {
	PaymentID    string
	GatewayRef   string
	ClientSecret string
}

// CreatePaymentIntentCommandHandler opens a gateway intent for an order's
// total and records the Pending local intent.
//
// Business rules:
//   - The order must exist and must not already be paid
//   - At most one active (Pending or Completed) intent per order
//   - Gateway failure aborts the whole operation; nothing is persisted
type CreatePaymentIntentCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	gateway    ports.PaymentGateway
}

// NewCreatePaymentIntentCommandHandler creates a handler for payment intent creation.
func NewCreatePaymentIntentCommandHandler(
	uowFactory OrderPaymentUoWFactory,
	gateway ports.PaymentGateway,
) CreatePaymentIntentCommandHandler {
	return CreatePaymentIntentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the intent creation command and returns the gateway
// reference and client secret on success.
func (h CreatePaymentIntentCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePaymentIntentCommand,
) (CreatePaymentIntentResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreatePaymentIntentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreatePaymentIntentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return CreatePaymentIntentResult{}, err
	}

	if aggregate.IsPaid() {
		return CreatePaymentIntentResult{}, errs.NewConflictError("order is already paid")
	}

	paymentRepo := uow.PaymentRepository()
	active, err := paymentRepo.GetActiveByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return CreatePaymentIntentResult{}, err
	}
	if active != nil {
		return CreatePaymentIntentResult{}, errs.NewConflictError(
			"order already has an active payment intent")
	}

	gatewayIntent, err := h.gateway.CreateIntent(
		ctx, cmd.OrderID(), aggregate.Total(), cmd.Method())
	if err != nil {
		return CreatePaymentIntentResult{}, err
	}

	intent, err := payment.NewPaymentIntent(
		cmd.PaymentID(), cmd.OrderID(), aggregate.Total(), gatewayIntent.Ref)
	if err != nil {
		return CreatePaymentIntentResult{}, err
	}

	if err = paymentRepo.Add(ctx, intent); err != nil {
		return CreatePaymentIntentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreatePaymentIntentResult{}, err
	}

	return CreatePaymentIntentResult{
		PaymentID:    intent.ID().String(),
		GatewayRef:   gatewayIntent.Ref,
		ClientSecret: gatewayIntent.ClientSecret,
	}, nil
}
