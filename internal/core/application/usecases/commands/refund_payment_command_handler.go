package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/core/ports"
)

// RefundPaymentCommandHandler refunds a completed charge through the gateway
// and moves the local intent to Refunded.
// The order itself is never mutated here: refunds are a money concern and the
// order's lifecycle (typically cancellation) is driven separately.
type RefundPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
}

// NewRefundPaymentCommandHandler creates a handler for payment refunds.
func NewRefundPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	gateway ports.PaymentGateway,
) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the refund command.
// Returns ObjectNotFound when the intent does not exist and InvalidState when
// it is not Completed.
func (h RefundPaymentCommandHandler) Handle(ctx context.Context, cmd RefundPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()

	intent, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	// Reject before touching the gateway so an ineligible intent never
	// produces a provider-side refund.
	if err = intent.Status().ValidateTransition(payment.Refunded); err != nil {
		return err
	}

	refund, err := h.gateway.Refund(ctx, intent.GatewayRef(), cmd.Amount())
	if err != nil {
		return err
	}

	if err = intent.Refund(refund.Ref); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, intent); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
