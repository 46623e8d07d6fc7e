package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// ConfirmPaymentCommandHandler reconciles a Pending intent with the gateway.
//
// The gateway is the source of truth: the handler re-queries it rather than
// trusting the caller's claim of success. "succeeded" completes the intent,
// marks the order paid and confirms it; "canceled" fails the intent; any
// other gateway status leaves the intent Pending so polling stays idempotent.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	gateway    ports.PaymentGateway
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmation.
func NewConfirmPaymentCommandHandler(
	uowFactory OrderPaymentUoWFactory,
	gateway ports.PaymentGateway,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the confirmation command.
// Returns ObjectNotFound when no local intent holds the gateway reference.
// Gateway errors surface as UpstreamGateway and leave the local record Pending.
func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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

	intent, err := paymentRepo.GetByGatewayRef(ctx, cmd.GatewayRef())
	if err != nil {
		return err
	}

	gatewayIntent, err := h.gateway.GetIntent(ctx, cmd.GatewayRef())
	if err != nil {
		return err
	}

	switch gatewayIntent.Status {
	case ports.GatewayIntentSucceeded:
		if err = intent.Complete(gatewayIntent.TransactionRef); err != nil {
			return err
		}
		if err = h.markOrderPaid(ctx, uow, intent.OrderID(), intent.GatewayRef()); err != nil {
			return err
		}
	case ports.GatewayIntentCanceled:
		if err = intent.Fail(gatewayIntent.FailureReason); err != nil {
			return err
		}
	default:
		// Still in progress on the gateway side, nothing to record yet.
		return uow.Commit(ctx)
	}

	if err = paymentRepo.Update(ctx, intent); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// markOrderPaid flags the order paid and moves it Created -> Confirmed.
func (h ConfirmPaymentCommandHandler) markOrderPaid(
	ctx context.Context,
	uow OrderPaymentUoW,
	orderID kernel.UUID,
	gatewayRef string,
) error {
	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = aggregate.MarkPaid(gatewayRef); err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(order.Confirmed); err != nil {
		return err
	}

	return orderRepo.Update(ctx, aggregate)
}
