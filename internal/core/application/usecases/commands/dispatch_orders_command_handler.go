package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrNothingToDispatch reports that no paid order is awaiting a partner.
var ErrNothingToDispatch = errors.New("no paid orders awaiting dispatch")

// DispatchOrdersCommandHandler sweeps paid, unassigned orders and runs the
// assignment flow for each of them. Orders that cannot be dispatched right
// now (no candidate in radius, assignment raced in by someone else) are
// skipped and picked up again on the next sweep.
type DispatchOrdersCommandHandler struct {
	uowFactory        OrderUoWFactory
	assignmentHandler CreateAssignmentCommandHandler
	pickupResolver    ports.PickupResolver
}

// NewDispatchOrdersCommandHandler creates a handler for dispatch sweeps.
func NewDispatchOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	assignmentHandler CreateAssignmentCommandHandler,
	pickupResolver ports.PickupResolver,
) DispatchOrdersCommandHandler {
	return DispatchOrdersCommandHandler{
		uowFactory:        uowFactory,
		assignmentHandler: assignmentHandler,
		pickupResolver:    pickupResolver,
	}
}

// Handle processes the dispatch sweep.
// Returns ErrNothingToDispatch when no order needs a partner. Per-order
// dispatch failures that are expected under contention do not abort the
// sweep; the first unexpected failure does.
func (h DispatchOrdersCommandHandler) Handle(ctx context.Context, cmd DispatchOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pending, err := h.pendingOrders(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return ErrNothingToDispatch
	}

	for _, ord := range pending {
		if err := h.dispatch(ctx, ord); err != nil {
			return err
		}
	}

	return nil
}

func (h DispatchOrdersCommandHandler) pendingOrders(ctx context.Context) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().GetAllPaidUnassigned(ctx)
}

func (h DispatchOrdersCommandHandler) dispatch(ctx context.Context, ord *order.Order) error {
	pickupPoint, pickupAddress, err := h.pickupResolver.ResolvePickup(ctx, ord.RestaurantID())
	if err != nil {
		return err
	}

	cmd, err := NewCreateAssignmentCommand(kernel.NewUUID(), ord.ID(), pickupPoint, pickupAddress)
	if err != nil {
		return err
	}

	err = h.assignmentHandler.Handle(ctx, cmd)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// nobody in radius right now, retry on the next sweep
		return nil
	case errors.Is(err, errs.ErrConflict):
		// a concurrent dispatch won this order
		return nil
	default:
		return err
	}
}
