package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// AdvanceDeliveryCommandHandler applies a delivery milestone and mirrors it
// onto the order and the partner in one transaction.
//
// Mirroring:
//   - PickedUp moves the order ReadyForPickup -> OutForDelivery
//   - Delivered moves the order -> Delivered, counts the delivery on the
//     partner and frees the partner
//   - Failed frees the partner; the order is left for operator intervention
//
// A mirror failure aborts the whole advance: the assignment never moves
// without the order moving with it.
type AdvanceDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdvanceDeliveryCommandHandler creates a handler for delivery milestones.
func NewAdvanceDeliveryCommandHandler(uowFactory UoWFactory) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the milestone report.
// Returns ObjectNotFound for a missing assignment and Forbidden when the
// caller is not the assignment's partner.
func (h AdvanceDeliveryCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryCommand) error {
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

	assignmentRepo := uow.AssignmentRepository()

	aggregate, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	if !cmd.CallerID().IsEqual(aggregate.PartnerID()) {
		return errs.NewForbiddenError(
			cmd.CallerID().String(), "assignment "+aggregate.ID().String())
	}

	if err = aggregate.Advance(cmd.Target(), cmd.FailureReason()); err != nil {
		return err
	}

	if err = h.mirror(ctx, uow, aggregate, cmd.Target()); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// mirror propagates the milestone to the order and partner aggregates.
func (h AdvanceDeliveryCommandHandler) mirror(
	ctx context.Context,
	uow UoW,
	aggregate *assignment.DeliveryAssignment,
	target assignment.Status,
) error {
	switch target { //nolint:exhaustive // Assigned and InTransit mirror nothing
	case assignment.PickedUp:
		return h.moveOrder(ctx, uow, aggregate, order.OutForDelivery)

	case assignment.Delivered:
		partnerRepo := uow.PartnerRepository()
		carrier, err := partnerRepo.Get(ctx, aggregate.PartnerID())
		if err != nil {
			return err
		}

		carrier.RecordDelivery()
		if err = carrier.SetAvailable(); err != nil {
			return err
		}
		if err = partnerRepo.Update(ctx, carrier); err != nil {
			return err
		}

		return h.moveOrder(ctx, uow, aggregate, order.Delivered)

	case assignment.Failed:
		partnerRepo := uow.PartnerRepository()
		carrier, err := partnerRepo.Get(ctx, aggregate.PartnerID())
		if err != nil {
			return err
		}

		if err = carrier.SetAvailable(); err != nil {
			return err
		}
		return partnerRepo.Update(ctx, carrier)
	}

	return nil
}

func (h AdvanceDeliveryCommandHandler) moveOrder(
	ctx context.Context,
	uow UoW,
	aggregate *assignment.DeliveryAssignment,
	target order.Status,
) error {
	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, aggregate.OrderID())
	if err != nil {
		return err
	}

	if err = ord.ChangeStatus(target); err != nil {
		return err
	}

	return orderRepo.Update(ctx, ord)
}
