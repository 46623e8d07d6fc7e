package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

// SetPartnerAvailabilityCommandHandler flips a partner on or off shift.
//
// Business rules:
//   - Only the partner itself may flip its availability
//   - Going available requires verification (enforced by the aggregate) and
//     no open assignment: a partner mid-delivery cannot re-enter the pool
type SetPartnerAvailabilityCommandHandler struct {
	uowFactory PartnerAssignmentUoWFactory
}

// NewSetPartnerAvailabilityCommandHandler creates a handler for availability changes.
func NewSetPartnerAvailabilityCommandHandler(
	uowFactory PartnerAssignmentUoWFactory,
) SetPartnerAvailabilityCommandHandler {
	return SetPartnerAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability change.
func (h SetPartnerAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd SetPartnerAvailabilityCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.CallerID().IsEqual(cmd.PartnerID()) {
		return errs.NewForbiddenError(cmd.CallerID().String(), "partner "+cmd.PartnerID().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()

	aggregate, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if cmd.Available() {
		open, err := uow.AssignmentRepository().HasOpenForPartner(ctx, cmd.PartnerID())
		if err != nil {
			return err
		}
		if open {
			return errs.NewInvalidStateError("go available", "assignment in progress")
		}

		if err = aggregate.SetAvailable(); err != nil {
			return err
		}
	} else {
		aggregate.SetUnavailable()
	}

	if err = partnerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
