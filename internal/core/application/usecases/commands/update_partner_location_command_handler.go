package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

// UpdatePartnerLocationCommandHandler records a partner's reported position.
type UpdatePartnerLocationCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewUpdatePartnerLocationCommandHandler creates a handler for position reports.
func NewUpdatePartnerLocationCommandHandler(uowFactory PartnerUoWFactory) UpdatePartnerLocationCommandHandler {
	return UpdatePartnerLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the position report.
// Returns Forbidden unless the caller is the partner being positioned.
func (h UpdatePartnerLocationCommandHandler) Handle(ctx context.Context, cmd UpdatePartnerLocationCommand) error {
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

	if err = aggregate.UpdateLocation(cmd.Location()); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
