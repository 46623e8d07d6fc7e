package commands

import (
	"context"
)

// VerifyPartnerCommandHandler flips a registered partner to verified.
type VerifyPartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewVerifyPartnerCommandHandler creates a handler for partner verification.
func NewVerifyPartnerCommandHandler(uowFactory PartnerUoWFactory) VerifyPartnerCommandHandler {
	return VerifyPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification command.
// Returns ObjectNotFound when the partner does not exist and Conflict when it
// is already verified.
func (h VerifyPartnerCommandHandler) Handle(ctx context.Context, cmd VerifyPartnerCommand) error {
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

	partnerRepo := uow.PartnerRepository()

	aggregate, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = aggregate.Verify(); err != nil {
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
