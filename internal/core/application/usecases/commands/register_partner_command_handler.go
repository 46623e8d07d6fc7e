package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/partner"
	"fulfillment/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// RegisterPartnerCommandHandler registers a new delivery partner.
// The plaintext credential is bcrypt-hashed here so the domain only ever
// holds the hash. Registry names are unique; an existing name is a Conflict.
type RegisterPartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewRegisterPartnerCommandHandler creates a handler for partner registration.
func NewRegisterPartnerCommandHandler(uowFactory PartnerUoWFactory) RegisterPartnerCommandHandler {
	return RegisterPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h RegisterPartnerCommandHandler) Handle(ctx context.Context, cmd RegisterPartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Credential()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	aggregate, err := partner.NewDeliveryPartner(
		cmd.PartnerID(), cmd.Name(), string(hash), cmd.Vehicle(), cmd.VehicleNumber())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()

	_, err = partnerRepo.GetByName(ctx, cmd.Name())
	if err == nil {
		return errs.NewConflictError("partner name is already registered")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = partnerRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
