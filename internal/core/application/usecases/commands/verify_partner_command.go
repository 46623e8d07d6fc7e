package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrVerifyPartnerCommandIsNotConstructed = errors.New(
	"VerifyPartnerCommand must be created via NewVerifyPartnerCommand constructor",
)

// VerifyPartnerCommand represents a platform decision to verify a partner.
// Callers are expected to be operators; the HTTP layer enforces the role.
type VerifyPartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewVerifyPartnerCommand creates a command to verify a partner.
func NewVerifyPartnerCommand(partnerID kernel.UUID) (VerifyPartnerCommand, error) {
	cmd := VerifyPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPartnerID(partnerID); err != nil {
		return VerifyPartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyPartnerCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner to verify.
func (c VerifyPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c *VerifyPartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}
