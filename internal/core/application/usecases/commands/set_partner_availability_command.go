package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrSetPartnerAvailabilityCommandIsNotConstructed = errors.New(
	"SetPartnerAvailabilityCommand must be created via NewSetPartnerAvailabilityCommand constructor",
)

// SetPartnerAvailabilityCommand represents a partner going on or off shift.
type SetPartnerAvailabilityCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	callerID  kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewSetPartnerAvailabilityCommand creates a command to flip availability.
func NewSetPartnerAvailabilityCommand(
	partnerID kernel.UUID,
	callerID kernel.UUID,
	available bool,
) (SetPartnerAvailabilityCommand, error) {
	cmd := SetPartnerAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerID(partnerID),
		cmd.setCallerID(callerID),
	); err != nil {
		return SetPartnerAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPartnerAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetPartnerAvailabilityCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner changing availability.
func (c SetPartnerAvailabilityCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// CallerID returns the authenticated caller's identifier.
func (c SetPartnerAvailabilityCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Available returns the requested availability.
func (c SetPartnerAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetPartnerAvailabilityCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *SetPartnerAvailabilityCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}
