package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdatePartnerLocationCommandIsNotConstructed = errors.New(
	"UpdatePartnerLocationCommand must be created via NewUpdatePartnerLocationCommand constructor",
)

// UpdatePartnerLocationCommand represents a partner reporting its position.
// callerID is the authenticated identity; only the partner itself may report.
type UpdatePartnerLocationCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	callerID  kernel.UUID
	location  kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdatePartnerLocationCommand creates a command to record a partner position.
// Coordinate range validation happens in NewGeoPoint before the command is
// built, so an invalid latitude or longitude never reaches the handler.
func NewUpdatePartnerLocationCommand(
	partnerID kernel.UUID,
	callerID kernel.UUID,
	location kernel.GeoPoint,
) (UpdatePartnerLocationCommand, error) {
	cmd := UpdatePartnerLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerID(partnerID),
		cmd.setCallerID(callerID),
		cmd.setLocation(location),
	); err != nil {
		return UpdatePartnerLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePartnerLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerLocationCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner being positioned.
func (c UpdatePartnerLocationCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// CallerID returns the authenticated caller's identifier.
func (c UpdatePartnerLocationCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Location returns the reported position.
func (c UpdatePartnerLocationCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *UpdatePartnerLocationCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *UpdatePartnerLocationCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}

func (c *UpdatePartnerLocationCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
