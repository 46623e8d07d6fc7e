package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/partner"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRegisterPartnerCommandIsNotConstructed = errors.New(
		"RegisterPartnerCommand must be created via NewRegisterPartnerCommand constructor",
	)
	ErrPartnerNameIsRequired = errors.New("partner name is required")
	ErrCredentialIsRequired  = errors.New("credential is required")
)

// RegisterPartnerCommand represents a request to register a delivery partner.
// The credential travels in plaintext only as far as the handler, which
// hashes it before the aggregate is built.
type RegisterPartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID     kernel.UUID
	name          string
	credential    string
	vehicle       partner.Vehicle
	vehicleNumber string

	guard guard.ConstructorGuard
}

// NewRegisterPartnerCommand creates a command to register a partner.
func NewRegisterPartnerCommand(
	partnerID kernel.UUID,
	name string,
	credential string,
	vehicle partner.Vehicle,
	vehicleNumber string,
) (RegisterPartnerCommand, error) {
	cmd := RegisterPartnerCommand{
		vehicleNumber: vehicleNumber,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerID(partnerID),
		cmd.setName(name),
		cmd.setCredential(credential),
		cmd.setVehicle(vehicle),
	); err != nil {
		return RegisterPartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterPartnerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier for the new partner.
func (c RegisterPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the partner's registry name.
func (c RegisterPartnerCommand) Name() string {
	return c.name
}

// Credential returns the plaintext credential to be hashed by the handler.
func (c RegisterPartnerCommand) Credential() string {
	return c.credential
}

// Vehicle returns the partner's vehicle kind.
func (c RegisterPartnerCommand) Vehicle() partner.Vehicle {
	return c.vehicle
}

// VehicleNumber returns the vehicle registration number, may be empty.
func (c RegisterPartnerCommand) VehicleNumber() string {
	return c.vehicleNumber
}

func (c *RegisterPartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *RegisterPartnerCommand) setName(name string) error {
	if name == "" {
		return ErrPartnerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterPartnerCommand) setCredential(credential string) error {
	if credential == "" {
		return ErrCredentialIsRequired
	}

	c.credential = credential
	return nil
}

func (c *RegisterPartnerCommand) setVehicle(vehicle partner.Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}

	c.vehicle = vehicle
	return nil
}
