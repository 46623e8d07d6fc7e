package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateAssignmentCommandIsNotConstructed = errors.New(
		"CreateAssignmentCommand must be created via NewCreateAssignmentCommand constructor",
	)
	ErrPickupAddressIsRequired = errors.New("pickup address is required")
)

// CreateAssignmentCommand represents a request to dispatch an order to a
// delivery partner. The pickup point is the restaurant's position; partners
// are ranked by distance from it.
type CreateAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID   kernel.UUID
	orderID        kernel.UUID
	pickupLocation kernel.GeoPoint
	pickupAddress  string

	guard guard.ConstructorGuard
}

// NewCreateAssignmentCommand creates a command to dispatch an order.
func NewCreateAssignmentCommand(
	assignmentID kernel.UUID,
	orderID kernel.UUID,
	pickupLocation kernel.GeoPoint,
	pickupAddress string,
) (CreateAssignmentCommand, error) {
	cmd := CreateAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setOrderID(orderID),
		cmd.setPickupLocation(pickupLocation),
		cmd.setPickupAddress(pickupAddress),
	); err != nil {
		return CreateAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the identifier for the new assignment.
func (c CreateAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// OrderID returns the identifier of the order to dispatch.
func (c CreateAssignmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PickupLocation returns the restaurant's position.
func (c CreateAssignmentCommand) PickupLocation() kernel.GeoPoint {
	return c.pickupLocation
}

// PickupAddress returns the restaurant's street address.
func (c CreateAssignmentCommand) PickupAddress() string {
	return c.pickupAddress
}

func (c *CreateAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *CreateAssignmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateAssignmentCommand) setPickupLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.pickupLocation = location
	return nil
}

func (c *CreateAssignmentCommand) setPickupAddress(address string) error {
	if address == "" {
		return ErrPickupAddressIsRequired
	}

	c.pickupAddress = address
	return nil
}
