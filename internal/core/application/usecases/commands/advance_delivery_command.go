package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
)

// AdvanceDeliveryCommand represents a partner reporting a delivery milestone.
type AdvanceDeliveryCommand struct { //nolint:recvcheck //using for validation
	assignmentID  kernel.UUID
	callerID      kernel.UUID
	target        assignment.Status
	failureReason string

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryCommand creates a command to report a milestone.
// failureReason matters only when the target is Failed; the aggregate
// requires it there and ignores it elsewhere.
func NewAdvanceDeliveryCommand(
	assignmentID kernel.UUID,
	callerID kernel.UUID,
	target assignment.Status,
	failureReason string,
) (AdvanceDeliveryCommand, error) {
	cmd := AdvanceDeliveryCommand{
		failureReason: failureReason,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setCallerID(callerID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

// AssignmentID returns the identifier of the assignment to advance.
func (c AdvanceDeliveryCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// CallerID returns the authenticated caller's identifier.
func (c AdvanceDeliveryCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Target returns the reported milestone.
func (c AdvanceDeliveryCommand) Target() assignment.Status {
	return c.target
}

// FailureReason returns why the delivery failed, empty unless failing.
func (c AdvanceDeliveryCommand) FailureReason() string {
	return c.failureReason
}

func (c *AdvanceDeliveryCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *AdvanceDeliveryCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}

func (c *AdvanceDeliveryCommand) setTarget(target assignment.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
