package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRateDeliveryCommandIsNotConstructed = errors.New(
	"RateDeliveryCommand must be created via NewRateDeliveryCommand constructor",
)

// RateDeliveryCommand represents a customer rating a completed delivery.
type RateDeliveryCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	callerID     kernel.UUID
	rating       int
	feedback     string

	guard guard.ConstructorGuard
}

// NewRateDeliveryCommand creates a command to rate a delivery.
func NewRateDeliveryCommand(
	assignmentID kernel.UUID,
	callerID kernel.UUID,
	rating int,
	feedback string,
) (RateDeliveryCommand, error) {
	cmd := RateDeliveryCommand{
		feedback: feedback,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setCallerID(callerID),
		cmd.setRating(rating),
	); err != nil {
		return RateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRateDeliveryCommandIsNotConstructed)
}

// AssignmentID returns the identifier of the assignment to rate.
func (c RateDeliveryCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// CallerID returns the authenticated caller's identifier.
func (c RateDeliveryCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Rating returns the customer's rating.
func (c RateDeliveryCommand) Rating() int {
	return c.rating
}

// Feedback returns the customer's free-form feedback, may be empty.
func (c RateDeliveryCommand) Feedback() string {
	return c.feedback
}

func (c *RateDeliveryCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *RateDeliveryCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}

func (c *RateDeliveryCommand) setRating(rating int) error {
	if rating < assignment.CustomerRatingMin || rating > assignment.CustomerRatingMax {
		return errs.NewValueIsOutOfRangeError(
			"rating", rating, assignment.CustomerRatingMin, assignment.CustomerRatingMax)
	}

	c.rating = rating
	return nil
}
