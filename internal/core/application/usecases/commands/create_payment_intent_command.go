package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreatePaymentIntentCommandIsNotConstructed = errors.New(
	"CreatePaymentIntentCommand must be created via NewCreatePaymentIntentCommand constructor",
)

// CreatePaymentIntentCommand represents a request to open a payment intent
// for an order's total.
type CreatePaymentIntentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	orderID   kernel.UUID
	method    string

	guard guard.ConstructorGuard
}

// NewCreatePaymentIntentCommand creates a command to open a payment intent.
// method names the payment method type, empty for the provider default.
func NewCreatePaymentIntentCommand(
	paymentID kernel.UUID,
	orderID kernel.UUID,
	method string,
) (CreatePaymentIntentCommand, error) {
	cmd := CreatePaymentIntentCommand{
		method: method,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setOrderID(orderID),
	); err != nil {
		return CreatePaymentIntentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePaymentIntentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentIntentCommandIsNotConstructed)
}

// PaymentID returns the identifier for the new payment intent.
func (c CreatePaymentIntentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// OrderID returns the identifier of the order being charged.
func (c CreatePaymentIntentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Method returns the requested payment method type, may be empty.
func (c CreatePaymentIntentCommand) Method() string {
	return c.method
}

func (c *CreatePaymentIntentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *CreatePaymentIntentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
