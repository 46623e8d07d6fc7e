package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrRefundPaymentCommandIsNotConstructed = errors.New(
		"RefundPaymentCommand must be created via NewRefundPaymentCommand constructor",
	)
	ErrRefundAmountIsNegative = errors.New("refund amount must not be negative")
)

// RefundPaymentCommand represents a request to refund a completed charge.
// A zero amount refunds the full charge.
type RefundPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	amount    decimal.Decimal
	reason    string

	guard guard.ConstructorGuard
}

// NewRefundPaymentCommand creates a command to refund a payment.
func NewRefundPaymentCommand(
	paymentID kernel.UUID,
	amount decimal.Decimal,
	reason string,
) (RefundPaymentCommand, error) {
	cmd := RefundPaymentCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setAmount(amount),
	); err != nil {
		return RefundPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRefundPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier of the payment intent to refund.
func (c RefundPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Amount returns the refund amount, zero meaning the full charge.
func (c RefundPaymentCommand) Amount() decimal.Decimal {
	return c.amount
}

// Reason returns the operator's refund reason, may be empty.
func (c RefundPaymentCommand) Reason() string {
	return c.reason
}

func (c *RefundPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *RefundPaymentCommand) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrRefundAmountIsNegative
	}

	c.amount = amount
	return nil
}
