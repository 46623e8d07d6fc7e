package payment

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrPaymentIntentIsNotConstructed is returned when a PaymentIntent was not
	// created through a constructor.
	ErrPaymentIntentIsNotConstructed = errors.New(
		"payment intent is not constructed, use NewPaymentIntent or RestorePaymentIntent")

	// ErrGatewayRefIsRequired is returned when the gateway reference is empty.
	ErrGatewayRefIsRequired = errs.NewValueIsRequiredError("gatewayRef")
)

// PaymentIntent is the aggregate tracking a single charge attempt against an
// order. It mirrors the gateway-side intent: gatewayRef links the two, while
// status advances only on confirmed gateway outcomes.
//
// At most one active (Pending or Completed) intent may exist per order; that
// rule lives in the use case layer because it spans the whole order's history.
type PaymentIntent struct {
	id             kernel.UUID
	orderID        kernel.UUID
	amount         decimal.Decimal
	status         Status
	gatewayRef     string
	transactionRef string
	refundRef      string
	failureReason  string
	createdAt      time.Time

	guard guard.ConstructorGuard
}

// NewPaymentIntent creates a Pending intent for the given order and amount.
// The gatewayRef is the identifier of the already-opened gateway intent.
func NewPaymentIntent(
	id kernel.UUID,
	orderID kernel.UUID,
	amount decimal.Decimal,
	gatewayRef string,
) (*PaymentIntent, error) {
	p := &PaymentIntent{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setAmount(amount),
		p.setGatewayRef(gatewayRef),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePaymentIntent reconstructs a PaymentIntent from persistent storage.
func RestorePaymentIntent(
	id kernel.UUID,
	orderID kernel.UUID,
	amount decimal.Decimal,
	status Status,
	gatewayRef string,
	transactionRef string,
	refundRef string,
	failureReason string,
	createdAt time.Time,
) (*PaymentIntent, error) {
	p := &PaymentIntent{
		transactionRef: transactionRef,
		refundRef:      refundRef,
		failureReason:  failureReason,
		createdAt:      createdAt,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setAmount(amount),
		p.setGatewayRef(gatewayRef),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	p.status = status

	return p, nil
}

// Validate checks whether the PaymentIntent was properly constructed.
func (p *PaymentIntent) Validate() error {
	if p == nil {
		return ErrPaymentIntentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIntentIsNotConstructed)
}

// IsEqual compares two intents by identity.
func (p *PaymentIntent) IsEqual(other *PaymentIntent) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the intent's unique identifier.
func (p *PaymentIntent) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the order being charged.
func (p *PaymentIntent) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the charge amount.
func (p *PaymentIntent) Amount() decimal.Decimal {
	return p.amount
}

// Status returns the current lifecycle status.
func (p *PaymentIntent) Status() Status {
	return p.status
}

// GatewayRef returns the gateway-side intent identifier.
func (p *PaymentIntent) GatewayRef() string {
	return p.gatewayRef
}

// TransactionRef returns the gateway transaction reference, set on completion.
func (p *PaymentIntent) TransactionRef() string {
	return p.transactionRef
}

// RefundRef returns the gateway refund reference, set on refund.
func (p *PaymentIntent) RefundRef() string {
	return p.refundRef
}

// FailureReason returns the gateway-reported reason for a failed charge.
func (p *PaymentIntent) FailureReason() string {
	return p.failureReason
}

// CreatedAt returns when the intent was opened.
func (p *PaymentIntent) CreatedAt() time.Time {
	return p.createdAt
}

// Complete records a successful charge reported by the gateway.
// Returns InvalidState unless the intent is Pending.
func (p *PaymentIntent) Complete(transactionRef string) error {
	if transactionRef == "" {
		return errs.NewValueIsRequiredError("transactionRef")
	}

	next, err := p.status.TransitionTo(Completed)
	if err != nil {
		return err
	}

	p.status = next
	p.transactionRef = transactionRef
	return nil
}

// Fail records a cancelled or declined charge reported by the gateway.
// Returns InvalidState unless the intent is Pending.
func (p *PaymentIntent) Fail(reason string) error {
	next, err := p.status.TransitionTo(Failed)
	if err != nil {
		return err
	}

	p.status = next
	p.failureReason = reason
	return nil
}

// Refund records a gateway refund of a completed charge.
// Returns InvalidState unless the intent is Completed.
func (p *PaymentIntent) Refund(refundRef string) error {
	if refundRef == "" {
		return errs.NewValueIsRequiredError("refundRef")
	}

	next, err := p.status.TransitionTo(Refunded)
	if err != nil {
		return err
	}

	p.status = next
	p.refundRef = refundRef
	return nil
}

func (p *PaymentIntent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *PaymentIntent) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *PaymentIntent) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%s is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}

func (p *PaymentIntent) setGatewayRef(gatewayRef string) error {
	if gatewayRef == "" {
		return ErrGatewayRefIsRequired
	}
	p.gatewayRef = gatewayRef
	return nil
}
