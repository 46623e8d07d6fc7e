package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment intent
// aggregates.
type PaymentRepository interface {
	// Add persists a new payment intent aggregate to storage.
	Add(ctx context.Context, aggregate *payment.PaymentIntent) error

	// Update persists changes to an existing payment intent aggregate.
	Update(ctx context.Context, aggregate *payment.PaymentIntent) error

	// Get retrieves a payment intent by its unique identifier.
	// Returns ObjectNotFound when no such intent exists.
	Get(ctx context.Context, id kernel.UUID) (*payment.PaymentIntent, error)

	// GetByGatewayRef retrieves the payment intent holding the given
	// gateway-side reference. Returns ObjectNotFound when no such intent
	// exists. Used by payment confirmation, which is keyed by the gateway.
	GetByGatewayRef(ctx context.Context, gatewayRef string) (*payment.PaymentIntent, error)

	// GetActiveByOrderID retrieves the Pending or Completed intent for the
	// order, or (nil, nil) when the order has no active intent. At most one
	// active intent exists per order.
	GetActiveByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.PaymentIntent, error)
}
