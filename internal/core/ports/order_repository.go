// Package ports defines the contracts between the core and infrastructure:
// repository interfaces per aggregate, the unit of work, and the payment
// gateway. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their payment and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPaidUnassigned retrieves paid, non-terminal orders that have no
	// delivery partner yet. Used by the dispatch job to find work.
	GetAllPaidUnassigned(ctx context.Context) ([]*order.Order, error)
}
