package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for delivery
// assignment aggregates.
type AssignmentRepository interface {
	// Add persists a new assignment aggregate to storage.
	// Storage enforces at most one assignment per order with a unique index
	// on the order reference; Add returns Conflict when it trips.
	Add(ctx context.Context, aggregate *assignment.DeliveryAssignment) error

	// Update persists changes to an existing assignment aggregate.
	Update(ctx context.Context, aggregate *assignment.DeliveryAssignment) error

	// Get retrieves an assignment aggregate by its unique identifier.
	// Returns ObjectNotFound when no such assignment exists.
	Get(ctx context.Context, id kernel.UUID) (*assignment.DeliveryAssignment, error)

	// GetByOrderID retrieves the assignment for the given order, or
	// (nil, nil) when the order was never assigned. An assignment in any
	// status counts: a failed assignment still blocks re-dispatch.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*assignment.DeliveryAssignment, error)

	// GetAllByPartnerID retrieves all assignments ever carried by the
	// partner, newest first.
	GetAllByPartnerID(ctx context.Context, partnerID kernel.UUID) ([]*assignment.DeliveryAssignment, error)

	// HasOpenForPartner reports whether the partner currently carries a
	// non-terminal assignment.
	HasOpenForPartner(ctx context.Context, partnerID kernel.UUID) (bool, error)
}
