package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partner
// aggregates.
type PartnerRepository interface {
	// Add persists a new partner aggregate to storage.
	Add(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Update persists changes to an existing partner aggregate.
	Update(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Get retrieves a partner aggregate by its unique identifier.
	// Returns ObjectNotFound when no such partner exists.
	Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error)

	// GetByName retrieves a partner by its unique registry name.
	// Returns ObjectNotFound when no such partner exists. Used by the
	// authentication path to look up the stored credential hash.
	GetByName(ctx context.Context, name string) (*partner.DeliveryPartner, error)

	// GetAllAvailableVerified retrieves the dispatchable pool: partners that
	// are available, verified and have a reported location.
	GetAllAvailableVerified(ctx context.Context) ([]*partner.DeliveryPartner, error)

	// ReserveAvailable atomically flips the partner from available to busy.
	// The write is conditional on the partner still being available; when a
	// concurrent dispatch won the race the method returns Conflict and the
	// caller moves on to its next candidate.
	ReserveAvailable(ctx context.Context, id kernel.UUID) error
}
