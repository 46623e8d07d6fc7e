package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// PickupResolver resolves a restaurant identifier to the geographic point and
// street address a delivery partner picks the order up from. The restaurant
// catalog lives outside this service.
type PickupResolver interface {
	ResolvePickup(ctx context.Context, restaurantID kernel.UUID) (kernel.GeoPoint, string, error)
}
