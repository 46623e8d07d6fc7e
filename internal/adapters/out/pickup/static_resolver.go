// Package pickup provides a fixed-location PickupResolver for deployments
// serving a single kitchen hub. A restaurant-directory client can replace it
// without touching the dispatch flow.
package pickup

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// StaticResolver answers every pickup lookup with the same point and address.
type StaticResolver struct {
	point   kernel.GeoPoint
	address string
}

// NewStaticResolver creates a resolver pinned to the given coordinates.
func NewStaticResolver(latitude, longitude float64, address string) (*StaticResolver, error) {
	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return nil, err
	}
	if address == "" {
		return nil, errs.NewValueIsRequiredError("address")
	}

	return &StaticResolver{point: point, address: address}, nil
}

// ResolvePickup implements ports.PickupResolver.
func (r *StaticResolver) ResolvePickup(_ context.Context, _ kernel.UUID) (kernel.GeoPoint, string, error) {
	return r.point, r.address, nil
}
