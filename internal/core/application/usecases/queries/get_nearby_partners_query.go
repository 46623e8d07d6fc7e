package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetNearbyPartnersQueryIsNotConstructed = errors.New(
	"GetNearbyPartnersQuery must be created via NewGetNearbyPartnersQuery constructor",
)

// GetNearbyPartnersQuery retrieves available verified partners around a
// point, nearest first. The read model never carries credentials.
type GetNearbyPartnersQuery struct { //nolint:recvcheck //using for validation
	origin       kernel.GeoPoint
	radiusMeters float64

	guard guard.ConstructorGuard
}

// NewGetNearbyPartnersQuery creates a query for the dispatchable pool around
// origin. Coordinate range checks happen in NewGeoPoint before the query is
// built.
func NewGetNearbyPartnersQuery(
	origin kernel.GeoPoint,
	radiusMeters float64,
) (GetNearbyPartnersQuery, error) {
	q := GetNearbyPartnersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setOrigin(origin),
		q.setRadiusMeters(radiusMeters),
	); err != nil {
		return GetNearbyPartnersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNearbyPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyPartnersQueryIsNotConstructed)
}

// Origin returns the center of the search.
func (q GetNearbyPartnersQuery) Origin() kernel.GeoPoint {
	return q.origin
}

// RadiusMeters returns the search radius.
func (q GetNearbyPartnersQuery) RadiusMeters() float64 {
	return q.radiusMeters
}

func (q *GetNearbyPartnersQuery) setOrigin(origin kernel.GeoPoint) error {
	if err := origin.Validate(); err != nil {
		return err
	}

	q.origin = origin
	return nil
}

func (q *GetNearbyPartnersQuery) setRadiusMeters(radiusMeters float64) error {
	if radiusMeters <= 0 {
		return errs.NewValueIsInvalidError("radiusMeters")
	}

	q.radiusMeters = radiusMeters
	return nil
}

// GetNearbyPartnersQueryResponse is one dispatchable partner in the read
// model, with the distance from the query origin.
type GetNearbyPartnersQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Location       kernel.GeoPoint
	Rating         float64
	Vehicle        string
	DistanceMeters float64
}
