package queries

import (
	"context"
	"sort"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNearbyPartnersQueryHandler retrieves the dispatchable pool around a
// point. The coarse filter (available, verified, positioned) runs in SQL;
// the distance cut and ordering run in Go on the surviving rows.
type GetNearbyPartnersQueryHandler struct {
	db *gorm.DB
}

// NewGetNearbyPartnersQueryHandler creates a handler for nearby partner queries.
// Requires a GORM database connection for query execution.
func NewGetNearbyPartnersQueryHandler(db *gorm.DB) GetNearbyPartnersQueryHandler {
	return GetNearbyPartnersQueryHandler{db: db}
}

// Handle executes the query.
// Returns partners inside the radius sorted nearest first; an empty pool is
// an empty slice, not an error.
func (h GetNearbyPartnersQueryHandler) Handle(
	ctx context.Context,
	query GetNearbyPartnersQuery,
) ([]GetNearbyPartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	partners := make([]GetNearbyPartnersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			latitude,
			longitude,
			rating,
			vehicle
		FROM partners
		WHERE available = true
		  AND verified = true
		  AND latitude IS NOT NULL
		  AND longitude IS NOT NULL
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetNearbyPartnersQueryResponse
		var id uuid.UUID
		var latitude, longitude float64

		err = rows.Scan(
			&id,
			&response.Name,
			&latitude,
			&longitude,
			&response.Rating,
			&response.Vehicle,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		location, locErr := kernel.NewGeoPoint(latitude, longitude)
		if locErr != nil {
			return nil, locErr
		}
		response.Location = location

		distance, distErr := query.Origin().DistanceMeters(location)
		if distErr != nil {
			return nil, distErr
		}
		if distance > query.RadiusMeters() {
			continue
		}
		response.DistanceMeters = distance

		partners = append(partners, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(partners, func(i, j int) bool {
		return partners[i].DistanceMeters < partners[j].DistanceMeters
	})

	return partners, nil
}
