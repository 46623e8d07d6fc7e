package services

import (
	"sort"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/partner"
	"fulfillment/internal/pkg/errs"
)

// Candidate pairs a dispatchable partner with its distance from the pickup
// point. Candidates are produced by ProximityIndex in ascending distance order.
type Candidate struct {
	Partner        *partner.DeliveryPartner
	DistanceMeters float64
}

// ProximityIndex is a domain service that selects dispatch candidates for a
// delivery around a pickup point.
//
// Selection rules:
//   - Only available and verified partners with a reported location qualify
//   - Distance is the great-circle distance from the origin
//   - Partners beyond maxDistanceMeters are excluded
//   - Results come back nearest first; an empty result is not an error
type ProximityIndex struct{}

// NewProximityIndex creates a new ProximityIndex instance.
func NewProximityIndex() ProximityIndex {
	return ProximityIndex{}
}

// FindCandidates ranks the given partners by distance from origin.
// Returns an empty slice when nobody qualifies; callers decide whether that
// is an error for their operation.
func (ProximityIndex) FindCandidates(
	origin kernel.GeoPoint,
	maxDistanceMeters float64,
	partners []*partner.DeliveryPartner,
) ([]Candidate, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if maxDistanceMeters <= 0 {
		return nil, errs.NewValueIsInvalidError("maxDistanceMeters must be positive")
	}

	candidates := make([]Candidate, 0, len(partners))
	for _, p := range partners {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		if !p.IsAvailable() || !p.IsVerified() || p.Location() == nil {
			continue
		}

		distance, err := origin.DistanceMeters(*p.Location())
		if err != nil {
			return nil, err
		}
		if distance > maxDistanceMeters {
			continue
		}

		candidates = append(candidates, Candidate{Partner: p, DistanceMeters: distance})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].DistanceMeters < candidates[j].DistanceMeters
	})

	return candidates, nil
}
