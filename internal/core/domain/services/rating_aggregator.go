package services

import (
	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/partner"
	"fulfillment/internal/pkg/errs"
)

// RatingAggregator is a domain service that folds a new customer rating into
// a partner's running average without keeping per-rating history.
//
// The recurrence is newAverage = (average*(n-1) + rating) / n where n is the
// partner's completed delivery count, the just-rated delivery included. Over
// a partner's lifetime this keeps the average equal to the arithmetic mean of
// every rating received, one delivery rated at most once.
type RatingAggregator struct{}

// NewRatingAggregator creates a new RatingAggregator instance.
func NewRatingAggregator() RatingAggregator {
	return RatingAggregator{}
}

// Apply folds rating into p's running average and returns the new average.
// Returns InvalidState when the partner has no completed deliveries: a rating
// can only follow a delivery, so n = 0 means the counter was never advanced.
func (RatingAggregator) Apply(p *partner.DeliveryPartner, rating int) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if rating < assignment.CustomerRatingMin || rating > assignment.CustomerRatingMax {
		return 0, errs.NewValueIsOutOfRangeError(
			"rating", rating, assignment.CustomerRatingMin, assignment.CustomerRatingMax)
	}

	n := p.TotalDeliveries()
	if n == 0 {
		return 0, errs.NewInvalidStateError("aggregate rating", "no completed deliveries")
	}

	newAverage := (p.Rating()*float64(n-1) + float64(rating)) / float64(n)
	if err := p.UpdateRating(newAverage); err != nil {
		return 0, err
	}

	return newAverage, nil
}
