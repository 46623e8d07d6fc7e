package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/partner"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createRatedPartner returns a partner with the given running average and
// completed delivery count.
func createRatedPartner(t *testing.T, rating float64, deliveries int) *partner.DeliveryPartner {
	t.Helper()
	p, err := partner.RestoreDeliveryPartner(
		kernel.NewUUID(), "Alice", testCredentialHash,
		true, false, nil, rating, deliveries, partner.Bicycle, "")
	require.NoError(t, err)
	return p
}

func TestRatingAggregator_Apply(t *testing.T) {
	aggregator := services.NewRatingAggregator()

	t.Run("first rating becomes the average", func(t *testing.T) {
		p := createRatedPartner(t, 0, 1)

		newAverage, err := aggregator.Apply(p, 4)

		require.NoError(t, err)
		assert.InDelta(t, 4.0, newAverage, 1e-9)
		assert.InDelta(t, 4.0, p.Rating(), 1e-9)
	})

	t.Run("folds a rating into an existing average", func(t *testing.T) {
		// Three deliveries rated at 4.0, then a fourth rated 5.
		p := createRatedPartner(t, 4.0, 4)

		newAverage, err := aggregator.Apply(p, 5)

		require.NoError(t, err)
		assert.InDelta(t, 4.25, newAverage, 1e-9)
	})

	t.Run("sequential ratings equal the arithmetic mean", func(t *testing.T) {
		p := createRatedPartner(t, 0, 0)
		ratings := []int{5, 3, 4, 4, 2, 5, 1}

		sum := 0
		for _, r := range ratings {
			p.RecordDelivery()
			_, err := aggregator.Apply(p, r)
			require.NoError(t, err)
			sum += r
		}

		expected := float64(sum) / float64(len(ratings))
		assert.InDelta(t, expected, p.Rating(), 1e-9)
	})

	t.Run("zero completed deliveries is invalid", func(t *testing.T) {
		p := createRatedPartner(t, 0, 0)

		_, err := aggregator.Apply(p, 5)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Zero(t, p.Rating())
	})

	t.Run("rejects rating outside the band", func(t *testing.T) {
		p := createRatedPartner(t, 4.0, 2)

		for _, rating := range []int{0, 6} {
			_, err := aggregator.Apply(p, rating)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
		assert.InDelta(t, 4.0, p.Rating(), 1e-9)
	})

	t.Run("rejects an unconstructed partner", func(t *testing.T) {
		var zero partner.DeliveryPartner

		_, err := aggregator.Apply(&zero, 5)

		require.Error(t, err)
	})
}
