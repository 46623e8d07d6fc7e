package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/partner"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCredentialHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Test helper functions.
func createPoint(t *testing.T, lat, long float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, long)
	require.NoError(t, err)
	return point
}

// createDispatchablePartner returns a verified, available partner positioned
// at the given coordinates.
func createDispatchablePartner(t *testing.T, name string, lat, long float64) *partner.DeliveryPartner {
	t.Helper()
	p, err := partner.NewDeliveryPartner(
		kernel.NewUUID(), name, testCredentialHash, partner.Bicycle, "")
	require.NoError(t, err)
	require.NoError(t, p.Verify())
	require.NoError(t, p.SetAvailable())
	require.NoError(t, p.UpdateLocation(createPoint(t, lat, long)))
	return p
}

func TestProximityIndex_FindCandidates(t *testing.T) {
	index := services.NewProximityIndex()
	// Origin in central Paris; offsets of 0.01 degrees latitude are roughly
	// 1.1 km on the ground.
	origin := createPoint(t, 48.8566, 2.3522)

	t.Run("ranks candidates nearest first", func(t *testing.T) {
		far := createDispatchablePartner(t, "far", 48.8766, 2.3522)
		near := createDispatchablePartner(t, "near", 48.8576, 2.3522)
		mid := createDispatchablePartner(t, "mid", 48.8666, 2.3522)

		candidates, err := index.FindCandidates(origin, 5_000,
			[]*partner.DeliveryPartner{far, near, mid})

		require.NoError(t, err)
		require.Len(t, candidates, 3)
		assert.Equal(t, "near", candidates[0].Partner.Name())
		assert.Equal(t, "mid", candidates[1].Partner.Name())
		assert.Equal(t, "far", candidates[2].Partner.Name())
		assert.Less(t, candidates[0].DistanceMeters, candidates[1].DistanceMeters)
		assert.Less(t, candidates[1].DistanceMeters, candidates[2].DistanceMeters)
	})

	t.Run("reports the great-circle distance for each candidate", func(t *testing.T) {
		near := createDispatchablePartner(t, "near", 48.8576, 2.3522)

		candidates, err := index.FindCandidates(origin, 5_000,
			[]*partner.DeliveryPartner{near})

		require.NoError(t, err)
		require.Len(t, candidates, 1)
		want, err := origin.DistanceMeters(*near.Location())
		require.NoError(t, err)
		assert.InDelta(t, want, candidates[0].DistanceMeters, 1e-9)
	})

	t.Run("excludes partners beyond the radius", func(t *testing.T) {
		near := createDispatchablePartner(t, "near", 48.8576, 2.3522)
		far := createDispatchablePartner(t, "far", 48.9566, 2.3522)

		candidates, err := index.FindCandidates(origin, 2_000,
			[]*partner.DeliveryPartner{near, far})

		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, "near", candidates[0].Partner.Name())
	})

	t.Run("excludes unavailable, unverified and unlocated partners", func(t *testing.T) {
		busy := createDispatchablePartner(t, "busy", 48.8576, 2.3522)
		busy.SetUnavailable()

		unverified, err := partner.NewDeliveryPartner(
			kernel.NewUUID(), "unverified", testCredentialHash, partner.Car, "")
		require.NoError(t, err)
		require.NoError(t, unverified.UpdateLocation(createPoint(t, 48.8576, 2.3522)))

		unlocated, err := partner.NewDeliveryPartner(
			kernel.NewUUID(), "unlocated", testCredentialHash, partner.Car, "")
		require.NoError(t, err)
		require.NoError(t, unlocated.Verify())
		require.NoError(t, unlocated.SetAvailable())

		candidates, err := index.FindCandidates(origin, 5_000,
			[]*partner.DeliveryPartner{busy, unverified, unlocated})

		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("empty pool is not an error", func(t *testing.T) {
		candidates, err := index.FindCandidates(origin, 5_000, nil)

		require.NoError(t, err)
		assert.NotNil(t, candidates)
		assert.Empty(t, candidates)
	})

	t.Run("rejects invalid origin and radius", func(t *testing.T) {
		var zero kernel.GeoPoint
		_, err := index.FindCandidates(zero, 5_000, nil)
		require.Error(t, err)

		_, err = index.FindCandidates(origin, 0, nil)
		require.Error(t, err)
	})

	t.Run("rejects a pool containing an unconstructed partner", func(t *testing.T) {
		var zero partner.DeliveryPartner

		_, err := index.FindCandidates(origin, 5_000,
			[]*partner.DeliveryPartner{&zero})

		require.Error(t, err)
	})
}
