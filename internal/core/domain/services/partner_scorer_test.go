package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/partner"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/services"
)

// partnerFixture describes the state a test partner should be restored with.
type partnerFixture struct {
	vehicleType          partner.VehicleType
	rating               float64
	totalDeliveries      int
	successfulDeliveries int
	lastActive           time.Time
	location             *kernel.GeoPoint
	maxDistanceKm        float64
}

func restorePartner(t *testing.T, f partnerFixture) *partner.Partner {
	t.Helper()

	if f.vehicleType == partner.VehicleUnknown {
		f.vehicleType = partner.Car
	}
	if f.maxDistanceKm == 0 {
		f.maxDistanceKm = partner.DefaultMaxDistanceKm
	}
	if f.lastActive.IsZero() {
		f.lastActive = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p, err := partner.RestorePartner(partner.RestorePartnerParams{
		ID:                   kernel.NewUUID(),
		UserID:               kernel.NewUUID(),
		VehicleType:          f.vehicleType,
		IsAvailable:          true,
		IsOnline:             true,
		LastActive:           f.lastActive,
		Location:             f.location,
		Rating:               f.rating,
		TotalDeliveries:      f.totalDeliveries,
		SuccessfulDeliveries: f.successfulDeliveries,
		HourlyRate:           decimal.NewFromInt(400),
		MaxDistanceKm:        f.maxDistanceKm,
		CreatedAt:            created,
		UpdatedAt:            created,
	})
	require.NoError(t, err)
	return p
}

func jobWithPickup(t *testing.T, lat, lng float64) *delivery.DeliveryJob {
	t.Helper()

	job, err := delivery.NewDeliveryJob(
		kernel.NewUUID(), kernel.NewUUID(),
		"pickup street", "dropoff street", "name", "phone", time.Now())
	require.NoError(t, err)

	pickup, err := kernel.GeoPointFromFloats(lat, lng)
	require.NoError(t, err)
	dropoff, err := kernel.GeoPointFromFloats(lat+0.05, lng+0.05)
	require.NoError(t, err)
	require.NoError(t, job.SetRoute(&pickup, &dropoff))
	return job
}

func jobWithoutRoute(t *testing.T) *delivery.DeliveryJob {
	t.Helper()

	job, err := delivery.NewDeliveryJob(
		kernel.NewUUID(), kernel.NewUUID(),
		"pickup street", "dropoff street", "name", "phone", time.Now())
	require.NoError(t, err)
	return job
}

func TestPartnerScorer_Score(t *testing.T) {
	scorer := services.NewPartnerScorer()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should weigh rating ten to one", func(t *testing.T) {
		p := restorePartner(t, partnerFixture{rating: 4.5})

		score, err := scorer.Score(p, jobWithoutRoute(t), now)

		require.NoError(t, err)
		assert.InDelta(t, 45.0, score, 1e-9)
	})

	t.Run("should add success rate as a tenth of its percentage", func(t *testing.T) {
		p := restorePartner(t, partnerFixture{
			totalDeliveries:      100,
			successfulDeliveries: 80,
		})

		score, err := scorer.Score(p, jobWithoutRoute(t), now)

		require.NoError(t, err)
		// 80% success -> 8.0, plus 100 deliveries -> 1.0 experience.
		assert.InDelta(t, 9.0, score, 1e-9)
	})

	t.Run("should cap the experience term", func(t *testing.T) {
		few := restorePartner(t, partnerFixture{totalDeliveries: 500})
		many := restorePartner(t, partnerFixture{totalDeliveries: 5000})

		fewScore, err := scorer.Score(few, jobWithoutRoute(t), now)
		require.NoError(t, err)
		manyScore, err := scorer.Score(many, jobWithoutRoute(t), now)
		require.NoError(t, err)

		assert.InDelta(t, fewScore, manyScore, 1e-9)
	})

	t.Run("should reward proximity to the pickup point", func(t *testing.T) {
		job := jobWithPickup(t, 40.7128, -74.0060)
		near, err := kernel.GeoPointFromFloats(40.7300, -74.0060)
		require.NoError(t, err)
		far, err := kernel.GeoPointFromFloats(40.9000, -74.0060)
		require.NoError(t, err)

		nearScore, err := scorer.Score(
			restorePartner(t, partnerFixture{location: &near}), job, now)
		require.NoError(t, err)
		farScore, err := scorer.Score(
			restorePartner(t, partnerFixture{location: &far}), job, now)
		require.NoError(t, err)

		assert.Greater(t, nearScore, farScore)
	})

	t.Run("should skip proximity when partner sits exactly at pickup", func(t *testing.T) {
		job := jobWithPickup(t, 40.7128, -74.0060)
		atPickup, err := kernel.GeoPointFromFloats(40.7128, -74.0060)
		require.NoError(t, err)

		score, err := scorer.Score(
			restorePartner(t, partnerFixture{location: &atPickup}), job, now)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, score, 1e-9)
	})

	t.Run("should skip proximity without coordinates", func(t *testing.T) {
		location, err := kernel.GeoPointFromFloats(40.7128, -74.0060)
		require.NoError(t, err)
		p := restorePartner(t, partnerFixture{location: &location})

		score, err := scorer.Score(p, jobWithoutRoute(t), now)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, score, 1e-9)
	})

	t.Run("should grant recency bonus inside the window only", func(t *testing.T) {
		recent := restorePartner(t, partnerFixture{
			lastActive: now.Add(-services.RecencyWindow + time.Second),
		})
		stale := restorePartner(t, partnerFixture{
			lastActive: now.Add(-services.RecencyWindow),
		})

		recentScore, err := scorer.Score(recent, jobWithoutRoute(t), now)
		require.NoError(t, err)
		staleScore, err := scorer.Score(stale, jobWithoutRoute(t), now)
		require.NoError(t, err)

		assert.InDelta(t, 2.0, recentScore, 1e-9)
		assert.InDelta(t, 0.0, staleScore, 1e-9)
	})

	t.Run("should prefer lighter vehicles", func(t *testing.T) {
		job := jobWithoutRoute(t)

		motorcycle, err := scorer.Score(
			restorePartner(t, partnerFixture{vehicleType: partner.Motorcycle}), job, now)
		require.NoError(t, err)
		bicycle, err := scorer.Score(
			restorePartner(t, partnerFixture{vehicleType: partner.Bicycle}), job, now)
		require.NoError(t, err)
		car, err := scorer.Score(
			restorePartner(t, partnerFixture{vehicleType: partner.Car}), job, now)
		require.NoError(t, err)

		assert.InDelta(t, 1.0, motorcycle, 1e-9)
		assert.InDelta(t, 0.5, bicycle, 1e-9)
		assert.InDelta(t, 0.0, car, 1e-9)
	})

	t.Run("should be reproducible for fixed inputs", func(t *testing.T) {
		job := jobWithPickup(t, 40.7128, -74.0060)
		location, err := kernel.GeoPointFromFloats(40.7300, -74.0100)
		require.NoError(t, err)
		p := restorePartner(t, partnerFixture{
			vehicleType:          partner.Motorcycle,
			rating:               4.0,
			totalDeliveries:      200,
			successfulDeliveries: 180,
			location:             &location,
		})

		first, err := scorer.Score(p, job, now)
		require.NoError(t, err)
		second, err := scorer.Score(p, job, now)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should reject unconstructed partner", func(t *testing.T) {
		_, err := scorer.Score(&partner.Partner{}, jobWithoutRoute(t), now)

		require.Error(t, err)
	})
}
