package kernel_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/errs"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point from valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(
			decimal.NewFromFloat(27.7172), decimal.NewFromFloat(85.3240))

		require.NoError(t, err)
		require.NoError(t, point.Validate())
		assert.True(t, point.Lat().Equal(decimal.NewFromFloat(27.7172)))
		assert.True(t, point.Lng().Equal(decimal.NewFromFloat(85.3240)))
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		for _, pair := range [][2]float64{
			{90, 180},
			{-90, -180},
			{0, 0},
		} {
			_, err := kernel.GeoPointFromFloats(pair[0], pair[1])
			assert.NoError(t, err)
		}
	})

	t.Run("should reject out-of-range latitude", func(t *testing.T) {
		_, err := kernel.GeoPointFromFloats(90.00000001, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject out-of-range longitude", func(t *testing.T) {
		_, err := kernel.GeoPointFromFloats(0, -180.5)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should round coordinates to eight fractional digits", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(
			decimal.RequireFromString("27.123456789"),
			decimal.RequireFromString("85.987654321"))

		require.NoError(t, err)
		assert.True(t, point.Lat().Equal(decimal.RequireFromString("27.12345679")))
		assert.True(t, point.Lng().Equal(decimal.RequireFromString("85.98765432")))
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var point kernel.GeoPoint

		require.ErrorIs(t, point.Validate(), kernel.ErrGeoPointIsNotConstructed)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("should compare coordinates by value", func(t *testing.T) {
		a, err := kernel.GeoPointFromFloats(27.7172, 85.3240)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(
			decimal.RequireFromString("27.7172"), decimal.RequireFromString("85.324"))
		require.NoError(t, err)
		c, err := kernel.GeoPointFromFloats(27.7172, 85.3241)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)

		equal, err = a.IsEqual(c)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("should fail on unconstructed point", func(t *testing.T) {
		a, err := kernel.GeoPointFromFloats(27.7172, 85.3240)
		require.NoError(t, err)

		_, err = a.IsEqual(kernel.GeoPoint{})

		require.Error(t, err)
	})
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("should return zero for identical points", func(t *testing.T) {
		point, err := kernel.GeoPointFromFloats(40.7128, -74.0060)
		require.NoError(t, err)

		dist, err := point.DistanceKm(point)

		require.NoError(t, err)
		assert.Zero(t, dist)
	})

	t.Run("should compute known city distance", func(t *testing.T) {
		// New York to Philadelphia, roughly 130 km great-circle.
		newYork, err := kernel.GeoPointFromFloats(40.7128, -74.0060)
		require.NoError(t, err)
		philadelphia, err := kernel.GeoPointFromFloats(39.9526, -75.1652)
		require.NoError(t, err)

		dist, err := newYork.DistanceKm(philadelphia)

		require.NoError(t, err)
		assert.InDelta(t, 130.0, dist, 2.0)
	})

	t.Run("should be symmetric", func(t *testing.T) {
		a, err := kernel.GeoPointFromFloats(27.7172, 85.3240)
		require.NoError(t, err)
		b, err := kernel.GeoPointFromFloats(27.6710, 85.4298)
		require.NoError(t, err)

		ab, err := a.DistanceKm(b)
		require.NoError(t, err)
		ba, err := b.DistanceKm(a)
		require.NoError(t, err)

		assert.InDelta(t, ab, ba, 1e-9)
		assert.Positive(t, ab)
	})

	t.Run("should stay finite for antipodal points", func(t *testing.T) {
		a, err := kernel.GeoPointFromFloats(0, 0)
		require.NoError(t, err)
		b, err := kernel.GeoPointFromFloats(0, 180)
		require.NoError(t, err)

		dist, err := a.DistanceKm(b)

		require.NoError(t, err)
		// Half the Earth's circumference.
		assert.InDelta(t, 20015.0, dist, 5.0)
	})

	t.Run("should fail on unconstructed point", func(t *testing.T) {
		point, err := kernel.GeoPointFromFloats(0, 0)
		require.NoError(t, err)

		_, err = point.DistanceKm(kernel.GeoPoint{})

		require.Error(t, err)
	})
}
