package kernel_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	reportedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create a validated position report", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(52.52, 13.405, "Berlin", reportedAt)

		require.NoError(t, err)
		assert.InDelta(t, 52.52, p.Latitude(), 1e-9)
		assert.InDelta(t, 13.405, p.Longitude(), 1e-9)
		assert.Equal(t, "Berlin", p.Address())
		assert.False(t, p.IsZero())
	})

	t.Run("should accept the coordinate extremes", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90, 180, "", reportedAt)
		require.NoError(t, err)

		_, err = kernel.NewGeoPoint(-90, -180, "", reportedAt)
		require.NoError(t, err)
	})

	t.Run("should reject out-of-range latitude", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90.1, 0, "", reportedAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject out-of-range longitude", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -180.1, "", reportedAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should require a report time", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, 0, "", time.Time{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should normalise the report time to UTC", func(t *testing.T) {
		local := time.Date(2026, 3, 1, 13, 0, 0, 0, time.FixedZone("CET", 3600))

		p, err := kernel.NewGeoPoint(0, 0, "", local)

		require.NoError(t, err)
		assert.Equal(t, time.UTC, p.ReportedAt().Location())
		assert.True(t, local.Equal(p.ReportedAt()))
	})
}

func TestGeoPointIsZero(t *testing.T) {
	t.Run("should report the zero value as no report", func(t *testing.T) {
		var p kernel.GeoPoint
		assert.True(t, p.IsZero())
	})
}
