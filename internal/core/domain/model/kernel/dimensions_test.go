package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDimensions(t *testing.T) {
	t.Run("should create dimensions with positive sides", func(t *testing.T) {
		d, err := kernel.NewDimensions(30, 20, 10, kernel.DimensionUnitCentimeter)

		require.NoError(t, err)
		assert.InDelta(t, 30, d.Length(), 1e-9)
		assert.InDelta(t, 20, d.Width(), 1e-9)
		assert.InDelta(t, 10, d.Height(), 1e-9)
		assert.Equal(t, kernel.DimensionUnitCentimeter, d.Unit())
		assert.Equal(t, "30x20x10 cm", d.String())
	})

	t.Run("should reject non-positive sides", func(t *testing.T) {
		_, err := kernel.NewDimensions(0, 20, 10, kernel.DimensionUnitCentimeter)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = kernel.NewDimensions(30, -1, 10, kernel.DimensionUnitCentimeter)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = kernel.NewDimensions(30, 20, 0, kernel.DimensionUnitInch)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unsupported unit", func(t *testing.T) {
		_, err := kernel.NewDimensions(1, 1, 1, kernel.DimensionUnit("ft"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero value dimensions on validation", func(t *testing.T) {
		var d kernel.Dimensions

		require.Error(t, d.Validate())
	})
}

func TestDimensions_Volume(t *testing.T) {
	t.Run("should multiply the three sides", func(t *testing.T) {
		d, err := kernel.NewDimensions(30, 20, 10, kernel.DimensionUnitCentimeter)
		require.NoError(t, err)

		assert.InDelta(t, 6000, d.Volume(), 1e-9)
	})
}

func TestDimensions_IsEqual(t *testing.T) {
	t.Run("should compare sides and unit structurally", func(t *testing.T) {
		a, err := kernel.NewDimensions(30, 20, 10, kernel.DimensionUnitCentimeter)
		require.NoError(t, err)
		b, err := kernel.NewDimensions(30, 20, 10, kernel.DimensionUnitCentimeter)
		require.NoError(t, err)
		c, err := kernel.NewDimensions(30, 20, 10, kernel.DimensionUnitInch)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)

		equal, err = a.IsEqual(c)
		require.NoError(t, err)
		assert.False(t, equal)
	})
}
