package kernel_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	t.Run("should create weight with supported units", func(t *testing.T) {
		units := []kernel.WeightUnit{
			kernel.WeightUnitGram,
			kernel.WeightUnitKilogram,
			kernel.WeightUnitPound,
			kernel.WeightUnitOunce,
		}

		for _, unit := range units {
			t.Run(fmt.Sprintf("should accept unit %s", unit), func(t *testing.T) {
				w, err := kernel.NewWeight(1.5, unit)

				require.NoError(t, err)
				assert.InDelta(t, 1.5, w.Value(), 1e-9)
				assert.Equal(t, unit, w.Unit())
			})
		}
	})

	t.Run("should accept zero weight", func(t *testing.T) {
		w, err := kernel.NewWeight(0, kernel.WeightUnitGram)

		require.NoError(t, err)
		assert.Zero(t, w.Value())
	})

	t.Run("should reject negative weight", func(t *testing.T) {
		_, err := kernel.NewWeight(-0.1, kernel.WeightUnitKilogram)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "weight value")
	})

	t.Run("should reject unsupported unit", func(t *testing.T) {
		_, err := kernel.NewWeight(1, kernel.WeightUnit("stone"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "weight unit")
	})

	t.Run("should reject zero value weight on validation", func(t *testing.T) {
		var w kernel.Weight

		require.Error(t, w.Validate())
	})
}

func TestWeight_Grams(t *testing.T) {
	t.Run("should convert to canonical basis with fixed factors", func(t *testing.T) {
		testCases := []struct {
			value    float64
			unit     kernel.WeightUnit
			expected float64
		}{
			{1, kernel.WeightUnitGram, 1},
			{1, kernel.WeightUnitKilogram, 1000},
			{1, kernel.WeightUnitPound, 453.592},
			{1, kernel.WeightUnitOunce, 28.3495},
			{2.5, kernel.WeightUnitKilogram, 2500},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%g %s", tc.value, tc.unit), func(t *testing.T) {
				w, err := kernel.NewWeight(tc.value, tc.unit)
				require.NoError(t, err)

				assert.InDelta(t, tc.expected, w.Grams(), 1e-9)
			})
		}
	})
}

func TestWeight_ConvertTo(t *testing.T) {
	t.Run("should convert and round to 3 decimal places", func(t *testing.T) {
		w, err := kernel.NewWeight(2.5, kernel.WeightUnitKilogram)
		require.NoError(t, err)

		lb, err := w.ConvertTo(kernel.WeightUnitPound)

		require.NoError(t, err)
		assert.Equal(t, kernel.WeightUnitPound, lb.Unit())
		assert.InDelta(t, 5.512, lb.Value(), 1e-9)
	})

	t.Run("should leave the receiver untouched", func(t *testing.T) {
		w, err := kernel.NewWeight(2.5, kernel.WeightUnitKilogram)
		require.NoError(t, err)

		_, err = w.ConvertTo(kernel.WeightUnitOunce)

		require.NoError(t, err)
		assert.InDelta(t, 2.5, w.Value(), 1e-9)
		assert.Equal(t, kernel.WeightUnitKilogram, w.Unit())
	})

	t.Run("should round-trip within the equality epsilon", func(t *testing.T) {
		testCases := []struct {
			value float64
			from  kernel.WeightUnit
			via   kernel.WeightUnit
		}{
			{2.5, kernel.WeightUnitKilogram, kernel.WeightUnitPound},
			{1, kernel.WeightUnitPound, kernel.WeightUnitOunce},
			{500, kernel.WeightUnitGram, kernel.WeightUnitKilogram},
			{12, kernel.WeightUnitOunce, kernel.WeightUnitPound},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%g %s via %s", tc.value, tc.from, tc.via), func(t *testing.T) {
				w, err := kernel.NewWeight(tc.value, tc.from)
				require.NoError(t, err)

				converted, err := w.ConvertTo(tc.via)
				require.NoError(t, err)
				back, err := converted.ConvertTo(tc.from)
				require.NoError(t, err)

				equal, err := back.IsEqual(w)
				require.NoError(t, err)
				assert.True(t, equal, "expected %s after round-trip, got %s", w, back)
			})
		}
	})

	t.Run("should reject unsupported target unit", func(t *testing.T) {
		w, err := kernel.NewWeight(1, kernel.WeightUnitGram)
		require.NoError(t, err)

		_, err = w.ConvertTo(kernel.WeightUnit("t"))

		require.Error(t, err)
	})
}

func TestWeight_Add(t *testing.T) {
	t.Run("should add cross-unit and express result in left operand's unit", func(t *testing.T) {
		left, err := kernel.NewWeight(1, kernel.WeightUnitKilogram)
		require.NoError(t, err)
		right, err := kernel.NewWeight(500, kernel.WeightUnitGram)
		require.NoError(t, err)

		sum, err := left.Add(right)

		require.NoError(t, err)
		assert.Equal(t, kernel.WeightUnitKilogram, sum.Unit())
		assert.InDelta(t, 1.5, sum.Value(), 1e-9)
	})

	t.Run("should fail for zero value operand", func(t *testing.T) {
		left, err := kernel.NewWeight(1, kernel.WeightUnitKilogram)
		require.NoError(t, err)

		_, err = left.Add(kernel.Weight{})

		require.Error(t, err)
	})
}

func TestWeight_Comparisons(t *testing.T) {
	t.Run("should compare equal across units within epsilon", func(t *testing.T) {
		kg, err := kernel.NewWeight(1, kernel.WeightUnitKilogram)
		require.NoError(t, err)
		g, err := kernel.NewWeight(1000, kernel.WeightUnitGram)
		require.NoError(t, err)

		equal, err := kg.IsEqual(g)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should order weights in the gram basis", func(t *testing.T) {
		lb, err := kernel.NewWeight(1, kernel.WeightUnitPound)
		require.NoError(t, err)
		oz, err := kernel.NewWeight(15, kernel.WeightUnitOunce)
		require.NoError(t, err)

		less, err := oz.IsLessThan(lb)
		require.NoError(t, err)
		assert.True(t, less)

		greater, err := lb.IsGreaterThan(oz)
		require.NoError(t, err)
		assert.True(t, greater)

		greater, err = oz.IsGreaterThan(lb)
		require.NoError(t, err)
		assert.False(t, greater)
	})
}
