package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money with amount and currency", func(t *testing.T) {
		m, err := kernel.NewMoney(12.50, "USD")

		require.NoError(t, err)
		assert.InDelta(t, 12.50, m.Amount(), 1e-9)
		assert.Equal(t, "USD", m.Currency())
		assert.False(t, m.IsZero())
		assert.Equal(t, "12.50 USD", m.String())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(-1, "USD")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject malformed currency codes", func(t *testing.T) {
		for _, currency := range []string{"", "US", "usd", "DOLLARS", "U$D"} {
			t.Run("currency "+currency, func(t *testing.T) {
				_, err := kernel.NewMoney(1, currency)

				require.Error(t, err)
			})
		}
	})

	t.Run("should reject zero value money on validation", func(t *testing.T) {
		var m kernel.Money

		require.Error(t, m.Validate())
	})
}

func TestNewZeroMoney(t *testing.T) {
	t.Run("should create zero amount in the given currency", func(t *testing.T) {
		m, err := kernel.NewZeroMoney("EUR")

		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.Equal(t, "EUR", m.Currency())
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should add amounts in the same currency", func(t *testing.T) {
		a, err := kernel.NewMoney(12.50, "USD")
		require.NoError(t, err)
		b, err := kernel.NewMoney(2.25, "USD")
		require.NoError(t, err)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.InDelta(t, 14.75, sum.Amount(), 1e-9)
		assert.Equal(t, "USD", sum.Currency())

		// operands untouched
		assert.InDelta(t, 12.50, a.Amount(), 1e-9)
		assert.InDelta(t, 2.25, b.Amount(), 1e-9)
	})

	t.Run("should fail across currencies", func(t *testing.T) {
		usd, err := kernel.NewMoney(1, "USD")
		require.NoError(t, err)
		eur, err := kernel.NewMoney(1, "EUR")
		require.NoError(t, err)

		_, err = usd.Add(eur)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "currency")
	})

	t.Run("should fail for zero value operand", func(t *testing.T) {
		usd, err := kernel.NewMoney(1, "USD")
		require.NoError(t, err)

		_, err = usd.Add(kernel.Money{})

		require.Error(t, err)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should compare amount and currency structurally", func(t *testing.T) {
		a, err := kernel.NewMoney(9.99, "USD")
		require.NoError(t, err)
		b, err := kernel.NewMoney(9.99, "USD")
		require.NoError(t, err)
		c, err := kernel.NewMoney(9.99, "EUR")
		require.NoError(t, err)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)

		equal, err = a.IsEqual(c)
		require.NoError(t, err)
		assert.False(t, equal)
	})
}
