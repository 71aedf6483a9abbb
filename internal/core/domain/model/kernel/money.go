package kernel

import (
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// moneyEqualityEpsilon absorbs floating point noise from repeated additions.
const moneyEqualityEpsilon = 1e-9

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or NewZeroMoney constructors")

// Money represents a non-negative amount in a single ISO-4217 currency.
// Money is an immutable value object; addition returns a new instance and
// fails across currencies rather than converting.
//
// Example:
//
//	shipping, _ := kernel.NewMoney(12.50, "USD")
//	handling, _ := kernel.NewMoney(2.00, "USD")
//	total, err := shipping.Add(handling) // 14.50 USD
type Money struct { //nolint:recvcheck //using for validation
	amount   float64
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value with the given amount and currency code.
// The amount must not be negative; the currency must be a three-letter
// uppercase ISO-4217 code.
func NewMoney(amount float64, currency string) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setCurrency(currency); err != nil {
		return Money{}, err
	}
	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}

	return m, nil
}

// NewZeroMoney creates a zero amount in the given currency.
func NewZeroMoney(currency string) (Money, error) {
	return NewMoney(0, currency)
}

// Validate checks if the Money was properly constructed using a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the numeric amount.
func (m Money) Amount() float64 {
	return m.amount
}

// Currency returns the ISO-4217 currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// String returns a human-readable representation such as "12.50 USD".
func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.amount, m.currency)
}

// Add returns a new Money equal to the sum of both values.
// Fails when the currencies differ; this type never converts between currencies.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	if m.currency != other.currency {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("cannot add %s to %s", other.currency, m.currency))
	}

	return NewMoney(m.amount+other.amount, m.currency)
}

// IsEqual compares two money values structurally: same currency and the same
// amount within a small tolerance for floating point noise.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return m.currency == other.currency &&
		math.Abs(m.amount-other.amount) < moneyEqualityEpsilon, nil
}

func (m *Money) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%g is negative", amount))
	}
	m.amount = amount
	return nil
}

func (m *Money) setCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	if len(currency) != 3 {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a three-letter ISO-4217 code", currency))
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return errs.NewValueIsInvalidErrorWithCause("currency",
				fmt.Errorf("%q is not a three-letter ISO-4217 code", currency))
		}
	}

	m.currency = currency
	return nil
}
