package kernel

import (
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// WeightUnit enumerates the supported weight units.
type WeightUnit string

const (
	// WeightUnitGram is the canonical base unit; all cross-unit comparisons happen in grams.
	WeightUnitGram WeightUnit = "g"
	// WeightUnitKilogram is 1000 grams.
	WeightUnitKilogram WeightUnit = "kg"
	// WeightUnitPound is 453.592 grams.
	WeightUnitPound WeightUnit = "lb"
	// WeightUnitOunce is 28.3495 grams.
	WeightUnitOunce WeightUnit = "oz"
)

// weightEqualityEpsilonGrams is the tolerance for weight equality comparisons,
// expressed in the canonical base unit.
const weightEqualityEpsilonGrams = 0.001

// gramsPerUnit returns the fixed conversion factor from the given unit to grams.
func gramsPerUnit(unit WeightUnit) (float64, bool) {
	switch unit {
	case WeightUnitGram:
		return 1, true
	case WeightUnitKilogram:
		return 1000, true
	case WeightUnitPound:
		return 453.592, true
	case WeightUnitOunce:
		return 28.3495, true
	default:
		return 0, false
	}
}

// Validate checks that the unit is one of the supported weight units.
func (u WeightUnit) Validate() error {
	if _, ok := gramsPerUnit(u); !ok {
		return errs.NewValueIsInvalidErrorWithCause("weight unit",
			fmt.Errorf("%q is not a supported weight unit", string(u)))
	}
	return nil
}

// String returns the unit symbol.
func (u WeightUnit) String() string {
	return string(u)
}

// ErrWeightIsNotConstructed is returned when attempting to use an improperly initialized Weight.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight constructor")

// Weight represents a non-negative physical weight in one of the supported
// units. Weight is an immutable value object: conversion and addition return
// new instances and leave the receiver untouched. All comparisons go through
// the canonical gram basis with a small epsilon, so weights expressed in
// different units compare correctly.
//
// Example:
//
//	w, err := kernel.NewWeight(2.5, kernel.WeightUnitKilogram)
//	if err != nil {
//	    // Handle validation error
//	}
//	lb, _ := w.ConvertTo(kernel.WeightUnitPound) // 5.512 lb
type Weight struct { //nolint:recvcheck //using for validation
	value float64
	unit  WeightUnit
	guard guard.ConstructorGuard
}

// NewWeight creates a Weight with the given value and unit.
// The value must not be negative and the unit must be supported.
func NewWeight(value float64, unit WeightUnit) (Weight, error) {
	w := Weight{
		guard: guard.NewConstructorGuard(),
	}

	if err := w.setUnit(unit); err != nil {
		return Weight{}, err
	}
	if err := w.setValue(value); err != nil {
		return Weight{}, err
	}

	return w, nil
}

// Validate checks if the Weight was properly constructed using the constructor.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Value returns the numeric weight value in the weight's own unit.
func (w Weight) Value() float64 {
	return w.value
}

// Unit returns the unit the weight is expressed in.
func (w Weight) Unit() WeightUnit {
	return w.unit
}

// Grams returns the weight expressed in the canonical base unit.
func (w Weight) Grams() float64 {
	factor, _ := gramsPerUnit(w.unit)
	return w.value * factor
}

// String returns a human-readable representation such as "2.5 kg".
func (w Weight) String() string {
	return fmt.Sprintf("%g %s", w.value, w.unit)
}

// ConvertTo returns a new Weight expressed in the target unit.
// The converted value is rounded to 3 decimal places in the target unit;
// the receiver is left unchanged.
func (w Weight) ConvertTo(unit WeightUnit) (Weight, error) {
	if err := w.Validate(); err != nil {
		return Weight{}, err
	}
	factor, ok := gramsPerUnit(unit)
	if !ok {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight unit",
			fmt.Errorf("%q is not a supported weight unit", string(unit)))
	}

	converted := roundTo3(w.Grams() / factor)
	return NewWeight(converted, unit)
}

// Add returns a new Weight equal to the sum of both weights, expressed in the
// receiver's unit. Both operands must be properly constructed.
func (w Weight) Add(other Weight) (Weight, error) {
	if err := w.Validate(); err != nil {
		return Weight{}, err
	}
	converted, err := other.ConvertTo(w.unit)
	if err != nil {
		return Weight{}, err
	}

	return NewWeight(w.value+converted.value, w.unit)
}

// IsEqual compares two weights in the canonical gram basis with a 0.001 g
// tolerance, so round-tripped unit conversions still compare equal.
func (w Weight) IsEqual(other Weight) (bool, error) {
	if err := w.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return math.Abs(w.Grams()-other.Grams()) < weightEqualityEpsilonGrams, nil
}

// IsLessThan reports whether the receiver weighs strictly less than other,
// compared in grams.
func (w Weight) IsLessThan(other Weight) (bool, error) {
	if err := w.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return w.Grams() < other.Grams()-weightEqualityEpsilonGrams, nil
}

// IsGreaterThan reports whether the receiver weighs strictly more than other,
// compared in grams.
func (w Weight) IsGreaterThan(other Weight) (bool, error) {
	if err := w.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return w.Grams() > other.Grams()+weightEqualityEpsilonGrams, nil
}

func (w *Weight) setValue(value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight value",
			fmt.Errorf("%g is negative", value))
	}
	w.value = value
	return nil
}

func (w *Weight) setUnit(unit WeightUnit) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	w.unit = unit
	return nil
}

func roundTo3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
