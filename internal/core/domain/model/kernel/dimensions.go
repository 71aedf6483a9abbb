package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// DimensionUnit enumerates the supported length units for package dimensions.
type DimensionUnit string

const (
	// DimensionUnitCentimeter is the metric default for package dimensions.
	DimensionUnitCentimeter DimensionUnit = "cm"
	// DimensionUnitInch is the imperial unit.
	DimensionUnitInch DimensionUnit = "in"
	// DimensionUnitMeter is used for oversized freight.
	DimensionUnitMeter DimensionUnit = "m"
)

// Validate checks that the unit is one of the supported dimension units.
func (u DimensionUnit) Validate() error {
	switch u {
	case DimensionUnitCentimeter, DimensionUnitInch, DimensionUnitMeter:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("dimension unit",
			fmt.Errorf("%q is not a supported dimension unit", string(u)))
	}
}

// String returns the unit symbol.
func (u DimensionUnit) String() string {
	return string(u)
}

// ErrDimensionsAreNotConstructed is returned when attempting to use improperly initialized Dimensions.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// Dimensions represents the length, width and height of a package, all
// expressed in a single unit. Dimensions is an immutable value object with
// strictly positive sides.
type Dimensions struct { //nolint:recvcheck //using for validation
	length float64
	width  float64
	height float64
	unit   DimensionUnit
	guard  guard.ConstructorGuard
}

// NewDimensions creates Dimensions with the given sides and unit.
// All three sides must be strictly positive and the unit must be supported.
func NewDimensions(length, width, height float64, unit DimensionUnit) (Dimensions, error) {
	d := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := d.setUnit(unit); err != nil {
		return Dimensions{}, err
	}
	if err := d.setSides(length, width, height); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

// Validate checks if the Dimensions were properly constructed using the constructor.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

// Length returns the package length.
func (d Dimensions) Length() float64 {
	return d.length
}

// Width returns the package width.
func (d Dimensions) Width() float64 {
	return d.width
}

// Height returns the package height.
func (d Dimensions) Height() float64 {
	return d.height
}

// Unit returns the unit all three sides are expressed in.
func (d Dimensions) Unit() DimensionUnit {
	return d.unit
}

// Volume returns length*width*height in cubic units of the dimensions' unit.
func (d Dimensions) Volume() float64 {
	return d.length * d.width * d.height
}

// String returns a human-readable representation such as "30x20x10 cm".
func (d Dimensions) String() string {
	return fmt.Sprintf("%gx%gx%g %s", d.length, d.width, d.height, d.unit)
}

// IsEqual compares two dimensions structurally: same sides and same unit.
func (d Dimensions) IsEqual(other Dimensions) (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return d.length == other.length &&
		d.width == other.width &&
		d.height == other.height &&
		d.unit == other.unit, nil
}

func (d *Dimensions) setSides(length, width, height float64) error {
	for name, v := range map[string]float64{"length": length, "width": width, "height": height} {
		if v <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("%g is not greater than 0", v))
		}
	}

	d.length = length
	d.width = width
	d.height = height
	return nil
}

func (d *Dimensions) setUnit(unit DimensionUnit) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	d.unit = unit
	return nil
}
