package kernel

import (
	"errors"
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0

	latitudeMin  = -90.0
	latitudeMax  = 90.0
	longitudeMin = -180.0
	longitudeMax = 180.0
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
// Addresses must be created via NewAddress or NewAddressWithCoordinates to ensure validity.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress or NewAddressWithCoordinates constructors")

// Address represents a validated postal address, optionally carrying
// geographic coordinates. Address is an immutable value object: the zero
// value is invalid and fails validation, so instances must be created
// through a constructor.
//
// Equality is structural over the postal fields only; coordinate presence
// does not affect it. Distance between two addresses is defined only when
// both sides carry coordinates.
//
// Example:
//
//	addr, err := kernel.NewAddress("1 Main St", "", "Springfield", "", "00000", "US")
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	line1      string
	line2      string
	city       string
	state      string
	postalCode string
	country    string

	latitude       float64
	longitude      float64
	hasCoordinates bool

	guard guard.ConstructorGuard
}

// NewAddress creates an Address without coordinates.
// line1, city, postalCode and country are required; line2 and state may be empty.
// Returns a ValueIsRequiredError if any required field is missing.
func NewAddress(line1, line2, city, state, postalCode, country string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setLine1(line1),
		addr.setCity(city),
		addr.setPostalCode(postalCode),
		addr.setCountry(country),
	); err != nil {
		return Address{}, err
	}

	addr.line2 = line2
	addr.state = state
	return addr, nil
}

// NewAddressWithCoordinates creates an Address that also carries a geographic
// position. Latitude must lie in [-90, 90] and longitude in [-180, 180].
func NewAddressWithCoordinates(
	line1, line2, city, state, postalCode, country string,
	latitude, longitude float64,
) (Address, error) {
	addr, err := NewAddress(line1, line2, city, state, postalCode, country)
	if err != nil {
		return Address{}, err
	}

	if err = errors.Join(addr.setLatitude(latitude), addr.setLongitude(longitude)); err != nil {
		return Address{}, err
	}

	addr.hasCoordinates = true
	return addr, nil
}

// Validate checks if the Address was properly constructed using a constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Line1 returns the first address line.
func (a Address) Line1() string {
	return a.line1
}

// Line2 returns the optional second address line, empty if absent.
func (a Address) Line2() string {
	return a.line2
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// State returns the optional state or region, empty if absent.
func (a Address) State() string {
	return a.state
}

// PostalCode returns the postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country code.
func (a Address) Country() string {
	return a.country
}

// Coordinates returns the geographic position of the address.
// ok is false when the address was constructed without coordinates.
func (a Address) Coordinates() (latitude, longitude float64, ok bool) {
	return a.latitude, a.longitude, a.hasCoordinates
}

// String returns a single-line representation of the address for logging.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s %s, %s", a.line1, a.city, a.postalCode, a.country)
}

// IsEqual compares two addresses structurally over their postal fields.
// Coordinate presence or values do not participate in equality, so the same
// street address geocoded or not compares equal.
// Both addresses must be properly constructed for the comparison to succeed.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a.line1 == other.line1 &&
		a.line2 == other.line2 &&
		a.city == other.city &&
		a.state == other.state &&
		a.postalCode == other.postalCode &&
		a.country == other.country, nil
}

// DistanceTo calculates the great-circle distance in kilometers between two
// addresses using the haversine formula. The distance is undefined (ok=false,
// not an error) when either address lacks coordinates.
//
// Example:
//
//	km, ok, err := warehouse.DistanceTo(destination)
//	if err != nil {
//	    return err
//	}
//	if !ok {
//	    // one of the addresses is not geocoded
//	}
func (a Address) DistanceTo(other Address) (km float64, ok bool, err error) {
	if err = errors.Join(a.Validate(), other.Validate()); err != nil {
		return 0, false, err
	}

	if !a.hasCoordinates || !other.hasCoordinates {
		return 0, false, nil
	}

	lat1 := a.latitude * math.Pi / 180
	lat2 := other.latitude * math.Pi / 180
	dLat := (other.latitude - a.latitude) * math.Pi / 180
	dLon := (other.longitude - a.longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c, true, nil
}

func (a *Address) setLine1(line1 string) error {
	if line1 == "" {
		return errs.NewValueIsRequiredError("line1")
	}
	a.line1 = line1
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	a.postalCode = postalCode
	return nil
}

func (a *Address) setCountry(country string) error {
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	a.country = country
	return nil
}

func (a *Address) setLatitude(latitude float64) error {
	if latitude < latitudeMin || latitude > latitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, latitudeMin, latitudeMax)
	}
	a.latitude = latitude
	return nil
}

func (a *Address) setLongitude(longitude float64) error {
	if longitude < longitudeMin || longitude > longitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, longitudeMin, longitudeMax)
	}
	a.longitude = longitude
	return nil
}
