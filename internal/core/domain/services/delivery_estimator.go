package services

import (
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
)

const (
	// baseHandlingTime covers warehouse processing before the carrier moves the package.
	baseHandlingTime = 24 * time.Hour

	// carrierSpeedKmPerDay is the assumed average ground transport progress.
	carrierSpeedKmPerDay = 800.0

	// fallbackTransitTime is used when either address lacks coordinates
	// and no distance can be computed.
	fallbackTransitTime = 5 * 24 * time.Hour
)

// DeliveryEstimator is a domain service that predicts when a fulfillment will
// reach its destination and stamps the estimate onto the aggregate.
//
// The estimate is distance-based when both the warehouse and the destination
// carry coordinates: one day of handling plus transit at an assumed average
// carrier speed, rounded up to whole days. Without coordinates a flat
// conservative transit time is applied instead.
type DeliveryEstimator struct{}

// NewDeliveryEstimator creates a new DeliveryEstimator instance.
func NewDeliveryEstimator() DeliveryEstimator {
	return DeliveryEstimator{}
}

// Estimate computes the expected delivery time for a fulfillment shipped from
// the given warehouse address at the given time, and records it on the
// aggregate via SetEstimatedDelivery.
func (e DeliveryEstimator) Estimate(
	f *fulfillment.Fulfillment,
	warehouseAddress kernel.Address,
	shippedAt time.Time,
) (time.Time, error) {
	if err := f.Validate(); err != nil {
		return time.Time{}, err
	}
	if err := warehouseAddress.Validate(); err != nil {
		return time.Time{}, err
	}

	transit, err := e.transitTime(warehouseAddress, f.ShipToAddress())
	if err != nil {
		return time.Time{}, err
	}

	estimate := shippedAt.UTC().Add(baseHandlingTime + transit)
	if err = f.SetEstimatedDelivery(estimate); err != nil {
		return time.Time{}, err
	}

	return estimate, nil
}

func (e DeliveryEstimator) transitTime(from, to kernel.Address) (time.Duration, error) {
	distanceKm, ok, err := from.DistanceTo(to)
	if err != nil {
		return 0, err
	}
	if !ok {
		return fallbackTransitTime, nil
	}

	days := int(distanceKm/carrierSpeedKmPerDay) + 1
	return time.Duration(days) * 24 * time.Hour, nil
}
