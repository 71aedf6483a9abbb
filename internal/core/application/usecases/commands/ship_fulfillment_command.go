package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrShipFulfillmentCommandIsNotConstructed = errors.New(
		"ShipFulfillmentCommand must be created via NewShipFulfillmentCommand constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// ShipFulfillmentCommand represents the carrier handoff of a packed fulfillment.
// Carries the tracking details assigned by the carrier at pickup.
type ShipFulfillmentCommand struct { //nolint:recvcheck //using for validation
	fulfillmentID  kernel.UUID
	trackingNumber string
	trackingURL    string
	shippedBy      string

	guard guard.ConstructorGuard
}

// NewShipFulfillmentCommand creates a command to ship a fulfillment.
// Validates that the fulfillment ID is valid and the tracking number is not
// empty. Tracking URL and the shipping actor are optional.
func NewShipFulfillmentCommand(
	fulfillmentID kernel.UUID,
	trackingNumber, trackingURL, shippedBy string,
) (ShipFulfillmentCommand, error) {
	cmd := ShipFulfillmentCommand{
		trackingURL: trackingURL,
		shippedBy:   shippedBy,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFulfillmentID(fulfillmentID),
		cmd.setTrackingNumber(trackingNumber),
	); err != nil {
		return ShipFulfillmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrShipFulfillmentCommandIsNotConstructed if validation fails.
func (c ShipFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrShipFulfillmentCommandIsNotConstructed)
}

// FulfillmentID returns the fulfillment to ship.
func (c ShipFulfillmentCommand) FulfillmentID() kernel.UUID {
	return c.fulfillmentID
}

// TrackingNumber returns the carrier tracking number.
func (c ShipFulfillmentCommand) TrackingNumber() string {
	return c.trackingNumber
}

// TrackingURL returns the carrier tracking URL, empty if not provided.
func (c ShipFulfillmentCommand) TrackingURL() string {
	return c.trackingURL
}

// ShippedBy returns who handed the package to the carrier, empty if not provided.
func (c ShipFulfillmentCommand) ShippedBy() string {
	return c.shippedBy
}

func (c *ShipFulfillmentCommand) setFulfillmentID(fulfillmentID kernel.UUID) error {
	if err := fulfillmentID.Validate(); err != nil {
		return err
	}

	c.fulfillmentID = fulfillmentID
	return nil
}

func (c *ShipFulfillmentCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}
