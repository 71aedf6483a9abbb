package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRecordTrackingEventCommandIsNotConstructed = errors.New(
		"RecordTrackingEventCommand must be created via NewRecordTrackingEventCommand constructor",
	)
	ErrEventStatusIsRequired = errors.New("event status is required")
)

// RecordTrackingEventCommand relays a carrier tracking update into the system.
// The event status is the carrier's label; "in_transit" scans additionally
// drive the lifecycle transition from shipped.
type RecordTrackingEventCommand struct { //nolint:recvcheck //using for validation
	fulfillmentID kernel.UUID
	eventStatus   string
	location      string
	description   string

	guard guard.ConstructorGuard
}

// NewRecordTrackingEventCommand creates a command to record a carrier event.
// Validates that the fulfillment ID is valid and the event status label is
// not empty. Location and description are optional.
func NewRecordTrackingEventCommand(
	fulfillmentID kernel.UUID,
	eventStatus, location, description string,
) (RecordTrackingEventCommand, error) {
	cmd := RecordTrackingEventCommand{
		location:    location,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFulfillmentID(fulfillmentID),
		cmd.setEventStatus(eventStatus),
	); err != nil {
		return RecordTrackingEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordTrackingEventCommandIsNotConstructed if validation fails.
func (c RecordTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrRecordTrackingEventCommandIsNotConstructed)
}

// FulfillmentID returns the fulfillment the event belongs to.
func (c RecordTrackingEventCommand) FulfillmentID() kernel.UUID {
	return c.fulfillmentID
}

// EventStatus returns the carrier's event label.
func (c RecordTrackingEventCommand) EventStatus() string {
	return c.eventStatus
}

// Location returns where the event happened, empty if not provided.
func (c RecordTrackingEventCommand) Location() string {
	return c.location
}

// Description returns the carrier's event description, empty if not provided.
func (c RecordTrackingEventCommand) Description() string {
	return c.description
}

func (c *RecordTrackingEventCommand) setFulfillmentID(fulfillmentID kernel.UUID) error {
	if err := fulfillmentID.Validate(); err != nil {
		return err
	}

	c.fulfillmentID = fulfillmentID
	return nil
}

func (c *RecordTrackingEventCommand) setEventStatus(eventStatus string) error {
	if eventStatus == "" {
		return ErrEventStatusIsRequired
	}

	c.eventStatus = eventStatus
	return nil
}
