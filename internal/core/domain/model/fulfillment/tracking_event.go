package fulfillment

import (
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrTrackingEventIsNotConstructed is returned when attempting to use an
// improperly initialized TrackingEvent.
var ErrTrackingEventIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking event must be created via NewTrackingEvent constructor")

// TrackingEvent is an immutable entry in a fulfillment's tracking ledger.
// The status field is a free-text label: for lifecycle transitions it matches
// the canonical Status name, but carrier-relayed events may carry arbitrary
// labels. The ledger is append-only and insertion-ordered; timestamps are not
// guaranteed to be monotonic because carrier events may arrive out of order.
type TrackingEvent struct {
	timestamp   time.Time
	status      string
	location    string
	description string

	guard guard.ConstructorGuard
}

// NewTrackingEvent creates a TrackingEvent. The status label and timestamp
// are required; location and description may be empty.
func NewTrackingEvent(timestamp time.Time, status, location, description string) (TrackingEvent, error) {
	if timestamp.IsZero() {
		return TrackingEvent{}, errs.NewValueIsRequiredError("timestamp")
	}
	if status == "" {
		return TrackingEvent{}, errs.NewValueIsRequiredError("status")
	}

	return TrackingEvent{
		timestamp:   timestamp,
		status:      status,
		location:    location,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the TrackingEvent was properly constructed.
func (e TrackingEvent) Validate() error {
	return e.guard.Validate(ErrTrackingEventIsNotConstructed)
}

// Timestamp returns when the event occurred.
func (e TrackingEvent) Timestamp() time.Time {
	return e.timestamp
}

// Status returns the free-text status label of the event.
func (e TrackingEvent) Status() string {
	return e.status
}

// Location returns the optional location of the event, empty if absent.
func (e TrackingEvent) Location() string {
	return e.location
}

// Description returns the human-readable description of the event.
func (e TrackingEvent) Description() string {
	return e.description
}
