package fulfillment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a fulfillment.
// It implements a state machine with defined transitions so fulfillments
// follow the physical shipping workflow.
//
// State transitions:
//
//	pending ──> processing ──> picking ──> packing ──> ready_to_ship ──> shipped
//	                ^              │           │             │              │
//	                └──────────────┘           └── picking   └── packing    │
//	                                                                       v
//	            shipped ──> in_transit ──> out_for_delivery ──> delivered ──> returned
//	                │            │                 │                │
//	                └── delivered/failed/returned ─┘             (return only)
//
//	failed ──> processing | cancelled | returned
//	pending..ready_to_ship ──> cancelled
//	returned, cancelled: terminal
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a fulfillment is first created.
	Pending

	// Processing indicates the warehouse has accepted the fulfillment.
	Processing

	// Picking indicates items are being picked from warehouse shelves.
	Picking

	// Packing indicates picked items are being packed into packages.
	Packing

	// ReadyToShip indicates the package is packed and awaiting carrier pickup.
	ReadyToShip

	// Shipped indicates the carrier has taken possession of the package.
	Shipped

	// InTransit indicates the package is moving through the carrier network.
	InTransit

	// OutForDelivery indicates the package is on the final delivery vehicle.
	OutForDelivery

	// Delivered indicates the package reached the customer.
	// Functionally terminal, but a return is still possible.
	Delivered

	// Failed indicates a delivery attempt failed; recovery or return flows apply.
	Failed

	// Returned indicates the package came back. Terminal.
	Returned

	// Cancelled indicates the fulfillment was cancelled before shipping. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Processing:     "processing",
		Picking:        "picking",
		Packing:        "packing",
		ReadyToShip:    "ready_to_ship",
		Shipped:        "shipped",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Failed:         "failed",
		Returned:       "returned",
		Cancelled:      "cancelled",
	}
}

// Validate checks if the Status value is one of the twelve valid lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the canonical snake_case name of the status, or "unknown"
// for invalid values. Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Returned || s == Cancelled
}

// CanTransitionTo is the total transition function over (state, state) pairs.
// It returns true exactly for the directed edges of the lifecycle state
// machine; everything else, including self-transitions, is forbidden.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case Pending:
		return target == Processing || target == Cancelled
	case Processing:
		return target == Picking || target == Cancelled
	case Picking:
		return target == Packing || target == Processing || target == Cancelled
	case Packing:
		return target == ReadyToShip || target == Picking || target == Cancelled
	case ReadyToShip:
		return target == Shipped || target == Packing || target == Cancelled
	case Shipped:
		return target == InTransit || target == Delivered || target == Failed || target == Returned
	case InTransit:
		return target == OutForDelivery || target == Delivered || target == Failed || target == Returned
	case OutForDelivery:
		return target == Delivered || target == Failed || target == Returned
	case Delivered:
		return target == Returned
	case Failed:
		return target == Processing || target == Cancelled || target == Returned
	case Returned, Cancelled, Unknown:
		return false
	default:
		return false
	}
}

// TransitionTo validates and performs a transition, returning the new status.
// A disallowed request fails with an error naming the current and requested
// states, leaving the receiver meaningless to the caller (zero Status).
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause("status transition",
			fmt.Errorf("cannot transition from %s to %s", s.String(), target.String()))
	}

	return target, nil
}
