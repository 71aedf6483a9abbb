package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetFulfillmentTrackingQueryIsNotConstructed = errors.New(
		"GetFulfillmentTrackingQuery must be created via NewGetFulfillmentTrackingQuery constructor",
	)
)

// GetFulfillmentTrackingQuery retrieves the tracking history of one fulfillment:
// its current status plus the full event ledger in chronological order.
//
// Example:
//
//	query, err := NewGetFulfillmentTrackingQuery(fulfillmentID)
//	if err != nil {
//	    return err
//	}
//
//	tracking, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get tracking: %w", err)
//	}
//
//	for _, event := range tracking.Events {
//	    fmt.Printf("%s %s %s\n", event.Timestamp, event.Status, event.Location)
//	}
type GetFulfillmentTrackingQuery struct { //nolint:recvcheck //using for validation
	fulfillmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetFulfillmentTrackingQuery creates a query for one fulfillment's tracking history.
// Validates that the fulfillment ID is valid.
func NewGetFulfillmentTrackingQuery(fulfillmentID kernel.UUID) (GetFulfillmentTrackingQuery, error) {
	query := GetFulfillmentTrackingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setFulfillmentID(fulfillmentID); err != nil {
		return GetFulfillmentTrackingQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFulfillmentTrackingQueryIsNotConstructed if validation fails.
func (q GetFulfillmentTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetFulfillmentTrackingQueryIsNotConstructed)
}

// FulfillmentID returns the fulfillment whose history is requested.
func (q GetFulfillmentTrackingQuery) FulfillmentID() kernel.UUID {
	return q.fulfillmentID
}

func (q *GetFulfillmentTrackingQuery) setFulfillmentID(fulfillmentID kernel.UUID) error {
	if err := fulfillmentID.Validate(); err != nil {
		return err
	}

	q.fulfillmentID = fulfillmentID
	return nil
}

// GetFulfillmentTrackingQueryResponse represents a fulfillment's tracking history.
type GetFulfillmentTrackingQueryResponse struct {
	ID             kernel.UUID
	Status         string
	TrackingNumber string
	TrackingURL    string
	Events         []TrackingEventResponse
}

// TrackingEventResponse represents one entry of the tracking ledger.
type TrackingEventResponse struct {
	Timestamp   time.Time
	Status      string
	Location    string
	Description string
}
