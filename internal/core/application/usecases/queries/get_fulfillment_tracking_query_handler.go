package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFulfillmentTrackingQueryHandler retrieves one fulfillment's tracking
// history from the database: the current status plus the event ledger in
// insertion order.
type GetFulfillmentTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetFulfillmentTrackingQueryHandler creates a handler for tracking history queries.
// Requires a GORM database connection for query execution.
func NewGetFulfillmentTrackingQueryHandler(db *gorm.DB) GetFulfillmentTrackingQueryHandler {
	return GetFulfillmentTrackingQueryHandler{db: db}
}

// Handle executes the query for one fulfillment's tracking history.
// Returns an object-not-found error when the fulfillment does not exist.
func (h GetFulfillmentTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetFulfillmentTrackingQuery,
) (GetFulfillmentTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFulfillmentTrackingQueryResponse{}, err
	}

	var response GetFulfillmentTrackingQueryResponse

	var header struct {
		ID             uuid.UUID
		Status         int
		TrackingNumber string
		TrackingURL    string
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			tracking_number,
			tracking_url
		FROM fulfillments
		WHERE id = ?
	`, query.FulfillmentID().Bytes()).First(&header).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return GetFulfillmentTrackingQueryResponse{}, errs.NewObjectNotFoundError(
			"fulfillment", query.FulfillmentID().String())
	}
	if err != nil {
		return GetFulfillmentTrackingQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(header.ID[:])
	if err != nil {
		return GetFulfillmentTrackingQueryResponse{}, err
	}
	response.ID = id
	response.Status = fulfillment.Status(header.Status).String()
	response.TrackingNumber = header.TrackingNumber
	response.TrackingURL = header.TrackingURL

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			timestamp,
			status,
			location,
			description
		FROM fulfillment_tracking_events
		WHERE fulfillment_id = ?
		ORDER BY id
	`, query.FulfillmentID().Bytes()).Rows()
	if err != nil {
		return GetFulfillmentTrackingQueryResponse{}, err
	}
	defer rows.Close()

	response.Events = make([]TrackingEventResponse, 0)
	for rows.Next() {
		var event TrackingEventResponse
		if err = rows.Scan(&event.Timestamp, &event.Status, &event.Location, &event.Description); err != nil {
			return GetFulfillmentTrackingQueryResponse{}, err
		}
		response.Events = append(response.Events, event)
	}

	if err = rows.Err(); err != nil {
		return GetFulfillmentTrackingQueryResponse{}, err
	}

	return response, nil
}
