package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLateFulfillmentsQueryHandler retrieves fulfillments that missed their
// delivery estimate and have not completed their lifecycle.
type GetLateFulfillmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetLateFulfillmentsQueryHandler creates a handler for lateness queries.
// Requires a GORM database connection for query execution.
func NewGetLateFulfillmentsQueryHandler(db *gorm.DB) GetLateFulfillmentsQueryHandler {
	return GetLateFulfillmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all late fulfillments.
// A fulfillment is late when its estimate is in the past and it is not yet
// delivered, returned or cancelled. Results are sorted by estimate, most
// overdue first.
func (h GetLateFulfillmentsQueryHandler) Handle(
	ctx context.Context,
	query GetLateFulfillmentsQuery,
) ([]GetLateFulfillmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	fulfillments := make([]GetLateFulfillmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			tracking_number,
			estimated_delivery_at
		FROM fulfillments
		WHERE status NOT IN (?, ?, ?)
			AND estimated_delivery_at IS NOT NULL
			AND estimated_delivery_at < ?
		ORDER BY estimated_delivery_at
	`, fulfillment.Delivered, fulfillment.Returned, fulfillment.Cancelled, time.Now().UTC()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetLateFulfillmentsQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&status,
			&resp.TrackingNumber,
			&resp.EstimatedDeliveryAt,
		)
		if err != nil {
			return nil, err
		}

		fulfillmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = fulfillmentID

		resp.Status = fulfillment.Status(status).String()
		fulfillments = append(fulfillments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fulfillments, nil
}
