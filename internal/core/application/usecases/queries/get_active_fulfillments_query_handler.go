package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveFulfillmentsQueryHandler retrieves in-progress fulfillments from
// the database. Filters out completed lifecycles to provide active workload
// visibility.
//
// Example:
//
//	handler := NewGetActiveFulfillmentsQueryHandler(db)
//	query := NewGetActiveFulfillmentsQuery()
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active fulfillments: %v", err)
//	    return err
//	}
type GetActiveFulfillmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveFulfillmentsQueryHandler creates a handler for active fulfillment queries.
// Requires a GORM database connection for query execution.
func NewGetActiveFulfillmentsQueryHandler(db *gorm.DB) GetActiveFulfillmentsQueryHandler {
	return GetActiveFulfillmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all in-progress fulfillments.
// Excludes delivered, returned and cancelled lifecycles.
// Results are sorted by creation time for consistent output.
func (h GetActiveFulfillmentsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveFulfillmentsQuery,
) ([]GetActiveFulfillmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	fulfillments := make([]GetActiveFulfillmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			order_number,
			status,
			tracking_number,
			estimated_delivery_at
		FROM fulfillments
		WHERE status NOT IN (?, ?, ?)
		ORDER BY created_at
	`, fulfillment.Delivered, fulfillment.Returned, fulfillment.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveFulfillmentsQueryResponse
		var id, orderID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&orderID,
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

		orderUUID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = orderUUID

		resp.Status = fulfillment.Status(status).String()
		fulfillments = append(fulfillments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fulfillments, nil
}
