// Package queries contains read-only operations over the fulfillment store.
// Implements the Query side of the CQRS architecture: handlers read directly
// from the database and return lightweight response models, bypassing the
// aggregate and the unit of work.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetActiveFulfillmentsQueryIsNotConstructed = errors.New(
		"GetActiveFulfillmentsQuery must be created via NewGetActiveFulfillmentsQuery constructor",
	)
)

// GetActiveFulfillmentsQuery retrieves all fulfillments still in progress,
// excluding delivered, returned and cancelled ones.
//
// Example:
//
//	query := NewGetActiveFulfillmentsQuery()
//	handler := NewGetActiveFulfillmentsQueryHandler(db)
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active fulfillments: %w", err)
//	}
//
//	fmt.Printf("%d fulfillments in progress\n", len(active))
type GetActiveFulfillmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveFulfillmentsQuery creates a query to retrieve in-progress fulfillments.
// This is a parameterless query.
func NewGetActiveFulfillmentsQuery() GetActiveFulfillmentsQuery {
	return GetActiveFulfillmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveFulfillmentsQueryIsNotConstructed if validation fails.
func (q GetActiveFulfillmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveFulfillmentsQueryIsNotConstructed)
}

// GetActiveFulfillmentsQueryResponse represents one in-progress fulfillment.
// Contains the data needed for dashboards and workload monitoring.
type GetActiveFulfillmentsQueryResponse struct {
	ID                  kernel.UUID
	OrderID             kernel.UUID
	OrderNumber         string
	Status              string
	TrackingNumber      string
	EstimatedDeliveryAt *time.Time
}
