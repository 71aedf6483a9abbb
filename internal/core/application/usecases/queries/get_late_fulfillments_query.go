package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetLateFulfillmentsQueryIsNotConstructed = errors.New(
		"GetLateFulfillmentsQuery must be created via NewGetLateFulfillmentsQuery constructor",
	)
)

// GetLateFulfillmentsQuery retrieves all undelivered fulfillments whose
// estimated delivery time has passed. Used by the lateness monitoring job
// and operational dashboards.
type GetLateFulfillmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLateFulfillmentsQuery creates a query to retrieve late fulfillments.
// This is a parameterless query.
func NewGetLateFulfillmentsQuery() GetLateFulfillmentsQuery {
	return GetLateFulfillmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLateFulfillmentsQueryIsNotConstructed if validation fails.
func (q GetLateFulfillmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetLateFulfillmentsQueryIsNotConstructed)
}

// GetLateFulfillmentsQueryResponse represents one fulfillment that missed
// its delivery estimate.
type GetLateFulfillmentsQueryResponse struct {
	ID                  kernel.UUID
	OrderNumber         string
	Status              string
	TrackingNumber      string
	EstimatedDeliveryAt time.Time
}
