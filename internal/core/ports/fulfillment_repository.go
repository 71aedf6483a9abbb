package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
)

// FulfillmentRepository defines the persistence contract for fulfillment aggregates.
// Provides methods for storing, retrieving, and querying fulfillments based on
// their lifecycle status and delivery estimates.
type FulfillmentRepository interface {
	// Add persists a new fulfillment aggregate to storage.
	// The fulfillment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *fulfillment.Fulfillment) error

	// Update persists changes to an existing fulfillment aggregate.
	// The stored version must match the version the aggregate was loaded with;
	// a concurrent modification is reported as a version error.
	Update(ctx context.Context, aggregate *fulfillment.Fulfillment) error

	// Get retrieves a fulfillment aggregate by its unique identifier,
	// including its full tracking-event ledger.
	Get(ctx context.Context, id kernel.UUID) (*fulfillment.Fulfillment, error)

	// GetByOrderID retrieves the fulfillment created for the given order.
	// Used to enforce that each order gets at most one fulfillment.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*fulfillment.Fulfillment, error)

	// GetAllLate retrieves all undelivered fulfillments whose estimated
	// delivery time has passed. Used by the lateness monitoring job.
	GetAllLate(ctx context.Context) ([]*fulfillment.Fulfillment, error)
}
