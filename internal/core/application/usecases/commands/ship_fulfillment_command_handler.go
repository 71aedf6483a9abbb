package commands

import (
	"context"
)

// ShipFulfillmentCommandHandler handles the carrier handoff of a fulfillment.
// Loads the aggregate, applies the Ship operation, and persists the result
// under optimistic concurrency.
type ShipFulfillmentCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewShipFulfillmentCommandHandler creates a handler for shipping operations.
// Requires a FulfillmentUoWFactory for transactional persistence.
func NewShipFulfillmentCommandHandler(uowFactory FulfillmentUoWFactory) ShipFulfillmentCommandHandler {
	return ShipFulfillmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the ship command.
// The aggregate enforces that the fulfillment is in ready_to_ship status;
// the version check at save time rejects concurrent modifications.
func (h *ShipFulfillmentCommandHandler) Handle(ctx context.Context, cmd ShipFulfillmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.FulfillmentRepository()
	f, err := repo.Get(ctx, cmd.FulfillmentID())
	if err != nil {
		return err
	}

	if err = f.Ship(cmd.TrackingNumber(), cmd.TrackingURL(), cmd.ShippedBy()); err != nil {
		return err
	}

	if err = repo.Update(ctx, f); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
