package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/fulfillment"
)

// RecordTrackingEventCommandHandler relays carrier tracking updates into the
// aggregate. An in_transit scan drives the lifecycle transition from shipped
// and is always logged, even when the fulfillment is already in transit;
// every other label is appended to the ledger without touching the status.
type RecordTrackingEventCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewRecordTrackingEventCommandHandler creates a handler for carrier event relay.
// Requires a FulfillmentUoWFactory for transactional persistence.
func NewRecordTrackingEventCommandHandler(uowFactory FulfillmentUoWFactory) RecordTrackingEventCommandHandler {
	return RecordTrackingEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tracking event command.
func (h *RecordTrackingEventCommandHandler) Handle(ctx context.Context, cmd RecordTrackingEventCommand) error {
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

	if cmd.EventStatus() == fulfillment.InTransit.String() {
		err = f.UpdateInTransit(cmd.Location())
	} else {
		err = f.AddTrackingEvent(cmd.EventStatus(), cmd.Description(), cmd.Location())
	}
	if err != nil {
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
