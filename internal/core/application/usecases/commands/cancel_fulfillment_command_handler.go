package commands

import (
	"context"
)

// CancelFulfillmentCommandHandler handles fulfillment cancellation.
// The aggregate's transition table forbids cancelling once the package has
// shipped; the handler surfaces that as a domain error.
type CancelFulfillmentCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewCancelFulfillmentCommandHandler creates a handler for cancellation operations.
// Requires a FulfillmentUoWFactory for transactional persistence.
func NewCancelFulfillmentCommandHandler(uowFactory FulfillmentUoWFactory) CancelFulfillmentCommandHandler {
	return CancelFulfillmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelFulfillmentCommandHandler) Handle(ctx context.Context, cmd CancelFulfillmentCommand) error {
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

	if err = f.Cancel(cmd.Reason()); err != nil {
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
