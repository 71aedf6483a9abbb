package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderAlreadyFulfilled is returned when a fulfillment already exists for
// the order. Each order gets at most one fulfillment.
var ErrOrderAlreadyFulfilled = errors.New("order already has a fulfillment")

// CreateFulfillmentCommandHandler handles the business logic for fulfillment creation.
// Creates new fulfillments in pending status and, when a warehouse is known,
// stamps an initial delivery estimate.
//
// Example:
//
//	handler := NewCreateFulfillmentCommandHandler(uowFactory)
//	cmd, _ := NewCreateFulfillmentCommand(kernel.NewUUID(), orderID, "SO-1042", shipTo)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("fulfillment creation failed: %w", err)
//	}
//	// Fulfillment is now pending and awaiting warehouse processing
type CreateFulfillmentCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewCreateFulfillmentCommandHandler creates a handler for fulfillment creation operations.
// Requires a FulfillmentUoWFactory for transactional persistence.
func NewCreateFulfillmentCommandHandler(uowFactory FulfillmentUoWFactory) CreateFulfillmentCommandHandler {
	return CreateFulfillmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fulfillment creation command.
// Creates the aggregate in pending status, assigns the warehouse when given,
// and computes the delivery estimate from the warehouse address. Rejects the
// command with ErrOrderAlreadyFulfilled when the order is already being
// fulfilled. Uses a transaction to ensure the fulfillment is fully persisted
// or rolled back.
func (h *CreateFulfillmentCommandHandler) Handle(ctx context.Context, cmd CreateFulfillmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	f, err := fulfillment.NewFulfillment(cmd.FulfillmentID(), cmd.OrderID(), cmd.ShipToAddress())
	if err != nil {
		return err
	}

	if cmd.OrderNumber() != "" {
		f.SetOrderNumber(cmd.OrderNumber())
	}

	if cmd.WarehouseID() != nil {
		if err = f.AssignWarehouse(*cmd.WarehouseID()); err != nil {
			return err
		}

		estimator := services.NewDeliveryEstimator()
		if _, err = estimator.Estimate(f, *cmd.WarehouseAddress(), time.Now()); err != nil {
			return err
		}
	}

	if cmd.ShippingMethodID() != nil {
		if err = f.AssignShippingMethod(*cmd.ShippingMethodID(), cmd.CarrierID()); err != nil {
			return err
		}
	}

	// An externally supplied estimate wins over the computed one.
	if cmd.EstimatedDeliveryAt() != nil {
		if err = f.SetEstimatedDelivery(*cmd.EstimatedDeliveryAt()); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.FulfillmentRepository()

	if _, getErr := repo.GetByOrderID(ctx, cmd.OrderID()); getErr == nil {
		return ErrOrderAlreadyFulfilled
	} else if !errors.Is(getErr, errs.ErrObjectNotFound) {
		return getErr
	}

	if err = repo.Add(ctx, f); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
