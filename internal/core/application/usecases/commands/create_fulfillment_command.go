package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateFulfillmentCommandIsNotConstructed = errors.New(
		"CreateFulfillmentCommand must be created via NewCreateFulfillmentCommand constructor",
	)
)

// CreateFulfillmentCommand represents a request to start fulfilling an order.
// Encapsulates the order identity, the delivery destination, and optionally
// the warehouse the packages will ship from.
//
// Example:
//
//	fulfillmentID := kernel.NewUUID()
//	cmd, err := NewCreateFulfillmentCommand(fulfillmentID, orderID, "SO-1042", shipTo)
//	if err != nil {
//	    return fmt.Errorf("invalid fulfillment data: %w", err)
//	}
//
//	handler := NewCreateFulfillmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create fulfillment: %w", err)
//	}
type CreateFulfillmentCommand struct { //nolint:recvcheck //using for validation
	fulfillmentID kernel.UUID
	orderID       kernel.UUID
	orderNumber   string
	shipToAddress kernel.Address

	warehouseID      *kernel.UUID
	warehouseAddress *kernel.Address

	shippingMethodID    *kernel.UUID
	carrierID           *kernel.UUID
	estimatedDeliveryAt *time.Time

	guard guard.ConstructorGuard
}

// NewCreateFulfillmentCommand creates a command to register a new fulfillment.
// Validates that both identifiers and the destination address are valid.
// The order number may be empty.
func NewCreateFulfillmentCommand(
	fulfillmentID, orderID kernel.UUID,
	orderNumber string,
	shipToAddress kernel.Address,
) (CreateFulfillmentCommand, error) {
	cmd := CreateFulfillmentCommand{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFulfillmentID(fulfillmentID),
		cmd.setOrderID(orderID),
		cmd.setShipToAddress(shipToAddress),
	); err != nil {
		return CreateFulfillmentCommand{}, err
	}

	return cmd, nil
}

// WithWarehouse attaches the shipping warehouse to the command. The address is
// used to compute the initial delivery estimate; both values are validated.
func (c CreateFulfillmentCommand) WithWarehouse(
	warehouseID kernel.UUID,
	warehouseAddress kernel.Address,
) (CreateFulfillmentCommand, error) {
	if err := warehouseID.Validate(); err != nil {
		return CreateFulfillmentCommand{}, err
	}
	if err := warehouseAddress.Validate(); err != nil {
		return CreateFulfillmentCommand{}, err
	}

	c.warehouseID = &warehouseID
	c.warehouseAddress = &warehouseAddress
	return c, nil
}

// WithShippingMethod attaches the chosen shipping method and, optionally, the
// carrier to the command. Both identifiers are validated.
func (c CreateFulfillmentCommand) WithShippingMethod(
	shippingMethodID kernel.UUID,
	carrierID *kernel.UUID,
) (CreateFulfillmentCommand, error) {
	if err := shippingMethodID.Validate(); err != nil {
		return CreateFulfillmentCommand{}, err
	}
	if carrierID != nil {
		if err := carrierID.Validate(); err != nil {
			return CreateFulfillmentCommand{}, err
		}
	}

	c.shippingMethodID = &shippingMethodID
	c.carrierID = carrierID
	return c, nil
}

// WithEstimatedDelivery attaches an externally supplied delivery estimate.
// When present it overrides the estimate computed from the warehouse address.
func (c CreateFulfillmentCommand) WithEstimatedDelivery(estimatedDeliveryAt time.Time) (CreateFulfillmentCommand, error) {
	if estimatedDeliveryAt.IsZero() {
		return CreateFulfillmentCommand{}, errs.NewValueIsRequiredError("estimatedDeliveryAt")
	}

	c.estimatedDeliveryAt = &estimatedDeliveryAt
	return c, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateFulfillmentCommandIsNotConstructed if validation fails.
func (c CreateFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateFulfillmentCommandIsNotConstructed)
}

// FulfillmentID returns the identifier for the new fulfillment.
func (c CreateFulfillmentCommand) FulfillmentID() kernel.UUID {
	return c.fulfillmentID
}

// OrderID returns the identifier of the order being fulfilled.
func (c CreateFulfillmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the human-readable order number, empty if not provided.
func (c CreateFulfillmentCommand) OrderNumber() string {
	return c.orderNumber
}

// ShipToAddress returns the delivery destination.
func (c CreateFulfillmentCommand) ShipToAddress() kernel.Address {
	return c.shipToAddress
}

// WarehouseID returns the shipping warehouse, nil if not provided.
func (c CreateFulfillmentCommand) WarehouseID() *kernel.UUID {
	return c.warehouseID
}

// WarehouseAddress returns the shipping warehouse address, nil if not provided.
func (c CreateFulfillmentCommand) WarehouseAddress() *kernel.Address {
	return c.warehouseAddress
}

// ShippingMethodID returns the chosen shipping method, nil if not provided.
func (c CreateFulfillmentCommand) ShippingMethodID() *kernel.UUID {
	return c.shippingMethodID
}

// CarrierID returns the chosen carrier, nil if not provided.
func (c CreateFulfillmentCommand) CarrierID() *kernel.UUID {
	return c.carrierID
}

// EstimatedDeliveryAt returns the supplied delivery estimate, nil if not provided.
func (c CreateFulfillmentCommand) EstimatedDeliveryAt() *time.Time {
	return c.estimatedDeliveryAt
}

func (c *CreateFulfillmentCommand) setFulfillmentID(fulfillmentID kernel.UUID) error {
	if err := fulfillmentID.Validate(); err != nil {
		return err
	}

	c.fulfillmentID = fulfillmentID
	return nil
}

func (c *CreateFulfillmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateFulfillmentCommand) setShipToAddress(shipToAddress kernel.Address) error {
	if err := shipToAddress.Validate(); err != nil {
		return err
	}

	c.shipToAddress = shipToAddress
	return nil
}
