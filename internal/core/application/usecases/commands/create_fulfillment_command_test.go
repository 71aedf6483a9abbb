package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShipTo(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("1 Main St", "", "Springfield", "", "00000", "US")
	require.NoError(t, err)
	return addr
}

func TestNewCreateFulfillmentCommand(t *testing.T) {
	t.Run("should create command with valid inputs", func(t *testing.T) {
		fulfillmentID := kernel.NewUUID()
		orderID := kernel.NewUUID()

		cmd, err := commands.NewCreateFulfillmentCommand(fulfillmentID, orderID, "SO-1042", validShipTo(t))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.FulfillmentID().IsEqual(fulfillmentID))
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, "SO-1042", cmd.OrderNumber())
		assert.Nil(t, cmd.WarehouseID())
		assert.Nil(t, cmd.WarehouseAddress())
	})

	t.Run("should allow empty order number", func(t *testing.T) {
		_, err := commands.NewCreateFulfillmentCommand(kernel.NewUUID(), kernel.NewUUID(), "", validShipTo(t))

		require.NoError(t, err)
	})

	t.Run("should attach warehouse details", func(t *testing.T) {
		cmd, err := commands.NewCreateFulfillmentCommand(kernel.NewUUID(), kernel.NewUUID(), "", validShipTo(t))
		require.NoError(t, err)
		warehouseID := kernel.NewUUID()
		warehouseAddr, err := kernel.NewAddress("1 Depot Rd", "", "Springfield", "", "00001", "US")
		require.NoError(t, err)

		cmd, err = cmd.WithWarehouse(warehouseID, warehouseAddr)

		require.NoError(t, err)
		require.NotNil(t, cmd.WarehouseID())
		assert.True(t, cmd.WarehouseID().IsEqual(warehouseID))
		require.NotNil(t, cmd.WarehouseAddress())
	})

	t.Run("should attach shipping method and carrier", func(t *testing.T) {
		cmd, err := commands.NewCreateFulfillmentCommand(kernel.NewUUID(), kernel.NewUUID(), "", validShipTo(t))
		require.NoError(t, err)
		shippingMethodID := kernel.NewUUID()
		carrierID := kernel.NewUUID()

		cmd, err = cmd.WithShippingMethod(shippingMethodID, &carrierID)

		require.NoError(t, err)
		require.NotNil(t, cmd.ShippingMethodID())
		assert.True(t, cmd.ShippingMethodID().IsEqual(shippingMethodID))
		require.NotNil(t, cmd.CarrierID())
		assert.True(t, cmd.CarrierID().IsEqual(carrierID))
	})

	t.Run("should allow shipping method without carrier", func(t *testing.T) {
		cmd, err := commands.NewCreateFulfillmentCommand(kernel.NewUUID(), kernel.NewUUID(), "", validShipTo(t))
		require.NoError(t, err)

		cmd, err = cmd.WithShippingMethod(kernel.NewUUID(), nil)

		require.NoError(t, err)
		require.NotNil(t, cmd.ShippingMethodID())
		assert.Nil(t, cmd.CarrierID())
	})

	t.Run("should attach delivery estimate", func(t *testing.T) {
		cmd, err := commands.NewCreateFulfillmentCommand(kernel.NewUUID(), kernel.NewUUID(), "", validShipTo(t))
		require.NoError(t, err)
		estimate := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

		cmd, err = cmd.WithEstimatedDelivery(estimate)

		require.NoError(t, err)
		require.NotNil(t, cmd.EstimatedDeliveryAt())
		assert.Equal(t, estimate, *cmd.EstimatedDeliveryAt())
	})

	t.Run("should reject invalid shipping method details", func(t *testing.T) {
		cmd, err := commands.NewCreateFulfillmentCommand(kernel.NewUUID(), kernel.NewUUID(), "", validShipTo(t))
		require.NoError(t, err)

		_, err = cmd.WithShippingMethod(kernel.UUID{}, nil)
		require.Error(t, err)

		_, err = cmd.WithShippingMethod(kernel.NewUUID(), &kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("should reject zero value delivery estimate", func(t *testing.T) {
		cmd, err := commands.NewCreateFulfillmentCommand(kernel.NewUUID(), kernel.NewUUID(), "", validShipTo(t))
		require.NoError(t, err)

		_, err = cmd.WithEstimatedDelivery(time.Time{})

		require.Error(t, err)
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		_, err := commands.NewCreateFulfillmentCommand(kernel.UUID{}, kernel.NewUUID(), "", validShipTo(t))
		require.Error(t, err)

		_, err = commands.NewCreateFulfillmentCommand(kernel.NewUUID(), kernel.UUID{}, "", validShipTo(t))
		require.Error(t, err)
	})

	t.Run("should reject zero value address", func(t *testing.T) {
		_, err := commands.NewCreateFulfillmentCommand(kernel.NewUUID(), kernel.NewUUID(), "", kernel.Address{})

		require.Error(t, err)
	})

	t.Run("should reject invalid warehouse details", func(t *testing.T) {
		cmd, err := commands.NewCreateFulfillmentCommand(kernel.NewUUID(), kernel.NewUUID(), "", validShipTo(t))
		require.NoError(t, err)

		_, err = cmd.WithWarehouse(kernel.UUID{}, validShipTo(t))
		require.Error(t, err)

		_, err = cmd.WithWarehouse(kernel.NewUUID(), kernel.Address{})
		require.Error(t, err)
	})

	t.Run("should reject command not created via constructor", func(t *testing.T) {
		var cmd commands.CreateFulfillmentCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrCreateFulfillmentCommandIsNotConstructed, err)
	})
}
