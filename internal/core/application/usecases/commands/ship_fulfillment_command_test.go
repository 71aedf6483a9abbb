package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipFulfillmentCommand(t *testing.T) {
	t.Run("should create command with valid inputs", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewShipFulfillmentCommand(id, "TRK123", "https://tracking.example/TRK123", "carol")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.FulfillmentID().IsEqual(id))
		assert.Equal(t, "TRK123", cmd.TrackingNumber())
		assert.Equal(t, "https://tracking.example/TRK123", cmd.TrackingURL())
		assert.Equal(t, "carol", cmd.ShippedBy())
	})

	t.Run("should allow empty tracking url and actor", func(t *testing.T) {
		_, err := commands.NewShipFulfillmentCommand(kernel.NewUUID(), "TRK123", "", "")

		require.NoError(t, err)
	})

	t.Run("should require a tracking number", func(t *testing.T) {
		_, err := commands.NewShipFulfillmentCommand(kernel.NewUUID(), "", "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrTrackingNumberIsRequired)
	})

	t.Run("should reject invalid fulfillment id", func(t *testing.T) {
		_, err := commands.NewShipFulfillmentCommand(kernel.UUID{}, "TRK123", "", "")

		require.Error(t, err)
	})

	t.Run("should reject command not created via constructor", func(t *testing.T) {
		var cmd commands.ShipFulfillmentCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrShipFulfillmentCommandIsNotConstructed, err)
	})
}
