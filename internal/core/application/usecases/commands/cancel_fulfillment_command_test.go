package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelFulfillmentCommand(t *testing.T) {
	t.Run("should create command with valid inputs", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCancelFulfillmentCommand(id, "customer request")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.FulfillmentID().IsEqual(id))
		assert.Equal(t, "customer request", cmd.Reason())
	})

	t.Run("should allow empty reason", func(t *testing.T) {
		_, err := commands.NewCancelFulfillmentCommand(kernel.NewUUID(), "")

		require.NoError(t, err)
	})

	t.Run("should reject invalid fulfillment id", func(t *testing.T) {
		_, err := commands.NewCancelFulfillmentCommand(kernel.UUID{}, "")

		require.Error(t, err)
	})

	t.Run("should reject command not created via constructor", func(t *testing.T) {
		var cmd commands.CancelFulfillmentCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrCancelFulfillmentCommandIsNotConstructed, err)
	})
}
