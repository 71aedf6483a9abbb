package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCancelFulfillmentCommandIsNotConstructed = errors.New(
		"CancelFulfillmentCommand must be created via NewCancelFulfillmentCommand constructor",
	)
)

// CancelFulfillmentCommand represents a request to cancel a fulfillment before
// it ships. The reason is optional; the aggregate derives a default when empty.
type CancelFulfillmentCommand struct { //nolint:recvcheck //using for validation
	fulfillmentID kernel.UUID
	reason        string

	guard guard.ConstructorGuard
}

// NewCancelFulfillmentCommand creates a command to cancel a fulfillment.
// Validates that the fulfillment ID is valid.
func NewCancelFulfillmentCommand(fulfillmentID kernel.UUID, reason string) (CancelFulfillmentCommand, error) {
	cmd := CancelFulfillmentCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setFulfillmentID(fulfillmentID); err != nil {
		return CancelFulfillmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelFulfillmentCommandIsNotConstructed if validation fails.
func (c CancelFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelFulfillmentCommandIsNotConstructed)
}

// FulfillmentID returns the fulfillment to cancel.
func (c CancelFulfillmentCommand) FulfillmentID() kernel.UUID {
	return c.fulfillmentID
}

// Reason returns why the fulfillment is being cancelled, empty if not provided.
func (c CancelFulfillmentCommand) Reason() string {
	return c.reason
}

func (c *CancelFulfillmentCommand) setFulfillmentID(fulfillmentID kernel.UUID) error {
	if err := fulfillmentID.Validate(); err != nil {
		return err
	}

	c.fulfillmentID = fulfillmentID
	return nil
}
