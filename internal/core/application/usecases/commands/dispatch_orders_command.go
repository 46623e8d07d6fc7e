package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrDispatchOrdersCommandIsNotConstructed = errors.New(
	"DispatchOrdersCommand must be created via NewDispatchOrdersCommand constructor",
)

// DispatchOrdersCommand triggers a dispatch sweep: every paid order without a
// delivery assignment gets a partner search around its pickup point.
type DispatchOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchOrdersCommand creates a new command to trigger a dispatch sweep.
func NewDispatchOrdersCommand() DispatchOrdersCommand {
	return DispatchOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DispatchOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchOrdersCommandIsNotConstructed,
	)
}
