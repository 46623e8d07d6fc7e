package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrConfirmPaymentCommandIsNotConstructed = errors.New(
		"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
	)
	ErrGatewayRefIsRequired = errors.New("gateway reference is required")
)

// ConfirmPaymentCommand represents a request to reconcile a local payment
// intent with the gateway's view of it. Keyed by the gateway reference
// because that is what the client and webhooks hold.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	gatewayRef string

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to confirm a payment.
func NewConfirmPaymentCommand(gatewayRef string) (ConfirmPaymentCommand, error) {
	cmd := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setGatewayRef(gatewayRef); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// GatewayRef returns the gateway-side intent reference.
func (c ConfirmPaymentCommand) GatewayRef() string {
	return c.gatewayRef
}

func (c *ConfirmPaymentCommand) setGatewayRef(gatewayRef string) error {
	if gatewayRef == "" {
		return ErrGatewayRefIsRequired
	}

	c.gatewayRef = gatewayRef
	return nil
}
