package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Gateway-side intent statuses the core reacts to. Any other status reported
// by the gateway is treated as still-in-progress.
const (
	GatewayIntentSucceeded = "succeeded"
	GatewayIntentCanceled  = "canceled"
)

// GatewayIntent is the provider-neutral view of a payment intent held by the
// external gateway.
type GatewayIntent struct {
	// Ref is the gateway-side intent identifier.
	Ref string
	// ClientSecret is handed to the client to complete the charge.
	ClientSecret string
	// Status is the gateway's intent status string.
	Status string
	// TransactionRef identifies the captured charge once Status is succeeded.
	TransactionRef string
	// FailureReason explains a canceled intent, may be empty.
	FailureReason string
}

// GatewayRefund is the provider-neutral view of a refund issued by the
// external gateway.
type GatewayRefund struct {
	// Ref is the gateway-side refund identifier.
	Ref string
}

// PaymentGateway abstracts the external payment provider.
// Adapters wrap provider failures in UpstreamGateway errors so the core can
// distinguish "the gateway said no" from "the gateway is unreachable".
type PaymentGateway interface {
	// CreateIntent opens a gateway intent for the given amount on behalf of
	// the order. method names the payment method type offered to the
	// customer, empty for the provider default. Nothing is persisted locally
	// by this call.
	CreateIntent(ctx context.Context, orderID kernel.UUID, amount decimal.Decimal, method string) (*GatewayIntent, error)

	// GetIntent re-queries the gateway for the current state of an intent.
	GetIntent(ctx context.Context, gatewayRef string) (*GatewayIntent, error)

	// Refund refunds the captured charge behind the intent. A zero amount
	// refunds the full charge.
	Refund(ctx context.Context, gatewayRef string, amount decimal.Decimal) (*GatewayRefund, error)
}
