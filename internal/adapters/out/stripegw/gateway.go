// Package stripegw implements the payment gateway port on top of the Stripe
// API. Amounts cross the wire in minor units (cents), statuses come back as
// Stripe's own strings and are interpreted by the core.
package stripegw

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
)

// StripePaymentGateway implements ports.PaymentGateway against Stripe.
type StripePaymentGateway struct {
	api      *client.API
	currency string
}

// NewStripePaymentGateway creates a gateway bound to the given secret key.
// currency is the ISO currency code all intents are opened in.
func NewStripePaymentGateway(secretKey string, currency string) (*StripePaymentGateway, error) {
	if secretKey == "" {
		return nil, errs.NewValueIsRequiredError("secretKey")
	}
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripePaymentGateway{api: api, currency: currency}, nil
}

// CreateIntent opens a Stripe payment intent for the order's total.
func (g *StripePaymentGateway) CreateIntent(
	ctx context.Context,
	orderID kernel.UUID,
	amount decimal.Decimal,
	method string,
) (*ports.GatewayIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(toMinorUnits(amount)),
		Currency: stripe.String(g.currency),
	}
	params.Context = ctx
	params.AddMetadata("order_id", orderID.String())
	if method != "" {
		params.PaymentMethodTypes = stripe.StringSlice([]string{method})
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errs.NewUpstreamGatewayError("create payment intent", err)
	}

	return fromStripeIntent(pi), nil
}

// GetIntent re-queries Stripe for the current state of an intent.
func (g *StripePaymentGateway) GetIntent(ctx context.Context, gatewayRef string) (*ports.GatewayIntent, error) {
	if gatewayRef == "" {
		return nil, errs.NewValueIsRequiredError("gatewayRef")
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.Get(gatewayRef, params)
	if err != nil {
		return nil, errs.NewUpstreamGatewayError("get payment intent", err)
	}

	return fromStripeIntent(pi), nil
}

// Refund refunds the charge behind the intent. A zero amount refunds the
// full captured charge.
func (g *StripePaymentGateway) Refund(
	ctx context.Context,
	gatewayRef string,
	amount decimal.Decimal,
) (*ports.GatewayRefund, error) {
	if gatewayRef == "" {
		return nil, errs.NewValueIsRequiredError("gatewayRef")
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(gatewayRef),
	}
	params.Context = ctx
	if amount.IsPositive() {
		params.Amount = stripe.Int64(toMinorUnits(amount))
	}

	re, err := g.api.Refunds.New(params)
	if err != nil {
		return nil, errs.NewUpstreamGatewayError("refund payment", err)
	}

	return &ports.GatewayRefund{Ref: re.ID}, nil
}

func fromStripeIntent(pi *stripe.PaymentIntent) *ports.GatewayIntent {
	intent := &ports.GatewayIntent{
		Ref:          pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}

	if pi.Charges != nil && len(pi.Charges.Data) > 0 {
		intent.TransactionRef = pi.Charges.Data[0].ID
	}

	switch {
	case pi.CancellationReason != "":
		intent.FailureReason = string(pi.CancellationReason)
	case pi.LastPaymentError != nil:
		intent.FailureReason = pi.LastPaymentError.Msg
	}

	return intent
}

func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
