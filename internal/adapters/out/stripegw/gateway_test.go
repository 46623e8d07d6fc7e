package stripegw

import (
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v72"
)

func Test_NewStripePaymentGateway_RequiresSecretKey(t *testing.T) {
	gateway, err := NewStripePaymentGateway("", "usd")

	assert.Nil(t, gateway)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func Test_NewStripePaymentGateway_DefaultsCurrency(t *testing.T) {
	gateway, err := NewStripePaymentGateway("sk_test_123", "")

	require.NoError(t, err)
	assert.Equal(t, "usd", gateway.currency)
}

func Test_toMinorUnits(t *testing.T) {
	assert.Equal(t, int64(3250), toMinorUnits(decimal.RequireFromString("32.50")))
	assert.Equal(t, int64(0), toMinorUnits(decimal.Zero))
	assert.Equal(t, int64(10), toMinorUnits(decimal.RequireFromString("0.099")))
}

func Test_fromStripeIntent_Succeeded(t *testing.T) {
	pi := &stripe.PaymentIntent{
		ID:           "pi_123",
		ClientSecret: "pi_123_secret",
		Status:       stripe.PaymentIntentStatusSucceeded,
		Charges: &stripe.ChargeList{
			Data: []*stripe.Charge{{ID: "ch_456"}},
		},
	}

	intent := fromStripeIntent(pi)

	assert.Equal(t, "pi_123", intent.Ref)
	assert.Equal(t, "pi_123_secret", intent.ClientSecret)
	assert.Equal(t, "succeeded", intent.Status)
	assert.Equal(t, "ch_456", intent.TransactionRef)
	assert.Empty(t, intent.FailureReason)
}

func Test_fromStripeIntent_Canceled(t *testing.T) {
	pi := &stripe.PaymentIntent{
		ID:                 "pi_123",
		Status:             stripe.PaymentIntentStatusCanceled,
		CancellationReason: stripe.PaymentIntentCancellationReasonAbandoned,
	}

	intent := fromStripeIntent(pi)

	assert.Equal(t, "canceled", intent.Status)
	assert.Equal(t, "abandoned", intent.FailureReason)
	assert.Empty(t, intent.TransactionRef)
}

func Test_fromStripeIntent_LastPaymentError(t *testing.T) {
	pi := &stripe.PaymentIntent{
		ID:     "pi_123",
		Status: stripe.PaymentIntentStatusRequiresPaymentMethod,
		LastPaymentError: &stripe.Error{
			Msg: "Your card was declined.",
		},
	}

	intent := fromStripeIntent(pi)

	assert.Equal(t, "requires_payment_method", intent.Status)
	assert.Equal(t, "Your card was declined.", intent.FailureReason)
}
