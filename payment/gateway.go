package payment

import (
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
)

// Intent is a pending gateway charge the client completes on its side.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// Gateway creates charges with an external payment provider. The capture
// receipt itself is submitted by the client on the pay transition; the
// gateway is only consulted up front.
type Gateway interface {
	CreateIntent(amount float64, currency, orderID string) (*Intent, error)
}

// StripeGateway implements Gateway against the Stripe API.
type StripeGateway struct{}

// NewStripeGateway configures the global Stripe key and returns a gateway.
func NewStripeGateway(secretKey string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{}
}

// CreateIntent creates a PaymentIntent for the given amount in major
// currency units.
func (g *StripeGateway) CreateIntent(amount float64, currency, orderID string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(toMinorUnits(amount)),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("order_id", orderID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
