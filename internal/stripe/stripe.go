// Package stripe wraps the Stripe checkout-session API. Payment
// processing is delegated entirely to Stripe's hosted checkout; this
// service only creates and retrieves sessions.
package stripe

import (
	"github.com/stripe/stripe-go/v80"
	checkoutsession "github.com/stripe/stripe-go/v80/checkout/session"
)

type Service struct{}

// NewService configures the Stripe client with the account secret key.
func NewService(secretKey string) *Service {
	stripe.Key = secretKey
	return &Service{}
}

// CreateCheckoutSession requests a hosted checkout session.
func (s *Service) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return checkoutsession.New(params)
}

// GetCheckoutSession retrieves a session, typically with line items
// expanded for webhook processing.
func (s *Service) GetCheckoutSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return checkoutsession.Get(id, params)
}
