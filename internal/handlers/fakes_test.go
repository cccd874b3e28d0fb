package handlers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	stripego "github.com/stripe/stripe-go/v80"

	"github.com/nernstsolution/nernst-web/internal/email"
)

// fakeSender counts and records sends; it can be told to fail a given
// audience or report itself unconfigured.
type fakeSender struct {
	mu           sync.Mutex
	sent         []*email.Template
	failAudience email.Audience
	unconfigured bool
}

func (f *fakeSender) Send(_ context.Context, t *email.Template) email.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, t)

	if f.failAudience != "" && t.Audience == f.failAudience {
		return email.Result{Err: errors.New("provider rejected message")}
	}
	return email.Result{Success: true, ID: fmt.Sprintf("email_%d", len(f.sent))}
}

func (f *fakeSender) Configured() bool { return !f.unconfigured }

func (f *fakeSender) sendCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeSender) byAudience(a email.Audience) *email.Template {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.sent {
		if t.Audience == a {
			return t
		}
	}
	return nil
}

// fakeCheckout substitutes the Stripe API.
type fakeCheckout struct {
	createdParams *stripego.CheckoutSessionParams
	createErr     error
	session       *stripego.CheckoutSession
	getErr        error
	retrievedID   string
}

func (f *fakeCheckout) CreateCheckoutSession(params *stripego.CheckoutSessionParams) (*stripego.CheckoutSession, error) {
	f.createdParams = params
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.session != nil {
		return f.session, nil
	}
	return &stripego.CheckoutSession{ID: "cs_test_123"}, nil
}

func (f *fakeCheckout) GetCheckoutSession(id string, _ *stripego.CheckoutSessionParams) (*stripego.CheckoutSession, error) {
	f.retrievedID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.session, nil
}
