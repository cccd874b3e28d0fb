// Package email builds and dispatches the transactional emails behind the
// order, quote, and contact flows. Delivery is delegated to the Resend API;
// every flow sends a customer-facing confirmation and an internal
// notification as two independent best-effort sends.
package email

import (
	"context"
	"errors"
	"log/slog"

	"github.com/resend/resend-go/v2"
	"golang.org/x/sync/errgroup"
)

// Audience tags who a template is addressed to. The same event data maps
// to either a customer confirmation or an internal notification.
type Audience string

const (
	AudienceCustomer Audience = "customer"
	AudienceInternal Audience = "internal"
)

// Template is a fully rendered email ready for dispatch.
type Template struct {
	Audience Audience
	To       string
	Subject  string
	HTML     string
	Text     string
}

// Result reports the outcome of a single send. Send never panics; any
// failure is captured here and left to the caller's policy.
type Result struct {
	Success bool
	ID      string
	Err     error
}

// Sender dispatches a rendered template. Handlers depend on this
// interface so tests can count and inspect sends.
type Sender interface {
	Send(ctx context.Context, t *Template) Result
	Configured() bool
}

// ErrNotConfigured is returned when RESEND_API_KEY is absent.
var ErrNotConfigured = errors.New("email service not configured")

// Service sends email through the Resend transactional API.
type Service struct {
	client *resend.Client
	from   string
}

// NewService creates the Resend-backed sender. An empty API key yields a
// service that reports itself unconfigured and fails every send.
func NewService(apiKey, from string) *Service {
	var client *resend.Client
	if apiKey != "" {
		client = resend.NewClient(apiKey)
	}

	return &Service{
		client: client,
		from:   from,
	}
}

func (s *Service) Configured() bool {
	return s.client != nil
}

// Send makes one attempt to deliver the template. No retries; the caller
// decides whether a failure is fatal for its flow.
func (s *Service) Send(ctx context.Context, t *Template) Result {
	if s.client == nil {
		return Result{Err: ErrNotConfigured}
	}

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{t.To},
		Subject: t.Subject,
		Html:    t.HTML,
		Text:    t.Text,
	})
	if err != nil {
		slog.Error("email send failed", "error", err, "to", t.To, "subject", t.Subject)
		return Result{Err: err}
	}

	return Result{Success: true, ID: sent.Id}
}

// SendPair dispatches the customer confirmation and the internal
// notification as independent tasks joined at the end. A failure of one
// never cancels the other; each outcome lands in its own Result.
func SendPair(ctx context.Context, sender Sender, confirmation, notification *Template) (Result, Result) {
	var confirmationResult, notificationResult Result

	var g errgroup.Group
	g.Go(func() error {
		confirmationResult = sender.Send(ctx, confirmation)
		return nil
	})
	g.Go(func() error {
		notificationResult = sender.Send(ctx, notification)
		return nil
	})
	_ = g.Wait()

	return confirmationResult, notificationResult
}
