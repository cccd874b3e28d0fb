package email

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSender records sends and fails for a configured audience.
type stubSender struct {
	mu           sync.Mutex
	sent         []*Template
	failAudience Audience
}

func (s *stubSender) Send(_ context.Context, t *Template) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, t)

	if t.Audience == s.failAudience {
		return Result{Err: errors.New("provider rejected message")}
	}
	return Result{Success: true, ID: "email_" + string(t.Audience)}
}

func (s *stubSender) Configured() bool { return true }

func TestService_UnconfiguredSendFails(t *testing.T) {
	service := NewService("", "Nernst Solution <orders@nernstsolution.com>")

	assert.False(t, service.Configured())

	result := service.Send(context.Background(), &Template{To: "x@example.com"})
	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Err, ErrNotConfigured)
}

func TestSendPair_BothSucceed(t *testing.T) {
	sender := &stubSender{}
	confirmation := &Template{Audience: AudienceCustomer, To: "buyer@example.com"}
	notification := &Template{Audience: AudienceInternal, To: "contact@nernstsolution.com"}

	confirmationResult, notificationResult := SendPair(context.Background(), sender, confirmation, notification)

	assert.True(t, confirmationResult.Success)
	assert.True(t, notificationResult.Success)
	assert.Len(t, sender.sent, 2)
}

func TestSendPair_FailuresAreIndependent(t *testing.T) {
	// Customer ack failing must not stop the internal notification
	sender := &stubSender{failAudience: AudienceCustomer}
	confirmation := &Template{Audience: AudienceCustomer, To: "buyer@example.com"}
	notification := &Template{Audience: AudienceInternal, To: "contact@nernstsolution.com"}

	confirmationResult, notificationResult := SendPair(context.Background(), sender, confirmation, notification)

	require.Len(t, sender.sent, 2, "both sends must be attempted")
	assert.False(t, confirmationResult.Success)
	assert.Error(t, confirmationResult.Err)
	assert.True(t, notificationResult.Success)
}
