package mail

import (
	"context"

	"github.com/dorolabs/site-backend/pkg/logging"
)

// Sender delivers a notification email and returns the provider's message
// id. Implementations can be swapped (Resend, SendGrid, stub) without
// changing callers.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Message represents an email to be sent.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// StubSender logs instead of sending. Used in development when no provider
// credential is configured, and in tests.
type StubSender struct {
	logger *logging.Logger
}

// NewStubSender creates a stub sender that logs but doesn't send.
func NewStubSender(logger *logging.Logger) *StubSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &StubSender{logger: logger}
}

// Send logs the email but doesn't actually send it.
func (s *StubSender) Send(ctx context.Context, msg Message) (string, error) {
	s.logger.Info("stub sender: would send email", "to", msg.To, "subject", msg.Subject)
	return "stub", nil
}
