package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/dorolabs/site-backend/pkg/logging"
)

// SendGridSender sends emails via the SendGrid API. Kept as a fallback
// provider behind the same Sender interface.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    *logging.Logger
}

// SendGridConfig holds configuration for SendGrid.
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// NewSendGridSender creates a new SendGrid email sender. Returns nil when
// no API key is configured.
func NewSendGridSender(cfg SendGridConfig, logger *logging.Logger) *SendGridSender {
	if cfg.APIKey == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.FromName == "" {
		cfg.FromName = "DoroLabs"
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		logger:    logger,
	}
}

// Send sends an email via SendGrid.
func (s *SendGridSender) Send(ctx context.Context, msg Message) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("mail: sendgrid client not configured")
	}

	from := sgmail.NewEmail(s.fromName, s.fromEmail)
	to := sgmail.NewEmail("", msg.To)

	message := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)
	if msg.ReplyTo != "" {
		message.SetReplyTo(sgmail.NewEmail("", msg.ReplyTo))
	}

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		s.logger.Error("sendgrid send failed", "error", err, "to", msg.To)
		return "", fmt.Errorf("mail: sendgrid send failed: %w", err)
	}

	if response.StatusCode >= 400 {
		s.logger.Error("sendgrid returned error status", "status", response.StatusCode, "body", response.Body, "to", msg.To)
		return "", fmt.Errorf("mail: sendgrid returned status %d", response.StatusCode)
	}

	id := ""
	if ids, ok := response.Headers["X-Message-Id"]; ok && len(ids) > 0 {
		id = ids[0]
	}

	s.logger.Info("email sent via sendgrid", "id", id, "to", msg.To, "subject", msg.Subject, "status", response.StatusCode)
	return id, nil
}
