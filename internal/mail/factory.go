package mail

import (
	"github.com/dorolabs/site-backend/internal/config"
	"github.com/dorolabs/site-backend/pkg/logging"
)

// BuildSender selects the delivery provider from configuration. It returns
// nil when the configured provider's credential is missing; callers treat a
// nil sender as a fatal configuration fault. In development a stub sender
// is substituted so the pipeline stays usable without credentials.
func BuildSender(cfg *config.Config, logger *logging.Logger) Sender {
	if logger == nil {
		logger = logging.Default()
	}

	var sender Sender
	switch cfg.EmailProvider {
	case "stub":
		sender = NewStubSender(logger)
	case "sendgrid":
		if s := NewSendGridSender(SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger); s != nil {
			sender = s
		}
	default: // resend
		if s, err := NewResendSender(ResendConfig{
			BaseURL: cfg.ResendBaseURL,
			APIKey:  cfg.ResendAPIKey,
			Timeout: cfg.MailTimeout,
			Logger:  logger,
		}); err == nil {
			sender = s
		} else {
			logger.Warn("resend sender not configured", "error", err)
		}
	}

	if sender == nil && cfg.Env == "development" {
		logger.Warn("no email credential configured, using stub sender")
		sender = NewStubSender(logger)
	}
	return sender
}
