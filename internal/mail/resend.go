package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dorolabs/site-backend/pkg/logging"
)

const (
	defaultResendBaseURL = "https://api.resend.com"
	defaultUserAgent     = "dorolabs-site-backend/0.1"
)

// ResendConfig controls how the Resend client behaves.
type ResendConfig struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
	UserAgent  string
	Logger     *logging.Logger
}

// ResendSender sends emails through the Resend transactional-email API.
// Each send is attempted exactly once; a failed delivery is reported to the
// caller, never retried.
type ResendSender struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     *logging.Logger
}

// NewResendSender creates a configured sender with sane defaults.
func NewResendSender(cfg ResendConfig) (*ResendSender, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("mail: resend API key is required")
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultResendBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &ResendSender{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		userAgent:  userAgent,
		logger:     logger,
	}, nil
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type resendResponse struct {
	ID string `json:"id"`
}

// Send issues a single POST to the /emails endpoint and decodes the
// provider's message id.
func (s *ResendSender) Send(ctx context.Context, msg Message) (string, error) {
	body, err := json.Marshal(resendPayload{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	})
	if err != nil {
		return "", fmt.Errorf("mail: marshal resend payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("mail: build resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("mail: resend http error: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("mail: read resend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeAPIError(resp.StatusCode, data)
		s.logger.Error("resend delivery failed", "status", resp.StatusCode, "error", apiErr)
		return "", apiErr
	}

	var result resendResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("mail: decode resend response: %w", err)
	}

	s.logger.Info("email sent via resend", "id", result.ID, "to", msg.To, "subject", msg.Subject)
	return result.ID, nil
}

type apiError struct {
	StatusCode int    `json:"-"`
	Name       string `json:"name,omitempty"`
	Message    string `json:"message,omitempty"`
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("mail: resend %s (status=%d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("mail: resend http status %d", e.StatusCode)
}

func decodeAPIError(status int, body []byte) error {
	var parsed apiError
	if err := json.Unmarshal(body, &parsed); err != nil {
		return &apiError{StatusCode: status, Message: string(body)}
	}
	parsed.StatusCode = status
	return &parsed
}
