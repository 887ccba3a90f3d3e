package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dorolabs/site-backend/internal/mail"
	"github.com/dorolabs/site-backend/internal/observability/metrics"
	"github.com/dorolabs/site-backend/pkg/logging"
)

const maxFormMemory = 1 << 20

// Client-visible error strings. Every failure mode collapses to one of
// these; provider and internal detail stays in the logs.
const (
	errServerConfig   = "Server configuration error"
	errDeliveryFailed = "Failed to send message"
	errUnexpected     = "An unexpected error occurred"
)

// HandlerConfig holds the delivery wiring for the contact handler.
type HandlerConfig struct {
	Sender  mail.Sender // nil means the delivery credential is missing
	From    string
	To      string
	Timeout time.Duration
}

// Handler handles contact form submissions.
type Handler struct {
	sender  mail.Sender
	from    string
	to      string
	timeout time.Duration
	logger  *logging.Logger
	metrics *metrics.ContactMetrics
}

// NewHandler creates a new contact handler.
func NewHandler(cfg HandlerConfig, logger *logging.Logger, m *metrics.ContactMetrics) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Handler{
		sender:  cfg.Sender,
		from:    cfg.From,
		to:      cfg.To,
		timeout: timeout,
		logger:  logger,
		metrics: m,
	}
}

type response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	ID      string `json:"id,omitempty"`
}

// Submit handles POST /api/contact requests
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("contact handler panic", "panic", rec, "path", r.URL.Path)
			h.metrics.ObserveSubmission(metrics.OutcomeError)
			writeJSON(w, http.StatusInternalServerError, response{Success: false, Error: errUnexpected})
		}
	}()

	// Fail closed when the delivery credential was never configured. The
	// detail stays server-side.
	if h.sender == nil {
		h.logger.Error("contact submission rejected: no email sender configured")
		h.metrics.ObserveSubmission(metrics.OutcomeError)
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Error: errServerConfig})
		return
	}

	if err := parseForm(r); err != nil {
		h.logger.Error("failed to parse contact form", "error", err)
		h.metrics.ObserveSubmission(metrics.OutcomeError)
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Error: errUnexpected})
		return
	}

	// Honeypot check: respond as if successful so the anti-spam mechanism
	// stays invisible to the bot. Nothing else runs.
	if r.FormValue(fieldHoneypot) != "" {
		h.logger.Debug("honeypot triggered, discarding submission", "remote_ip", r.RemoteAddr)
		h.metrics.ObserveSubmission(metrics.OutcomeSpam)
		writeJSON(w, http.StatusOK, response{Success: true})
		return
	}

	sub := SubmissionFromRequest(r)
	if err := sub.Validate(); err != nil {
		h.metrics.ObserveSubmission(metrics.OutcomeInvalid)
		writeJSON(w, http.StatusBadRequest, response{Success: false, Error: err.Error()})
		return
	}

	msg := Compose(sub)

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	start := time.Now()
	id, err := h.sender.Send(ctx, mail.Message{
		From:    h.from,
		To:      h.to,
		ReplyTo: strings.TrimSpace(sub.Email),
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	h.metrics.ObserveDeliveryLatency(time.Since(start).Seconds())

	if err != nil {
		h.logger.Error("contact email delivery failed", "error", err, "subject", msg.Subject)
		h.metrics.ObserveSubmission(metrics.OutcomeDeliveryFailed)
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Error: errDeliveryFailed})
		return
	}

	h.logger.Info("contact lead delivered", "id", id, "subject", msg.Subject)
	h.metrics.ObserveSubmission(metrics.OutcomeAccepted)
	writeJSON(w, http.StatusOK, response{Success: true, ID: id})
}

// Health handles GET /health requests
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// MethodNotAllowed answers disallowed methods with the uniform envelope.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, response{Success: false, Error: errUnexpected})
}

func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxFormMemory)
	if err == nil {
		return nil
	}
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
