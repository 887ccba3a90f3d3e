package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dorolabs/site-backend/internal/mail"
	"github.com/dorolabs/site-backend/internal/observability/metrics"
	"github.com/dorolabs/site-backend/pkg/logging"
)

type fakeSender struct {
	calls int
	last  mail.Message
	id    string
	err   error
}

func (f *fakeSender) Send(ctx context.Context, msg mail.Message) (string, error) {
	f.calls++
	f.last = msg
	if f.err != nil {
		return "", f.err
	}
	return f.id, nil
}

func newTestHandler(sender mail.Sender) *Handler {
	return NewHandler(HandlerConfig{
		Sender:  sender,
		From:    "DoroLabs <onboarding@resend.dev>",
		To:      "dorolabs.ac@gmail.com",
		Timeout: time.Second,
	}, logging.Default(), metrics.NewContactMetrics(prometheus.NewRegistry()))
}

func multipartRequest(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/contact", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response {
	t.Helper()
	var resp response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestSubmit_Success(t *testing.T) {
	sender := &fakeSender{id: "msg-123"}
	handler := newTestHandler(sender)

	req := multipartRequest(t, map[string]string{
		"name":             "Jane Doe",
		"email":            "jane@example.com",
		"selected_package": "pro",
		"message":          "Looking for a website",
	})
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected json content type, got %q", ct)
	}

	resp := decodeResponse(t, w)
	if !resp.Success {
		t.Error("expected success response")
	}
	if resp.ID != "msg-123" {
		t.Errorf("expected provider id, got %q", resp.ID)
	}

	if sender.calls != 1 {
		t.Fatalf("expected exactly one delivery attempt, got %d", sender.calls)
	}
	if sender.last.ReplyTo != "jane@example.com" {
		t.Errorf("expected reply-to routed to submitter, got %q", sender.last.ReplyTo)
	}
	if sender.last.To != "dorolabs.ac@gmail.com" {
		t.Errorf("expected operator inbox recipient, got %q", sender.last.To)
	}
	if sender.last.Subject != "New PRO Package Lead – DoroLabs" {
		t.Errorf("unexpected subject %q", sender.last.Subject)
	}
	if sender.last.HTML == "" || sender.last.Text == "" {
		t.Error("expected both body formats to be set")
	}
}

func TestSubmit_URLEncodedForm(t *testing.T) {
	sender := &fakeSender{id: "msg-456"}
	handler := newTestHandler(sender)

	form := url.Values{}
	form.Set("name", "Jane")
	form.Set("email", "jane@example.com")
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if sender.calls != 1 {
		t.Fatalf("expected one delivery attempt, got %d", sender.calls)
	}
}

func TestSubmit_MissingName(t *testing.T) {
	sender := &fakeSender{id: "msg-123"}
	handler := newTestHandler(sender)

	req := multipartRequest(t, map[string]string{
		"name":  "   ",
		"email": "jane@example.com",
	})
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Success {
		t.Error("expected failure response")
	}
	if resp.Error != "Name is required" {
		t.Errorf("expected name error, got %q", resp.Error)
	}
	if sender.calls != 0 {
		t.Errorf("expected no delivery attempt, got %d", sender.calls)
	}
}

func TestSubmit_InvalidEmail(t *testing.T) {
	sender := &fakeSender{}
	handler := newTestHandler(sender)

	req := multipartRequest(t, map[string]string{
		"name":  "Jane",
		"email": "not-an-email",
	})
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Error != "Valid email is required" {
		t.Errorf("expected email error, got %q", resp.Error)
	}
	if sender.calls != 0 {
		t.Errorf("expected no delivery attempt, got %d", sender.calls)
	}
}

func TestSubmit_HoneypotFakeSuccess(t *testing.T) {
	sender := &fakeSender{}
	handler := newTestHandler(sender)

	// Other fields invalid on purpose: the honeypot check runs first and
	// discards the submission silently.
	req := multipartRequest(t, map[string]string{
		"name":    "",
		"email":   "garbage",
		"_gotcha": "I am a bot",
	})
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	resp := decodeResponse(t, w)
	if !resp.Success {
		t.Error("expected fake success response")
	}
	if resp.Error != "" || resp.ID != "" {
		t.Errorf("expected bare success envelope, got %+v", resp)
	}
	if sender.calls != 0 {
		t.Errorf("expected no delivery attempt, got %d", sender.calls)
	}
}

func TestSubmit_DeliveryFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("resend status 422: invalid from address")}
	handler := newTestHandler(sender)

	req := multipartRequest(t, map[string]string{
		"name":  "Jane",
		"email": "jane@example.com",
	})
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "422") || strings.Contains(body, "invalid from address") {
		t.Error("provider detail must not leak to the client")
	}
	var resp response
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "Failed to send message" {
		t.Errorf("expected generic delivery error, got %q", resp.Error)
	}
	if sender.calls != 1 {
		t.Errorf("expected exactly one delivery attempt, got %d", sender.calls)
	}
}

func TestSubmit_MissingCredential(t *testing.T) {
	handler := newTestHandler(nil)

	req := multipartRequest(t, map[string]string{
		"name":  "Jane",
		"email": "jane@example.com",
	})
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Error != "Server configuration error" {
		t.Errorf("expected configuration error, got %q", resp.Error)
	}
}

func TestSubmit_MalformedMultipart(t *testing.T) {
	sender := &fakeSender{}
	handler := newTestHandler(sender)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("not multipart"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=broken")
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Error != "An unexpected error occurred" {
		t.Errorf("expected generic error, got %q", resp.Error)
	}
	if sender.calls != 0 {
		t.Errorf("expected no delivery attempt, got %d", sender.calls)
	}
}

func TestHealth(t *testing.T) {
	handler := newTestHandler(&fakeSender{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.Health(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	w := httptest.NewRecorder()

	MethodNotAllowed(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Success {
		t.Error("expected failure envelope")
	}
}
