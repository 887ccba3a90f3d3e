package mail

import (
	"context"
	"testing"
	"time"

	"github.com/dorolabs/site-backend/internal/config"
)

func TestStubSender_Send(t *testing.T) {
	sender := NewStubSender(nil)

	id, err := sender.Send(context.Background(), Message{
		To:      "recipient@example.com",
		Subject: "Test Subject",
		Text:    "Test body",
	})

	if err != nil {
		t.Errorf("stub sender should not return error, got: %v", err)
	}
	if id == "" {
		t.Error("expected stub sender to return a placeholder id")
	}
}

func TestBuildSender_Resend(t *testing.T) {
	cfg := &config.Config{
		Env:           "production",
		EmailProvider: "resend",
		ResendAPIKey:  "re_test_key",
		MailTimeout:   time.Second,
	}
	sender := BuildSender(cfg, nil)
	if _, ok := sender.(*ResendSender); !ok {
		t.Fatalf("expected ResendSender, got %T", sender)
	}
}

func TestBuildSender_SendGrid(t *testing.T) {
	cfg := &config.Config{
		Env:               "production",
		EmailProvider:     "sendgrid",
		SendGridAPIKey:    "sg-key",
		SendGridFromEmail: "noreply@dorolabs.eu",
	}
	sender := BuildSender(cfg, nil)
	if _, ok := sender.(*SendGridSender); !ok {
		t.Fatalf("expected SendGridSender, got %T", sender)
	}
}

func TestBuildSender_Stub(t *testing.T) {
	cfg := &config.Config{Env: "production", EmailProvider: "stub"}
	sender := BuildSender(cfg, nil)
	if _, ok := sender.(*StubSender); !ok {
		t.Fatalf("expected StubSender, got %T", sender)
	}
}

func TestBuildSender_MissingCredentialProduction(t *testing.T) {
	cfg := &config.Config{Env: "production", EmailProvider: "resend"}
	if sender := BuildSender(cfg, nil); sender != nil {
		t.Fatalf("expected nil sender without credential, got %T", sender)
	}
}

func TestBuildSender_MissingCredentialDevelopmentFallsBackToStub(t *testing.T) {
	cfg := &config.Config{Env: "development", EmailProvider: "resend"}
	sender := BuildSender(cfg, nil)
	if _, ok := sender.(*StubSender); !ok {
		t.Fatalf("expected StubSender fallback, got %T", sender)
	}
}
