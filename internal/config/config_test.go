package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ALLOWED_ORIGIN", "")
	t.Setenv("EMAIL_PROVIDER", "")
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("MAIL_TIMEOUT", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.CORSAllowedOrigin != "https://www.dorolabs.eu" {
		t.Fatalf("expected site origin default, got %s", cfg.CORSAllowedOrigin)
	}
	if cfg.EmailProvider != "resend" {
		t.Fatalf("expected resend provider default, got %s", cfg.EmailProvider)
	}
	if cfg.ResendAPIKey != "" {
		t.Fatalf("expected empty resend key, got %s", cfg.ResendAPIKey)
	}
	if cfg.MailTimeout != 10*time.Second {
		t.Fatalf("expected default mail timeout, got %s", cfg.MailTimeout)
	}
	if cfg.MailFrom != "DoroLabs <onboarding@resend.dev>" {
		t.Fatalf("expected default sender identity, got %s", cfg.MailFrom)
	}
	if cfg.MailTo != "dorolabs.ac@gmail.com" {
		t.Fatalf("expected default operator inbox, got %s", cfg.MailTo)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://staging.dorolabs.eu")
	t.Setenv("EMAIL_PROVIDER", " SendGrid ")
	t.Setenv("RESEND_API_KEY", "re_live_key")
	t.Setenv("MAIL_TIMEOUT", "3s")
	t.Setenv("MAIL_TO", "leads@dorolabs.eu")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env override, got %s", cfg.Env)
	}
	if cfg.CORSAllowedOrigin != "https://staging.dorolabs.eu" {
		t.Fatalf("expected origin override, got %s", cfg.CORSAllowedOrigin)
	}
	if cfg.EmailProvider != "sendgrid" {
		t.Fatalf("expected normalized provider, got %s", cfg.EmailProvider)
	}
	if cfg.ResendAPIKey != "re_live_key" {
		t.Fatalf("expected resend key override, got %s", cfg.ResendAPIKey)
	}
	if cfg.MailTimeout != 3*time.Second {
		t.Fatalf("expected mail timeout override, got %s", cfg.MailTimeout)
	}
	if cfg.MailTo != "leads@dorolabs.eu" {
		t.Fatalf("expected operator inbox override, got %s", cfg.MailTo)
	}
}
