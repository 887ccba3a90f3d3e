package config

import (
	"os"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port              string
	Env               string
	LogLevel          string
	CORSAllowedOrigin string

	// Email delivery configuration
	EmailProvider string // "resend", "sendgrid", or "stub"
	MailFrom      string
	MailTo        string
	MailTimeout   time.Duration

	// Resend configuration
	ResendAPIKey  string
	ResendBaseURL string

	// SendGrid fallback configuration
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "https://www.dorolabs.eu"),

		EmailProvider: strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "resend"))),
		MailFrom:      getEnv("MAIL_FROM", "DoroLabs <onboarding@resend.dev>"),
		MailTo:        getEnv("MAIL_TO", "dorolabs.ac@gmail.com"),
		MailTimeout:   getEnvAsDuration("MAIL_TIMEOUT", 10*time.Second),

		ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
		ResendBaseURL: getEnv("RESEND_BASE_URL", ""),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "DoroLabs"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
