package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dorolabs/site-backend/internal/api/router"
	appconfig "github.com/dorolabs/site-backend/internal/config"
	"github.com/dorolabs/site-backend/internal/contact"
	"github.com/dorolabs/site-backend/internal/mail"
	"github.com/dorolabs/site-backend/internal/observability/metrics"
	"github.com/dorolabs/site-backend/pkg/logging"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting dorolabs site-backend API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Metrics registry
	registry := prometheus.NewRegistry()
	contactMetrics := metrics.NewContactMetrics(registry)

	// Delivery client; nil means the handler fails closed per request
	sender := mail.BuildSender(cfg, logger)
	if sender == nil {
		logger.Error("email delivery credential missing, contact submissions will be rejected")
	}

	// Initialize handlers
	contactHandler := contact.NewHandler(contact.HandlerConfig{
		Sender:  sender,
		From:    cfg.MailFrom,
		To:      cfg.MailTo,
		Timeout: cfg.MailTimeout,
	}, logger, contactMetrics)

	// Setup router
	r := router.New(&router.Config{
		Logger:            logger,
		ContactHandler:    contactHandler,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		MetricsHandler:    promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
