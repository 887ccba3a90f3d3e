package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dorolabs/site-backend/internal/contact"
	httpmiddleware "github.com/dorolabs/site-backend/internal/http/middleware"
	"github.com/dorolabs/site-backend/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger            *logging.Logger
	ContactHandler    *contact.Handler
	CORSAllowedOrigin string
	MetricsHandler    http.Handler
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", cfg.ContactHandler.Health)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// Contact form endpoint; responses always carry the fixed CORS header
	// set, and preflight is answered inside the middleware.
	r.Route("/api/contact", func(r chi.Router) {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigin))
		r.MethodNotAllowed(contact.MethodNotAllowed)
		r.Post("/", cfg.ContactHandler.Submit)
	})

	return r
}
