package middleware

import (
	"net/http"
	"strings"
)

const (
	allowedMethods  = "POST, OPTIONS"
	allowedHeaders  = "Content-Type"
	preflightMaxAge = "86400"
)

// CORS restricts the contact endpoint to a single fixed origin (the site's
// own domain). Every response carries the same header set; preflight
// requests are answered with 204 and never reach the handler.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	origin := strings.TrimSpace(allowedOrigin)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Max-Age", preflightMaxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
