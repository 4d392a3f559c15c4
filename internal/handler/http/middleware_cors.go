package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows the configured origins to call the API from a browser.
// Without configured origins no CORS headers are sent.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	if len(h.allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	})
}
