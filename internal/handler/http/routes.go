package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		h.withTraceID,
		withLogging,
		withMetrics,
		h.withCORS(),
		middleware.Compress(5),
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/login", h.login)
		r.Post("/login", h.login)
		r.Post("/api/user", h.register)

		r.Get("/api/google/login", h.googleLogin)
		r.Get("/oauth/login", h.googleLogin)
		r.Get("/api/google/auth/callback", h.googleCallback)
		r.Get("/oauth/callback", h.googleCallback)

		r.Get("/api/version", h.getServerVersion)
		r.Method("GET", "/metrics", promhttp.Handler())
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user", h.getUser)
		r.Put("/api/user", h.updateUser)
		r.Delete("/api/user", h.deleteUser)
	})

	router.MethodNotAllowed(methodNotFound(router))

	return router
}
