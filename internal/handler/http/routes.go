package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// probes and build info stay open: the reachability watcher pings
	// before any token is configured
	router.Group(func(r chi.Router) {
		r.Get("/ping", h.ping)
		r.Get("/api/version", h.getServerVersion)
	})

	// envelope routes; the account is resolved from the bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/vault", h.fetchVault)
		r.Put("/api/vault", h.replaceVault)
		r.Get("/api/vault/salt", h.getSalt)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
