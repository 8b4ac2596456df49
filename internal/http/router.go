package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"fixtures-service/internal/http/handlers"
	"fixtures-service/internal/http/middleware"
	"fixtures-service/internal/metrics"
)

// NewRouter assembles the public and admin routes. Admin routes are only
// mounted when an AdminHandler is provided.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger, recorder *metrics.Recorder) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.LoggingMiddleware(logger, recorder))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/fixtures", h.Fixtures)

	if admin != nil {
		r.Route("/admin", func(r chi.Router) {
			r.Get("/sources", admin.ListSources)
			r.Post("/sources/{id}/toggle", admin.ToggleSource)
			r.Post("/sources/{id}/test", admin.TestSource)
			r.Post("/refresh/gaa", admin.RefreshGAA)
		})
	}

	return r
}
