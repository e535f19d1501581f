package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crowdfund-lifecycle/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// exposing the lifecycle operations to operators and internal callers.
// Routes are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc    port.LifecycleUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.LifecycleUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sweep", h.handleSweep)
		r.Post("/reminders/verify-payment", h.handleReminders)
		r.Get("/campaigns/by-permalink/{permalink}", h.handleFindByPermalink)
		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Post("/evaluate", h.handleEvaluate)
			r.Get("/snapshot", h.handleSnapshot)
			r.Get("/totals", h.handleTotals)
			r.Post("/state", h.handleModerate)
			r.Post("/notifications/owner", h.handleNotifyOwner)
			r.Post("/notifications/backoffice", h.handleNotifyBackoffice)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
