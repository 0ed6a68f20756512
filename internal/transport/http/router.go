// Package httptransport assembles the HTTP surface: middleware chain,
// module routes, health and metrics endpoints.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/platform/metrics"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/platform/middleware"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/transport/http/shared"
)

const requestTimeout = 30 * time.Second

// Registrar is implemented by every module handler.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck probes one dependency; the name keys the health response.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Router holds everything the HTTP surface needs.
type Router struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	handlers []Registrar
	checks   []HealthCheck
}

func NewRouter(logger *slog.Logger, m *metrics.Metrics, handlers []Registrar, checks []HealthCheck) *Router {
	return &Router{logger: logger, metrics: m, handlers: handlers, checks: checks}
}

// Build wires the middleware chain and mounts every module's routes.
func (rt *Router) Build() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.ContentTypeJSON)
	r.Use(middleware.LatencyMiddleware(rt.metrics))

	for _, h := range rt.handlers {
		h.Register(r)
	}

	r.Get("/healthz", rt.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

// handleHealth reports per-dependency status. Any failing check turns the
// response 503 so load balancers stop routing here.
func (rt *Router) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	deps := make(map[string]string, len(rt.checks))
	for _, check := range rt.checks {
		if err := check.Check(ctx); err != nil {
			rt.logger.WarnContext(ctx, "health check failed",
				"dependency", check.Name,
				"error", err.Error(),
			)
			deps[check.Name] = "unhealthy"
			status = http.StatusServiceUnavailable
			continue
		}
		deps[check.Name] = "ok"
	}

	body := map[string]any{
		"status":       "ok",
		"dependencies": deps,
	}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	shared.WriteJSON(w, status, body)
}
