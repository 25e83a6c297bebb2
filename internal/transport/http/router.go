// Package httptransport assembles the public router: shared middleware,
// health and metrics endpoints, and the authenticated API group.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"retention/internal/platform/metrics"
	"retention/pkg/platform/httputil"
	"retention/pkg/platform/middleware/auth"
	"retention/pkg/platform/middleware/metadata"
	"retention/pkg/platform/middleware/request"
	"retention/pkg/platform/middleware/requesttime"
)

// Registrar mounts a module's routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Deps are the router's collaborators. Checks maps a dependency name to
// its probe.
type Deps struct {
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	JWTValidator auth.JWTValidator
	Checks       map[string]HealthCheck
	// RateLimit runs after authentication so callers are limited per user.
	// Nil disables it.
	RateLimit func(http.Handler) http.Handler
	Modules   []Registrar
}

// NewRouter wires all public endpoints.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(request.Recovery(d.Logger))
	r.Use(request.RequestID)
	r.Use(request.Logger(d.Logger))
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(request.Latency(d.Metrics))

	r.Get("/healthz", health(d.Checks))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(api chi.Router) {
		api.Use(request.Timeout(30 * time.Second))
		api.Use(request.ContentTypeJSON)
		api.Use(auth.RequireAuth(d.JWTValidator, d.Logger))
		if d.RateLimit != nil {
			api.Use(d.RateLimit)
		}
		for _, m := range d.Modules {
			m.Register(api)
		}
	})
	return r
}

func health(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status = http.StatusServiceUnavailable
				results[name] = err.Error()
				continue
			}
			results[name] = "ok"
		}
		state := "ok"
		if status != http.StatusOK {
			state = "degraded"
		}
		httputil.WriteJSON(w, status, map[string]any{"status": state, "checks": results})
	}
}
