package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"retention/pkg/platform/middleware/auth"
	"retention/pkg/requestcontext"
	"retention/pkg/testutil"
)

type staticValidator struct{}

func (staticValidator) ValidateToken(token string) (*auth.JWTClaims, error) {
	if token != "good" {
		return nil, errors.New("invalid token")
	}
	return &auth.JWTClaims{UserID: "4", JTI: "j"}, nil
}

type whoami struct{}

func (whoami) Register(r chi.Router) {
	r.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(requestcontext.UserID(r.Context()).String()))
	})
}

func newTestRouter(checks map[string]HealthCheck) http.Handler {
	return NewRouter(Deps{
		Logger:       slog.New(slog.DiscardHandler),
		JWTValidator: staticValidator{},
		Checks:       checks,
		Modules:      []Registrar{whoami{}},
	})
}

func TestHealthz(t *testing.T) {
	t.Run("all checks pass", func(t *testing.T) {
		router := newTestRouter(map[string]HealthCheck{"db": func(context.Context) error { return nil }})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("failing check degrades", func(t *testing.T) {
		router := newTestRouter(map[string]HealthCheck{"redis": func(context.Context) error { return errors.New("dial tcp: refused") }})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "refused")
	})
}

func TestMetricsEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIRequiresBearerToken(t *testing.T) {
	router := newTestRouter(nil)

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "4", rec.Body.String())
	})
}

func TestRateLimitRunsAfterAuth(t *testing.T) {
	testutil.Given(t, "a router with a limiter that rejects everything", func(t *testing.T) {
		var seen []string
		router := NewRouter(Deps{
			Logger:       slog.New(slog.DiscardHandler),
			JWTValidator: staticValidator{},
			Modules:      []Registrar{whoami{}},
			RateLimit: func(http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					seen = append(seen, requestcontext.UserID(r.Context()).String())
					w.WriteHeader(http.StatusTooManyRequests)
				})
			},
		})

		testutil.When(t, "an unauthenticated request arrives", func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))

			testutil.Then(t, "auth rejects it before the limiter", func(t *testing.T) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Empty(t, seen)
			})
		})

		testutil.When(t, "an authenticated request arrives", func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			req.Header.Set("Authorization", "Bearer good")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			testutil.Then(t, "the limiter sees the user", func(t *testing.T) {
				assert.Equal(t, http.StatusTooManyRequests, rec.Code)
				assert.Equal(t, []string{"4"}, seen)
			})
		})
	})
}
