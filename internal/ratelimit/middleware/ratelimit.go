package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"retention/internal/ratelimit/models"
	"retention/pkg/platform/httputil"
	"retention/pkg/requestcontext"
)

// BucketStore is a sliding-window counter keyed by caller and class.
type BucketStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error)
}

type Middleware struct {
	store    BucketStore
	limits   map[models.EndpointClass]models.Limit
	logger   *slog.Logger
	disabled bool
}

type Option func(*Middleware)

// WithDisabled disables rate limiting entirely (for testing/demo mode).
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) {
		m.disabled = disabled
	}
}

// WithLimits overrides the per-class budgets.
func WithLimits(limits map[models.EndpointClass]models.Limit) Option {
	return func(m *Middleware) {
		m.limits = limits
	}
}

func New(store BucketStore, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{
		store:  store,
		limits: models.DefaultLimits,
		logger: logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.disabled {
		logger.Info("rate limiting disabled")
	}
	return m
}

// Classify maps a request onto its endpoint class.
func Classify(r *http.Request) models.EndpointClass {
	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/records/destroy"):
		return models.ClassDestructive
	case r.Method == http.MethodGet,
		strings.HasSuffix(r.URL.Path, "/validate"),
		strings.HasSuffix(r.URL.Path, "/destruction-date"):
		return models.ClassRead
	default:
		return models.ClassWrite
	}
}

// RateLimitAuthenticated limits each user per endpoint class, falling back
// to the client IP when no user is in context. Store failures fail open.
func (m *Middleware) RateLimitAuthenticated() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m.disabled {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			class := Classify(r)
			limit, ok := m.limits[class]
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			key := "ip:" + requestcontext.ClientIP(ctx)
			if userID := requestcontext.UserID(ctx); !userID.IsNil() {
				key = "user:" + userID.String()
			}
			key += ":" + string(class)

			result, err := m.store.Allow(ctx, key, limit.Requests, limit.Window)
			if err != nil {
				m.logger.ErrorContext(ctx, "failed to check rate limit",
					"error", err,
					"class", class,
					"request_id", requestcontext.RequestID(ctx),
				)
				next.ServeHTTP(w, r)
				return
			}

			addRateLimitHeaders(w, result)

			if !result.Allowed {
				m.logger.WarnContext(ctx, "rate limit exceeded",
					"key", key,
					"request_id", requestcontext.RequestID(ctx),
				)
				writeRateLimitExceeded(w, result)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func addRateLimitHeaders(w http.ResponseWriter, result *models.RateLimitResult) {
	if result == nil {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func writeRateLimitExceeded(w http.ResponseWriter, result *models.RateLimitResult) {
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	httputil.WriteJSON(w, http.StatusTooManyRequests, &models.RateLimitExceededResponse{
		Error:      "rate_limit_exceeded",
		Message:    "You have exceeded your request quota for this operation.",
		QuotaLimit: result.Limit,
		QuotaReset: result.ResetAt,
		RetryAfter: result.RetryAfter,
	})
}
