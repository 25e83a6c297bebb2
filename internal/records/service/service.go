// Package service orchestrates the record register: it resolves entities
// through the stores, hands their attributes to the rule engine
// (classification, numbering, retention, authz) and records the outcome.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"retention/internal/numbering"
	"retention/internal/records/metrics"
	id "retention/pkg/domain"
	dErrors "retention/pkg/domain-errors"
	audit "retention/pkg/platform/audit"
	"retention/pkg/platform/sentinel"
	txcontext "retention/pkg/platform/tx"
	"retention/pkg/requestcontext"
)

// DefaultMaxGenerateAttempts bounds retries when a generated number collides.
const DefaultMaxGenerateAttempts = 5

type Service struct {
	store           Store
	tx              TxRunner
	classifications ClassificationChecker
	gate            Authorizer
	locations       LocationLookup

	auditor     AuditPublisher
	auditReader AuditReader
	logger      *slog.Logger
	metrics     *metrics.Metrics
	random      numbering.RandomSource
	maxAttempts int
	tracer      trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) {
		s.auditor = p
	}
}

// WithAuditReader enables RecentAuditEvents.
func WithAuditReader(r AuditReader) Option {
	return func(s *Service) {
		s.auditReader = r
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithRandomSource replaces the entropy used to fill generated numbers.
func WithRandomSource(r numbering.RandomSource) Option {
	return func(s *Service) {
		s.random = r
	}
}

func WithMaxGenerateAttempts(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

func New(store Store, tx TxRunner, classifications ClassificationChecker, gate Authorizer, locations LocationLookup, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if tx == nil {
		return nil, errors.New("tx runner is required")
	}
	if classifications == nil {
		return nil, errors.New("classification checker is required")
	}
	if gate == nil {
		return nil, errors.New("authorizer is required")
	}
	if locations == nil {
		return nil, errors.New("location lookup is required")
	}
	s := &Service{
		store:           store,
		tx:              tx,
		classifications: classifications,
		gate:            gate,
		locations:       locations,
		logger:          slog.New(slog.DiscardHandler),
		random:          numbering.EntropySource(),
		maxAttempts:     DefaultMaxGenerateAttempts,
		tracer:          otel.Tracer("retention/internal/records/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// startSpan opens a span and returns a finisher that records the error and
// the operation latency.
func (s *Service) startSpan(ctx context.Context, operation string) (context.Context, func(*error)) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "records."+operation)
	return ctx, func(errp *error) {
		if errp != nil && *errp != nil {
			span.RecordError(*errp)
			span.SetStatus(codes.Error, string(dErrors.CodeOf(*errp)))
		}
		span.End()
		s.metrics.ObserveOperation(operation, time.Since(start))
	}
}

// runInTx runs fn as one unit of work. Audit mirror writes queued inside it
// are released only after the runner reports a commit.
func (s *Service) runInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, pending := txcontext.WithAfterCommit(ctx)
	if err := s.tx.RunInTx(ctx, fn); err != nil {
		return err
	}
	pending.Run(ctx)
	return nil
}

// emit publishes an audit event. Failures are logged and swallowed except
// where the caller needs them.
func (s *Service) emit(ctx context.Context, event audit.Event) error {
	if s.auditor == nil {
		return nil
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit event",
			"action", event.Action,
			"user_id", event.UserID,
			"error", err,
		)
		return err
	}
	return nil
}

// deny logs, counts and audits a refused operation and returns CodeForbidden.
func (s *Service) deny(ctx context.Context, userID id.UserID, operation, subject, reason string) error {
	s.metrics.IncAccessDenied(operation)
	s.logger.WarnContext(ctx, "access denied",
		"operation", operation,
		"user_id", userID,
		"subject", subject,
		"reason", reason,
		"client_ip", requestcontext.ClientIP(ctx),
		"user_agent", requestcontext.UserAgent(ctx),
		"request_id", requestcontext.RequestID(ctx),
	)
	_ = s.emit(ctx, audit.Event{
		UserID:   userID,
		Subject:  subject,
		Action:   string(audit.EventAccessDenied),
		Decision: "denied",
		Reason:   reason,
	})
	return dErrors.New(dErrors.CodeForbidden, reason)
}

// translate maps store sentinels onto domain codes.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, what+" not found")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, what+" already exists")
	case errors.Is(err, sentinel.ErrInvalidState):
		return dErrors.Wrap(err, dErrors.CodeInvalidState, fmt.Sprintf("%s is in the wrong state", what))
	default:
		var de *dErrors.Error
		if errors.As(err, &de) {
			return err
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to access "+what)
	}
}
