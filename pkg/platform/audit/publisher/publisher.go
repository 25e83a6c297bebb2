// Package publisher is the front door for audit events. In sync mode Emit
// writes straight to the store; with WithAsyncBuffer events are queued and
// persisted by a background worker, and Close drains the queue.
package publisher

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	id "retention/pkg/domain"
	audit "retention/pkg/platform/audit"
	"retention/pkg/platform/audit/worker"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrBufferFull is returned by Emit in async mode when the queue is full.
var ErrBufferFull = errors.New("audit buffer full")

// Metrics counts emitted and dropped audit events.
type Metrics struct {
	Emitted prometheus.Counter
	Dropped prometheus.Counter
}

func NewMetrics() *Metrics {
	return &Metrics{
		Emitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "retention_audit_events_emitted_total",
			Help: "Total number of audit events accepted for persistence",
		}),
		Dropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "retention_audit_events_dropped_total",
			Help: "Total number of audit events dropped because the buffer was full",
		}),
	}
}

func (m *Metrics) incEmitted() {
	if m != nil {
		m.Emitted.Inc()
	}
}

func (m *Metrics) incDropped() {
	if m != nil {
		m.Dropped.Inc()
	}
}

type Publisher struct {
	store   audit.Store
	logger  *slog.Logger
	metrics *Metrics

	bufferSize int
	queue      chan audit.Event
	done       chan struct{}
	closeOnce  sync.Once
	mu         sync.RWMutex
	closed     bool
}

type Option func(*Publisher)

// WithAsyncBuffer enables async mode with a queue of size n.
func WithAsyncBuffer(n int) Option {
	return func(p *Publisher) {
		p.bufferSize = n
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(p *Publisher) {
		p.metrics = m
	}
}

func NewPublisher(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}
	if p.bufferSize > 0 {
		p.queue = make(chan audit.Event, p.bufferSize)
		p.done = make(chan struct{})
		w := worker.NewWorker(store, p.queue, p.logger)
		go func() {
			defer close(p.done)
			_ = w.Run(context.Background())
		}()
	}
	return p
}

// Emit stamps the event and persists or enqueues it. In async mode a full
// queue returns ErrBufferFull, or ctx.Err() if the context is already done.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}

	if p.queue == nil {
		if err := p.store.Append(ctx, event); err != nil {
			return err
		}
		p.metrics.incEmitted()
		return nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrBufferFull
	}
	select {
	case p.queue <- event:
		p.metrics.incEmitted()
		return nil
	default:
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	p.metrics.incDropped()
	if p.logger != nil {
		p.logger.WarnContext(ctx, "audit buffer full, dropping event", "action", event.Action)
	}
	return ErrBufferFull
}

// Close stops accepting events and waits for queued ones to be persisted.
func (p *Publisher) Close() {
	p.closeOnce.Do(func() {
		if p.queue == nil {
			return
		}
		p.mu.Lock()
		p.closed = true
		close(p.queue)
		p.mu.Unlock()
		<-p.done
	})
}
