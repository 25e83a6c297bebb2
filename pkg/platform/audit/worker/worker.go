package worker

import (
	"context"
	"log/slog"

	audit "retention/pkg/platform/audit"
)

// Worker drains audit events from a channel into a store. It stops when the
// inbox is closed or the context is cancelled. Append failures are logged
// and the event is dropped.
type Worker struct {
	store  audit.Store
	inbox  <-chan audit.Event
	logger *slog.Logger
}

func NewWorker(store audit.Store, inbox <-chan audit.Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// Run returns nil when the inbox is closed and ctx.Err() on cancellation.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.inbox:
			if !ok {
				return nil
			}
			if err := w.store.Append(ctx, event); err != nil && w.logger != nil {
				w.logger.ErrorContext(ctx, "failed to persist audit event",
					"action", event.Action,
					"user_id", event.UserID,
					"error", err,
				)
			}
		}
	}
}
