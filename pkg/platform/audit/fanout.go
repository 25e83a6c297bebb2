package audit

import (
	"context"
	"log/slog"

	id "retention/pkg/domain"
	txcontext "retention/pkg/platform/tx"
)

// Fanout writes to a primary Store and mirrors each event to secondary
// sinks. Only a primary failure is returned; mirror failures are logged.
// Inside a unit of work that carries an AfterCommit queue the mirrors are
// deferred until it commits, so they never see rolled back events.
type Fanout struct {
	primary Store
	mirrors []Appender
	logger  *slog.Logger
}

func NewFanout(primary Store, logger *slog.Logger, mirrors ...Appender) *Fanout {
	return &Fanout{primary: primary, mirrors: mirrors, logger: logger}
}

func (f *Fanout) Append(ctx context.Context, event Event) error {
	if err := f.primary.Append(ctx, event); err != nil {
		return err
	}
	if len(f.mirrors) == 0 {
		return nil
	}
	if !txcontext.Defer(ctx, func(ctx context.Context) { f.mirror(ctx, event) }) {
		f.mirror(ctx, event)
	}
	return nil
}

func (f *Fanout) mirror(ctx context.Context, event Event) {
	for _, m := range f.mirrors {
		if err := m.Append(ctx, event); err != nil && f.logger != nil {
			f.logger.WarnContext(ctx, "audit mirror append failed",
				"action", event.Action,
				"error", err,
			)
		}
	}
}

func (f *Fanout) ListByUser(ctx context.Context, userID id.UserID) ([]Event, error) {
	return f.primary.ListByUser(ctx, userID)
}

func (f *Fanout) ListRecent(ctx context.Context, limit int) ([]Event, error) {
	return f.primary.ListRecent(ctx, limit)
}
