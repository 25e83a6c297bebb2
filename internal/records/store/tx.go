package store

import (
	"context"
	"database/sql"
	"sync"
	"time"

	dErrors "retention/pkg/domain-errors"
	txcontext "retention/pkg/platform/tx"
)

const defaultTxTimeout = 5 * time.Second

// MemoryTx serialises transactional work against the in-memory stores with
// a single lock. It gives the same all-or-nothing shape as PostgresTx for
// the check-then-write sequences the service runs.
type MemoryTx struct {
	mu      sync.Mutex
	timeout time.Duration
}

func NewMemoryTx() *MemoryTx {
	return &MemoryTx{}
}

func (t *MemoryTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel, err := prepareTxContext(ctx, t.timeout)
	if err != nil {
		return err
	}
	defer cancel()

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	return fn(ctx)
}

// PostgresTx runs fn inside a database transaction carried in the context,
// where the Postgres stores pick it up.
type PostgresTx struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresTx(db *sql.DB) *PostgresTx {
	return &PostgresTx{db: db}
}

func (t *PostgresTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel, err := prepareTxContext(ctx, t.timeout)
	if err != nil {
		return err
	}
	defer cancel()

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(txcontext.WithTx(ctx, tx)); err != nil {
		return err
	}
	return tx.Commit()
}

func prepareTxContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc, error) {
	if err := ctx.Err(); err != nil {
		return ctx, func() {}, dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	if timeout == 0 {
		timeout = defaultTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, cancel, nil
}
