// Package tx carries a SQL transaction through a context so Postgres stores
// join whatever unit of work the service opened. Work that must wait for
// the commit, such as mirroring audit events, is queued with Defer.
package tx

import (
	"context"
	"database/sql"
	"sync"
)

type ctxKey struct{}

// Querier is the subset of *sql.DB and *sql.Tx the stores use.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx stores tx in ctx. A nil tx leaves ctx unchanged.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, tx)
}

// From returns the transaction carried in ctx, if any.
func From(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(ctxKey{}).(*sql.Tx)
	return tx, ok
}

// Conn returns the transaction in ctx, or db when there is none.
func Conn(ctx context.Context, db *sql.DB) Querier {
	if tx, ok := From(ctx); ok {
		return tx
	}
	return db
}

type afterCommitKey struct{}

// AfterCommit queues work that may only run once the unit of work opened
// alongside it has committed.
type AfterCommit struct {
	mu  sync.Mutex
	fns []func(context.Context)
}

// WithAfterCommit returns a context that collects deferred work in the
// returned queue. The caller runs the queue after a successful commit and
// drops it otherwise.
func WithAfterCommit(ctx context.Context) (context.Context, *AfterCommit) {
	a := &AfterCommit{}
	return context.WithValue(ctx, afterCommitKey{}, a), a
}

// Defer queues fn on the AfterCommit carried in ctx. It reports false when
// ctx has none, in which case the caller should run fn itself.
func Defer(ctx context.Context, fn func(context.Context)) bool {
	a, ok := ctx.Value(afterCommitKey{}).(*AfterCommit)
	if !ok {
		return false
	}
	a.mu.Lock()
	a.fns = append(a.fns, fn)
	a.mu.Unlock()
	return true
}

// Run executes the queued work in order and empties the queue.
func (a *AfterCommit) Run(ctx context.Context) {
	a.mu.Lock()
	fns := a.fns
	a.fns = nil
	a.mu.Unlock()
	for _, fn := range fns {
		fn(ctx)
	}
}
