package audit

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "retention/pkg/domain"
	txcontext "retention/pkg/platform/tx"
)

func TestAuditEventCategory(t *testing.T) {
	assert.Equal(t, CategoryCompliance, EventRecordsDestroyed.Category())
	assert.Equal(t, CategoryCompliance, EventRecordClosed.Category())
	assert.Equal(t, CategorySecurity, EventAccessDenied.Category())
	assert.Equal(t, CategoryOperations, EventNumberGenerated.Category())
	assert.Equal(t, CategoryOperations, AuditEvent("something_else").Category())
}

type sliceStore struct {
	events []Event
	err    error
}

func (s *sliceStore) Append(_ context.Context, e Event) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, e)
	return nil
}

func (s *sliceStore) ListByUser(_ context.Context, userID id.UserID) ([]Event, error) {
	var out []Event
	for _, e := range s.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *sliceStore) ListRecent(_ context.Context, limit int) ([]Event, error) {
	out := slices.Clone(s.events)
	slices.Reverse(out)
	return out[:min(limit, len(out))], nil
}

func TestFanout(t *testing.T) {
	ctx := context.Background()

	t.Run("mirrors every event", func(t *testing.T) {
		primary, mirror := &sliceStore{}, &sliceStore{}
		f := NewFanout(primary, nil, mirror)

		require.NoError(t, f.Append(ctx, Event{UserID: 1, Action: "a"}))
		assert.Len(t, primary.events, 1)
		assert.Len(t, mirror.events, 1)

		got, err := f.ListByUser(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, got, 1)

		recent, err := f.ListRecent(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, recent, 1)
	})

	t.Run("mirror failure is not returned", func(t *testing.T) {
		primary := &sliceStore{}
		f := NewFanout(primary, nil, &sliceStore{err: errors.New("broker down")})
		assert.NoError(t, f.Append(ctx, Event{Action: "a"}))
		assert.Len(t, primary.events, 1)
	})

	t.Run("primary failure stops the write", func(t *testing.T) {
		mirror := &sliceStore{}
		f := NewFanout(&sliceStore{err: errors.New("db down")}, nil, mirror)
		assert.Error(t, f.Append(ctx, Event{Action: "a"}))
		assert.Empty(t, mirror.events)
	})
	t.Run("mirrors wait for the unit of work to commit", func(t *testing.T) {
		primary, mirror := &sliceStore{}, &sliceStore{}
		f := NewFanout(primary, nil, mirror)
		txCtx, pending := txcontext.WithAfterCommit(ctx)

		require.NoError(t, f.Append(txCtx, Event{Action: "a"}))
		assert.Len(t, primary.events, 1)
		assert.Empty(t, mirror.events)

		pending.Run(ctx)
		assert.Len(t, mirror.events, 1)
	})
}
