package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "retention/pkg/platform/audit"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2030, time.June, 1, 12, 0, 0, 0, time.UTC)
	store := NewInMemoryStore()

	for i, e := range []audit.Event{
		{UserID: 1, Action: string(audit.EventRecordCreated), Timestamp: base},
		{UserID: 2, Action: string(audit.EventAccessDenied), Timestamp: base.Add(time.Minute)},
		{UserID: 1, Action: string(audit.EventRecordClosed), Timestamp: base.Add(time.Minute)},
		{UserID: 1, Action: string(audit.EventRecordsDestroyed), Timestamp: base.Add(-time.Hour)},
	} {
		require.NoError(t, store.Append(ctx, e), "event %d", i)
	}

	t.Run("list by user keeps append order", func(t *testing.T) {
		events, err := store.ListByUser(ctx, 1)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, string(audit.EventRecordCreated), events[0].Action)
		assert.Equal(t, string(audit.EventRecordsDestroyed), events[2].Action)
	})

	t.Run("recent is newest first", func(t *testing.T) {
		events, err := store.ListRecent(ctx, 3)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, string(audit.EventRecordClosed), events[0].Action, "later append wins a timestamp tie")
		assert.Equal(t, string(audit.EventAccessDenied), events[1].Action)
		assert.Equal(t, string(audit.EventRecordCreated), events[2].Action)
	})

	t.Run("unknown user has no events", func(t *testing.T) {
		events, err := store.ListByUser(ctx, 99)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
