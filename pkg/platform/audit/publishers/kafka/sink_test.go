package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "retention/pkg/platform/audit"
	"retention/pkg/platform/circuit"
)

func TestEncode(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	raw, err := encode(audit.Event{
		ID:        "evt-1",
		Category:  audit.CategoryCompliance,
		Timestamp: ts,
		UserID:    12,
		Subject:   "records:3,4",
		Action:    string(audit.EventRecordsDestroyed),
		Decision:  "destroyed",
	})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "evt-1", got["id"])
	assert.Equal(t, "compliance", got["category"])
	assert.Equal(t, "2024-03-01T10:00:00Z", got["timestamp"])
	assert.Equal(t, float64(12), got["user_id"])
	assert.Equal(t, "records_destroyed", got["action"])
	assert.NotContains(t, got, "reason")
}

func TestAppendShortCircuitsWhenOpen(t *testing.T) {
	breaker := circuit.New("audit-kafka", circuit.WithFailureThreshold(1), circuit.WithCooldown(time.Hour))
	breaker.RecordFailure()

	sink := NewSink(nil, "retention.audit", WithBreaker(breaker))
	err := sink.Append(context.Background(), audit.Event{Action: string(audit.EventRecordCreated)})
	assert.ErrorIs(t, err, ErrCircuitOpen)
}
