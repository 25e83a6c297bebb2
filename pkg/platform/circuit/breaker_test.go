package circuit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewBreakerIsClosed(t *testing.T) {
	b := New("audit-kafka")
	assert.Equal(t, "audit-kafka", b.Name())
	assert.Equal(t, StateClosed, b.State())
	assert.True(t, b.Allow())
}

func TestFailureThreshold(t *testing.T) {
	b := New("sink", WithFailureThreshold(3))

	for range 2 {
		useFallback, change := b.RecordFailure()
		assert.False(t, useFallback)
		assert.False(t, change.Opened)
	}

	useFallback, change := b.RecordFailure()
	assert.True(t, useFallback)
	assert.True(t, change.Opened)

	t.Run("further failures report no transition", func(t *testing.T) {
		useFallback, change := b.RecordFailure()
		assert.True(t, useFallback)
		assert.False(t, change.Opened)
	})
}

func TestSuccessBetweenFailuresRestartsCount(t *testing.T) {
	b := New("sink", WithFailureThreshold(2))
	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()
	assert.False(t, b.IsOpen())
	b.RecordFailure()
	assert.True(t, b.IsOpen())
}

func TestRecovery(t *testing.T) {
	b := New("sink", WithFailureThreshold(1), WithSuccessThreshold(2))
	b.RecordFailure()

	usePrimary, change := b.RecordSuccess()
	assert.False(t, usePrimary)
	assert.False(t, change.Closed)

	t.Run("a failure during recovery restarts it", func(t *testing.T) {
		b.RecordFailure()
		usePrimary, _ := b.RecordSuccess()
		assert.False(t, usePrimary)
	})

	usePrimary, change = b.RecordSuccess()
	assert.True(t, usePrimary)
	assert.True(t, change.Closed)
	assert.Equal(t, StateClosed, b.State())
}

func TestAllowProbesAfterCooldown(t *testing.T) {
	b := New("sink", WithFailureThreshold(1), WithCooldown(20*time.Millisecond))
	b.RecordFailure()
	assert.False(t, b.Allow())

	time.Sleep(30 * time.Millisecond)
	assert.True(t, b.Allow(), "one probe once the cooldown elapsed")
	assert.False(t, b.Allow(), "next probe waits another cooldown")
}

func TestReset(t *testing.T) {
	b := New("sink", WithFailureThreshold(1))
	b.RecordFailure()
	b.Reset()
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, "closed", b.State().String())
}
