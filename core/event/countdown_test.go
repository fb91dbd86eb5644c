package event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdownEvent_ReleasesAtThreshold(t *testing.T) {
	c := NewCountdownEvent(3, 5)
	assert.False(t, c.IsSet())

	done := make(chan error, 1)
	go func() { done <- c.Wait(context.Background()) }()
	time.Sleep(10 * time.Millisecond)

	c.Signal() // 5 -> 4, still above limit
	select {
	case <-done:
		t.Fatal("resumed before threshold")
	case <-time.After(10 * time.Millisecond):
	}

	c.Signal() // 4 -> 3, at limit
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("never resumed at threshold")
	}
	assert.True(t, c.IsSet())
}

func TestCountdownEvent_SignalByJumpsThreshold(t *testing.T) {
	c := NewCountdownEvent(10, 30)
	done := make(chan error, 1)
	go func() { done <- c.Wait(context.Background()) }()
	time.Sleep(10 * time.Millisecond)

	c.SignalBy(20) // 30 -> 10
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("never resumed")
	}
}

func TestCountdownEvent_SignalByFloorsAtZero(t *testing.T) {
	c := NewCountdownEvent(0, 2)
	c.SignalBy(10)
	assert.Equal(t, int64(0), c.Count())
	assert.True(t, c.IsSet())
}

func TestCountdownEvent_IncrementUncrossesThreshold(t *testing.T) {
	c := NewCountdownEvent(5, 5)
	require.True(t, c.IsSet())

	c.Increment() // 5 -> 6, uncrosses the threshold
	assert.False(t, c.IsSet())
}

func TestCountdownEvent_IncrementDoesNotDisturbAlreadyResumedWaiters(t *testing.T) {
	c := NewCountdownEvent(5, 5)
	require.NoError(t, c.Wait(context.Background()))

	c.Increment()
	assert.False(t, c.IsSet())
}

func TestCountdownEvent_ResetUnsetsIt(t *testing.T) {
	c := NewCountdownEvent(0, 1)
	c.Signal()
	require.True(t, c.IsSet())

	c.Reset()
	assert.False(t, c.IsSet())
	assert.Equal(t, int64(1), c.Count())
}

func TestCountdownEvent_ResetToArbitraryValue(t *testing.T) {
	c := NewCountdownEvent(5, 10)
	assert.False(t, c.IsSet())

	c.ResetTo(5)
	assert.True(t, c.IsSet())
}

func TestCountdownEvent_ResetToRebasesInitial(t *testing.T) {
	c := NewCountdownEvent(5, 10)
	c.ResetTo(3)
	c.Signal()
	assert.Equal(t, int64(2), c.Count())

	c.Reset()
	assert.Equal(t, int64(3), c.Count(), "Reset must restore to the rebased baseline, not the construction-time initial")
}

func TestCountdownEvent_ResetToReleasesParkedWaiters(t *testing.T) {
	c := NewCountdownEvent(3, 10)
	done := make(chan error, 1)
	go func() { done <- c.Wait(context.Background()) }()
	time.Sleep(10 * time.Millisecond)

	c.ResetTo(2) // crosses the threshold under the registry lock
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("ResetTo crossing the threshold must release parked waiters")
	}
}
