package event

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asyncx"
)

func TestEvent_WaitBlocksUntilSignal(t *testing.T) {
	e := NewEvent()
	assert.False(t, e.IsSet())

	done := make(chan error, 1)
	go func() { done <- e.Wait(context.Background()) }()

	select {
	case <-done:
		t.Fatal("wait returned before signal")
	case <-time.After(20 * time.Millisecond):
	}

	e.Signal()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("wait never returned after signal")
	}
	assert.True(t, e.IsSet())
}

func TestEvent_WaitReturnsImmediatelyWhenAlreadySet(t *testing.T) {
	e := NewEvent()
	e.Signal()

	err := e.Wait(context.Background())
	assert.NoError(t, err)
}

func TestEvent_SignalIsIdempotent(t *testing.T) {
	e := NewEvent()
	e.Signal()
	e.Signal()
	assert.True(t, e.IsSet())
}

func TestEvent_WaitForTimesOut(t *testing.T) {
	e := NewEvent()
	res, err := e.WaitFor(context.Background(), 10*time.Millisecond)
	require.Error(t, err)
	assert.Equal(t, asyncx.TimedOut, res)
}

func TestEvent_WaitForZeroDurationNoTabling(t *testing.T) {
	e := NewEvent()
	res, err := e.WaitFor(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, asyncx.TimedOut, res)

	e.Signal()
	res, err = e.WaitFor(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, asyncx.Success, res)
}

func TestEvent_CancellationDoesNotDisturbOtherWaiters(t *testing.T) {
	e := NewEvent()
	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	cancelledErr := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		cancelledErr <- e.Wait(ctx)
	}()

	otherDone := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		otherDone <- e.Wait(context.Background())
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	require.Error(t, <-cancelledErr)

	e.Signal()
	require.NoError(t, <-otherDone)
	wg.Wait()
}

func TestEvent_BroadcastsToAllWaiters(t *testing.T) {
	e := NewEvent()
	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, e.Wait(context.Background()))
		}()
	}
	time.Sleep(20 * time.Millisecond)
	e.Signal()

	waitDone := make(chan struct{})
	go func() { wg.Wait(); close(waitDone) }()
	select {
	case <-waitDone:
	case <-time.After(time.Second):
		t.Fatal("not all waiters were resumed")
	}
}
