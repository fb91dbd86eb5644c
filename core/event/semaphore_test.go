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

func TestSemaphore_WaitConsumesToken(t *testing.T) {
	s := NewSemaphore(1, 1)
	require.NoError(t, s.Wait(context.Background()))
	assert.Equal(t, 0, s.Available())
}

func TestSemaphore_SignalWakesOneBlockedWaiter(t *testing.T) {
	s := NewSemaphore(0, 1)
	done := make(chan error, 1)
	go func() { done <- s.Wait(context.Background()) }()
	time.Sleep(10 * time.Millisecond)

	s.Signal()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("waiter never resumed")
	}
	assert.Equal(t, 0, s.Available())
}

func TestSemaphore_SignalReplenishesWhenNoWaiters(t *testing.T) {
	s := NewSemaphore(0, 2)
	s.Signal()
	assert.Equal(t, 1, s.Available())
	s.Signal()
	assert.Equal(t, 2, s.Available())
	s.Signal()
	assert.Equal(t, 2, s.Available(), "must never exceed limit")
}

func TestSemaphore_BoundsConcurrency(t *testing.T) {
	const limit = 3
	s := NewSemaphore(limit, limit)

	var active, maxActive int
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, s.Wait(context.Background()))
			mu.Lock()
			active++
			if active > maxActive {
				maxActive = active
			}
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
			s.Signal()
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, maxActive, limit)
}

func TestSemaphore_WaitForZeroDurationTriesOnce(t *testing.T) {
	s := NewSemaphore(0, 1)
	res, err := s.WaitFor(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, asyncx.TimedOut, res)

	s.Signal()
	res, err = s.WaitFor(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, int(res))
}
