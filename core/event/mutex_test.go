package event

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutex_ExclusiveAccess(t *testing.T) {
	m := NewMutex()
	assert.False(t, m.IsLocked())

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, m.Lock(context.Background()))
			counter++
			m.Unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
}

func TestMutex_SecondLockBlocksUntilUnlock(t *testing.T) {
	m := NewMutex()
	require.NoError(t, m.Lock(context.Background()))

	done := make(chan error, 1)
	go func() { done <- m.Lock(context.Background()) }()

	select {
	case <-done:
		t.Fatal("second lock acquired while held")
	case <-time.After(20 * time.Millisecond):
	}

	m.Unlock()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("second lock never acquired after unlock")
	}
}

func TestMutex_HolderMarkerIsAdvisory(t *testing.T) {
	m := NewMutex()
	assert.Equal(t, "", m.Holder())
	m.MarkHolder("worker-1")
	assert.Equal(t, "worker-1", m.Holder())
}
