package operation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asyncx"
)

func TestOperation_ResultBeforeStartIsEarlyInvoke(t *testing.T) {
	op := New(false)
	_, err := op.Result(context.Background())
	var earlyErr *asyncx.EarlyInvokeError
	assert.ErrorAs(t, err, &earlyErr)
}

func TestOperation_StartRunsBodyAndFinishes(t *testing.T) {
	op := New(false)
	assert.False(t, op.IsExecuting())
	assert.False(t, op.IsFinished())

	op.Start(context.Background(), func(ctx context.Context) error {
		return nil
	})

	bodyErr, err := op.Result(context.Background())
	require.NoError(t, err)
	assert.NoError(t, bodyErr)
	assert.True(t, op.IsFinished())
	assert.False(t, op.IsExecuting())
}

func TestOperation_SecondStartIsNoOp(t *testing.T) {
	op := New(false)
	ran := make(chan struct{}, 2)

	op.Start(context.Background(), func(ctx context.Context) error {
		ran <- struct{}{}
		return nil
	})
	_, _ = op.Result(context.Background())

	op.Start(context.Background(), func(ctx context.Context) error {
		ran <- struct{}{}
		return nil
	})

	assert.Equal(t, 1, len(ran))
}

func TestOperation_CancelBeforeStartSkipsBody(t *testing.T) {
	op := New(false)
	op.Cancel()
	assert.True(t, op.IsFinished())
	assert.True(t, op.IsCancelled())

	ran := false
	op.Start(context.Background(), func(ctx context.Context) error {
		ran = true
		return nil
	})
	assert.False(t, ran)
}

func TestOperation_CancelDuringExecutionPropagatesToBody(t *testing.T) {
	op := New(false)
	bodyCtxCancelled := make(chan struct{})

	op.Start(context.Background(), func(ctx context.Context) error {
		<-ctx.Done()
		close(bodyCtxCancelled)
		return ctx.Err()
	})

	time.Sleep(10 * time.Millisecond)
	op.Cancel()

	select {
	case <-bodyCtxCancelled:
	case <-time.After(time.Second):
		t.Fatal("body context never observed cancellation")
	}
	bodyErr, err := op.Result(context.Background())
	require.NoError(t, err)
	assert.Error(t, bodyErr)
	assert.True(t, op.IsCancelled())
}

func TestOperation_ResultWaitsForFinish(t *testing.T) {
	op := New(false)
	release := make(chan struct{})
	op.Start(context.Background(), func(ctx context.Context) error {
		<-release
		return errors.New("done")
	})

	resCh := make(chan error, 1)
	go func() {
		bodyErr, _ := op.Result(context.Background())
		resCh <- bodyErr
	}()

	select {
	case <-resCh:
		t.Fatal("result returned before body finished")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	select {
	case err := <-resCh:
		assert.EqualError(t, err, "done")
	case <-time.After(time.Second):
		t.Fatal("result never returned after finish")
	}
}

func TestOperation_ChildTrackingWaitsForGroup(t *testing.T) {
	op := New(true)
	childDone := make(chan struct{})

	op.Start(context.Background(), func(ctx context.Context) error {
		op.Group().Go(func() error {
			close(childDone)
			return nil
		})
		return nil
	})

	bodyErr, err := op.Result(context.Background())
	require.NoError(t, err)
	assert.NoError(t, bodyErr)
	select {
	case <-childDone:
	default:
		t.Fatal("result returned before tracked child finished")
	}
}
