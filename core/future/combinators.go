package future

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/asyncx"
)

// All resolves once every input future has settled successfully, with its
// values in original input order. The first failure cancels every other
// in-flight Get via the combinator's internal errgroup and propagates that
// failure.
func All[T any](ctx context.Context, futures ...*Future[T]) *Future[[]T] {
	out := New[[]T]()
	group, gctx := errgroup.WithContext(ctx)
	values := make([]T, len(futures))

	for i, fut := range futures {
		i, fut := i, fut
		group.Go(func() error {
			v, err := fut.Get(gctx)
			if err != nil {
				return err
			}
			values[i] = v
			return nil
		})
	}

	go func() {
		err := group.Wait()
		if err != nil {
			out.Fulfill(nil, err)
			return
		}
		out.Fulfill(values, nil)
	}()
	return out
}

// AllSettled resolves once every input future has settled, successfully or
// not, with one Result per input in original order. It never fails.
func AllSettled[T any](ctx context.Context, futures ...*Future[T]) *Future[[]Result[T]] {
	out := New[[]Result[T]]()
	results := make([]Result[T], len(futures))
	group, gctx := errgroup.WithContext(ctx)

	for i, fut := range futures {
		i, fut := i, fut
		group.Go(func() error {
			v, err := fut.Get(gctx)
			results[i] = Result[T]{Value: v, Err: err}
			return nil
		})
	}

	go func() {
		_ = group.Wait()
		out.Fulfill(results, nil)
	}()
	return out
}

// Race resolves with whichever input future settles first, value or error,
// and cancels every other in-flight Get.
func Race[T any](ctx context.Context, futures ...*Future[T]) *Future[T] {
	out := New[T]()
	rctx, cancel := context.WithCancel(ctx)

	go func() {
		defer cancel()
		if len(futures) == 0 {
			var zero T
			out.Fulfill(zero, asyncx.NewCancellationError(nil))
			return
		}

		type settled struct {
			v   T
			err error
		}
		results := make(chan settled, len(futures))
		for _, fut := range futures {
			fut := fut
			go func() {
				v, err := fut.Get(rctx)
				select {
				case results <- settled{v, err}:
				case <-rctx.Done():
				}
			}()
		}

		select {
		case r := <-results:
			out.Fulfill(r.v, r.err)
		case <-ctx.Done():
			var zero T
			out.Fulfill(zero, asyncx.NewCancellationError(ctx.Err()))
		}
	}()
	return out
}

// Any resolves with whichever input future is the first to settle with a
// value. If every input fails, Any resolves with a *asyncx.CancellationError.
func Any[T any](ctx context.Context, futures ...*Future[T]) *Future[T] {
	out := New[T]()

	if len(futures) == 0 {
		var zero T
		out.Fulfill(zero, asyncx.NewCancellationError(nil))
		return out
	}

	actx, cancel := context.WithCancel(ctx)
	go func() {
		defer cancel()

		type settled struct {
			v   T
			err error
		}
		results := make(chan settled, len(futures))
		for _, fut := range futures {
			fut := fut
			go func() {
				v, err := fut.Get(actx)
				select {
				case results <- settled{v, err}:
				case <-actx.Done():
				}
			}()
		}

		remaining := len(futures)
		for remaining > 0 {
			select {
			case r := <-results:
				remaining--
				if r.err == nil {
					out.Fulfill(r.v, nil)
					return
				}
			case <-ctx.Done():
				var zero T
				out.Fulfill(zero, asyncx.NewCancellationError(ctx.Err()))
				return
			}
		}
		var zero T
		out.Fulfill(zero, asyncx.NewCancellationError(nil))
	}()
	return out
}
