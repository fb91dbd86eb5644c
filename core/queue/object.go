package queue

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/asyncx"
)

// AsObject adapts "wait for admission under flags, then release
// immediately" onto asyncx.AsyncObject, for uniformity with the other
// primitives' Wait/WaitFor surface. Signal is intentionally unsupported:
// a TaskQueue's concurrency slots are released only by the completion
// protocol at the end of a real submission's body, never by an external
// caller reaching in to free one early.
func (q *TaskQueue) AsObject(flags Flags) asyncx.AsyncObject {
	return queueObject{q: q, flags: flags}
}

type queueObject struct {
	q     *TaskQueue
	flags Flags
}

func (o queueObject) Signal() {
	panic("asyncx: TaskQueue has no external Signal; admission is released only by completion")
}

func (o queueObject) Wait(ctx context.Context) error {
	_, err := Exec(ctx, o.q, func(context.Context) (struct{}, error) {
		return struct{}{}, nil
	}, o.flags)
	return err
}

func (o queueObject) WaitFor(ctx context.Context, d time.Duration) (asyncx.WaitResult, error) {
	if d <= 0 {
		admitted := false
		_, err := o.q.reg.Suspend(ctx, uuid.New(), func(waiting int) (bool, struct{}, error) {
			admitted = waiting == 0 && o.q.admitLocked(o.flags) && o.q.sem.TryAcquire(1)
			if admitted {
				o.q.admitLockedCommit(o.flags)
			}
			return true, struct{}{}, nil
		})
		if err != nil || !admitted {
			return asyncx.TimedOut, err
		}
		o.q.complete(o.flags)
		return asyncx.Success, nil
	}
	bounded, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	err := o.Wait(bounded)
	if err == nil {
		return asyncx.Success, nil
	}
	if ctx.Err() != nil {
		return asyncx.TimedOut, asyncx.NewCancellationError(ctx.Err())
	}
	return asyncx.TimedOut, asyncx.NewDurationTimeoutError(d)
}
