package queue

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/dmitrymomot/asyncx"
	"github.com/dmitrymomot/asyncx/core/logger"
	"github.com/dmitrymomot/asyncx/core/suspend"
)

// queueTag is the admission metadata tabled alongside a waiter's slot in
// the shared registry. It never crosses the registry's lock boundary on
// its own: every read or write happens from inside a register/SignalWhile
// callback, which already holds that lock.
type queueTag struct {
	flags    Flags
	priority Priority
	caller   *asyncx.CallerInfo
}

// TaskQueue is a bounded-admission executor. Submissions whose flags and
// current queue state satisfy the admission predicate run immediately;
// everything else is tabled in strict FIFO order of successful tabling and
// released by the completion protocol.
type TaskQueue struct {
	reg            *suspend.Registry[uuid.UUID, struct{}]
	blocked        bool
	currentRunning int
	tags           map[uuid.UUID]*queueTag
	defaultPri     Priority
	sem            *semaphore.Weighted
	logger         *slog.Logger
}

// New constructs a TaskQueue with a concurrency budget gated by a
// golang.org/x/sync/semaphore.Weighted sized to maxConcurrency. The default
// priority is PriorityDefault unless WithDefaultPriority overrides it. maxConcurrency <= 0 means effectively unbounded,
// matching spec behavior where the only admission gates are blocked/
// barrier/queue-empty.
func New(maxConcurrency int, opts ...Option) *TaskQueue {
	cfg := &config{defaultPriority: PriorityDefault, logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 1 << 30
	}
	return &TaskQueue{
		reg:        suspend.New[uuid.UUID, struct{}](),
		tags:       make(map[uuid.UUID]*queueTag),
		defaultPri: cfg.defaultPriority,
		sem:        semaphore.NewWeighted(int64(maxConcurrency)),
		logger:     cfg.logger,
	}
}

// admitLocked reports whether an operation with flags may run right now.
// Callers must already hold the registry's lock (from inside a
// register/SignalWhile callback) when calling this.
func (q *TaskQueue) admitLocked(flags Flags) bool {
	if q.blocked {
		return false
	}
	if flags.Barrier && q.currentRunning > 0 {
		return false
	}
	return true
}

// Exec submits fn for execution under flags. It admits synchronously if
// the admission rule permits; otherwise it suspends until the completion
// protocol drains this submission's turn or ctx is cancelled first.
func Exec[T any](ctx context.Context, q *TaskQueue, fn func(context.Context) (T, error), flags Flags, opts ...ExecOption) (T, error) {
	var zero T
	cfg := &execConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	priority := selectPriority(ctx, cfg.requested, q.defaultPri, flags)

	runCtx := ctx
	if flags.Detached {
		runCtx = context.Background()
	}
	runCtx = WithContextPriority(runCtx, priority)

	id := uuid.New()
	waitErr := q.admitOrWait(ctx, id, flags, priority, asyncx.ResolveCallerInfo(cfg.callerOpts...))
	if waitErr != nil {
		return zero, waitErr
	}

	defer q.complete(flags)

	return fn(runCtx)
}

// admitOrWait performs the synchronous admission check via the shared
// registry, and if it fails, tables the submission (recording its
// admission metadata in tags under the same lock) and waits for the
// completion protocol (or ctx) to resolve it.
func (q *TaskQueue) admitOrWait(ctx context.Context, id uuid.UUID, flags Flags, priority Priority, caller *asyncx.CallerInfo) error {
	_, err := q.reg.Suspend(ctx, id, func(waiting int) (bool, struct{}, error) {
		if waiting == 0 && q.admitLocked(flags) && q.sem.TryAcquire(1) {
			q.admitLockedCommit(flags)
			q.logAdmission("admitted", id, priority, flags, caller, q.currentRunning)
			return true, struct{}{}, nil
		}
		q.tags[id] = &queueTag{flags: flags, priority: priority, caller: caller}
		q.logAdmission("queued", id, priority, flags, caller, q.currentRunning)
		return false, struct{}{}, nil
	})
	if err != nil {
		q.reg.Locked(func() { delete(q.tags, id) })
	}
	return err
}

// admitLockedCommit records the bookkeeping side effects of an admission
// decided while the registry's lock is held: exactly one currentRunning
// increment per admission, from a single call site shared by the fast
// path and the drain-resumed path.
func (q *TaskQueue) admitLockedCommit(flags Flags) {
	q.currentRunning++
	if flags.Block || flags.Barrier {
		q.blocked = true
	}
}

// complete runs the completion protocol: decrement currentRunning, clear
// blocked if this operation held it, release the concurrency budget, then
// greedily drain the FIFO-tabled queue through the shared registry.
func (q *TaskQueue) complete(flags Flags) {
	first := true
	type resumed struct {
		id       uuid.UUID
		priority Priority
		flags    Flags
		caller   *asyncx.CallerInfo
		running  int
	}
	var toLog []resumed

	q.reg.SignalWhile(func(key uuid.UUID, waiting int) (bool, struct{}) {
		if first {
			first = false
			q.currentRunning--
			if flags.Block || flags.Barrier {
				q.blocked = false
			}
			q.sem.Release(1)
		}

		tag, ok := q.tags[key]
		if !ok || !q.admitLocked(tag.flags) || !q.sem.TryAcquire(1) {
			return false, struct{}{}
		}
		q.admitLockedCommit(tag.flags)
		delete(q.tags, key)
		toLog = append(toLog, resumed{key, tag.priority, tag.flags, tag.caller, q.currentRunning})
		return true, struct{}{}
	})

	if first {
		// The table was empty: the decrement above never ran inside
		// SignalWhile's callback because there was nothing to iterate.
		q.reg.Locked(func() {
			q.currentRunning--
			if flags.Block || flags.Barrier {
				q.blocked = false
			}
			q.sem.Release(1)
		})
	}

	for _, r := range toLog {
		q.logAdmission("resumed", r.id, r.priority, r.flags, r.caller, r.running)
	}
}

func (q *TaskQueue) logAdmission(event string, id uuid.UUID, priority Priority, flags Flags, caller *asyncx.CallerInfo, running int) {
	if q.logger == nil {
		return
	}
	attrs := []any{
		logger.Primitive("queue"),
		logger.ID("task_id", id.String()),
		logger.Priority(int8(priority)),
		logger.Running(running),
		slog.Bool("enforce", flags.Enforce),
		slog.Bool("detached", flags.Detached),
		slog.Bool("block", flags.Block),
		slog.Bool("barrier", flags.Barrier),
		logger.CallerFrom(caller),
	}
	q.logger.Debug("asyncx queue "+event, attrs...)
}

// Len reports the number of submissions currently tabled, waiting for
// their turn.
func (q *TaskQueue) Len() int {
	return q.reg.Len()
}

// CurrentRunning reports how many admitted operations are in flight.
func (q *TaskQueue) CurrentRunning() int {
	var n int
	q.reg.Locked(func() { n = q.currentRunning })
	return n
}

// IsBlocked reports whether the queue is currently closed to new
// admissions by a live Block/Barrier holder.
func (q *TaskQueue) IsBlocked() bool {
	var b bool
	q.reg.Locked(func() { b = q.blocked })
	return b
}

// Shutdown fails every currently tabled submission with a
// *asyncx.CancellationError, reclaiming them instead of leaking goroutines
// parked in admitOrWait.
func (q *TaskQueue) Shutdown(cause error) int {
	q.reg.Locked(func() { q.tags = make(map[uuid.UUID]*queueTag) })
	return q.reg.FailAll(asyncx.NewCancellationError(cause))
}
