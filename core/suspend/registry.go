package suspend

import (
	"container/list"
	"context"
	"sync"

	"github.com/dmitrymomot/asyncx"
)

type waiter[K comparable, V any] struct {
	key  K
	cont *Continuation[V]
}

// Registry is the L1 cancellable suspension engine shared by every
// coordination primitive in this module. It owns both the FIFO-ordered
// waiter table and the single lock that guards it, and it hands that same
// lock out to callers (via Suspend's register callback and the Signal*
// helpers) so a primitive's own state transitions can be made under the
// exact lock that also governs its waiter table, rather than each
// primitive layering on a second mutex.
//
// K identifies a waiter slot — every primitive in this module, including
// core/queue's TaskQueue, keys it with a generated uuid.UUID. V is the
// value delivered to a waiter on resume.
type Registry[K comparable, V any] struct {
	mu    sync.Mutex
	order *list.List
	index map[K]*list.Element
}

// New constructs an empty Registry.
func New[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{
		order: list.New(),
		index: make(map[K]*list.Element),
	}
}

// Len reports the number of currently tabled waiters.
func (r *Registry[K, V]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order.Len()
}

// Locked runs fn while holding the registry's lock, with no waiter-table
// side effects of its own. Primitives use it to read or mutate their own
// state consistently with Suspend/SignalOne/SignalAll — e.g. an immediate,
// non-suspending state check for a zero-duration WaitFor.
func (r *Registry[K, V]) Locked(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn()
}

// Suspend parks the calling goroutine until register reports a value ready
// without suspending, until some other goroutine resumes the waiter via
// SignalOne/SignalAll, or until ctx is done.
//
// register runs under the registry's lock, so it may safely read and
// mutate the owning primitive's state. waiting is the number of callers
// already tabled at the moment register runs, before this call's own
// entry (if any) is added — useful for admission rules that only fast-path
// when nobody else is ahead in line. register returns (true, v, err) for
// an immediate outcome (no tabling), or (false, _, _) to request that the
// caller be parked under key.
func (r *Registry[K, V]) Suspend(ctx context.Context, key K, register func(waiting int) (immediate bool, v V, err error)) (V, error) {
	var zero V
	if err := ctx.Err(); err != nil {
		return zero, asyncx.NewCancellationError(err)
	}

	r.mu.Lock()
	immediate, v, err := register(r.order.Len())
	if immediate {
		r.mu.Unlock()
		return v, err
	}
	cont := NewContinuation[V]()
	el := r.order.PushBack(&waiter[K, V]{key: key, cont: cont})
	r.index[key] = el
	r.mu.Unlock()

	stop := context.AfterFunc(ctx, func() {
		if r.remove(key) {
			cont.Fail(asyncx.NewCancellationError(ctx.Err()))
		}
	})
	defer stop()

	return cont.Recv()
}

// remove de-tables key if still present, reporting whether it removed
// anything. Called by the cancellation watcher above; the Signal* helpers
// and FailAll unlink the waiters they release themselves.
func (r *Registry[K, V]) remove(key K) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	el, ok := r.index[key]
	if !ok {
		return false
	}
	r.order.Remove(el)
	delete(r.index, key)
	return true
}

// SignalOne atomically runs mutate under the registry's lock, passing the
// current waiter count, then — if mutate reports the primitive's state now
// permits releasing exactly one waiter — pops and resumes the
// longest-waiting one with the returned value. The resume itself happens
// after the lock is released. Reports whether a waiter was resumed.
func (r *Registry[K, V]) SignalOne(mutate func(waiting int) (release bool, v V)) bool {
	r.mu.Lock()
	release, v := mutate(r.order.Len())
	var w *waiter[K, V]
	if release {
		if front := r.order.Front(); front != nil {
			w = front.Value.(*waiter[K, V])
			r.order.Remove(front)
			delete(r.index, w.key)
		} else {
			release = false
		}
	}
	r.mu.Unlock()

	if w == nil {
		return false
	}
	return w.cont.Resume(v)
}

// SignalAll atomically runs mutate under the registry's lock, passing the
// current waiter count, then — if mutate reports the primitive's state now
// permits releasing every waiter — drains the whole table and resumes each
// one with the returned value. Returns the number of waiters resumed.
func (r *Registry[K, V]) SignalAll(mutate func(waiting int) (release bool, v V)) int {
	r.mu.Lock()
	release, v := mutate(r.order.Len())
	var drained []*waiter[K, V]
	if release {
		drained = r.drainLocked()
	}
	r.mu.Unlock()

	n := 0
	for _, w := range drained {
		if w.cont.Resume(v) {
			n++
		}
	}
	return n
}

// SignalWhile walks the table from the front under a single lock
// acquisition, calling accept for each tabled waiter in FIFO order. accept
// sees the current table size, which counts the waiter under consideration
// (unlike Suspend's register, whose count excludes the caller's own
// entry), and may safely read or mutate
// the owning primitive's own bookkeeping, exactly like SignalOne/SignalAll's
// mutate. The first waiter accept declines to release stops the walk,
// leaving it and everyone behind it tabled. Used by admission rules that
// drain greedily but must stop as soon as one waiter's own per-entry state
// (not just the primitive's global state) says no more can be let through.
func (r *Registry[K, V]) SignalWhile(accept func(key K, waiting int) (release bool, v V)) int {
	type resumePair struct {
		w *waiter[K, V]
		v V
	}

	r.mu.Lock()
	var drained []resumePair
	for {
		front := r.order.Front()
		if front == nil {
			break
		}
		w := front.Value.(*waiter[K, V])
		release, v := accept(w.key, r.order.Len())
		if !release {
			break
		}
		r.order.Remove(front)
		delete(r.index, w.key)
		drained = append(drained, resumePair{w, v})
	}
	r.mu.Unlock()

	n := 0
	for _, p := range drained {
		if p.w.cont.Resume(p.v) {
			n++
		}
	}
	return n
}

// FailAll drains every tabled waiter and fails each with err. Used on
// teardown of a primitive (e.g. a TaskQueue shutdown) to reclaim every
// suspended caller instead of leaking them.
func (r *Registry[K, V]) FailAll(err error) int {
	r.mu.Lock()
	drained := r.drainLocked()
	r.mu.Unlock()

	n := 0
	for _, w := range drained {
		if w.cont.Fail(err) {
			n++
		}
	}
	return n
}

func (r *Registry[K, V]) drainLocked() []*waiter[K, V] {
	out := make([]*waiter[K, V], 0, r.order.Len())
	for el := r.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*waiter[K, V]))
	}
	r.order.Init()
	r.index = make(map[K]*list.Element)
	return out
}
