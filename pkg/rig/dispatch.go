package rig

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// task is one unit of work bound for the rig's worker goroutine.
type task struct {
	// name is the operation name, used in errors and log events.
	name string

	// requireOpen makes the worker-side guard demand an open session.
	// Lifecycle tasks (open, close, destroy) clear it.
	requireOpen bool

	// final marks the destroy task; the worker exits after running it.
	final bool

	// run performs the blocking driver work. It only runs after the
	// worker-side guard has passed.
	run func() (any, error)

	// done receives exactly one result.
	done chan taskResult
}

type taskResult struct {
	val any
	err error
}

// dispatcher serializes driver work for one handle. Tasks are queued under
// the mutex and drained by a single worker goroutine, so at most one driver
// call is ever in flight per handle; queue order is execution order.
type dispatcher struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []*task
	sealed bool
}

func newDispatcher() *dispatcher {
	d := &dispatcher{}
	d.cond = sync.NewCond(&d.mu)
	return d
}

// enqueue appends a task unless the queue has been sealed by destroy.
func (d *dispatcher) enqueue(t *task) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.sealed {
		return false
	}
	if t.final {
		d.sealed = true
	}
	d.queue = append(d.queue, t)
	d.cond.Signal()
	return true
}

// next blocks until a task is available and pops it. It returns nil once
// the queue is sealed and drained.
func (d *dispatcher) next() *task {
	d.mu.Lock()
	defer d.mu.Unlock()

	for len(d.queue) == 0 {
		if d.sealed {
			return nil
		}
		d.cond.Wait()
	}
	t := d.queue[0]
	d.queue = d.queue[1:]
	return t
}

// worker drains the queue. Each task re-checks the rig's state guard right
// before execution: a destroy can race an already-queued task, and the
// guard on the worker side is what keeps such a task from touching a
// released handle.
func (r *Rig) worker() {
	for {
		t := r.disp.next()
		if t == nil {
			return
		}
		start := time.Now()
		val, err := r.execute(t)
		r.logResult(t.name, time.Since(start), err)
		t.done <- taskResult{val: val, err: err}
		if t.final {
			return
		}
	}
}

// execute runs one task behind the worker-side state guard. Panics inside
// driver work are recovered and surfaced as errors so a misbehaving backend
// can never take the worker down.
func (r *Rig) execute(t *task) (val any, err error) {
	defer func() {
		if p := recover(); p != nil {
			val, err = nil, fmt.Errorf("%s: internal error: %v", t.name, p)
		}
	}()

	if err := r.guard(t.name, t.requireOpen); err != nil {
		return nil, err
	}
	return t.run()
}

// submit queues a task and waits for its completion. The context bounds
// only the wait: a task that was accepted runs to completion even if the
// caller gives up on it.
func (r *Rig) submit(ctx context.Context, t *task) (any, error) {
	t.done = make(chan taskResult, 1)

	if !r.disp.enqueue(t) {
		return nil, &StateError{Op: t.name, State: StateDestroyed}
	}

	select {
	case res := <-t.done:
		return res.val, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// dispatch runs a typed driver closure on the worker and returns its
// decoded result. Validation and symbol encoding happen before dispatch on
// the caller's goroutine; fn only contains the blocking driver work.
func dispatch[T any](ctx context.Context, r *Rig, name string, fn func() (T, error)) (T, error) {
	val, err := r.submit(ctx, &task{
		name:        name,
		requireOpen: true,
		run:         func() (any, error) { return fn() },
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return val.(T), nil
}

// dispatchVoid is dispatch for operations without a result value.
func dispatchVoid(ctx context.Context, r *Rig, name string, fn func() error) error {
	_, err := r.submit(ctx, &task{
		name:        name,
		requireOpen: true,
		run: func() (any, error) {
			return nil, fn()
		},
	})
	return err
}
