// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// Future owns one running computation.
//
// A Future is created by [Start] or [StartExpr] and handled by pointer.
// It must not be copied. A Future is not safe for concurrent use: every
// method, and every [Continuation] of its task, must be called from the
// goroutine that drives it.
type Future[V any] struct {
	st     *task[V]
	hook   Hook[V]
	serial Serial
}

// Option configures a [Future] at start.
type Option[V any] func(*Future[V])

// WithHook installs h before the first slice runs, so h observes every
// transition including the first one.
func WithHook[V any](h Hook[V]) Option[V] {
	return func(f *Future[V]) { f.hook = h }
}

// Start creates a future for body and runs it until its first suspension.
//
// The body yields values of type V with [Yield] and awaits other futures
// and emitters with [Await]. Its result is discarded; fail it with [Fail].
func Start[V any](body kont.Eff[struct{}], opts ...Option[V]) *Future[V] {
	if body == nil {
		panic("coro: nil body")
	}
	return start(func() (struct{}, *kont.Suspension[struct{}]) {
		return kont.StepExpr(kont.Reify(body))
	}, opts)
}

// StartExpr is like [Start] for a defunctionalized body.
func StartExpr[V any](body kont.Expr[struct{}], opts ...Option[V]) *Future[V] {
	if body.Frame == nil {
		panic("coro: nil body")
	}
	return start(func() (struct{}, *kont.Suspension[struct{}]) {
		return kont.StepExpr(body)
	}, opts)
}

func start[V any](entry func() (struct{}, *kont.Suspension[struct{}]), opts []Option[V]) *Future[V] {
	f := &Future[V]{serial: nextSerial()}
	for _, opt := range opts {
		opt(f)
	}
	f.st = &task[V]{owner: f, entry: entry}
	f.st.run(nil).Resume()
	return f
}

// Done reports whether the computation has returned.
// A released or closed future is done.
func (f *Future[V]) Done() bool {
	return f.Status() == Returned
}

// Status returns the current status of the computation.
func (f *Future[V]) Status() Status {
	if f.st == nil {
		return Returned
	}
	return f.st.status
}

// Serial returns the identifier assigned at start.
func (f *Future[V]) Serial() Serial {
	return f.serial
}

// Resume runs the computation from a Yielded or Awaiting suspension until
// it suspends again.
//
// Resuming an Awaiting future resumes the body with the awaited actor's
// current value; the continuation handed to the actor becomes stale.
// Resume does nothing when the future is done or already running.
func (f *Future[V]) Resume() {
	if f.st == nil {
		return
	}
	f.st.resume().Resume()
}

// Value returns the buffered value while the future is Yielded,
// or the zero value otherwise.
func (f *Future[V]) Value() V {
	if f.st == nil || f.st.status != Yielded {
		var zero V
		return zero
	}
	return f.st.value
}

// Rethrow returns the pending error of a failed computation and clears it.
// It returns nil when there is none.
func (f *Future[V]) Rethrow() error {
	if f.st == nil {
		return nil
	}
	err := f.st.err
	f.st.err = nil
	return err
}

// Wait implements [Awaitable] so that a task can await f.
//
// A freshly yielded value is delivered without suspending. A yielded value
// that has been consumed already makes f run until it yields again, awaits
// or returns. Wait returns true and keeps c only when f is Awaiting; c is
// resumed when f next yields or returns.
func (f *Future[V]) Wait(c Continuation) bool {
	if f.st == nil {
		return false
	}
	return f.st.wait(c)
}

// Release detaches f from its computation without tearing it down.
//
// The computation keeps running whenever one of its continuations is
// resumed, but it no longer reports to the hook and f reads as done.
func (f *Future[V]) Release() {
	if f.st == nil {
		return
	}
	f.st.owner = nil
	f.st = nil
}

// Close tears the computation down.
//
// The suspended body is discarded, deferred functions run in reverse
// order, outstanding continuations become stale and the pending error is
// dropped. A task awaiting f is resumed and finds f returned with a zero
// value. Closing from inside the computation takes effect when the body
// reaches its next suspension. Close is idempotent.
func (f *Future[V]) Close() {
	t := f.st
	if t == nil {
		return
	}
	var c Continuation
	if t.running {
		t.closed = true
	} else if t.status != Returned {
		t.closed = true
		c = t.teardown()
	}
	t.owner = nil
	f.st = nil
	c.Resume()
}

// SetHook installs h, or removes the hook when h is nil.
func (f *Future[V]) SetHook(h Hook[V]) {
	f.hook = h
}
