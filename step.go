// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"errors"
	"fmt"

	"code.hybscloud.com/kont"
)

// task is the state of one running computation.
// The body is evaluated one effect at a time with kont.StepExpr and
// kont.Suspension.Resume; every effect is a suspension boundary.
type task[V any] struct {
	status Status
	value  V
	fresh  bool // value not yet handed to an awaiting task
	err    error

	owner  *Future[V]
	nested Continuation // task blocked on this one

	entry  func() (struct{}, *kont.Suspension[struct{}])
	susp   *kont.Suspension[struct{}]
	await  suspender
	defers []func()

	epoch   uint32 // stamps the current suspension; stale continuations mismatch
	running bool
	woken   bool // resumed from inside Awaitable.Wait
	closed  bool
}

// transition moves t to s and reports it to the hook when the status changed.
func (t *task[V]) transition(s Status) {
	if t.status == s {
		return
	}
	t.status = s
	p := point[V]{owner: t.owner, status: s}
	p.notify()
}

// wake clears the buffered value and marks t as running its next slice.
func (t *task[V]) wake() {
	var zero V
	t.value, t.fresh = zero, false
	t.transition(Idle)
}

// takeNested hands over the continuation of the task awaiting t.
// A waiter that was closed or forcibly resumed meanwhile is dropped.
func (t *task[V]) takeNested() Continuation {
	c := t.nested
	t.nested = Continuation{}
	if !c.Alive() {
		return Continuation{}
	}
	return c
}

// step advances the body by one effect.
func (t *task[V]) step(v kont.Resumed) (susp *kont.Suspension[struct{}], err error) {
	err = try(func() {
		if entry := t.entry; entry != nil {
			t.entry = nil
			_, susp = entry()
			return
		}
		_, susp = t.susp.Resume(v)
	})
	return susp, err
}

// run resumes the body with v and drives it to the next true suspension.
// It returns the continuation of a task that was awaiting t when the
// boundary hands control to it, or an empty one.
func (t *task[V]) run(v kont.Resumed) Continuation {
	t.running = true
	t.wake()
	for {
		if t.closed {
			return t.teardown()
		}
		susp, err := t.step(v)
		t.susp = susp
		switch {
		case t.closed:
			return t.teardown()
		case err != nil:
			t.susp = nil
			return t.finish(err)
		case susp == nil:
			return t.finish(nil)
		}

		switch op := susp.Op().(type) {
		case Yield[V]:
			t.value, t.fresh = op.Value, true
			t.status = Yielded
			p := point[V]{owner: t.owner, nested: t.takeNested(), status: Yielded}
			if p.ready() {
				v = struct{}{}
				t.wake()
				continue
			}
			if t.closed {
				return t.teardown()
			}
			if p.nested.Alive() {
				t.fresh = false
			}
			t.running = false
			return p.suspend()

		case suspender:
			t.await = op
			t.epoch++
			t.status = Awaiting
			t.woken = false
			if op.Ready() || !op.Suspend(Continuation{r: t, epoch: t.epoch}) || t.woken {
				t.epoch++
				t.status = Idle
				v = op.resumed()
				continue
			}
			p := point[V]{owner: t.owner, status: Awaiting}
			p.notify()
			if t.closed {
				return t.teardown()
			}
			if t.woken {
				v = op.resumed()
				t.wake()
				continue
			}
			t.running = false
			return p.suspend()

		case kont.Throw[error]:
			susp.Discard()
			t.susp = nil
			return t.finish(op.Err)

		case deferOp:
			if op.f != nil {
				t.defers = append(t.defers, op.f)
			}
			v = struct{}{}

		default:
			susp.Discard()
			t.susp = nil
			return t.finish(fmt.Errorf("%w: %T", ErrUnhandledEffect, op))
		}
	}
}

// finish makes t Returned with err as its pending error.
func (t *task[V]) finish(err error) Continuation {
	var zero V
	t.value, t.fresh = zero, false
	t.await = nil
	t.epoch++
	if derr := t.runDefers(); derr != nil {
		err = errors.Join(err, derr)
	}
	t.err = err
	t.status = Returned
	p := point[V]{owner: t.owner, nested: t.takeNested(), status: Returned}
	p.notify()
	t.running = false
	return p.suspend()
}

// teardown destroys the computation without reporting to the hook.
// A task awaiting t is handed back so it observes t as returned.
func (t *task[V]) teardown() Continuation {
	if t.susp != nil {
		t.susp.Discard()
		t.susp = nil
	}
	var zero V
	t.value, t.fresh = zero, false
	t.entry = nil
	t.await = nil
	c := t.takeNested()
	t.epoch++
	_ = t.runDefers()
	t.err = nil
	t.status = Returned
	t.running = false
	return c
}

// runDefers runs deferred functions in last-in-first-out order.
func (t *task[V]) runDefers() error {
	var errs []error
	for len(t.defers) != 0 {
		i := len(t.defers) - 1
		f := t.defers[i]
		t.defers[i] = nil
		t.defers = t.defers[:i]
		if err := try(f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t *task[V]) resumeAt(epoch uint32) Continuation {
	if !t.alive(epoch) {
		return Continuation{}
	}
	t.epoch++
	if t.running {
		t.woken = true
		return Continuation{}
	}
	return t.run(t.await.resumed())
}

func (t *task[V]) alive(epoch uint32) bool {
	return t.status == Awaiting && epoch == t.epoch && !t.closed
}

// resume forces t out of Yielded or Awaiting.
func (t *task[V]) resume() Continuation {
	if t.running || t.closed {
		return Continuation{}
	}
	switch t.status {
	case Yielded:
		return t.run(struct{}{})
	case Awaiting:
		t.epoch++
		return t.run(t.await.resumed())
	default:
		return Continuation{}
	}
}

// wait drives t on behalf of the task whose continuation is c.
func (t *task[V]) wait(c Continuation) bool {
	for {
		switch t.status {
		case Yielded:
			if t.fresh {
				t.fresh = false
				return false
			}
			if t.running || t.closed {
				return false
			}
			t.run(struct{}{}).Resume()
		case Awaiting:
			t.nested = c
			return true
		default:
			return false
		}
	}
}
