// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

// Emitter is the base of wrappers that turn one-shot callbacks into
// awaitable events.
//
// A wrapper embeds Emitter[T], registers a native callback that calls
// [Emitter.Wake] once per registration, and optionally sets Update.
// At most one task may wait on an Emitter at a time.
// An Emitter must not be copied while a task waits on it.
type Emitter[T any] struct {
	// Update, when set, is called by Wait before suspending. It may fill
	// *v with an event that is already available and report true, in which
	// case the awaiting task continues without suspending.
	Update func(v *T) bool

	cont Continuation
	last T
}

// Wait implements [Awaitable].
func (e *Emitter[T]) Wait(c Continuation) bool {
	e.cont = c
	if e.Update != nil && e.Update(&e.last) {
		e.cont = Continuation{}
		return false
	}
	return true
}

// Wake stores ev as the latest event and resumes the waiting task, if any.
//
// The slot is cleared before the task runs, so the task may wait on e
// again from inside the resumption. Without a waiting task the event stays
// buffered and a later Wake overwrites it.
func (e *Emitter[T]) Wake(ev T) {
	e.last = ev
	c := e.cont
	e.cont = Continuation{}
	c.Resume()
}

// Value returns the latest event.
func (e *Emitter[T]) Value() T {
	return e.last
}

// Pending reports whether a task is waiting on e.
func (e *Emitter[T]) Pending() bool {
	return e.cont.Alive()
}
