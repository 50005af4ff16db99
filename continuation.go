// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

// resumer is implemented by task states.
// resumeAt resumes the suspension stamped with epoch and returns the next
// continuation the caller should run, if any.
type resumer interface {
	resumeAt(epoch uint32) Continuation
	alive(epoch uint32) bool
}

// Continuation is a handle to a suspended task.
//
// A Continuation is stamped with the suspension it was created for.
// Resuming it runs the task from that suspension once; resuming it again,
// or after the task moved on, returned or was closed, does nothing.
// The zero Continuation is empty and resuming it does nothing.
type Continuation struct {
	r     resumer
	epoch uint32
}

// Valid reports whether c refers to a task.
// A valid Continuation may still be stale.
func (c Continuation) Valid() bool {
	return c.r != nil
}

// Alive reports whether resuming c would run its task, that is whether the
// task is still suspended at the point c was created for. Wrappers around
// external callbacks can use it to detect that the awaiting task is gone.
func (c Continuation) Alive() bool {
	return c.r != nil && c.r.alive(c.epoch)
}

// Resume runs the suspended task until it suspends again.
//
// When the task hands control directly to another task that was awaiting
// it, Resume keeps running that one too. The loop keeps the stack flat no
// matter how long the chain of awaits is.
func (c Continuation) Resume() {
	for c.r != nil {
		c = c.r.resumeAt(c.epoch)
	}
}
