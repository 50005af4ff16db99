// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// Yield is the effect operation for handing a value to the driver.
// Perform(Yield[V]{Value: v}) buffers v and suspends the task in the
// Yielded state until the driver, or an awaiting task, resumes it.
type Yield[V any] struct {
	kont.Phantom[struct{}]
	Value V
}

// Awaitable is implemented by anything a task can await.
//
// Wait is called with the continuation of the awaiting task. It returns
// true when the task must truly suspend (the continuation is resumed later),
// or false when the result is already available. Value returns the result
// once the task is resumed.
//
// [*Future] and [*Emitter] implement Awaitable.
type Awaitable[T any] interface {
	Wait(c Continuation) bool
	Value() T
}

// Awaiter is the effect operation for awaiting an [Awaitable].
// It is the single adapter used for task composition and for emitters:
// the Actor decides whether to suspend, the Awaiter only forwards.
type Awaiter[T any] struct {
	kont.Phantom[T]
	Actor Awaitable[T]
}

// Ready reports whether the await can skip suspension on its own.
// It is always false; the Actor decides in Suspend.
func (Awaiter[T]) Ready() bool { return false }

// Suspend forwards the continuation to the Actor.
func (a Awaiter[T]) Suspend(c Continuation) bool { return a.Actor.Wait(c) }

// Resume returns the Actor's value.
func (a Awaiter[T]) Resume() T { return a.Actor.Value() }

func (a Awaiter[T]) resumed() kont.Resumed { return a.Actor.Value() }

// suspender is the structural interface the task uses to drive any Awaiter
// without knowing its result type.
type suspender interface {
	Ready() bool
	Suspend(c Continuation) bool
	resumed() kont.Resumed
}

// deferOp registers a teardown function with the running task.
type deferOp struct {
	kont.Phantom[struct{}]
	f func()
}
