// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// Await suspends the task until a is ready and returns its value.
// Performs Awaiter[T]{Actor: a}.
func Await[T any](a Awaitable[T]) kont.Eff[T] {
	if a == nil {
		panic("coro: nil actor")
	}
	return kont.Perform(Awaiter[T]{Actor: a})
}

// AwaitBind awaits a and passes its value to f.
// Fuses Await + Bind.
func AwaitBind[T, B any](a Awaitable[T], f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(Await(a), f)
}

// YieldValue hands v to the driver and suspends until resumed.
func YieldValue[V any](v V) kont.Eff[struct{}] {
	return kont.Perform(Yield[V]{Value: v})
}

// YieldThen yields v and then continues with next.
// Fuses Perform(Yield[V]{Value: v}) + Then.
func YieldThen[V, B any](v V, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Yield[V]{Value: v}), next)
}

// Done ends a task body.
func Done() kont.Eff[struct{}] {
	return kont.Pure(struct{}{})
}

// Fail aborts the task with err. The task returns and err becomes its
// pending error, read with [Future.Rethrow].
func Fail[A any](err error) kont.Eff[A] {
	return kont.ThrowError[error, A](err)
}

// Defer registers f to run when the task returns or is closed.
// Deferred functions run in reverse order of registration.
func Defer(f func()) kont.Eff[struct{}] {
	return kont.Perform(deferOp{f: f})
}

// DeferThen registers f and then continues with next.
// Fuses Defer + Then.
func DeferThen[B any](f func(), next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(deferOp{f: f}), next)
}
