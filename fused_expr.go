// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// Pre-allocated erased frame to avoid boxing ReturnFrame{} on every call.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// Expr-world constructors below build their chains from kont's pooled
// frames. The resulting Expr is single-use: start it once and drop it.

// identityResume is the identity resume function for EffectFrame construction.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprAwait suspends the task until a is ready and returns its value.
func ExprAwait[T any](a Awaitable[T]) kont.Expr[T] {
	if a == nil {
		panic("coro: nil actor")
	}
	return kont.ExprPerform(Awaiter[T]{Actor: a})
}

// ExprAwaitBind awaits a and passes its value to f.
// Fuses ExprPerform(Awaiter[T]{Actor: a}) + ExprBind.
func ExprAwaitBind[T, B any](a Awaitable[T], f func(T) kont.Expr[B]) kont.Expr[B] {
	if a == nil {
		panic("coro: nil actor")
	}
	bf := kont.AcquireBindFrame()
	bf.F = func(v kont.Erased) kont.Expr[kont.Erased] {
		result := f(v.(T))
		return kont.Expr[kont.Erased]{Value: kont.Erased(result.Value), Frame: result.Frame}
	}
	bf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Awaiter[T]{Actor: a}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprYieldThen yields v and then continues with next.
// Fuses ExprPerform(Yield[V]{Value: v}) + ExprThen.
func ExprYieldThen[V, B any](v V, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Yield[V]{Value: v}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprDone ends a task body.
func ExprDone() kont.Expr[struct{}] {
	return kont.Expr[struct{}]{Frame: exprReturnFrame}
}

// ExprFail aborts the task with err.
func ExprFail[A any](err error) kont.Expr[A] {
	return kont.ExprThrowError[error, A](err)
}

// ExprDeferThen registers f to run when the task returns or is closed, and
// then continues with next.
func ExprDeferThen[B any](f func(), next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = deferOp{f: f}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}
