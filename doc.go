// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package coro provides cooperative tasks and futures via algebraic effects
// on [code.hybscloud.com/kont].
//
// A task body is an effectful computation that yields values to its driver
// and awaits other tasks or external events. The task is stepped one effect
// at a time, so it suspends without blocking a goroutine and fits into any
// event loop.
//
// # Architecture
//
//   - Tasks: [Start] and [StartExpr] run a body until its first suspension and return a [Future]. A task is Idle, Awaiting, Yielded or Returned ([Status]).
//   - Composition: [Await] suspends on any [Awaitable]. [*Future] and [*Emitter] are awaitable; a finishing or yielding task resumes the task awaiting it directly.
//   - Events: [Emitter] turns one-shot callbacks into awaitable events. [Mailbox] feeds an emitter from another goroutine over a lock-free SPSC queue from [code.hybscloud.com/lfq]; [Ticker] is a periodic mailbox.
//   - Errors: [Fail] and panics make the task return with a pending error read with [Future.Rethrow]. Panics are wrapped in [*PanicError].
//   - Teardown: [Future.Close] discards a suspended task and runs the functions registered with [Defer].
//
// # API Topologies
//
//   - Operations: [Yield], [Awaiter]. Failure uses kont's Throw[error].
//   - Cont-world: [YieldValue], [YieldThen], [Await], [AwaitBind], [Defer], [DeferThen], [Fail], [Done].
//   - Expr-world: [ExprYieldThen], [ExprAwait], [ExprAwaitBind], [ExprDeferThen], [ExprFail], [ExprDone]. Bridge via [Reify] and [Reflect].
//   - Recursive: [Loop] and [ExprLoop] for iterative bodies.
//
// # Integration
//
//   - Hooks: [WithHook] and [Future.SetHook] observe every status change. A hook returning true at a yield lets the task continue inline.
//   - Driving: [Driver] consumes yielded values, delivers [Source] events and retires finished futures. [Driver.Run] waits with adaptive backoff (iox.Backoff).
//   - Continuations: [Continuation] is the resumption handle passed to [Awaitable.Wait]. It resumes its task at most once.
//
// # Example
//
//	gen := coro.Start[int](coro.Loop(0, func(i int) kont.Eff[kont.Either[int, struct{}]] {
//		if i == 3 {
//			return kont.Pure(kont.Right[int](struct{}{}))
//		}
//		return coro.YieldThen(i, kont.Pure(kont.Left[int, struct{}](i+1)))
//	}))
//	for !gen.Done() {
//		fmt.Println(gen.Value())
//		gen.Resume()
//	}
package coro
