// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"testing"

	"code.hybscloud.com/coro"
	"code.hybscloud.com/kont"
	"github.com/stretchr/testify/require"
)

// awaitN awaits src n times and appends every value to out.
func awaitN(src coro.Awaitable[int], n int, out *[]int) kont.Eff[struct{}] {
	return coro.Loop(0, func(i int) kont.Eff[kont.Either[int, struct{}]] {
		if i == n {
			return kont.Pure(kont.Right[int](struct{}{}))
		}
		return coro.AwaitBind(src, func(v int) kont.Eff[kont.Either[int, struct{}]] {
			*out = append(*out, v)
			return kont.Pure(kont.Left[int, struct{}](i + 1))
		})
	})
}

func TestAwaitGenerator(t *testing.T) {
	b := coro.Start[int](countFrom(1, 4))
	var got []int
	a := coro.Start[struct{}](awaitN(b, 3, &got))

	require.True(t, a.Done())
	require.Equal(t, []int{1, 2, 3}, got)

	// The last value was consumed by a; b runs to return on its next resume.
	require.Equal(t, coro.Yielded, b.Status())
	b.Resume()
	require.True(t, b.Done())
}

func TestAwaitUntilReturned(t *testing.T) {
	b := coro.Start[int](countFrom(1, 4))
	var got []int
	a := coro.Start[struct{}](coro.Loop(0, func(int) kont.Eff[kont.Either[int, struct{}]] {
		return coro.AwaitBind[int](b, func(v int) kont.Eff[kont.Either[int, struct{}]] {
			if b.Done() {
				return kont.Pure(kont.Right[int](struct{}{}))
			}
			got = append(got, v)
			return kont.Pure(kont.Left[int, struct{}](0))
		})
	}))
	require.True(t, a.Done())
	require.True(t, b.Done())
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestAwaitReturnedFuture(t *testing.T) {
	b := coro.Start[int](coro.Done())
	var got []int
	a := coro.Start[struct{}](awaitN(b, 1, &got))
	require.True(t, a.Done())
	require.Equal(t, []int{0}, got)
}

func TestAwaitThroughEmitter(t *testing.T) {
	var e coro.Emitter[int]
	b := coro.Start[int](coro.AwaitBind[int](&e, func(v int) kont.Eff[struct{}] {
		return coro.YieldThen(v*10, coro.Done())
	}))
	got := 0
	a := coro.Start[struct{}](coro.AwaitBind[int](b, func(v int) kont.Eff[struct{}] {
		got = v
		return coro.Done()
	}))
	require.Equal(t, coro.Awaiting, b.Status())
	require.Equal(t, coro.Awaiting, a.Status())

	// Waking the emitter runs b, which hands its value straight to a.
	e.Wake(5)
	require.True(t, a.Done())
	require.Equal(t, 50, got)
	require.Equal(t, coro.Yielded, b.Status())

	b.Resume()
	require.True(t, b.Done())
}

func TestAwaitFutureReturnsWhileAwaited(t *testing.T) {
	m := &manual[int]{v: 4}
	b := coro.Start[int](coro.AwaitBind[int](m, func(int) kont.Eff[struct{}] {
		return coro.Done()
	}))
	var got []int
	a := coro.Start[struct{}](awaitN(b, 1, &got))
	require.Equal(t, coro.Awaiting, a.Status())

	m.c.Resume()
	require.True(t, b.Done())
	require.True(t, a.Done())
	require.Equal(t, []int{0}, got)
}

func TestAwaitAfterAwaiterClosedKeepsValue(t *testing.T) {
	var e coro.Emitter[int]
	b := coro.Start[int](coro.AwaitBind[int](&e, func(v int) kont.Eff[struct{}] {
		return coro.YieldThen(v*7, coro.Done())
	}))
	var gotA []int
	a := coro.Start[struct{}](awaitN(b, 1, &gotA))
	require.Equal(t, coro.Awaiting, a.Status())

	a.Close()
	e.Wake(1)
	require.Empty(t, gotA)
	require.Equal(t, coro.Yielded, b.Status())
	require.Equal(t, 7, b.Value())

	// The value nobody received is still fresh for the next awaiter.
	var gotC []int
	c := coro.Start[struct{}](awaitN(b, 1, &gotC))
	require.True(t, c.Done())
	require.Equal(t, []int{7}, gotC)
}

func TestHookHandlesYieldAfterAwaiterClosed(t *testing.T) {
	var e coro.Emitter[int]
	handled := 0
	b := coro.Start[int](coro.AwaitBind[int](&e, func(v int) kont.Eff[struct{}] {
		return coro.YieldThen(v, coro.Done())
	}), coro.WithHook(func(_ *coro.Future[int], s coro.Status) bool {
		if s != coro.Yielded {
			return false
		}
		handled++
		return true
	}))
	var got []int
	a := coro.Start[struct{}](awaitN(b, 1, &got))
	require.Equal(t, coro.Awaiting, a.Status())

	a.Close()
	e.Wake(1)
	require.Equal(t, 1, handled)
	require.True(t, b.Done())
	require.Empty(t, got)
}

func TestCloseResumesAwaitingTask(t *testing.T) {
	var e coro.Emitter[int]
	b := coro.Start[int](coro.AwaitBind[int](&e, func(v int) kont.Eff[struct{}] {
		return coro.YieldThen(v, coro.Done())
	}))
	var got []int
	sawDone := false
	a := coro.Start[struct{}](coro.AwaitBind[int](b, func(v int) kont.Eff[struct{}] {
		got = append(got, v)
		sawDone = b.Done()
		return coro.Done()
	}))
	require.Equal(t, coro.Awaiting, a.Status())

	b.Close()
	require.True(t, a.Done())
	require.True(t, sawDone)
	require.Equal(t, []int{0}, got)
	require.False(t, e.Pending())

	e.Wake(1)
	require.Equal(t, []int{0}, got)
}

func TestAwaitLongChainKeepsStackFlat(t *testing.T) {
	const n = 10000
	var e coro.Emitter[int]
	var prev coro.Awaitable[int] = &e
	futures := make([]*coro.Future[int], 0, n)
	for range n {
		src := prev
		f := coro.Start[int](coro.AwaitBind(src, func(v int) kont.Eff[struct{}] {
			return coro.YieldThen(v+1, coro.Done())
		}))
		futures = append(futures, f)
		prev = f
	}
	for _, f := range futures {
		require.Equal(t, coro.Awaiting, f.Status())
	}

	e.Wake(0)
	last := futures[n-1]
	require.Equal(t, coro.Yielded, last.Status())
	require.Equal(t, n, last.Value())
}

func TestAwaitNilActorPanics(t *testing.T) {
	require.PanicsWithValue(t, "coro: nil actor", func() {
		coro.Await[int](nil)
	})
	require.PanicsWithValue(t, "coro: nil actor", func() {
		coro.ExprAwait[int](nil)
	})
}
