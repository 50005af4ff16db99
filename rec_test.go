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

// exprCountFrom is the Expr-world counterpart of countFrom.
func exprCountFrom(from, to int) kont.Expr[struct{}] {
	return coro.ExprLoop(from, func(i int) kont.Expr[kont.Either[int, struct{}]] {
		if i >= to {
			return kont.ExprReturn(kont.Right[int](struct{}{}))
		}
		return coro.ExprYieldThen(i, kont.ExprReturn(kont.Left[int, struct{}](i+1)))
	})
}

func TestLoopManyIterations(t *testing.T) {
	const n = 10000
	f := coro.Start[int](countFrom(0, n))
	got := drain(f)
	require.Len(t, got, n)
	require.Equal(t, n-1, got[n-1])
}

func TestExprLoop(t *testing.T) {
	f := coro.StartExpr[int](exprCountFrom(3, 6))
	require.Equal(t, []int{3, 4, 5}, drain(f))
}

func TestExprLoopPureIterations(t *testing.T) {
	// Iterations that never suspend are unrolled before the first yield.
	sum := 0
	body := kont.ExprBind(coro.ExprLoop(0, func(i int) kont.Expr[kont.Either[int, int]] {
		if i == 100 {
			return kont.ExprReturn(kont.Right[int](sum))
		}
		sum += i
		return kont.ExprReturn(kont.Left[int, int](i + 1))
	}), func(total int) kont.Expr[struct{}] {
		return coro.ExprYieldThen(total, coro.ExprDone())
	})
	f := coro.StartExpr[int](body)
	require.Equal(t, []int{4950}, drain(f))
}

func TestLoopWithAwait(t *testing.T) {
	var e coro.Emitter[int]
	total := 0
	f := coro.Start[int](coro.Loop(0, func(acc int) kont.Eff[kont.Either[int, struct{}]] {
		return coro.AwaitBind[int](&e, func(v int) kont.Eff[kont.Either[int, struct{}]] {
			if v < 0 {
				total = acc
				return kont.Pure(kont.Right[int](struct{}{}))
			}
			return kont.Pure(kont.Left[int, struct{}](acc + v))
		})
	}))
	for _, v := range []int{1, 2, 3, -1} {
		e.Wake(v)
	}
	require.True(t, f.Done())
	require.Equal(t, 6, total)
}
