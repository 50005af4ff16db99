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

func TestReifyStartExpr(t *testing.T) {
	f := coro.StartExpr[int](coro.Reify(countFrom(0, 3)))
	require.Equal(t, []int{0, 1, 2}, drain(f))
}

func TestReflectStart(t *testing.T) {
	f := coro.Start[int](coro.Reflect(exprCountFrom(0, 3)))
	require.Equal(t, []int{0, 1, 2}, drain(f))
}

func TestReflectComposesWithBind(t *testing.T) {
	var e coro.Emitter[int]
	inner := coro.Reflect(coro.ExprAwait[int](&e))
	f := coro.Start[int](kont.Bind(inner, func(v int) kont.Eff[struct{}] {
		return coro.YieldThen(v+1, coro.Done())
	}))
	e.Wake(1)
	require.Equal(t, []int{2}, drain(f))
}
