// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"errors"

	"code.hybscloud.com/coro"
	"code.hybscloud.com/kont"
)

var errBoom = errors.New("boom")

// countFrom yields from, from+1, ... up to but excluding to.
func countFrom(from, to int) kont.Eff[struct{}] {
	return coro.Loop(from, func(i int) kont.Eff[kont.Either[int, struct{}]] {
		if i >= to {
			return kont.Pure(kont.Right[int](struct{}{}))
		}
		return coro.YieldThen(i, kont.Pure(kont.Left[int, struct{}](i+1)))
	})
}

// drain collects every value f yields, resuming it until it returns.
func drain[V any](f *coro.Future[V]) []V {
	var out []V
	for !f.Done() {
		if f.Status() != coro.Yielded {
			return out
		}
		out = append(out, f.Value())
		f.Resume()
	}
	return out
}

// manual is an Awaitable whose continuation the test resumes by hand.
type manual[T any] struct {
	c     coro.Continuation
	v     T
	ready bool
	waits int
}

func (m *manual[T]) Wait(c coro.Continuation) bool {
	m.waits++
	if m.ready {
		return false
	}
	m.c = c
	return true
}

func (m *manual[T]) Value() T { return m.v }

// statuses records the statuses a hook observes.
type statuses struct {
	seen []coro.Status
}

func (s *statuses) hook(_ *coro.Future[int], st coro.Status) bool {
	s.seen = append(s.seen, st)
	return false
}
