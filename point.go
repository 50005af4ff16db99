// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

// point mediates one suspension boundary.
// It is built when a task yields, awaits or returns, and consumed at once.
type point[V any] struct {
	owner  *Future[V]
	nested Continuation
	status Status
}

// notify reports the boundary status to the owner's hook.
func (p *point[V]) notify() bool {
	if p.owner == nil || p.owner.hook == nil {
		return false
	}
	return p.owner.hook(p.owner, p.status)
}

// ready reports whether the task may skip the suspension and continue
// inline. That is the case only when a hook has handled a yielded value and
// no task is waiting for it.
func (p *point[V]) ready() bool {
	handled := p.notify()
	return handled && p.status == Yielded && !p.nested.Alive()
}

// suspend returns the continuation to run instead of returning control to
// the driver. It is empty when nothing awaits the task.
func (p *point[V]) suspend() Continuation {
	return p.nested
}
