// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

// Status is the state of a task.
type Status uint8

const (
	// Idle means the task is running, or ready to run a synchronous slice.
	Idle Status = iota
	// Awaiting means the task is blocked on an [Awaitable].
	Awaiting
	// Yielded means a value is buffered for the driver.
	Yielded
	// Returned is terminal: the computation finished or was torn down.
	Returned
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Awaiting:
		return "awaiting"
	case Yielded:
		return "yielded"
	case Returned:
		return "returned"
	default:
		return "unknown"
	}
}

// Hook observes the status transitions of a [Future].
//
// A Hook is called with the future and its new status each time the status
// changes. At a Yielded boundary, returning true tells the task the value
// has been handled: the task continues inline instead of suspending.
// The return value is ignored for other statuses.
type Hook[V any] func(f *Future[V], s Status) bool
