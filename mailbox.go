// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfq"
)

// DefaultCapacity is the mailbox capacity used when a non-positive
// capacity is requested.
const DefaultCapacity = 16

// Mailbox is an [Emitter] fed from another goroutine.
//
// One producer goroutine posts events with [Mailbox.Post]; the driver
// goroutine hands them to the waiting task with [Mailbox.Deliver].
// Events are delivered in order and none is lost while the queue has room.
// Transport is a bounded lock-free SPSC queue from lfq.
type Mailbox[T any] struct {
	Emitter[T]
	q      lfq.SPSC[T]
	closed atomix.Uint32
}

// NewMailbox creates a mailbox holding up to capacity undelivered events.
func NewMailbox[T any](capacity int) *Mailbox[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	m := &Mailbox[T]{}
	m.q.Init(capacity)
	m.Update = m.poll
	return m
}

// poll hands a queued event to a task that is about to wait.
func (m *Mailbox[T]) poll(v *T) bool {
	ev, err := m.q.Dequeue()
	if err != nil {
		return false
	}
	*v = ev
	return true
}

// Post queues ev for delivery. It is the only method that may be called
// from a goroutine other than the driver's, and from one such goroutine
// at a time.
//
// Post returns iox.ErrWouldBlock when the queue is full and [ErrClosed]
// after Close.
func (m *Mailbox[T]) Post(ev T) error {
	if m.Closed() {
		return ErrClosed
	}
	return m.q.Enqueue(&ev)
}

// Deliver wakes the waiting task with the next queued event.
// It reports whether an event was delivered. Without a waiting task the
// events stay queued.
func (m *Mailbox[T]) Deliver() bool {
	if !m.Pending() {
		return false
	}
	ev, err := m.q.Dequeue()
	if err != nil {
		return false
	}
	m.Wake(ev)
	return true
}

// Close makes later calls to Post fail. Queued events can still be
// delivered.
func (m *Mailbox[T]) Close() {
	m.closed.Store(1)
}

// Closed reports whether Close has been called.
func (m *Mailbox[T]) Closed() bool {
	return m.closed.Load() != 0
}
