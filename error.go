// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	// ErrClosed is returned by [Mailbox.Post] after the mailbox is closed.
	ErrClosed = errors.New("coro: closed")

	// ErrUnhandledEffect is the pending error of a task whose body performed
	// an effect the task does not interpret.
	ErrUnhandledEffect = errors.New("coro: unhandled effect")
)

// PanicError is the pending error of a task whose body panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("coro: task panicked: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// try runs f and converts a panic into a *PanicError.
func try(f func()) (err error) {
	ok := false
	defer func() {
		if !ok {
			v := recover()
			if v == nil {
				panic("coro: runtime.Goexit in task body is not supported")
			}
			err = &PanicError{Value: v, Stack: debug.Stack()}
		}
	}()
	f()
	ok = true
	return nil
}
