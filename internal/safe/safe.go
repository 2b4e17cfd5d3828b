// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package safe executes caller-provided leaf callbacks, converting
// panics into error values that can participate in failure
// aggregation.
package safe

import (
	"fmt"
	"runtime"
	"strings"
)

const captureDepth = 32

// A PanicError associates a recovered panic with the goroutine stack
// at the point of the panic.
type PanicError struct {
	Err   error
	Stack []uintptr
}

// Error implements error.
func (e *PanicError) Error() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "panic: %v\n", e.Err)
	frames := runtime.CallersFrames(e.Stack)
	for {
		frame, more := frames.Next()
		_, _ = fmt.Fprintf(&sb, "%s ( %s:%d )\n", frame.Function, frame.File, frame.Line)
		if !more {
			return sb.String()
		}
	}
}

// Unwrap returns the enclosed error.
func (e *PanicError) Unwrap() error { return e.Err }

// Run executes the function. If the function panics, the recovered
// value is returned as a [*PanicError] instead of unwinding the
// worker.
func Run(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		rErr, ok := r.(error)
		if !ok {
			rErr = fmt.Errorf("%v", r)
		}
		stack := make([]uintptr, captureDepth)
		stack = stack[:runtime.Callers(2, stack)]
		err = &PanicError{Err: rErr, Stack: stack}
	}()
	err = fn()
	return
}
