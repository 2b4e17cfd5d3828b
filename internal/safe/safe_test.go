// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package safe

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireStack asserts that the PanicError carries a non-empty stack
// whose frames include the named function.
func requireStack(r *require.Assertions, err error, funcName string) {
	var recovered *PanicError
	r.ErrorAs(err, &recovered)
	r.NotEmpty(recovered.Stack)

	frames := runtime.CallersFrames(recovered.Stack)
	for {
		frame, more := frames.Next()
		if strings.Contains(frame.Function, funcName) {
			return
		}
		if !more {
			r.Fail("stack missing frame", "expected %q in:\n%s", funcName, recovered.Error())
		}
	}
}

func TestRun(t *testing.T) {
	r := require.New(t)

	// Normal call.
	r.NoError(Run(func() error { return nil }))

	// Returned errors pass through untouched.
	boom := errors.New("boom")
	r.Same(boom, Run(func() error { return boom }))

	// Panic with an error value.
	err := Run(func() error { panic(boom) })
	r.ErrorIs(err, boom)
	requireStack(r, err, "TestRun")

	// Panic with a non-error value.
	err = Run(func() error { panic("yikes") })
	r.ErrorContains(err, "yikes")
	requireStack(r, err, "TestRun")
}
