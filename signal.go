// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package forkjoin

import (
	"sync"
	"sync/atomic"
)

// A Signal is the status handle shared by every [Splitter] descended
// from a common split ancestor. It carries a single cooperative abort
// flag: any task holding a descendant may raise it, and all siblings
// can observe it.
//
// The Signal only transports the request. Deciding when to check it,
// and what to do when it is raised, is the scheduler's business; the
// splitting machinery guarantees no more than that the same Signal
// reference (never a copy) reaches every descendant of a split.
//
// All methods are safe for concurrent use. The zero value is not
// usable; call [NewSignal].
type Signal struct {
	aborted atomic.Bool
	done    chan struct{}

	mu struct {
		sync.Mutex
		cause error
	}
}

// NewSignal returns a Signal in the running (not aborted) state.
func NewSignal() *Signal {
	return &Signal{done: make(chan struct{})}
}

// Abort raises the abort flag and records the cause. Only the first
// call has any effect; later calls, including concurrent ones, are
// no-ops.
func (s *Signal) Abort(cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.aborted.Load() {
		return
	}
	s.mu.cause = cause
	s.aborted.Store(true)
	close(s.done)
}

// Aborted reports whether Abort has been called. It is cheap enough
// to poll from a leaf loop.
func (s *Signal) Aborted() bool {
	return s.aborted.Load()
}

// Cause returns the error recorded by the first call to Abort, or nil
// if the Signal has not been aborted.
func (s *Signal) Cause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mu.cause
}

// Done returns a channel that is closed when the Signal is aborted,
// for use in select statements.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}
