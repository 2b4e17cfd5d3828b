// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package forkjoin

import "fmt"

// A Splitter iterates over a half-open range [index, until) of a
// borrowed slice and can recursively bisect itself into independent
// sub-range iterators for concurrent processing.
//
// The slice must not be mutated while any Splitter over it is live.
// A Splitter is owned by exactly one task at a time: its methods must
// not be called concurrently on the same instance, though different
// instances produced by a split may be driven by different tasks.
type Splitter[T any] struct {
	buf    []T
	index  int
	until  int
	signal *Signal
}

// NewSplitter returns a Splitter over all of buf. The Signal is the
// status handle that will be shared by every descendant produced via
// [Splitter.Split]; passing nil allocates a fresh one.
func NewSplitter[T any](buf []T, sig *Signal) *Splitter[T] {
	if sig == nil {
		sig = NewSignal()
	}
	return &Splitter[T]{buf: buf, until: len(buf), signal: sig}
}

// HasNext reports whether the range has unconsumed elements.
func (s *Splitter[T]) HasNext() bool {
	return s.index < s.until
}

// Next returns the element at the current position and advances past
// it. Calling Next on an exhausted Splitter is a caller bug and
// panics.
func (s *Splitter[T]) Next() T {
	if s.index >= s.until {
		panic(fmt.Sprintf("forkjoin: Next on exhausted Splitter %s", s))
	}
	v := s.buf[s.index]
	s.index++
	return v
}

// Remaining returns the number of unconsumed elements.
func (s *Splitter[T]) Remaining() int {
	return s.until - s.index
}

// Split bisects the remaining range at its midpoint and returns the
// two halves, both sharing the receiver's [Signal]. If fewer than two
// elements remain, the range cannot be divided and Split returns a
// single-element slice holding the receiver unchanged.
//
// Split allocates new views over the same underlying slice; no
// elements are copied. After a two-way split the receiver must no
// longer be used, since the halves cover its range.
func (s *Splitter[T]) Split() []*Splitter[T] {
	if s.Remaining() <= 1 {
		return []*Splitter[T]{s}
	}
	mid := s.index + (s.until-s.index)/2
	return []*Splitter[T]{
		{buf: s.buf, index: s.index, until: mid, signal: s.signal},
		{buf: s.buf, index: mid, until: s.until, signal: s.signal},
	}
}

// Signal returns the status handle shared across every Splitter
// descended from a common split ancestor.
func (s *Splitter[T]) Signal() *Signal {
	return s.signal
}

// String is for debugging use only.
func (s *Splitter[T]) String() string {
	return fmt.Sprintf("[%d, %d)", s.index, s.until)
}
