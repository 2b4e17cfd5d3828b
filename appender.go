// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package forkjoin

// An Appender is the single-bucket combiner: elements come back out of
// [Appender.Result] in exactly the order they were added, so splicing
// sibling Appenders left-to-right preserves the order of the original
// sequence. It is the natural builder for order-preserving operations
// such as a parallel map.
type Appender[T any] struct {
	Bucketed[T]
}

// NewAppender returns an empty Appender.
func NewAppender[T any]() *Appender[T] {
	return &Appender[T]{Bucketed: *NewBucketed[T](1)}
}

// Add appends v after the elements already accumulated.
func (a *Appender[T]) Add(v T) {
	a.Append(0, v)
}

// Combine splices other onto the receiver; other's elements follow the
// receiver's. See [Bucketed.Combine] for the consumption contract.
func (a *Appender[T]) Combine(other *Appender[T]) *Appender[T] {
	a.Bucketed.Combine(&other.Bucketed)
	return a
}

// Result materializes the accumulated elements as a slice, in append
// order. The combiner itself is left untouched.
func (a *Appender[T]) Result() []T {
	out := make([]T, 0, a.Size())
	for v := range a.Bucket(0) {
		out = append(out, v)
	}
	return out
}
