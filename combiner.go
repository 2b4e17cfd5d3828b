// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package forkjoin

import (
	"fmt"
	"iter"
)

// A Bucketed combiner accumulates elements into a fixed number of
// independent buckets, each stored as its own unrolled [Chunk] chain.
// Concrete combiners such as [Appender] and [Partitioned] embed a
// Bucketed and decide which bucket each element lands in.
//
// A Bucketed is populated by exactly one task; it is not safe for
// concurrent use. Merging the outputs of joined tasks via
// [Bucketed.Combine] costs O(buckets) regardless of how many elements
// were accumulated, which is what makes per-leaf combiners viable in a
// fork-join tree with many leaves.
type Bucketed[T any] struct {
	heads []*Chunk[T]
	lasts []*Chunk[T]
	size  int

	// BeforeCombine and AfterCombine, when non-nil, are invoked by
	// Combine around the splice with the combiner being consumed.
	// They are best-effort extension points: if a hook panics
	// mid-combine, the receiver may be left partially merged.
	BeforeCombine func(other *Bucketed[T])
	AfterCombine  func(other *Bucketed[T])
}

// NewBucketed returns an empty combiner with the given number of
// buckets. It panics if buckets is not positive.
func NewBucketed[T any](buckets int) *Bucketed[T] {
	if buckets <= 0 {
		panic(fmt.Sprintf("forkjoin: combiner needs at least one bucket, got %d", buckets))
	}
	return &Bucketed[T]{
		heads: make([]*Chunk[T], buckets),
		lasts: make([]*Chunk[T], buckets),
	}
}

// Append adds v to bucket i and grows the combiner's size by one.
func (b *Bucketed[T]) Append(i int, v T) {
	if b.heads[i] == nil {
		c := NewChunk[T]()
		b.heads[i] = c
		b.lasts[i] = c
	}
	b.lasts[i] = b.lasts[i].Append(v)
	b.size++
}

// Combine splices other's buckets onto the receiver and returns the
// receiver. For each bucket the receiver either adopts other's chain
// wholesale (when its own bucket is empty) or links other's head
// behind its own tail; in both cases ownership of the nodes transfers
// without copying any elements.
//
// The argument is consumed: after Combine returns, other's buckets
// alias nodes owned by the receiver and other must not be read,
// written, or combined again. Combining a combiner with itself is a
// no-op. Combining combiners with different bucket counts is a caller
// bug and panics.
//
// Combine must only be called after the tasks that populated both
// operands have been joined; it relinks pointers without any
// synchronization.
func (b *Bucketed[T]) Combine(other *Bucketed[T]) *Bucketed[T] {
	if other == b {
		return b
	}
	if len(other.heads) != len(b.heads) {
		panic(fmt.Sprintf("forkjoin: combining incompatible combiners: %d buckets vs %d",
			len(b.heads), len(other.heads)))
	}
	if b.BeforeCombine != nil {
		b.BeforeCombine(other)
	}
	for i := range b.heads {
		if other.heads[i] == nil {
			continue
		}
		if b.heads[i] == nil {
			b.heads[i] = other.heads[i]
			b.lasts[i] = other.lasts[i]
			continue
		}
		b.lasts[i].next = other.heads[i]
		b.lasts[i] = other.lasts[i]
	}
	b.size += other.size
	if b.AfterCombine != nil {
		b.AfterCombine(other)
	}
	return b
}

// Clear resets the receiver to an empty combiner with the same bucket
// count. The previous chains are released, not reused; a cleared
// combiner shares no state with anything it was combined with before.
func (b *Bucketed[T]) Clear() {
	for i := range b.heads {
		b.heads[i] = nil
		b.lasts[i] = nil
	}
	b.size = 0
}

// Size returns the total number of elements across all buckets.
func (b *Bucketed[T]) Size() int {
	return b.size
}

// Buckets returns the number of buckets.
func (b *Bucketed[T]) Buckets() int {
	return len(b.heads)
}

// Bucket returns an iterator over the elements of bucket i in the
// order they were appended.
func (b *Bucketed[T]) Bucket(i int) iter.Seq[T] {
	head := b.heads[i]
	return func(yield func(T) bool) {
		if head == nil {
			return
		}
		for v := range head.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over every element, visiting buckets in
// index order and each bucket in append order.
func (b *Bucketed[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range b.heads {
			for v := range b.Bucket(i) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// String is for debugging use only.
func (b *Bucketed[T]) String() string {
	return fmt.Sprintf("combiner: (%d buckets) (%d elements)", len(b.heads), b.size)
}
