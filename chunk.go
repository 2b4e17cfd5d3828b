// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package forkjoin

import "iter"

// chunkCap is the number of element slots in one Chunk. Sixteen keeps
// a node within a couple of cache lines for word-sized elements while
// amortizing the per-node pointer overhead.
const chunkCap = 16

// A Chunk is one node of an unrolled chain: a fixed-capacity array of
// elements plus a link to the next node. A chain grown only by
// [Chunk.Append] keeps every node except the last full; splicing two
// chains together (see [Bucketed.Combine]) may leave a partial node
// mid-chain, which iteration handles.
//
// A chain is exclusively owned by one combiner at a time and is not
// safe for concurrent use. The zero value is an empty chain of one
// node.
type Chunk[T any] struct {
	elems [chunkCap]T
	count int
	next  *Chunk[T]
}

// NewChunk returns an empty chain: a single node holding no elements.
func NewChunk[T any]() *Chunk[T] {
	return &Chunk[T]{}
}

// Append writes v after the last element of the chain ending at the
// receiver and returns the chain's new tail. The receiver must be the
// tail of its chain. Callers must retain the returned node as the
// insertion point for the next Append; when the receiver is full, the
// element lands in a freshly allocated node linked behind it.
func (c *Chunk[T]) Append(v T) *Chunk[T] {
	if c.count < chunkCap {
		c.elems[c.count] = v
		c.count++
		return c
	}
	n := &Chunk[T]{count: 1}
	n.elems[0] = v
	c.next = n
	return n
}

// All returns an iterator over every element reachable from the
// receiver, node by node in insertion order. Iteration does not
// mutate the chain.
func (c *Chunk[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := c; n != nil; n = n.next {
			for i := range n.count {
				if !yield(n.elems[i]) {
					return
				}
			}
		}
	}
}

// Len returns the number of elements stored from the receiver to the
// end of its chain. It walks the chain.
func (c *Chunk[T]) Len() int {
	total := 0
	for n := c; n != nil; n = n.next {
		total += n.count
	}
	return total
}

// Next returns the following node of the chain, or nil at the tail.
func (c *Chunk[T]) Next() *Chunk[T] {
	return c.next
}
