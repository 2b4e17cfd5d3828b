// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package forkjoin

import "github.com/cespare/xxhash/v2"

// A Partitioned combiner routes each element to a bucket by hashing a
// caller-supplied key, so elements with equal keys always land in the
// same bucket no matter which task produced them. Merging the
// Partitioned outputs of sibling tasks therefore yields buckets that
// are already grouped by key, which is the building block for parallel
// group-by and hash-container construction.
type Partitioned[T any] struct {
	Bucketed[T]
	key func(T) string
}

// NewPartitioned returns an empty Partitioned combiner with the given
// number of buckets. Combiners that will be merged must be created
// with the same bucket count and the same key function; only the
// bucket count is checked by Combine.
func NewPartitioned[T any](buckets int, key func(T) string) *Partitioned[T] {
	return &Partitioned[T]{
		Bucketed: *NewBucketed[T](buckets),
		key:      key,
	}
}

// Add routes v to the bucket selected by the hash of its key.
func (p *Partitioned[T]) Add(v T) {
	h := xxhash.Sum64String(p.key(v))
	p.Append(int(h%uint64(p.Buckets())), v)
}

// Combine splices other's buckets onto the receiver bucket by bucket.
// See [Bucketed.Combine] for the consumption contract.
func (p *Partitioned[T]) Combine(other *Partitioned[T]) *Partitioned[T] {
	p.Bucketed.Combine(&other.Bucketed)
	return p
}
