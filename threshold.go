// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package forkjoin

// Threshold returns the range size below which a parallel computation
// over size elements should stop splitting and run sequentially.
//
// With parallelism greater than one the threshold is
// 1 + size/(8*parallelism), yielding roughly eight times as many leaf
// tasks as workers so that uneven leaves can be balanced across the
// pool. With parallelism of one (or less) the threshold is the whole
// size: nothing is ever split.
//
// For a fixed size, the threshold never increases as parallelism
// grows.
func Threshold(size, parallelism int) int {
	if parallelism > 1 {
		return 1 + size/(8*parallelism)
	}
	return size
}
