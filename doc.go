// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package forkjoin provides the low-level primitives used by fork-join
// style parallel computations over in-memory sequences: deciding how
// finely to split work, splitting a range into independent sub-ranges,
// accumulating per-task results so that merging is cheap, and folding
// concurrently raised failures into a single coherent error.
//
// The package contains no goroutines, locks, or blocking calls of its
// own. It is a set of building blocks intended to be driven by an
// external scheduler; the [vawter.tech/forkjoin/exec] subpackage ships
// a reference runner built on them.
//
// # Splitting work
//
// [Threshold] maps a collection size and a parallelism level to the
// range size below which splitting should stop. A [Splitter] is a view
// over a borrowed slice that can recursively bisect itself:
//
//	sp := forkjoin.NewSplitter(data, nil)
//	for sp.Remaining() > threshold {
//	    halves := sp.Split()
//	    // dispatch halves[1] to another task...
//	    sp = halves[0]
//	}
//
// Every Splitter descended from a common ancestor shares one [Signal],
// the cooperative status handle through which a scheduler or a failing
// sibling can request that in-flight leaves stop early.
//
// # Accumulating results
//
// A [Bucketed] combiner collects elements into independent buckets,
// each stored as an unrolled chain of [Chunk] nodes. Merging two
// combiners with [Bucketed.Combine] relinks a constant number of chain
// tails per bucket, so the join step of a fork-join tree costs
// O(buckets) no matter how many elements the tasks produced. The
// argument to Combine is consumed: its buckets alias nodes owned by
// the receiver afterwards, and it must not be read or combined again.
//
// [Appender] is the order-preserving single-bucket combiner;
// [Partitioned] routes elements to buckets by hashing a caller-supplied
// key, so equal keys meet in the same bucket regardless of which task
// produced them.
//
// # Failures
//
// [Aggregate] merges failures raised concurrently by sibling tasks
// into a flat [AggregateError] that enumerates every distinct
// constituent, so no task's failure is silently dropped by the order
// in which siblings complete.
//
// # Contract violations
//
// Calling [Splitter.Next] past exhaustion or combining combiners with
// different bucket layouts indicates a caller bug, not a runtime
// condition; both panic.
package forkjoin
