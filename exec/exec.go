// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package exec provides a reference fork-join runner for the forkjoin
// primitives.
//
// Each operation splits its input with [vawter.tech/forkjoin.Splitter]
// until leaf ranges reach the split threshold, executes the leaves on
// a bounded worker group, and merges per-leaf combiners left to right
// after the join. Failures raised by leaves, including recovered
// panics, are folded with [vawter.tech/forkjoin.Aggregate] so that no
// sibling's failure is dropped. A leaf failure also raises the shared
// [vawter.tech/forkjoin.Signal], letting in-flight siblings drain
// early instead of computing results that will be discarded.
package exec

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"vawter.tech/forkjoin"
	"vawter.tech/forkjoin/internal/safe"
)

// run drives one fork-join computation: split the input until leaves
// are at or below the threshold, execute the leaves on a bounded
// group, then fold sibling results left to right after the join.
func run[T, C any](
	ctx context.Context,
	data []T,
	cfg *config,
	newCombiner func() C,
	leaf func(ctx context.Context, sp *forkjoin.Splitter[T], c C) error,
	merge func(a, b C) C,
) (C, error) {
	var zero C

	threshold := cfg.threshold
	if threshold == 0 {
		threshold = forkjoin.Threshold(len(data), cfg.parallelism)
	}

	sig := forkjoin.NewSignal()
	leaves := splitLeaves(forkjoin.NewSplitter(data, sig), threshold)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallelism)

	// Propagate context cancellation into the shared signal so that
	// running leaves can observe it mid-range.
	stopWatch := context.AfterFunc(gctx, func() {
		sig.Abort(context.Cause(gctx))
	})

	results := make([]C, len(leaves))
	errs := make([]error, len(leaves))
	populated := make([]bool, len(leaves))

	for i, sp := range leaves {
		g.Go(func() error {
			if cfg.limiter != nil {
				if err := cfg.limiter.Wait(gctx); err != nil {
					if cause := context.Cause(gctx); cause != nil {
						err = cause
					}
					errs[i] = err
					return nil
				}
			}
			if sig.Aborted() {
				// A sibling failed or the context was canceled;
				// the originating failure is recorded elsewhere.
				return nil
			}
			c := newCombiner()
			if err := safe.Run(func() error { return leaf(gctx, sp, c) }); err != nil {
				err = fmt.Errorf("leaf %s: %w", sp, err)
				sig.Abort(err)
				errs[i] = err
				return nil
			}
			results[i] = c
			populated[i] = true
			return nil
		})
	}
	// The join: all leaf writes happen before the merges below. Leaves
	// report failures through errs rather than the group.
	_ = g.Wait()
	stopWatch()

	var failure error
	for _, err := range errs {
		failure = forkjoin.Aggregate(failure, err)
	}
	if failure == nil && ctx.Err() != nil {
		failure = context.Cause(ctx)
	}
	if failure != nil {
		return zero, failure
	}

	out := newCombiner()
	for i := range results {
		if populated[i] {
			out = merge(out, results[i])
		}
	}
	return out, nil
}

// splitLeaves bisects recursively until every leaf range holds at most
// threshold elements, returning the leaves in left-to-right order.
func splitLeaves[T any](root *forkjoin.Splitter[T], threshold int) []*forkjoin.Splitter[T] {
	var leaves []*forkjoin.Splitter[T]
	stack := []*forkjoin.Splitter[T]{root}
	for len(stack) > 0 {
		sp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if sp.Remaining() <= threshold {
			leaves = append(leaves, sp)
			continue
		}
		halves := sp.Split()
		if len(halves) == 1 {
			leaves = append(leaves, halves[0])
			continue
		}
		// Right half below the left so the left pops first.
		stack = append(stack, halves[1], halves[0])
	}
	return leaves
}

// ForEach applies fn to every element of data, processing contiguous
// sub-ranges concurrently. It returns nil once every element has been
// visited, or the aggregated failure otherwise. There is no guarantee
// about which elements have been visited when an error is returned.
//
// See [Fn] to adapt other callback signatures.
func ForEach[T any](ctx context.Context, data []T, fn func(context.Context, T) error, opts ...Option) error {
	_, err := run(ctx, data, newConfig(opts),
		func() struct{} { return struct{}{} },
		func(ctx context.Context, sp *forkjoin.Splitter[T], _ struct{}) error {
			sig := sp.Signal()
			for sp.HasNext() {
				if sig.Aborted() {
					return nil
				}
				if err := fn(ctx, sp.Next()); err != nil {
					return err
				}
			}
			return nil
		},
		func(a, _ struct{}) struct{} { return a },
	)
	return err
}

// Map applies fn to every element of data and returns the results in
// input order. The per-leaf results are accumulated in
// [forkjoin.Appender] combiners and spliced on join, so no
// intermediate copies are made however the range was split.
func Map[T, R any](ctx context.Context, data []T, fn func(context.Context, T) (R, error), opts ...Option) ([]R, error) {
	out, err := run(ctx, data, newConfig(opts),
		forkjoin.NewAppender[R],
		func(ctx context.Context, sp *forkjoin.Splitter[T], c *forkjoin.Appender[R]) error {
			sig := sp.Signal()
			for sp.HasNext() {
				if sig.Aborted() {
					return nil
				}
				r, err := fn(ctx, sp.Next())
				if err != nil {
					return err
				}
				c.Add(r)
			}
			return nil
		},
		func(a, b *forkjoin.Appender[R]) *forkjoin.Appender[R] { return a.Combine(b) },
	)
	if err != nil {
		return nil, err
	}
	return out.Result(), nil
}

// Group partitions data into buckets by the hash of each element's
// key, using [forkjoin.Partitioned] combiners per leaf. Elements with
// equal keys land in the same bucket; within a bucket, elements keep
// their input order.
func Group[T any](ctx context.Context, data []T, buckets int, key func(T) string, opts ...Option) ([][]T, error) {
	c, err := run(ctx, data, newConfig(opts),
		func() *forkjoin.Partitioned[T] { return forkjoin.NewPartitioned(buckets, key) },
		func(ctx context.Context, sp *forkjoin.Splitter[T], c *forkjoin.Partitioned[T]) error {
			sig := sp.Signal()
			for sp.HasNext() {
				if sig.Aborted() {
					return nil
				}
				c.Add(sp.Next())
			}
			return nil
		},
		func(a, b *forkjoin.Partitioned[T]) *forkjoin.Partitioned[T] { return a.Combine(b) },
	)
	if err != nil {
		return nil, err
	}
	out := make([][]T, buckets)
	for i := range out {
		var bucket []T
		for v := range c.Bucket(i) {
			bucket = append(bucket, v)
		}
		out[i] = bucket
	}
	return out, nil
}
