// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package forkjoin_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"vawter.tech/forkjoin"
)

func TestThresholdSequential(t *testing.T) {
	r := require.New(t)

	// With a single worker, nothing should ever split.
	for _, size := range []int{0, 1, 16, 1000, 1 << 20} {
		r.Equal(size, forkjoin.Threshold(size, 1))
		r.Equal(size, forkjoin.Threshold(size, 0))
	}
}

func TestThresholdKnownValues(t *testing.T) {
	r := require.New(t)

	r.Equal(32, forkjoin.Threshold(1000, 4))
	r.Equal(1, forkjoin.Threshold(5, 2))
	r.Equal(1, forkjoin.Threshold(0, 8))
}

func TestThresholdMonotonic(t *testing.T) {
	r := require.New(t)

	for _, size := range []int{1, 7, 100, 12345} {
		prev := forkjoin.Threshold(size, 1)
		for p := 2; p <= 64; p++ {
			next := forkjoin.Threshold(size, p)
			r.LessOrEqual(next, prev,
				"size %d: threshold grew from parallelism %d to %d", size, p-1, p)
			prev = next
		}
	}
}
