// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package exec_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"vawter.tech/forkjoin/exec"
)

func TestFn(t *testing.T) {
	r := require.New(t)
	ctx := t.Context()

	var got int
	r.NoError(exec.Fn[int](func(v int) { got = v })(ctx, 1))
	r.Equal(1, got)

	boom := errors.New("boom")
	r.Same(boom, exec.Fn[int](func(_ int) error { return boom })(ctx, 2))

	r.NoError(exec.Fn[int](func(_ context.Context, v int) { got = v })(ctx, 3))
	r.Equal(3, got)

	fn := func(_ context.Context, _ int) error { return boom }
	r.Same(boom, exec.Fn[int](fn)(ctx, 4))
}

func TestFnWithForEach(t *testing.T) {
	r := require.New(t)

	var sum atomic.Int64
	err := exec.ForEach(t.Context(), []int{1, 2, 3, 4},
		exec.Fn[int](func(v int) { sum.Add(int64(v)) }),
		exec.WithParallelism(2))
	r.NoError(err)
	r.Equal(int64(10), sum.Load())
}
