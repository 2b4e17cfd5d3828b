// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package forkjoin_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"vawter.tech/forkjoin"
)

func TestAppenderOrder(t *testing.T) {
	r := require.New(t)

	a := forkjoin.NewAppender[int]()
	for i := range 50 {
		a.Add(i)
	}
	r.Equal(50, a.Size())

	got := a.Result()
	r.Len(got, 50)
	for i, v := range got {
		r.Equal(i, v)
	}
}

func TestAppenderCombineKeepsOrder(t *testing.T) {
	r := require.New(t)

	// Three leaves covering contiguous sub-ranges, merged left to
	// right, reproduce the original sequence.
	left := forkjoin.NewAppender[int]()
	mid := forkjoin.NewAppender[int]()
	right := forkjoin.NewAppender[int]()
	for i := range 20 {
		left.Add(i)
	}
	for i := 20; i < 25; i++ {
		mid.Add(i)
	}
	for i := 25; i < 60; i++ {
		right.Add(i)
	}

	got := left.Combine(mid).Combine(right).Result()
	r.Len(got, 60)
	for i, v := range got {
		r.Equal(i, v)
	}
}

func TestAppenderEmpty(t *testing.T) {
	r := require.New(t)

	a := forkjoin.NewAppender[string]()
	r.Zero(a.Size())
	r.Empty(a.Result())

	b := forkjoin.NewAppender[string]()
	b.Add("x")
	a.Combine(b)
	r.Equal([]string{"x"}, a.Result())
}
