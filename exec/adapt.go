// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package exec

import "context"

// Adaptable is the set of callback signatures accepted by [Fn].
type Adaptable[T any] interface {
	func(T) | func(T) error |
		func(context.Context, T) | func(context.Context, T) error
}

// Fn adapts various callback signatures to the canonical form accepted
// by [ForEach].
func Fn[T any, A Adaptable[T]](fn A) func(context.Context, T) error {
	a := any(fn)
	switch t := a.(type) {
	case func(T):
		return func(_ context.Context, v T) error {
			t(v)
			return nil
		}
	case func(T) error:
		return func(_ context.Context, v T) error {
			return t(v)
		}
	case func(context.Context, T):
		return func(ctx context.Context, v T) error {
			t(ctx, v)
			return nil
		}
	}
	return a.(func(context.Context, T) error)
}
