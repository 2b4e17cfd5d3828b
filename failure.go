// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package forkjoin

import (
	"fmt"
	"reflect"
	"strings"
)

// An AggregateError is the union of failures raised concurrently by
// sibling tasks. Its member set is always flat: an AggregateError
// never contains another AggregateError. Build one with [Aggregate].
//
// The type implements Unwrap() []error, so [errors.Is] and [errors.As]
// see every member.
type AggregateError struct {
	errs []error
}

// Aggregate merges two failures into one. If either argument is
// already an [*AggregateError], its members are absorbed individually,
// keeping the result flat; the merge is commutative and associative up
// to member ordering. A nil argument returns the other unchanged, so
// Aggregate can be folded over a running error value.
//
// Membership is by identity: a member equal (==) to one already
// present is not added again, which keeps one failure observed by many
// siblings from being counted once per observer. Errors whose dynamic
// type is not comparable are always treated as distinct.
//
// The arguments are not mutated; the result is a fresh value.
func Aggregate(a, b error) error {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	agg := &AggregateError{}
	agg.absorb(a)
	agg.absorb(b)
	return agg
}

// Errors returns a copy of the member failures, in the order they were
// first aggregated. Each member remains individually inspectable.
func (e *AggregateError) Errors() []error {
	out := make([]error, len(e.errs))
	copy(out, e.errs)
	return out
}

// Error summarizes every member failure.
func (e *AggregateError) Error() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "%d failures:", len(e.errs))
	for _, m := range e.errs {
		_, _ = fmt.Fprintf(&sb, "\n\t%v", m)
	}
	return sb.String()
}

// Unwrap exposes the member failures to [errors.Is] and [errors.As].
func (e *AggregateError) Unwrap() []error {
	return e.errs
}

func (e *AggregateError) absorb(err error) {
	if other, ok := err.(*AggregateError); ok {
		for _, m := range other.errs {
			e.add(m)
		}
		return
	}
	e.add(err)
}

func (e *AggregateError) add(err error) {
	// Interface equality panics when both operands share an
	// uncomparable dynamic type, so such errors skip deduplication.
	if reflect.TypeOf(err).Comparable() {
		for _, m := range e.errs {
			if m == err {
				return
			}
		}
	}
	e.errs = append(e.errs, err)
}
