// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package exec_test

import (
	"context"
	"fmt"

	"vawter.tech/forkjoin/exec"
)

func ExampleMap() {
	squares, err := exec.Map(context.Background(), []int{1, 2, 3, 4, 5},
		func(_ context.Context, v int) (int, error) {
			return v * v, nil
		},
		exec.WithParallelism(2))
	if err != nil {
		panic(err)
	}
	fmt.Println(squares)
	// Output: [1 4 9 16 25]
}

func ExampleGroup() {
	words := []string{"ant", "bee", "cow", "elk", "fox"}
	buckets, err := exec.Group(context.Background(), words, 4,
		func(v string) string { return v[:1] },
		exec.WithParallelism(2))
	if err != nil {
		panic(err)
	}

	total := 0
	for _, b := range buckets {
		total += len(b)
	}
	fmt.Println(total)
	// Output: 5
}
