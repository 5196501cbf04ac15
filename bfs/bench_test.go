package bfs_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/calcpath/bfs"
)

// BenchmarkSearch_Chain measures a search that must walk a chain of N states.
func BenchmarkSearch_Chain(b *testing.B) {
	const N = 10000
	p := bfs.Problem[int]{
		Start:       0,
		Transitions: []bfs.Transition[int]{plus1},
		Key:         strconv.Itoa,
		Accept:      func(n int) bool { return n == N },
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(p)
	}
}

// BenchmarkSearch_Branching runs a three-way branching search over a
// bounded ring of 4096 states.
func BenchmarkSearch_Branching(b *testing.B) {
	const ring = 4096
	step := func(name string, f func(int) int) intOp {
		return intOp{name, func(n int) (int, bool) { return f(n) % ring, true }}
	}
	p := bfs.Problem[int]{
		Start: 1,
		Transitions: []bfs.Transition[int]{
			step("+1", func(n int) int { return n + 1 }),
			step("*3", func(n int) int { return n * 3 }),
			step("+17", func(n int) int { return n + 17 }),
		},
		Key:    strconv.Itoa,
		Accept: func(n int) bool { return n == ring-1 },
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(p)
	}
}
