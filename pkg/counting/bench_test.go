package counting_test

import (
	"fmt"
	"testing"

	"github.com/limaJavier/counting/pkg/counting"
)

// BenchmarkArrangementsWithForbidden measures the adjacency table on a chain of forbidden
// pairs 0-1, 1-2, ... for growing item counts.
func BenchmarkArrangementsWithForbidden(b *testing.B) {
	for _, n := range []int{8, 12, 16} {
		forbidden := make([]counting.Pair, 0, n-1)
		for i := 0; i+1 < n; i++ {
			forbidden = append(forbidden, counting.Pair{Before: i, After: i + 1})
		}

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for b.Loop() {
				if _, err := counting.ArrangementsWithForbidden(n, n, forbidden); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkWithMinimums(b *testing.B) {
	groups := []uint64{40, 35, 30, 25}
	minimums := []uint64{2, 2, 1, 0}
	for b.Loop() {
		if _, err := counting.WithMinimums(groups, minimums, 20); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompositions(b *testing.B) {
	for b.Loop() {
		for range counting.Compositions(12, 6, 4) {
		}
	}
}
