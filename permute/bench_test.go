package permute_test

import (
	"testing"

	"github.com/pschiffmann/floorroute/permute"
)

// BenchmarkEnumerator_Full8 drains all 8! = 40320 orderings per iteration.
func BenchmarkEnumerator_Full8(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e, err := permute.New(8)
		if err != nil {
			b.Fatal(err)
		}
		for e.HasNext() {
			_ = e.Next()
		}
	}
}

// BenchmarkEnumerator_SkipHeavy10 skips at position 1 on every ordering,
// the pattern branch-and-bound search produces under a tight bound.
func BenchmarkEnumerator_SkipHeavy10(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e, err := permute.New(10)
		if err != nil {
			b.Fatal(err)
		}
		for e.HasNext() {
			_ = e.Next()
			e.SkipRemainingAt(1)
		}
	}
}
