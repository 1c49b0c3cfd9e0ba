package costgrid_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/crucible/costgrid"
)

// BenchmarkParse measures parsing of a deterministic 141×141 digit grid,
// the size of a typical puzzle input.
// Complexity: O(W×H)
func BenchmarkParse(b *testing.B) {
	const n = 141
	rng := rand.New(rand.NewSource(42))
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			sb.WriteByte(byte('1' + rng.Intn(9)))
		}
		sb.WriteByte('\n')
	}
	input := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := costgrid.ParseString(input); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}
