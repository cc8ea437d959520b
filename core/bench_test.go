package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/astarlab/core"
)

// BenchmarkAddLink measures link insertion into a chain of b.N nodes.
func BenchmarkAddLink(b *testing.B) {
	s := core.NewSearchSpace()
	for i := 0; i <= b.N; i++ {
		_, _ = s.AddNode(fmt.Sprintf("n%d", i), core.Position{X: float64(i)})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.AddLink(fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", i+1))
	}
}

// BenchmarkEnabledView measures the filtered copy on a 200-node chain.
func BenchmarkEnabledView(b *testing.B) {
	s := core.NewSearchSpace()
	for i := 0; i < 200; i++ {
		_, _ = s.AddNode(fmt.Sprintf("n%d", i), core.Position{X: float64(i)})
		if i > 0 {
			_, _ = s.AddLink(fmt.Sprintf("n%d", i-1), fmt.Sprintf("n%d", i))
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.EnabledView()
	}
}
