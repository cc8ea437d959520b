package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/astarlab/bfs"
	"github.com/katalvlaran/astarlab/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N+1 nodes.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	labels := make([]string, N+1)
	for i := range labels {
		labels[i] = fmt.Sprintf("v%d", i)
	}
	s := chain(b, labels...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(s, "v0")
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth 10.
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10
	nodeCount := (1 << depth) - 1
	s := core.NewSearchSpace()
	for i := 1; i <= nodeCount; i++ {
		_, _ = s.AddNode(fmt.Sprintf("%d", i), core.Position{X: float64(i)})
	}
	for i := 1; i <= (nodeCount-1)/2; i++ {
		p := fmt.Sprintf("%d", i)
		_, _ = s.AddLink(p, fmt.Sprintf("%d", 2*i))
		_, _ = s.AddLink(p, fmt.Sprintf("%d", 2*i+1))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(s, "1")
	}
}
