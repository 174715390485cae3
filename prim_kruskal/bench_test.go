package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/mstnet/prim_kruskal"
)

// BenchmarkKruskal measures performance on a random graph with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(b, 42, 500, 2000, true) // pre‐build graph once
	b.ResetTimer()                                // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures performance on the same graph, starting from vertex 0.
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(b, 42, 500, 2000, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g, prim_kruskal.WithRoot(0))
	}
}

// BenchmarkPrim_Dense measures Prim where E ≫ V and stale heap entries pile up.
func BenchmarkPrim_Dense(b *testing.B) {
	g := buildMediumGraph(b, 42, 200, 20000, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g)
	}
}
