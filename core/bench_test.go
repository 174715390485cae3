package core_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mstnet/core"
)

// BenchmarkIsConnected measures DFS reachability on a 1000-vertex, 5000-edge graph.
func BenchmarkIsConnected(b *testing.B) {
	const n, m = 1000, 5000
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("V%d", i)
	}
	g := core.MustGraph(ids)
	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		_ = g.AddEdge(ids[r.Intn(i)], ids[i], int64(r.Intn(100)+1))
	}
	for i := n - 1; i < m; i++ {
		_ = g.AddEdge(ids[r.Intn(n)], ids[r.Intn(n)], int64(r.Intn(100)+1))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.IsConnected()
	}
}
