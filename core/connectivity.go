// File: connectivity.go
// Role: Reachability queries over the adjacency structure (IsConnected, Components).
//
// Both traversals are iterative depth-first searches with an explicit stack, so graphs
// with tens of thousands of vertices never grow the goroutine stack.

package core

// IsConnected reports whether every vertex is reachable from the first vertex in
// insertion order. A graph with zero vertices is connected by definition.
//
// Steps:
//  1. If |V| == 0, return true.
//  2. Push index 0; pop, mark, push every unmarked neighbor.
//  3. Return visited == |V|.
//
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph[V]) IsConnected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.vertices)
	if n == 0 {
		return true
	}
	visited := make([]bool, n)

	return g.reachLocked(0, visited, nil) == n
}

// Components returns the connected components as vertex groups. Components are
// ordered by their first vertex in insertion order; vertices inside a component are
// listed in discovery order.
//
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph[V]) Components() [][]V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.vertices)
	visited := make([]bool, n)
	var out [][]V
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		var comp []V
		g.reachLocked(start, visited, func(i int) { comp = append(comp, g.vertices[i]) })
		out = append(out, comp)
	}

	return out
}

// reachLocked marks every vertex reachable from start and returns how many vertices
// this call marked. visit, if non-nil, is called once per newly marked index.
// Caller must hold at least the read lock.
func (g *Graph[V]) reachLocked(start int, visited []bool, visit func(int)) int {
	stack := []int{start}
	visited[start] = true
	count := 0
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		if visit != nil {
			visit(i)
		}
		for _, nb := range g.adjacency[i] {
			j := g.index[nb.To]
			if !visited[j] {
				visited[j] = true
				stack = append(stack, j)
			}
		}
	}

	return count
}
