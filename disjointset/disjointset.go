// Package disjointset implements a union-find (disjoint-set) structure over arbitrary
// comparable labels, with path compression and union by rank.
//
// It is the cycle detector behind prim_kruskal.Kruskal: two vertices share a
// representative iff they are connected by edges already accepted into the tree.
//
// Complexity: any sequence of m Find/Union calls over n elements costs
// O(m·α(n)), α being the inverse Ackermann function (near-constant in practice).
package disjointset

// DisjointSet partitions a set of labels into disjoint groups.
//
// parent always forms a forest: following parent pointers from any element terminates
// at a root, which is the representative of that element's set.
// The zero value is not usable; construct with New.
type DisjointSet[V comparable] struct {
	parent map[V]V
	rank   map[V]int
	sets   int
}

// New creates a DisjointSet in which every given label is its own singleton set with
// rank 0 (makeSet). Repeated labels are ignored.
// Complexity: O(n).
func New[V comparable](elems ...V) *DisjointSet[V] {
	ds := &DisjointSet[V]{
		parent: make(map[V]V, len(elems)),
		rank:   make(map[V]int, len(elems)),
	}
	for _, v := range elems {
		ds.Add(v)
	}

	return ds
}

// Add inserts v as a new singleton set. It reports false if v is already present.
// Complexity: O(1).
func (ds *DisjointSet[V]) Add(v V) bool {
	if _, ok := ds.parent[v]; ok {
		return false
	}
	ds.parent[v] = v
	ds.rank[v] = 0
	ds.sets++

	return true
}

// Find returns the representative of x's set, compressing the traversed path so every
// visited node points directly at the root. The boolean is false if x is unknown.
//
// Steps:
//  1. Walk parent pointers until a self-parented root is reached.
//  2. Walk the same path again, repointing each node to the root.
//
// Both passes are loops, so deep chains never grow the goroutine stack.
// Complexity: amortized O(α(n)).
func (ds *DisjointSet[V]) Find(x V) (V, bool) {
	p, ok := ds.parent[x]
	if !ok {
		var zero V
		return zero, false
	}

	// fast path: x is a root or a direct child of one.
	if p == x {
		return x, true
	}
	if gp := ds.parent[p]; gp == p {
		return p, true
	}

	// pass 1: find root
	root := p
	for {
		next := ds.parent[root]
		if next == root {
			break
		}
		root = next
	}

	// pass 2: repoint path
	for x != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}

	return root, true
}

// Union merges the sets of x and y.
//
// It returns false, leaving the structure unchanged, if x and y already share a
// representative (for Kruskal: the candidate edge would close a cycle) or if either
// label is unknown. Otherwise the lower-rank root is attached under the higher-rank
// root; on equal ranks y's root goes under x's root and x's root rank grows by one.
//
// Complexity: amortized O(α(n)).
func (ds *DisjointSet[V]) Union(x, y V) bool {
	rx, okX := ds.Find(x)
	ry, okY := ds.Find(y)
	if !okX || !okY || rx == ry {
		return false
	}

	switch {
	case ds.rank[rx] < ds.rank[ry]:
		ds.parent[rx] = ry
	case ds.rank[rx] > ds.rank[ry]:
		ds.parent[ry] = rx
	default:
		ds.parent[ry] = rx
		ds.rank[rx]++
	}
	ds.sets--

	return true
}

// Connected reports whether x and y are known and share a representative.
func (ds *DisjointSet[V]) Connected(x, y V) bool {
	rx, okX := ds.Find(x)
	ry, okY := ds.Find(y)

	return okX && okY && rx == ry
}

// Len returns the number of elements.
func (ds *DisjointSet[V]) Len() int { return len(ds.parent) }

// Sets returns the current number of disjoint sets.
func (ds *DisjointSet[V]) Sets() int { return ds.sets }

// Rank returns the rank of x's node (not its root's); 0 for unknown labels.
// Exposed for diagnostics and tests of the union-by-rank rule.
func (ds *DisjointSet[V]) Rank(x V) int { return ds.rank[x] }
