// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected, weighted *core.Graph and grows the MST from a root vertex using a
// lazy-deletion min-heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mstnet/core"
)

// Prim computes the Minimum Spanning Tree of an undirected, weighted graph by growing
// outwards from a root vertex. By default, once the root's component is exhausted the
// search restarts from the next unvisited vertex in insertion order, so a disconnected
// graph yields a minimum spanning forest. WithSingleTree stops after the first component.
//
// Error Conditions:
//   - ErrInvalidGraph : if g is nil.
//   - ErrRootNotFound : if WithRoot names a value that is not a vertex of g.
//
// Steps:
//  1. Resolve the root (WithRoot, else the first inserted vertex); |V| == 0 → empty Result.
//  2. For each start vertex (root first, then insertion order) not yet in the tree:
//     a. key[start] = 0, push (start, 0).
//     b. Pop the minimum entry (one operation). Skip it if its vertex is already in
//     the tree: stale entries are left in the heap rather than decreased in place.
//     c. Add the vertex; if it has a parent, emit Edge{parent, vertex, key}.
//     d. For every incident edge (one operation each), if the far end is outside the
//     tree and the weight beats its key, update key and parent and push (one
//     operation).
//  3. With WithSingleTree, stop after the root's component.
//
// Ties on key are broken by push order, so equal inputs always give equal trees.
//
// Complexity: O(E log E) time with lazy deletion, O(V + E) memory.
func Prim[V comparable](g *core.Graph[V], opts ...Option) (Result[V], error) {
	if g == nil {
		return Result[V]{}, ErrInvalidGraph
	}
	o := resolve(opts)
	sw := startStopwatch(o.Now)

	// 1. Snapshot and resolve root.
	vertices := g.Vertices()
	n := len(vertices)
	index := make(map[V]int, n)
	for i, v := range vertices {
		index[v] = i
	}

	rootIdx := 0
	if o.Root != nil {
		r, ok := o.Root.(V)
		if !ok {
			return Result[V]{}, fmt.Errorf("Prim(root=%v): label type %T: %w", o.Root, o.Root, ErrRootNotFound)
		}
		if rootIdx, ok = index[r]; !ok {
			return Result[V]{}, fmt.Errorf("Prim(root=%v): %w", r, ErrRootNotFound)
		}
	}
	if n == 0 {
		return newResult[V](AlgorithmPrim, nil, 0, 0, 0, 0, sw.elapsed()), nil
	}

	var (
		ops    opCounter
		total  int64
		pushes uint64
		mst    = make([]core.Edge[V], 0, n-1)
		key    = make([]int64, n)
		hasKey = make([]bool, n) // false means +∞
		inTree = make([]bool, n)
		parent = make([]parentRef[V], n)
		pq     = &vertexPQ{}
	)

	push := func(i int, k int64) {
		heap.Push(pq, pqItem{vertex: i, key: k, seq: pushes})
		pushes++
	}

	grow := func(start int) {
		key[start], hasKey[start] = 0, true
		push(start, 0)

		for pq.Len() > 0 {
			it := heap.Pop(pq).(pqItem)
			ops.add(1)
			u := it.vertex
			if inTree[u] {
				continue
			}
			inTree[u] = true
			if p := parent[u]; p.ok {
				mst = append(mst, core.Edge[V]{From: p.from, To: vertices[u], Weight: key[u], Seq: p.seq})
				total += key[u]
			}

			from := vertices[u]
			g.ForEachNeighbor(from, func(nb core.Neighbor[V]) bool {
				ops.add(1)
				w := index[nb.To]
				if inTree[w] {
					return true
				}
				if !hasKey[w] || nb.Weight < key[w] {
					key[w], hasKey[w] = nb.Weight, true
					parent[w] = parentRef[V]{from: from, seq: nb.Seq, ok: true}
					push(w, nb.Weight)
					ops.add(1)
				}
				return true
			})
		}
	}

	// 2. Root first, then every remaining vertex in insertion order.
	grow(rootIdx)
	if !o.SingleTree {
		for i := 0; i < n && len(mst) < n-1; i++ {
			if !inTree[i] {
				grow(i)
			}
		}
	}

	return newResult(AlgorithmPrim, mst, total, n, g.EdgeCount(), ops.n, sw.elapsed()), nil
}

// parentRef records the tree edge through which a vertex's current key was offered.
type parentRef[V comparable] struct {
	from V
	seq  int
	ok   bool
}

// pqItem is a heap entry. An entry is stale once its vertex has joined the tree.
type pqItem struct {
	vertex int
	key    int64
	seq    uint64
}

// vertexPQ implements heap.Interface for a min-heap of pqItem ordered by (key, seq).
type vertexPQ []pqItem

// Len returns the number of entries in the priority queue.
// Complexity: O(1).
func (pq vertexPQ) Len() int { return len(pq) }

// Less orders by key, then by push order.
func (pq vertexPQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps elements at indices i and j.
func (pq vertexPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new pqItem. Called by heap.Push.
func (pq *vertexPQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
// Complexity: O(log N) amortized.
func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
