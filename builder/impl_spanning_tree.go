// SPDX-License-Identifier: MIT
// Package: mstnet/builder
//
// impl_spanning_tree.go — implementation of SpanningTreePlus(n, targetEdges).
//
// Canonical model:
//   • Random recursive tree: vertex i (i ≥ 1) attaches to a uniformly chosen
//     earlier vertex, so the result is connected whatever the seed.
//   • Densify: draw random unordered pairs, skipping self-pairs and pairs already
//     joined, until the graph holds min(targetEdges, n(n-1)/2) edges (never fewer
//     than the n-1 tree edges).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); targetEdges ≥ 0 (else ErrBadSize).
//   • cfg.rng must be non-nil when n > 1 (else ErrNeedRandSource).
//   • Draws per edge: tree parent, then weight; extra edges draw u, v, then weight.
//   • Rejection sampling is bounded; exhaustion returns ErrConstructFailed, which
//     only happens when earlier constructors already used most pairs.
//
// Complexity:
//   • Time: O(n + extra·attempts); expected O(n + extra) while the graph is sparse.
//   • Space: O(1) beyond the draft.

package builder

import "fmt"

// SpanningTreePlus returns a Constructor for a connected random graph on n vertices
// with about targetEdges unique edges.
func SpanningTreePlus(n, targetEdges int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		// 1) Validate parameters early.
		if err := validateMin(methodSpanningTreePlus, "n", n, minSpanningTreeNodes); err != nil {
			return err
		}
		if targetEdges < 0 {
			return fmt.Errorf("%s: targetEdges=%d < 0: %w", methodSpanningTreePlus, targetEdges, ErrBadSize)
		}
		if n > 1 && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodSpanningTreePlus, ErrNeedRandSource)
		}

		// 2) Vertices 0..n-1.
		ids := d.addVertices(n, cfg.idFn)
		rng := cfg.rng

		// 3) Tree: each new vertex hangs off a random earlier one.
		for i := 1; i < n; i++ {
			p := rng.Intn(i)
			if err := d.addEdge(ids[p], ids[i], cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", methodSpanningTreePlus, err)
			}
		}

		// 4) Extra unique edges up to the clamped target.
		maxEdges := n * (n - 1) / 2
		want := targetEdges
		if want > maxEdges {
			want = maxEdges
		}
		extra := want - (n - 1)
		budget := attemptsPerSlot * (maxEdges + 1)
		for added := 0; added < extra; {
			if budget == 0 {
				return fmt.Errorf("%s: %d of %d extra edges placed: %w", methodSpanningTreePlus, added, extra, ErrConstructFailed)
			}
			budget--

			u, v := rng.Intn(n), rng.Intn(n)
			if u == v || d.hasPair(ids[u], ids[v]) {
				continue
			}
			if u > v {
				u, v = v, u
			}
			if err := d.addEdge(ids[u], ids[v], cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", methodSpanningTreePlus, err)
			}
			added++
		}

		return nil
	}
}
