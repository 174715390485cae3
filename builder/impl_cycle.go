// SPDX-License-Identifier: MIT
// Package: mstnet/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i–(i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.
//
// Determinism:
//   • Deterministic IDs via cfg.idFn and weights given fixed cfg.rng/weightFn.

package builder

import "fmt"

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}

		ids := d.addVertices(n, cfg.idFn)

		// for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			u, v := ids[i], ids[(i+1)%n]
			w := cfg.weight()
			if err := d.addEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w", methodCycle, u, v, w, err)
			}
		}

		return nil
	}
}
