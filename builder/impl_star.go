// SPDX-License-Identifier: MIT
// Package: mstnet/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Adds CenterVertexID first, then leaves cfg.idFn(1..n-1).
//   • Emits spokes Center–leaf in ascending leaf index.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}

		d.addVertex(CenterVertexID)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			d.addVertex(leaf)
			if err := d.addEdge(CenterVertexID, leaf, cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}
