// SPDX-License-Identifier: MIT
// Package: mstnet/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges i–(i+1) for i=0..n-2.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

// Path returns a Constructor that builds the simple path P_n. A path is its own
// unique spanning tree, which makes it a handy MST fixture.
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}

		ids := d.addVertices(n, cfg.idFn)
		for i := 0; i+1 < n; i++ {
			if err := d.addEdge(ids[i], ids[i+1], cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}
