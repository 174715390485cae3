// SPDX-License-Identifier: MIT
// Package: mstnet/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits every unordered pair i<j once, in lexicographic (i, j) order.
//
// Complexity: O(n) vertices + O(n²) edges. Dense inputs are where Prim's heap
// and Kruskal's sort differ most, so benchmarks lean on this one.

package builder

import "fmt"

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}

		ids := d.addVertices(n, cfg.idFn)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := d.addEdge(ids[i], ids[j], cfg.weight()); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}
