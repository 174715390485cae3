// SPDX-License-Identifier: MIT
// Package: mstnet/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Adds left partition IDs as "{leftPrefix}{i}", i=0..n1-1, then right
//     partition IDs as "{rightPrefix}{j}", j=0..n2-1. cfg.idFn is not used.
//   • Emits edges L_i–R_j in row-major (i, j) order.
//
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.

package builder

import "fmt"

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(methodCompleteBipartite, "n1", n1, minPartition); err != nil {
			return err
		}
		if err := validateMin(methodCompleteBipartite, "n2", n2, minPartition); err != nil {
			return err
		}

		left := d.addVertices(n1, SymbolNumberIDFn(cfg.leftPrefix))
		right := d.addVertices(n2, SymbolNumberIDFn(cfg.rightPrefix))
		for _, u := range left {
			for _, v := range right {
				if err := d.addEdge(u, v, cfg.weight()); err != nil {
					return fmt.Errorf("%s: %w", methodCompleteBipartite, err)
				}
			}
		}

		return nil
	}
}
