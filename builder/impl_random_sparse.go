// SPDX-License-Identifier: MIT
// Package: mstnet/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   • Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p. The result may be disconnected, which is
//     how the spanning-forest paths of Prim and Kruskal get exercised.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   • Per pair: one Bernoulli draw, then a weight draw if included.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   • Stable trial order: for each i asc, j asc (j>i).

package builder

import "fmt"

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if err := validateMin(methodRandomSparse, "n", n, minRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices.
		ids := d.addVertices(n, cfg.idFn)

		// 3) Trials. p ∈ {0,1} never touches the rng for the decision.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := p == probMax || (p > probMin && cfg.rng.Float64() < p)
				if !include {
					continue
				}
				if err := d.addEdge(ids[i], ids[j], cfg.weight()); err != nil {
					return fmt.Errorf("%s: %w", methodRandomSparse, err)
				}
			}
		}

		return nil
	}
}
