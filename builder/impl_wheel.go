// SPDX-License-Identifier: MIT
// Package: mstnet/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim: cfg.idFn(0..n-2) as a cycle C_{n-1}, emitted first.
//   • Hub: CenterVertexID, spokes emitted after the rim in ascending rim index.
//
// Complexity: O(n) vertices + O(2n-2) edges.

package builder

import "fmt"

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, minWheelNodes); err != nil {
			return err
		}

		// 1) Rim.
		if err := Cycle(n-1)(d, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}

		// 2) Hub and spokes.
		d.addVertex(CenterVertexID)
		for i := 0; i < n-1; i++ {
			if err := d.addEdge(CenterVertexID, cfg.idFn(i), cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", methodWheel, err)
			}
		}

		return nil
	}
}
