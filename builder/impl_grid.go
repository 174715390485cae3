// SPDX-License-Identifier: MIT
// Package: mstnet/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex IDs are "r,c" (cfg.idFn is not used), added row-major.
//   • For each cell row-major: edge to the right neighbor, then to the bottom one.
//
// Complexity: O(R·C) vertices + O(2·R·C) edges.

package builder

import "fmt"

// Grid returns a Constructor that builds an R×C 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		// 1) Validate dimensions.
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}

		// 2) Vertices, row-major.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				d.addVertex(fmt.Sprintf(gridIDFmt, r, c))
			}
		}

		// 3) Right and bottom neighbors.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := d.addEdge(u, fmt.Sprintf(gridIDFmt, r, c+1), cfg.weight()); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := d.addEdge(u, fmt.Sprintf(gridIDFmt, r+1, c), cfg.weight()); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
