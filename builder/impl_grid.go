// SPDX-License-Identifier: MIT
// Package: cayley/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor (2D square lattice).
//
// Contract:
//   • rows ≥ 1, cols ≥ 1.
//   • Vertex IDs are "r,c" (0-based); cfg.idFn is ignored.
//   • 4-neighborhood: each cell links right and down.
//
// Complexity:
//   • Time: O(rows·cols), Space: O(1) extra.
//
// Determinism:
//   • Row-major vertex order; links emitted right-then-down per cell.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cayley/core"
)

// GridID returns the vertex ID of cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf("%d,%d", r, c)
}

// Grid returns a Constructor that builds a rows×cols square lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim, ErrTooFewVertices); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim, ErrTooFewVertices); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.Add(GridID(r, c)); err != nil {
					return fmt.Errorf("%s: Add(%s): %w", MethodGrid, GridID(r, c), err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := g.Link(GridID(r, c), GridID(r, c+1)); err != nil {
						return fmt.Errorf("%s: %w", MethodGrid, err)
					}
				}
				if r+1 < rows {
					if err := g.Link(GridID(r, c), GridID(r+1, c)); err != nil {
						return fmt.Errorf("%s: %w", MethodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
