// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_grid.go — Grid(rows, cols): the 4-connected lattice.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) is block vertex r·cols+c; edges right then down, row-major.
//   • Bipartite; matching number ⌊rows·cols/2⌋.

package builder

import (
	"fmt"

	"github.com/katalvlaran/blossom/core"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid returns a Constructor that appends a rows×cols grid graph.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		base := appendBlock(g, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err := link(g, methodGrid, base, i, i+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, methodGrid, base, i, i+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
