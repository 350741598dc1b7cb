// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_path.go — Path(n): the simple path P_n.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Edges i–(i+1) for i = 0..n-2 in ascending order.
//   • Matching number ⌊n/2⌋.

package builder

import (
	"fmt"

	"github.com/katalvlaran/blossom/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that appends an n-vertex path.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := appendBlock(g, n)
		for i := 0; i+1 < n; i++ {
			if err := link(g, methodPath, base, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
