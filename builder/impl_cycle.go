// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_cycle.go — Cycle(n): the simple cycle C_n.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Edges i–(i+1)%n for i = 0..n-1 in ascending order.
//   • Odd n is the smallest blossom; matching number ⌊n/2⌋.

package builder

import (
	"fmt"

	"github.com/katalvlaran/blossom/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that appends an n-vertex simple cycle.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := appendBlock(g, n)
		for i := 0; i < n; i++ {
			if err := link(g, methodCycle, base, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
