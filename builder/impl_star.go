// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_star.go — Star(n) and Wheel(n); the block's first vertex is the hub.
//
// Matching numbers: 1 for a star, ⌊n/2⌋ for a wheel.

package builder

import (
	"fmt"

	"github.com/katalvlaran/blossom/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that appends a hub joined to n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		base := appendBlock(g, n)
		for i := 1; i < n; i++ {
			if err := link(g, methodStar, base, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that appends W_n: a hub joined to every
// vertex of a rim cycle of n-1 vertices.
func Wheel(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		base := appendBlock(g, n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := link(g, methodWheel, base, 0, i+1); err != nil {
				return err
			}
			if err := link(g, methodWheel, base, i+1, (i+1)%rim+1); err != nil {
				return err
			}
		}

		return nil
	}
}
