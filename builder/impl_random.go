// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_random.go — RandomConnected(n, p): a connected random graph.
//
// Model:
//   • Random recursive spanning tree over a shuffled vertex order
//     (guarantees connectivity), then every remaining pair {i,j}, i<j, is
//     added independently with probability p.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil (else ErrNeedRandSource), even for p ∈ {0,1}.
//
// Determinism:
//   • Fixed draw order (shuffle, tree parents, then pairs i asc, j asc).

package builder

import (
	"fmt"

	"github.com/katalvlaran/blossom/core"
)

const (
	methodRandomConnected = "RandomConnected"
	minRandomNodes        = 1
	minProbability        = 0.0
	maxProbability        = 1.0
)

// RandomConnected returns a Constructor that appends a connected random
// graph on n vertices with extra-edge density p.
func RandomConnected(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomConnected, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < minProbability || p > maxProbability {
			return fmt.Errorf("%s: p=%.4f: %w", methodRandomConnected, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}

		base := appendBlock(g, n)
		order := cfg.rng.Perm(n)
		for i := 1; i < n; i++ {
			parent := order[cfg.rng.Intn(i)]
			if err := link(g, methodRandomConnected, base, order[i], parent); err != nil {
				return err
			}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if g.HasEdge(base+i+1, base+j+1) {
					continue
				}
				if cfg.rng.Float64() < p {
					if err := link(g, methodRandomConnected, base, i, j); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
