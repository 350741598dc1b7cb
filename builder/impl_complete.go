// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_complete.go — Complete(n) = K_n and CompleteBipartite(m, n) = K_{m,n}.
//
// Matching numbers: ⌊n/2⌋ for K_n, min(m,n) for K_{m,n}.

package builder

import (
	"fmt"

	"github.com/katalvlaran/blossom/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionNodes       = 1
)

// Complete returns a Constructor that appends the complete graph K_n.
// Edges are emitted for i < j in lexicographic order.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := appendBlock(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, methodComplete, base, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that appends K_{m,n}: the first m
// block vertices form the left side, the next n the right side.
func CompleteBipartite(m, n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if m < minPartitionNodes || n < minPartitionNodes {
			return fmt.Errorf("%s: m=%d, n=%d < min=%d: %w",
				methodCompleteBipartite, m, n, minPartitionNodes, ErrTooFewVertices)
		}
		base := appendBlock(g, m+n)
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				if err := link(g, methodCompleteBipartite, base, i, m+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
