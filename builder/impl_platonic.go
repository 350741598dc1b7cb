// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_platonic.go — Petersen(): the 10-vertex, 15-edge cubic graph.
//
// Block vertices 0..4 form the outer 5-cycle, 5..9 the inner pentagram,
// spokes i–(i+5). Full of odd cycles, yet it has a perfect matching.

package builder

import "github.com/katalvlaran/blossom/core"

const (
	methodPetersen = "Petersen"
	petersenRing   = 5
)

// Petersen returns a Constructor that appends the Petersen graph.
func Petersen() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		base := appendBlock(g, 2*petersenRing)
		for i := 0; i < petersenRing; i++ {
			// outer cycle
			if err := link(g, methodPetersen, base, i, (i+1)%petersenRing); err != nil {
				return err
			}
			// spoke
			if err := link(g, methodPetersen, base, i, i+petersenRing); err != nil {
				return err
			}
			// inner pentagram
			if err := link(g, methodPetersen, base, petersenRing+i, petersenRing+(i+2)%petersenRing); err != nil {
				return err
			}
		}

		return nil
	}
}
