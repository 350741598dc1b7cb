// SPDX-License-Identifier: MIT
// Package: blossom/matching
//
// forest.go — matching of graphs with several connected components: one
// MaxCardinality run per component, merged back into global IDs.

package matching

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/blossom/core"
)

// MaxCardinalityForest returns a maximum-cardinality matching of g, which
// may be disconnected. Each component of two or more vertices is relabeled
// into its own induced subgraph and matched by MaxCardinality; up to
// Options.Parallelism components run concurrently. Hook callbacks receive
// component-local vertex IDs and may be invoked from several goroutines.
//
// The first component failure cancels components not yet started and is
// returned.
func MaxCardinalityForest(g *core.Graph, opts ...Option) (*Matching, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	n := g.VertexCount()
	out := emptyMatching(n)
	comps := g.Components()

	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(o.Parallelism)
	for _, comp := range comps {
		if len(comp) < 2 {
			continue // isolated vertex: nothing to match
		}
		eg.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return matchComponent(g, comp, out.mate, opts)
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// matchComponent matches one component and writes its pairs into mate.
// Components are vertex-disjoint, so concurrent writers touch disjoint
// slots of mate.
func matchComponent(g *core.Graph, comp []int, mate []int, opts []Option) error {
	sub, global, err := core.InducedSubgraph(g, comp)
	if err != nil {
		return fmt.Errorf("component at %d: %w", comp[0], err)
	}
	m, err := MaxCardinality(sub, opts...)
	if err != nil {
		return fmt.Errorf("component at %d: %w", comp[0], err)
	}
	for _, p := range m.Pairs() {
		u, v := global[p.U], global[p.V]
		mate[u] = v
		mate[v] = u
	}

	return nil
}
