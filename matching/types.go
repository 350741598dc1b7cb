// SPDX-License-Identifier: MIT
// Package: blossom/matching
//
// types.go — graph collaborator interface, sentinel errors and options.

package matching

import (
	"errors"
	"fmt"
)

// ground is the reserved "no vertex" ID.
const ground = 0

// Sentinel errors for matching computations.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrDisconnectedGraph is returned when a non-empty graph is not
	// connected. It is a usage error: split the graph per component.
	ErrDisconnectedGraph = errors.New("matching: graph is not connected")

	// ErrNeighbors is returned when the graph fails to report, or reports a
	// malformed, neighbor list.
	ErrNeighbors = errors.New("matching: neighbor iteration error")

	// ErrInvariantViolation signals inconsistent labeling state. It is never
	// expected from a correct implementation.
	ErrInvariantViolation = errors.New("matching: invariant violation")

	// ErrInvalidMatching is returned when a pair set is not a matching.
	ErrInvalidMatching = errors.New("matching: invalid matching")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matching: invalid option supplied")
)

// Graph is the read-only view of an undirected simple graph required by
// MaxCardinality. Vertices are the dense IDs 1..VertexCount(); 0 is never a
// vertex. *core.Graph satisfies it.
type Graph interface {
	VertexCount() int
	NeighborIDs(v int) ([]int, error)
	Connected() bool
}

// Option configures a matching run via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// algorithm is invoked.
type Option func(*Options)

// Options holds callbacks and limits for a matching run.
type Options struct {
	// OnPhase is called when a search phase is opened from root.
	OnPhase func(root int)

	// OnBlossom is called after the edge x–y closed a blossom whose base
	// is join (Ground when the base is the root itself).
	OnBlossom func(x, y, join int)

	// OnAugment is called when the edge x–y completes an augmenting path
	// for the phase rooted at root, before the path is flipped.
	OnAugment func(root, x, y int)

	// Parallelism bounds the number of components matched concurrently by
	// MaxCardinalityForest. Default 1.
	Parallelism int

	err error
}

// DefaultOptions returns Options with no-op hooks and Parallelism 1.
func DefaultOptions() Options {
	return Options{
		OnPhase:     func(int) {},
		OnBlossom:   func(int, int, int) {},
		OnAugment:   func(int, int, int) {},
		Parallelism: 1,
	}
}

// WithOnPhase registers a callback invoked when a phase opens.
func WithOnPhase(fn func(root int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}

// WithOnBlossom registers a callback invoked after each blossom labeling.
func WithOnBlossom(fn func(x, y, join int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBlossom = fn
		}
	}
}

// WithOnAugment registers a callback invoked on each augmentation.
func WithOnAugment(fn func(root, x, y int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

// WithParallelism bounds concurrent component workers in
// MaxCardinalityForest.
//
//	n ≥ 1: at most n components in flight
//	n < 1: invalid option → ErrOptionViolation
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Parallelism must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Parallelism = n
	}
}

// resolve applies opts over DefaultOptions and reports a recorded violation.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
