// SPDX-License-Identifier: MIT
// Package: blossom/matching
//
// rematch.go — the path rematcher: flips matched/unmatched status along the
// alternating path encoded by the phase labels.

package matching

import "fmt"

// rematchStep is one pending rematch(v, w): make w the mate of outer v and
// repair the path behind v.
type rematchStep struct {
	v, w int
}

// rematch sets mate[v] = w and flips the alternating path from v back
// toward the phase root.
//
// Each step: t = old mate[v]; mate[v] = w. If mate[t] != v the path behind
// v is already consistent and the step ends. Otherwise the mark of v says
// how to continue:
//   - VertexMark(p): mate[t] = p, then rematch(p, t).
//   - EdgeMark(a,b): rematch(a, b), then rematch(b, a).
//
// Any other mark is an invariant violation.
//
// The recursion is unrolled onto an explicit LIFO stack. For EdgeMark,
// (b,a) is pushed before (a,b) so that (a,b) and everything it spawns run
// to completion first, matching the recursive order.
//
// Complexity: O(V) steps per augmentation.
func (s *searcher) rematch(p *phase, v, w int) error {
	ls := &p.labels
	stack := []rematchStep{{v: v, w: w}}
	for len(stack) > 0 {
		step := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t := s.mate[step.v]
		s.mate[step.v] = step.w
		if s.mate[t] != step.v {
			continue
		}

		m := ls.marks[step.v]
		switch m.kind {
		case markVertex:
			s.mate[t] = m.outer
			stack = append(stack, rematchStep{v: m.outer, w: t})
		case markEdge:
			stack = append(stack,
				rematchStep{v: m.e.b, w: m.e.a},
				rematchStep{v: m.e.a, w: m.e.b},
			)
		default:
			return fmt.Errorf("%w: rematch(%d,%d) found %s on vertex %d",
				ErrInvariantViolation, step.v, step.w, m, step.v)
		}
	}

	return nil
}
