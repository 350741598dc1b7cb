// SPDX-License-Identifier: MIT
// Package: blossom/matching
//
// blossom.go — the blossom labeler: given an edge x–y between two outer
// vertices, find the blossom base ("join") and label the vertices between.

package matching

// label processes the edge x–y joining the outer vertices x and y.
//
// Implementation:
//   - Stage 1: r, s = first[x], first[y]; equal pointers mean x and y
//     already share a blossom, nothing to do.
//   - Stage 2: walk both first-pointer chains toward the root, alternating
//     sides while both are live, flagging every visited vertex with
//     JoinFlag(x,y). The first vertex reached twice is the join. A side
//     whose cursor sits on ground stops advancing.
//   - Stage 3: re-walk from first[x] and first[y] up to (not including)
//     the join, giving each vertex EdgeMark(x,y), first = join, and a
//     frontier slot.
//   - Stage 4: clear every JoinFlag the walk left behind.
//   - Stage 5: redirect each vertex reached this phase whose first pointer
//     is itself reached to join.
//
// Complexity: O(length of both chains) for stages 2–4, O(R) for stage 5
// where R is the number of vertices reached so far this phase. Every call
// past stage 1 labels at least one new vertex, so a phase makes at most V
// such calls.
func (s *searcher) label(p *phase, x, y int) error {
	ls := &p.labels
	r0, s0 := ls.first[x], ls.first[y]
	if r0 == s0 {
		return nil
	}

	flag := joinFlag(x, y)
	var trail []int
	mark := func(v int) {
		ls.marks[v] = flag
		trail = append(trail, v)
	}

	// Stage 2: alternate walks until one lands on a flagged vertex.
	r, t := r0, s0
	mark(r)
	mark(t)
	var join int
	for {
		if t != ground {
			r, t = t, r
		}
		next, err := ls.outerOf(s.mate, r)
		if err != nil {
			return err
		}
		r = next
		if ls.flagged(r) {
			join = r
			break
		}
		mark(r)
	}

	// Stage 3: relabel both chains strictly below the join.
	for _, start := range [2]int{r0, s0} {
		for v := start; v != join; {
			ls.set(v, edgeMark(x, y), join)
			p.frontier.push(v)

			next, err := ls.outerOf(s.mate, v)
			if err != nil {
				return err
			}
			v = next
		}
	}

	// Stage 4: flags not converted above (the join and anything past it)
	// revert to Blank; they are non-outer vertices.
	for _, v := range trail {
		if ls.flagged(v) {
			ls.marks[v] = blankMark
		}
	}

	// Stage 5: path compression for later label calls this phase.
	for _, i := range ls.outer {
		if ls.reached(ls.first[i]) {
			ls.first[i] = join
		}
	}

	s.opts.OnBlossom(x, y, join)

	return nil
}
