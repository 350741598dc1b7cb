// SPDX-License-Identifier: MIT
// Package: blossom/matching
//
// label.go — the per-vertex label mark (a closed five-case variant) and the
// phase-scoped label store holding marks and first pointers.

package matching

import "fmt"

// markKind tags the five label cases. The zero value is markBlank.
type markKind uint8

const (
	markBlank  markKind = iota // unreached this phase
	markStart                  // the phase root
	markVertex                 // VertexMark(outer)
	markEdge                   // EdgeMark(edge)
	markJoin                   // JoinFlag(edge), lives inside one label call
)

// String names the kind for error messages.
func (k markKind) String() string {
	switch k {
	case markBlank:
		return "Blank"
	case markStart:
		return "Start"
	case markVertex:
		return "VertexMark"
	case markEdge:
		return "EdgeMark"
	case markJoin:
		return "JoinFlag"
	default:
		return fmt.Sprintf("markKind(%d)", uint8(k))
	}
}

// edge is an ordered vertex pair; the order matters to the rematcher.
type edge struct {
	a, b int
}

// mark is one label. Only the payload selected by kind is meaningful:
// outer for markVertex, e for markEdge and markJoin.
type mark struct {
	kind  markKind
	outer int
	e     edge
}

var (
	blankMark = mark{}
	startMark = mark{kind: markStart}
)

func vertexMark(outer int) mark { return mark{kind: markVertex, outer: outer} }
func edgeMark(x, y int) mark    { return mark{kind: markEdge, e: edge{a: x, b: y}} }
func joinFlag(x, y int) mark    { return mark{kind: markJoin, e: edge{a: x, b: y}} }

// String renders the mark with its payload.
func (m mark) String() string {
	switch m.kind {
	case markVertex:
		return fmt.Sprintf("VertexMark(%d)", m.outer)
	case markEdge, markJoin:
		return fmt.Sprintf("%s(%d,%d)", m.kind, m.e.a, m.e.b)
	default:
		return m.kind.String()
	}
}

// labelStore holds the marks and first pointers of one phase. Both slices
// are indexed by vertex ID and include the ground slot 0, which the
// labeler may flag transiently when a blossom's base is the root.
//
// outer lists, in labeling order, every vertex reached this phase; reset
// and the labeler's path compression visit only those.
type labelStore struct {
	marks []mark
	first []int
	outer []int
}

func newLabelStore(n int) labelStore {
	return labelStore{
		marks: make([]mark, n+1),
		first: make([]int, n+1),
	}
}

// set gives v the outer mark m and first pointer f.
func (ls *labelStore) set(v int, m mark, f int) {
	if !ls.reached(v) || ls.flagged(v) {
		ls.outer = append(ls.outer, v)
	}
	ls.marks[v] = m
	ls.first[v] = f
}

// reset returns every vertex reached since the last reset to Blank.
func (ls *labelStore) reset() {
	for _, v := range ls.outer {
		ls.marks[v] = blankMark
		ls.first[v] = ground
	}
	ls.outer = ls.outer[:0]
}

// reached reports whether v carries any mark other than Blank.
func (ls *labelStore) reached(v int) bool { return ls.marks[v].kind != markBlank }

// hasVertexMark reports whether v carries VertexMark.
func (ls *labelStore) hasVertexMark(v int) bool { return ls.marks[v].kind == markVertex }

// flagged reports whether v carries the transient JoinFlag.
func (ls *labelStore) flagged(v int) bool { return ls.marks[v].kind == markJoin }

// outerOf follows one step up the alternating tree from the non-outer
// vertex r: the first pointer of the VertexMark carried by mate(r).
func (ls *labelStore) outerOf(mate []int, r int) (int, error) {
	if r == ground {
		return ground, fmt.Errorf("%w: stepping past the ground sentinel", ErrInvariantViolation)
	}
	m := mate[r]
	if !ls.hasVertexMark(m) {
		return ground, fmt.Errorf("%w: mate %d of non-outer vertex %d carries %s, want VertexMark",
			ErrInvariantViolation, m, r, ls.marks[m])
	}

	return ls.first[ls.marks[m].outer], nil
}
