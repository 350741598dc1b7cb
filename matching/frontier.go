// SPDX-License-Identifier: MIT
// Package: blossom/matching
//
// frontier.go — the FIFO frontier of outer vertices and the per-phase set
// of probed directed edges.

package matching

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// frontierQueue is a FIFO of vertex IDs in which a vertex is present at
// most once at a time.
type frontierQueue struct {
	items  []int
	head   int
	queued *roaring.Bitmap
}

func newFrontierQueue(capacity int) *frontierQueue {
	return &frontierQueue{
		items:  make([]int, 0, capacity),
		queued: roaring.New(),
	}
}

// push appends v unless it is already queued; it reports whether v was added.
func (q *frontierQueue) push(v int) bool {
	if !q.queued.CheckedAdd(uint32(v)) {
		return false
	}
	q.items = append(q.items, v)

	return true
}

// pop removes and returns the oldest vertex. Callers check empty first.
func (q *frontierQueue) pop() int {
	v := q.items[q.head]
	q.head++
	q.queued.Remove(uint32(v))

	return v
}

func (q *frontierQueue) empty() bool { return q.head == len(q.items) }

func (q *frontierQueue) len() int { return len(q.items) - q.head }

// reset empties the queue, keeping its capacity.
func (q *frontierQueue) reset() {
	q.items = q.items[:0]
	q.head = 0
	q.queued.Clear()
}

// edgeVisitationSet records the ordered probes x→y made in one phase.
// A probe is keyed x·(n+1)+y, which is unique for x, y in [0, n].
type edgeVisitationSet struct {
	stride uint64
	seen   *roaring64.Bitmap
}

func newEdgeVisitationSet(n int) *edgeVisitationSet {
	return &edgeVisitationSet{
		stride: uint64(n) + 1,
		seen:   roaring64.New(),
	}
}

// visit records x→y and reports whether this is its first probe this phase.
func (s *edgeVisitationSet) visit(x, y int) bool {
	return s.seen.CheckedAdd(uint64(x)*s.stride + uint64(y))
}

// reset forgets every recorded probe.
func (s *edgeVisitationSet) reset() { s.seen.Clear() }
