package astar

import (
	"container/heap"

	"github.com/katalvlaran/astarviz/grid"
)

// entry is one open-set element. Priority is (f, seq): lower f first,
// then lower seq, so equal-f cells pop in discovery order.
type entry struct {
	cell  *grid.Cell
	f     int
	seq   int
	index int // position in the heap, maintained by Swap
}

// entryHeap is a min-heap of *entry implementing heap.Interface.
type entryHeap []*entry

// Len returns the number of entries.
func (h entryHeap) Len() int { return len(h) }

// Less orders by f, breaking ties by insertion sequence.
func (h entryHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two entries and keeps their indices current.
func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push appends x; called by heap.Push.
func (h *entryHeap) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

// Pop removes the last element; called by heap.Pop.
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}

// openSet pairs the heap with its membership index. The heap itself is
// never searched; members answers "is this cell open" in O(1).
type openSet struct {
	heap    entryHeap
	members map[*grid.Cell]*entry
	nextSeq int
}

func newOpenSet(capacity int) *openSet {
	return &openSet{
		heap:    make(entryHeap, 0, capacity),
		members: make(map[*grid.Cell]*entry, capacity),
	}
}

// Len returns the number of open cells.
func (s *openSet) Len() int { return s.heap.Len() }

// contains reports whether c is currently open.
func (s *openSet) contains(c *grid.Cell) bool {
	_, ok := s.members[c]
	return ok
}

// push inserts c with priority f and the next insertion sequence.
func (s *openSet) push(c *grid.Cell, f int) {
	e := &entry{cell: c, f: f, seq: s.nextSeq}
	s.nextSeq++
	heap.Push(&s.heap, e)
	s.members[c] = e
}

// pop removes and returns the minimum-priority cell.
func (s *openSet) pop() *grid.Cell {
	e := heap.Pop(&s.heap).(*entry)
	delete(s.members, e.cell)

	return e.cell
}

// decrease lowers the f of an open cell in place, keeping its sequence.
// It is a no-op for cells that are not open or when f does not improve.
func (s *openSet) decrease(c *grid.Cell, f int) {
	e, ok := s.members[c]
	if !ok || f >= e.f {
		return
	}
	e.f = f
	heap.Fix(&s.heap, e.index)
}
