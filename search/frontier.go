// Package search: frontier implementations behind the Policy variants.
//
// The frontier is the only operation in which BFS, UCS, and A* differ,
// so it is isolated behind one small internal interface with two
// concrete variants: an insertion-ordered queue (FIFO) and a lazy
// min-heap keyed by priority with ties broken by lower id (MinCost and
// MinF). The heap never removes superseded entries on relaxation; the
// engine skips stale items at pop time instead.
package search

import "container/heap"

// entry is one frontier record: a node id plus the priority it was
// inserted with. After a relaxation the priority recorded here may be
// stale; the engine compares it against the node's live priority.
type entry struct {
	id       int64
	priority float64
}

// frontier is the pluggable "select-and-remove next" structure.
type frontier interface {
	// push inserts an entry.
	push(e entry)
	// pop removes and returns the highest-priority entry, reporting
	// false when empty. Returned entries may be stale.
	pop() (entry, bool)
	// size returns the number of stored entries, stale included.
	size() int
	// entries returns all stored entries in no particular order.
	entries() []entry
	// clear empties the frontier.
	clear()
}

// fifoFrontier is the BFS queue: pop order equals insertion order.
// BFS enqueues each node at most once, so entries are never stale.
type fifoFrontier struct {
	queue []entry
}

func newFIFOFrontier() *fifoFrontier { return &fifoFrontier{} }

func (f *fifoFrontier) push(e entry) { f.queue = append(f.queue, e) }

func (f *fifoFrontier) pop() (entry, bool) {
	if len(f.queue) == 0 {
		return entry{}, false
	}
	e := f.queue[0]
	f.queue = f.queue[1:]

	return e, true
}

func (f *fifoFrontier) size() int { return len(f.queue) }

func (f *fifoFrontier) entries() []entry {
	out := make([]entry, len(f.queue))
	copy(out, f.queue)

	return out
}

func (f *fifoFrontier) clear() { f.queue = nil }

// heapFrontier is the cost-ordered frontier for MinCost and MinF.
// It uses the lazy decrease-key pattern: relaxation pushes a fresh
// entry and leaves the outdated one in place to be skipped later.
type heapFrontier struct {
	h entryHeap
}

func newHeapFrontier() *heapFrontier {
	f := &heapFrontier{h: make(entryHeap, 0)}
	heap.Init(&f.h)

	return f
}

func (f *heapFrontier) push(e entry) { heap.Push(&f.h, e) }

func (f *heapFrontier) pop() (entry, bool) {
	if f.h.Len() == 0 {
		return entry{}, false
	}

	return heap.Pop(&f.h).(entry), true
}

func (f *heapFrontier) size() int { return f.h.Len() }

func (f *heapFrontier) entries() []entry {
	out := make([]entry, len(f.h))
	copy(out, f.h)

	return out
}

func (f *heapFrontier) clear() { f.h = f.h[:0] }

// entryHeap is a min-heap of entries ordered by (priority, id).
// The id tie-break keeps pop order deterministic and testable.
type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].id < h[j].id
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// newFrontier returns the frontier variant for p. Callers validate p
// beforehand; an unknown policy falls back to FIFO.
func newFrontier(p Policy) frontier {
	if p == FIFO {
		return newFIFOFrontier()
	}

	return newHeapFrontier()
}
