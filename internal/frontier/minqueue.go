package frontier

import "container/heap"

// MinQueue is a min-priority frontier ordered by Entry.Priority.
// Equal priorities pop in insertion order, which keeps informed searches
// reproducible regardless of heap internals.
type MinQueue struct {
	h   entryHeap
	seq uint64
}

// NewMinQueue returns an empty queue with room for capHint entries.
func NewMinQueue(capHint int) *MinQueue {
	return &MinQueue{h: make(entryHeap, 0, capHint)}
}

// Push inserts e keyed by e.Priority.
func (q *MinQueue) Push(e *Entry) {
	heap.Push(&q.h, heapItem{entry: e, seq: q.seq})
	q.seq++
}

// Pop removes and returns the lowest-priority entry, earliest first on ties.
// It panics on an empty queue.
func (q *MinQueue) Pop() *Entry {
	return heap.Pop(&q.h).(heapItem).entry
}

// Len returns the number of queued entries.
func (q *MinQueue) Len() int { return q.h.Len() }

// heapItem pairs an entry with its insertion sequence number.
type heapItem struct {
	entry *Entry
	seq   uint64
}

// entryHeap implements heap.Interface ordered by (priority, seq).
type entryHeap []heapItem

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].entry.Priority != h[j].entry.Priority {
		return h[i].entry.Priority < h[j].entry.Priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be a heapItem.
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }

// Pop is called by heap.Pop and removes the last element.
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = heapItem{}
	*h = old[:n-1]

	return item
}
