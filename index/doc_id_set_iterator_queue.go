package index

// DocIDSetIteratorQueue is a min heap of doc ID set iterator wrappers ordered by
// the doc ID each wrapper is positioned on, with cheaper wrappers first among
// those on the same doc ID.
//
// The queue never removes wrappers. Instead the caller advances the iterator of
// the top wrapper in place and calls `UpdateTop` to restore the heap ordering.
type DocIDSetIteratorQueue struct {
	dv []*DocIDSetIteratorWrapper
}

// NewDocIDSetIteratorQueue creates a new queue.
func NewDocIDSetIteratorQueue(initCapacity int) *DocIDSetIteratorQueue {
	return &DocIDSetIteratorQueue{
		dv: make([]*DocIDSetIteratorWrapper, 0, initCapacity),
	}
}

// Len returns the number of wrappers in the queue.
func (q *DocIDSetIteratorQueue) Len() int { return len(q.dv) }

// RawData returns the underlying wrappers in no particular order.
func (q *DocIDSetIteratorQueue) RawData() []*DocIDSetIteratorWrapper { return q.dv }

// Add adds a wrapper to the queue.
func (q *DocIDSetIteratorQueue) Add(w *DocIDSetIteratorWrapper) {
	q.dv = append(q.dv, w)
	q.shiftUp(len(q.dv) - 1)
}

// Top returns the wrapper positioned on the smallest doc ID.
// Precondition: the queue is not empty.
func (q *DocIDSetIteratorQueue) Top() *DocIDSetIteratorWrapper { return q.dv[0] }

// UpdateTop restores the heap ordering after the doc ID of the top wrapper has
// changed via `SetDoc`, and returns the new top wrapper. The top wrapper must be
// the only wrapper mutated since the last call.
func (q *DocIDSetIteratorQueue) UpdateTop() *DocIDSetIteratorWrapper {
	q.heapify(0, len(q.dv))
	return q.dv[0]
}

// AllOnDoc returns true if every wrapper in the queue is positioned on the given doc ID.
func (q *DocIDSetIteratorQueue) AllOnDoc(doc int32) bool {
	for _, w := range q.dv {
		if w.doc != doc {
			return false
		}
	}
	return true
}

func (q *DocIDSetIteratorQueue) less(i, j int) bool {
	wi, wj := q.dv[i], q.dv[j]
	if wi.doc != wj.doc {
		return wi.doc < wj.doc
	}
	return wi.cost < wj.cost
}

func (q *DocIDSetIteratorQueue) shiftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			break
		}
		q.dv[parent], q.dv[i] = q.dv[i], q.dv[parent]
		i = parent
	}
}

func (q *DocIDSetIteratorQueue) heapify(i, n int) {
	for {
		left := i*2 + 1
		right := left + 1
		smallest := i
		if left < n && q.less(left, smallest) {
			smallest = left
		}
		if right < n && q.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		q.dv[i], q.dv[smallest] = q.dv[smallest], q.dv[i]
		i = smallest
	}
}
