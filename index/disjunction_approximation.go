package index

import "errors"

var (
	// ErrNoSubIterators is returned when creating a disjunction without any iterators.
	ErrNoSubIterators = errors.New("no sub-iterators provided for disjunction")
)

// DisjunctionApproximation is a doc ID set iterator over the union of the doc IDs
// of its sub-iterators. Each doc ID is returned exactly once no matter how many
// sub-iterators contain it. It is typically used as the approximation phase of
// a two-phase match, where a later stage confirms the candidates by inspecting
// the sub-iterators that are positioned on the current doc ID.
//
// DisjunctionApproximation is not safe for concurrent use.
type DisjunctionApproximation struct {
	subIters *DocIDSetIteratorQueue
	cost     int64
}

// NewDisjunctionApproximation creates a disjunction over the iterators in the queue.
// The queue must not be empty, and is owned by the disjunction afterwards.
func NewDisjunctionApproximation(subIters *DocIDSetIteratorQueue) *DisjunctionApproximation {
	var cost int64
	for _, w := range subIters.RawData() {
		cost += w.cost
	}
	return &DisjunctionApproximation{
		subIters: subIters,
		cost:     cost,
	}
}

// NewDisjunctionApproximationFrom creates a disjunction over the given iterators.
// All iterators should be positioned consistently, e.g., none of them advanced yet.
func NewDisjunctionApproximationFrom(iters ...DocIDSetIterator) (*DisjunctionApproximation, error) {
	if len(iters) == 0 {
		return nil, ErrNoSubIterators
	}
	q := NewDocIDSetIteratorQueue(len(iters))
	for _, it := range iters {
		q.Add(NewDocIDSetIteratorWrapper(it))
	}
	return NewDisjunctionApproximation(q), nil
}

// DocID returns the current doc ID.
func (it *DisjunctionApproximation) DocID() int32 { return it.subIters.Top().doc }

// NextDoc advances to the next doc ID contained in any of the sub-iterators.
func (it *DisjunctionApproximation) NextDoc() (int32, error) {
	top := it.subIters.Top()
	doc := top.doc
	if doc == NoMoreDocs {
		return NoMoreDocs, nil
	}
	// Keep advancing until the smallest doc ID moves past the current one, since
	// other sub-iterators may be positioned on the same doc ID.
	for {
		next, err := top.iter.NextDoc()
		if err != nil {
			return 0, err
		}
		top.doc = next
		top = it.subIters.UpdateTop()
		if top.doc != doc {
			return top.doc, nil
		}
	}
}

// Advance advances to the first doc ID no smaller than the target contained in
// any of the sub-iterators.
func (it *DisjunctionApproximation) Advance(target int32) (int32, error) {
	top := it.subIters.Top()
	if top.doc == NoMoreDocs {
		return NoMoreDocs, nil
	}
	for {
		next, err := top.iter.Advance(target)
		if err != nil {
			return 0, err
		}
		top.doc = next
		top = it.subIters.UpdateTop()
		if top.doc >= target {
			return top.doc, nil
		}
	}
}

// Cost returns the sum of the costs of the sub-iterators at creation time.
func (it *DisjunctionApproximation) Cost() int64 { return it.cost }

// SubIterators returns the queue of sub-iterators. The caller may inspect the
// wrappers but must not advance them.
func (it *DisjunctionApproximation) SubIterators() *DocIDSetIteratorQueue { return it.subIters }

// Close closes the iterator and all its sub-iterators.
func (it *DisjunctionApproximation) Close() {
	if it.subIters == nil {
		return
	}
	for _, w := range it.subIters.RawData() {
		w.iter.Close()
		w.iter = nil
	}
	it.subIters = nil
}
