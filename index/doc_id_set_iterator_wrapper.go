package index

// DocIDSetIteratorWrapper pairs a doc ID set iterator with the doc ID it is
// currently positioned on and its cost. Once added to a `DocIDSetIteratorQueue`
// the wrapper is owned by the queue.
type DocIDSetIteratorWrapper struct {
	doc  int32
	iter DocIDSetIterator
	cost int64
}

// NewDocIDSetIteratorWrapper creates a new wrapper for the given iterator.
func NewDocIDSetIteratorWrapper(iter DocIDSetIterator) *DocIDSetIteratorWrapper {
	return &DocIDSetIteratorWrapper{
		doc:  iter.DocID(),
		iter: iter,
		cost: iter.Cost(),
	}
}

// Doc returns the doc ID the wrapped iterator was last known to be positioned on.
func (w *DocIDSetIteratorWrapper) Doc() int32 { return w.doc }

// Iter returns the wrapped iterator.
func (w *DocIDSetIteratorWrapper) Iter() DocIDSetIterator { return w.iter }

// Cost returns the cost of the wrapped iterator.
func (w *DocIDSetIteratorWrapper) Cost() int64 { return w.cost }

// SetDoc records the doc ID the wrapped iterator has moved to. It should only be
// called on the top wrapper of a queue, followed by `UpdateTop`.
func (w *DocIDSetIteratorWrapper) SetDoc(doc int32) { w.doc = doc }
