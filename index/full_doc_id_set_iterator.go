package index

// FullDocIDSetIterator is an iterator for a full doc ID set containing document IDs
// ranging from 0 (inclusive) to `numTotalDocs` (exclusive).
type FullDocIDSetIterator struct {
	numTotalDocs int32

	curr int32
}

// NewFullDocIDSetIterator creates a new full doc ID set iterator.
func NewFullDocIDSetIterator(numTotalDocs int32) *FullDocIDSetIterator {
	return &FullDocIDSetIterator{numTotalDocs: numTotalDocs, curr: unpositionedDocID}
}

// DocID returns the current doc ID.
func (it *FullDocIDSetIterator) DocID() int32 { return it.curr }

// NextDoc advances to the next doc ID.
func (it *FullDocIDSetIterator) NextDoc() (int32, error) {
	return it.moveTo(it.curr + 1), nil
}

// Advance advances to the first doc ID no smaller than the target.
func (it *FullDocIDSetIterator) Advance(target int32) (int32, error) {
	if target <= it.curr {
		return it.NextDoc()
	}
	return it.moveTo(target), nil
}

// Cost returns the total number of documents.
func (it *FullDocIDSetIterator) Cost() int64 { return int64(it.numTotalDocs) }

// Close closes the iterator.
func (it *FullDocIDSetIterator) Close() {}

func (it *FullDocIDSetIterator) moveTo(docID int32) int32 {
	// NB: The exhausted check must come first since `NoMoreDocs + 1` overflows.
	if it.curr == NoMoreDocs || docID >= it.numTotalDocs {
		it.curr = NoMoreDocs
	} else {
		it.curr = docID
	}
	return it.curr
}
