package index

import "sort"

// ArrayBasedDocIDSetIterator iterates over a sorted array of distinct doc IDs.
type ArrayBasedDocIDSetIterator struct {
	docIDs []int32

	idx  int
	curr int32
}

// NewArrayBasedDocIDSetIterator creates a new iterator. The doc IDs must be
// sorted in ascending order without duplicates.
func NewArrayBasedDocIDSetIterator(docIDs []int32) *ArrayBasedDocIDSetIterator {
	return &ArrayBasedDocIDSetIterator{
		docIDs: docIDs,
		idx:    -1,
		curr:   unpositionedDocID,
	}
}

// DocID returns the current doc ID.
func (it *ArrayBasedDocIDSetIterator) DocID() int32 { return it.curr }

// NextDoc advances to the next doc ID.
func (it *ArrayBasedDocIDSetIterator) NextDoc() (int32, error) {
	if it.curr == NoMoreDocs {
		return NoMoreDocs, nil
	}
	it.idx++
	return it.moveTo(it.idx), nil
}

// Advance advances to the first doc ID no smaller than the target.
func (it *ArrayBasedDocIDSetIterator) Advance(target int32) (int32, error) {
	if it.curr == NoMoreDocs {
		return NoMoreDocs, nil
	}
	if target <= it.curr {
		return it.NextDoc()
	}
	start := it.idx + 1
	remaining := it.docIDs[start:]
	it.idx = start + sort.Search(len(remaining), func(i int) bool {
		return remaining[i] >= target
	})
	return it.moveTo(it.idx), nil
}

// Cost returns the number of doc IDs in the array.
func (it *ArrayBasedDocIDSetIterator) Cost() int64 { return int64(len(it.docIDs)) }

// Close closes the iterator.
func (it *ArrayBasedDocIDSetIterator) Close() { it.docIDs = nil }

func (it *ArrayBasedDocIDSetIterator) moveTo(idx int) int32 {
	if idx >= len(it.docIDs) {
		it.curr = NoMoreDocs
	} else {
		it.curr = it.docIDs[idx]
	}
	return it.curr
}
