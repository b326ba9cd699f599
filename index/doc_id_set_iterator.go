package index

import "math"

const (
	// NoMoreDocs is returned by a doc ID set iterator once it is exhausted. It is
	// greater than any valid doc ID so exhausted iterators sort last.
	NoMoreDocs int32 = math.MaxInt32

	// unpositionedDocID is the doc ID of an iterator that has not been advanced yet.
	unpositionedDocID int32 = -1
)

// DocIDSetIterator iterates over document IDs in increasing order.
type DocIDSetIterator interface {
	// DocID returns the current document ID. It returns -1 if neither `NextDoc`
	// nor `Advance` has been called, and `NoMoreDocs` once the iterator is exhausted.
	// NB: This is not called `Current` because it needs to
	// be embedded with other iterators so the method name is
	// more specific w.r.t. what value this is referring to.
	DocID() int32

	// NextDoc advances to the next document ID and returns it, or `NoMoreDocs`
	// if there are no more document IDs.
	NextDoc() (int32, error)

	// Advance advances to the first document ID that is greater than or equal to
	// `target` and returns it, or `NoMoreDocs` if no such document ID exists.
	// The iterator never moves backwards.
	Advance(target int32) (int32, error)

	// Cost returns an estimate of the number of document IDs the iterator yields.
	// The value must remain the same for the lifetime of the iterator.
	Cost() int64

	// Close closes the iterator.
	Close()
}
