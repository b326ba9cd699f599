package index

import "github.com/pilosa/pilosa/roaring"

type bitmapBasedDocIDSetIterator struct {
	rit  *roaring.Iterator
	cost int64

	closed bool
	curr   int32
}

func newBitmapBasedDocIDSetIterator(bm *roaring.Bitmap) *bitmapBasedDocIDSetIterator {
	return &bitmapBasedDocIDSetIterator{
		rit:  bm.Iterator(),
		cost: int64(bm.Count()),
		curr: unpositionedDocID,
	}
}

func (it *bitmapBasedDocIDSetIterator) DocID() int32 { return it.curr }

func (it *bitmapBasedDocIDSetIterator) NextDoc() (int32, error) {
	if it.closed || it.curr == NoMoreDocs {
		return NoMoreDocs, nil
	}
	return it.next(), nil
}

func (it *bitmapBasedDocIDSetIterator) Advance(target int32) (int32, error) {
	if it.closed || it.curr == NoMoreDocs {
		return NoMoreDocs, nil
	}
	if target > it.curr {
		it.rit.Seek(uint64(target))
	}
	return it.next(), nil
}

func (it *bitmapBasedDocIDSetIterator) Cost() int64 { return it.cost }

func (it *bitmapBasedDocIDSetIterator) Close() {
	if it.closed {
		return
	}
	it.closed = true
	it.rit = nil
}

func (it *bitmapBasedDocIDSetIterator) next() int32 {
	curr, eof := it.rit.Next()
	if eof || curr >= uint64(NoMoreDocs) {
		it.curr = NoMoreDocs
	} else {
		it.curr = int32(curr)
	}
	return it.curr
}
