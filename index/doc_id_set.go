package index

import (
	"bytes"
	"fmt"
	"io"

	xio "github.com/xichen2020/disi/x/io"

	"github.com/pilosa/pilosa/roaring"
)

// DocIDSet is a document ID set.
type DocIDSet interface {
	// Iter returns the document ID set iterator.
	Iter() DocIDSetIterator

	// Cost returns the number of document IDs in the set.
	Cost() int64

	// WriteTo writes the document ID set to an io.Writer.
	// NB: extBuf is an external buffer for reuse.
	WriteTo(writer io.Writer, extBuf *bytes.Buffer) error
}

type unmarshallableDocIDSet interface {
	DocIDSet

	// readFrom reads the document ID set from a byte slice, returning the
	// number of bytes read and any error encountered. Note that the given
	// buffer does not have the doc ID set type encoded.
	readFrom(buf []byte) (int, error)
}

// DocIDSetBuilder builds a document ID set.
type DocIDSetBuilder interface {
	// Add adds a single document ID.
	Add(docID int32)

	// Snapshot returns an immutable snapshot of the builder state.
	// Snapshot can be processed independently of operations performed against the builder.
	Snapshot() DocIDSet

	// Seal seals a doc ID set effectively making it immutable.
	Seal(numTotalDocs int32) DocIDSet
}

type docIDSetType int

const (
	fullDocIDSetType docIDSetType = iota
	bitmapBasedDocIDSetType
)

// NewDocIDSetFromBytes creates a new doc ID set from raw bytes, returning the newly
// created doc ID set and number of bytes read. Otherwise, an error is returned.
func NewDocIDSetFromBytes(data []byte) (DocIDSet, int, error) {
	typeID, bytesRead, err := xio.ReadVarint(data)
	if err != nil {
		return nil, 0, err
	}
	disType := docIDSetType(typeID)

	var dis unmarshallableDocIDSet
	switch disType {
	case fullDocIDSetType:
		dis = newFullDocIDSet(0)
	case bitmapBasedDocIDSetType:
		dis = newBitmapBasedDocIDSet(roaring.NewBitmap())
	default:
		return nil, 0, fmt.Errorf("unknown doc ID set type: %v", disType)
	}

	n, err := dis.readFrom(data[bytesRead:])
	if err != nil {
		return nil, 0, err
	}
	bytesRead += n
	return dis, bytesRead, nil
}

// fullDocIDSet is a doc ID set that is known to be full.
type fullDocIDSet struct {
	numTotalDocs int32
}

func newFullDocIDSet(numTotalDocs int32) *fullDocIDSet {
	return &fullDocIDSet{numTotalDocs: numTotalDocs}
}

func (s *fullDocIDSet) Iter() DocIDSetIterator { return NewFullDocIDSetIterator(s.numTotalDocs) }

func (s *fullDocIDSet) Cost() int64 { return int64(s.numTotalDocs) }

func (s *fullDocIDSet) WriteTo(writer io.Writer, _ *bytes.Buffer) error {
	if err := xio.WriteVarint(writer, int64(fullDocIDSetType)); err != nil {
		return err
	}
	return xio.WriteVarint(writer, int64(s.numTotalDocs))
}

func (s *fullDocIDSet) readFrom(buf []byte) (int, error) {
	numTotalDocs, bytesRead, err := xio.ReadVarint(buf)
	if err != nil {
		return 0, err
	}
	if numTotalDocs < 0 || numTotalDocs >= int64(NoMoreDocs) {
		return 0, fmt.Errorf("invalid number of total docs %d in full doc ID set", numTotalDocs)
	}
	s.numTotalDocs = int32(numTotalDocs)
	return bytesRead, nil
}

type bitmapBasedDocIDSetBuilder struct {
	bm *roaring.Bitmap
}

// NewBitmapBasedDocIDSetBuilder creates a new bitmap based doc ID set builder.
func NewBitmapBasedDocIDSetBuilder(bm *roaring.Bitmap) DocIDSetBuilder {
	return &bitmapBasedDocIDSetBuilder{bm: bm}
}

func (s *bitmapBasedDocIDSetBuilder) Add(docID int32) { s.bm.DirectAdd(uint64(docID)) }

// NB(xichen): Clone the internal bitmap so the builder can be mutated independently
// of the snapshot.
func (s *bitmapBasedDocIDSetBuilder) Snapshot() DocIDSet {
	return newBitmapBasedDocIDSet(s.bm.Clone())
}

func (s *bitmapBasedDocIDSetBuilder) Seal(numTotalDocs int32) DocIDSet {
	if int(s.bm.Count()) == int(numTotalDocs) {
		// This is a full doc ID set, so we use a more efficient representation.
		s.bm = nil
		return newFullDocIDSet(numTotalDocs)
	}
	s.bm.Optimize()
	res := newBitmapBasedDocIDSet(s.bm)
	s.bm = nil
	return res
}

type bitmapBasedDocIDSet struct {
	bm *roaring.Bitmap
}

func newBitmapBasedDocIDSet(bm *roaring.Bitmap) *bitmapBasedDocIDSet {
	return &bitmapBasedDocIDSet{bm: bm}
}

func (s *bitmapBasedDocIDSet) Iter() DocIDSetIterator {
	return newBitmapBasedDocIDSetIterator(s.bm)
}

func (s *bitmapBasedDocIDSet) Cost() int64 { return int64(s.bm.Count()) }

func (s *bitmapBasedDocIDSet) WriteTo(writer io.Writer, extBuf *bytes.Buffer) error {
	if err := xio.WriteVarint(writer, int64(bitmapBasedDocIDSetType)); err != nil {
		return err
	}

	// The encoded bitmap is buffered so its length can be written ahead of it.
	extBuf.Reset()
	if _, err := s.bm.WriteTo(extBuf); err != nil {
		return err
	}
	return xio.WriteBytes(writer, extBuf.Bytes())
}

func (s *bitmapBasedDocIDSet) readFrom(buf []byte) (int, error) {
	encoded, bytesRead, err := xio.ReadBytes(buf)
	if err != nil {
		return 0, fmt.Errorf("error reading bitmap based doc ID set: %v", err)
	}
	if err := s.bm.UnmarshalBinary(encoded); err != nil {
		return 0, err
	}
	return bytesRead, nil
}
