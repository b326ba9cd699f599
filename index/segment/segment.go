package segment

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/xichen2020/disi/index"
	xio "github.com/xichen2020/disi/x/io"
)

// Segment is an immutable collection of term postings over a contiguous range
// of document IDs starting at zero.
type Segment struct {
	metadata Metadata
	postings map[string]index.DocIDSet
}

func newSegment(md Metadata, postings map[string]index.DocIDSet) *Segment {
	return &Segment{metadata: md, postings: postings}
}

// NewSegmentFromBytes decodes a segment encoded by `WriteTo`.
// NB: The decoded postings may reference the input buffer, so the buffer
// must not be mutated while the segment is in use.
func NewSegmentFromBytes(data []byte) (*Segment, error) {
	id, n, err := xio.ReadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding segment ID: %v", err)
	}
	data = data[n:]
	numDocs, n, err := xio.ReadVarint(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding number of docs: %v", err)
	}
	data = data[n:]
	if numDocs < 0 || numDocs >= int64(index.NoMoreDocs) {
		return nil, fmt.Errorf("invalid number of docs %d", numDocs)
	}
	numTerms, n, err := xio.ReadVarint(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding number of terms: %v", err)
	}
	data = data[n:]
	// Every term takes at least one byte, which bounds the map size hint.
	if numTerms < 0 || numTerms > int64(len(data)) {
		return nil, fmt.Errorf("invalid number of terms %d for %d remaining bytes", numTerms, len(data))
	}

	postings := make(map[string]index.DocIDSet, numTerms)
	for i := 0; i < int(numTerms); i++ {
		term, n, err := xio.ReadBytes(data)
		if err != nil {
			return nil, fmt.Errorf("error decoding term %d: %v", i, err)
		}
		data = data[n:]
		docIDSet, n, err := index.NewDocIDSetFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("error decoding postings for term %s: %v", term, err)
		}
		data = data[n:]
		postings[string(term)] = docIDSet
	}
	md := Metadata{
		ID:       string(id),
		NumDocs:  int32(numDocs),
		NumTerms: len(postings),
	}
	return newSegment(md, postings), nil
}

// Metadata returns the segment metadata.
func (s *Segment) Metadata() Metadata { return s.metadata }

// Postings returns the doc ID set of documents containing the term.
func (s *Segment) Postings(term string) (index.DocIDSet, bool) {
	docIDSet, exists := s.postings[term]
	return docIDSet, exists
}

// Terms returns the terms in the segment in sorted order.
func (s *Segment) Terms() []string {
	terms := make([]string, 0, len(s.postings))
	for term := range s.postings {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// WriteTo writes the segment to an io.Writer.
func (s *Segment) WriteTo(writer io.Writer) error {
	if err := xio.WriteBytes(writer, []byte(s.metadata.ID)); err != nil {
		return err
	}
	if err := xio.WriteVarint(writer, int64(s.metadata.NumDocs)); err != nil {
		return err
	}
	if err := xio.WriteVarint(writer, int64(len(s.postings))); err != nil {
		return err
	}
	var extBuf bytes.Buffer
	for _, term := range s.Terms() {
		if err := xio.WriteBytes(writer, []byte(term)); err != nil {
			return err
		}
		if err := s.postings[term].WriteTo(writer, &extBuf); err != nil {
			return err
		}
	}
	return nil
}
