package segment

import (
	"github.com/xichen2020/disi/index"

	"github.com/pborman/uuid"
	"github.com/pilosa/pilosa/roaring"
)

const (
	defaultInitialNumTerms = 1024
)

// Builder builds a segment.
type Builder interface {
	// Add adds a document ID to the postings of a term.
	Add(term string, docID int32)

	// Build returns a segment built from data accumulated in the builder.
	// The builder should not be used after `Build` is called.
	Build() *Segment
}

// BuilderOptions provide a set of builder options.
type BuilderOptions struct {
	initialNumTerms int
	idFn            func() string
}

// NewBuilderOptions create a new set of builder options.
func NewBuilderOptions() *BuilderOptions {
	return &BuilderOptions{
		initialNumTerms: defaultInitialNumTerms,
		idFn:            uuid.New,
	}
}

// SetInitialNumTerms sets the initial number of terms the builder has capacity for.
func (o *BuilderOptions) SetInitialNumTerms(v int) *BuilderOptions {
	opts := *o
	opts.initialNumTerms = v
	return &opts
}

// InitialNumTerms returns the initial number of terms the builder has capacity for.
func (o *BuilderOptions) InitialNumTerms() int {
	return o.initialNumTerms
}

// SetIDFn sets the function generating segment IDs.
func (o *BuilderOptions) SetIDFn(v func() string) *BuilderOptions {
	opts := *o
	opts.idFn = v
	return &opts
}

// IDFn returns the function generating segment IDs.
func (o *BuilderOptions) IDFn() func() string {
	return o.idFn
}

type builder struct {
	opts     *BuilderOptions
	postings map[string]index.DocIDSetBuilder
	numDocs  int32
}

// NewBuilder creates a new segment builder.
func NewBuilder(opts *BuilderOptions) Builder {
	if opts == nil {
		opts = NewBuilderOptions()
	}
	return &builder{
		opts:     opts,
		postings: make(map[string]index.DocIDSetBuilder, opts.InitialNumTerms()),
	}
}

func (b *builder) Add(term string, docID int32) {
	pb, exists := b.postings[term]
	if !exists {
		pb = index.NewBitmapBasedDocIDSetBuilder(roaring.NewBitmap())
		b.postings[term] = pb
	}
	pb.Add(docID)
	if docID >= b.numDocs {
		b.numDocs = docID + 1
	}
}

func (b *builder) Build() *Segment {
	postings := make(map[string]index.DocIDSet, len(b.postings))
	for term, pb := range b.postings {
		postings[term] = pb.Seal(b.numDocs)
	}
	b.postings = nil
	md := Metadata{
		ID:       b.opts.IDFn()(),
		NumDocs:  b.numDocs,
		NumTerms: len(postings),
	}
	return newSegment(md, postings)
}
