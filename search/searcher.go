package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/xichen2020/disi/index"
	"github.com/xichen2020/disi/index/segment"

	"github.com/m3db/m3x/clock"
	xerrors "github.com/m3db/m3x/errors"
	"github.com/m3db/m3x/instrument"
	xlog "github.com/m3db/m3x/log"
	"github.com/uber-go/tally"
)

var (
	errNoTerms = xerrors.NewInvalidParamsError(errors.New("no search terms provided"))
)

// Result is the result of searching a single segment.
type Result struct {
	// SegmentID is the ID of the segment searched.
	SegmentID string

	// DocIDs are the matching doc IDs in ascending order.
	DocIDs []int32

	// Cost is the estimated cost of the disjunction over the matching terms.
	Cost int64

	// Truncated is true if there were more matches than returned.
	Truncated bool
}

// Searcher searches segments for documents containing any of the given terms.
type Searcher interface {
	// Search returns the documents in the segment that contain any of the terms.
	Search(ctx context.Context, seg *segment.Segment, terms []string) (Result, error)

	// SearchSegments searches each segment in turn. A failure searching one
	// segment does not prevent searching the others, and the returned error
	// contains all failures encountered.
	SearchSegments(ctx context.Context, segs []*segment.Segment, terms []string) ([]Result, error)
}

type searcherMetrics struct {
	search         instrument.MethodMetrics
	searchSegments instrument.MethodMetrics
	matched        tally.Counter
	truncated      tally.Counter
	unknownTerms   tally.Counter
}

func newSearcherMetrics(scope tally.Scope, samplingRate float64) searcherMetrics {
	return searcherMetrics{
		search:         instrument.NewMethodMetrics(scope, "search", samplingRate),
		searchSegments: instrument.NewMethodMetrics(scope, "search-segments", samplingRate),
		matched:        scope.Counter("matched"),
		truncated:      scope.Counter("truncated"),
		unknownTerms:   scope.Counter("unknown-terms"),
	}
}

type searcher struct {
	opts             *Options
	maxMatches       int
	checkCancelEvery int
	logger           xlog.Logger
	nowFn            clock.NowFn
	metrics          searcherMetrics
}

// NewSearcher creates a new searcher, returning an error if the options are invalid.
func NewSearcher(opts *Options) (Searcher, error) {
	if opts == nil {
		opts = NewOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	instrumentOpts := opts.InstrumentOptions()
	return &searcher{
		opts:             opts,
		maxMatches:       opts.MaxMatches(),
		checkCancelEvery: opts.CheckCancelEvery(),
		logger:           instrumentOpts.Logger(),
		nowFn:            opts.ClockOptions().NowFn(),
		metrics:          newSearcherMetrics(instrumentOpts.MetricsScope(), instrumentOpts.MetricsSamplingRate()),
	}, nil
}

func (s *searcher) Search(
	ctx context.Context,
	seg *segment.Segment,
	terms []string,
) (Result, error) {
	callStart := s.nowFn()
	res, err := s.search(ctx, seg, terms)
	s.metrics.search.ReportSuccessOrError(err, s.nowFn().Sub(callStart))
	return res, err
}

func (s *searcher) SearchSegments(
	ctx context.Context,
	segs []*segment.Segment,
	terms []string,
) ([]Result, error) {
	if len(terms) == 0 {
		return nil, errNoTerms
	}
	callStart := s.nowFn()
	var (
		results  = make([]Result, 0, len(segs))
		multiErr = xerrors.NewMultiError()
	)
	for _, seg := range segs {
		res, err := s.search(ctx, seg, terms)
		if err != nil {
			multiErr = multiErr.Add(fmt.Errorf("error searching segment %s: %v", seg.Metadata().ID, err))
			if ctx.Err() != nil {
				break
			}
			continue
		}
		results = append(results, res)
	}
	err := multiErr.FinalError()
	s.metrics.searchSegments.ReportSuccessOrError(err, s.nowFn().Sub(callStart))
	return results, err
}

func (s *searcher) search(
	ctx context.Context,
	seg *segment.Segment,
	terms []string,
) (Result, error) {
	if len(terms) == 0 {
		return Result{}, errNoTerms
	}
	res := Result{SegmentID: seg.Metadata().ID}
	iters := make([]index.DocIDSetIterator, 0, len(terms))
	for _, term := range terms {
		postings, exists := seg.Postings(term)
		if !exists {
			s.metrics.unknownTerms.Inc(1)
			continue
		}
		iters = append(iters, postings.Iter())
	}
	if len(iters) == 0 {
		return res, nil
	}

	it, err := index.NewDisjunctionApproximationFrom(iters...)
	if err != nil {
		return Result{}, err
	}
	defer it.Close()

	res.Cost = it.Cost()
	numPulled := 0
	for {
		numPulled++
		if numPulled%s.checkCancelEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		doc, err := it.NextDoc()
		if err != nil {
			return Result{}, err
		}
		if doc == index.NoMoreDocs {
			break
		}
		if len(res.DocIDs) == s.maxMatches {
			res.Truncated = true
			s.metrics.truncated.Inc(1)
			s.logger.Debugf("search of segment %s truncated at %d matches", res.SegmentID, s.maxMatches)
			break
		}
		res.DocIDs = append(res.DocIDs, doc)
	}
	s.metrics.matched.Inc(int64(len(res.DocIDs)))
	return res, nil
}
