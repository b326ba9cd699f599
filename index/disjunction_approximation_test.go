package index

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestDisjunctionApproximationNextDoc(t *testing.T) {
	inputs := []struct {
		name     string
		docIDs   [][]int32
		expected []int32
		cost     int64
	}{
		{
			name:     "overlapping",
			docIDs:   [][]int32{{2, 5, 9}, {3, 5, 7}, {5}},
			expected: []int32{2, 3, 5, 7, 9},
			cost:     7,
		},
		{
			name:     "single",
			docIDs:   [][]int32{{4}},
			expected: []int32{4},
			cost:     1,
		},
		{
			name:     "disjoint",
			docIDs:   [][]int32{{1, 2, 3}, {10, 20}},
			expected: []int32{1, 2, 3, 10, 20},
			cost:     5,
		},
		{
			name:     "identical",
			docIDs:   [][]int32{{1, 6}, {1, 6}, {1, 6}},
			expected: []int32{1, 6},
			cost:     6,
		},
		{
			name:     "with empty",
			docIDs:   [][]int32{{}, {8}, {}},
			expected: []int32{8},
			cost:     1,
		},
		{
			name:     "all empty",
			docIDs:   [][]int32{{}, {}},
			expected: nil,
			cost:     0,
		},
	}

	for _, input := range inputs {
		t.Run(input.name, func(t *testing.T) {
			it := newTestDisjunction(t, input.docIDs...)
			defer it.Close()

			require.Equal(t, input.cost, it.Cost())
			actual := drain(t, it)
			require.Equal(t, input.expected, actual)
			require.Equal(t, NoMoreDocs, it.DocID())
			require.Equal(t, input.cost, it.Cost())
		})
	}
}

func TestDisjunctionApproximationDocIDBeforePositioned(t *testing.T) {
	it := newTestDisjunction(t, []int32{2, 5, 9}, []int32{3})
	require.Equal(t, unpositionedDocID, it.DocID())

	doc, err := it.NextDoc()
	require.NoError(t, err)
	require.Equal(t, int32(2), doc)
	require.Equal(t, int32(2), it.DocID())
}

func TestDisjunctionApproximationAdvance(t *testing.T) {
	it := newTestDisjunction(t, []int32{2, 5, 9}, []int32{3, 5, 7}, []int32{5})

	doc, err := it.Advance(6)
	require.NoError(t, err)
	require.Equal(t, int32(7), doc)

	doc, err = it.NextDoc()
	require.NoError(t, err)
	require.Equal(t, int32(9), doc)

	doc, err = it.Advance(10)
	require.NoError(t, err)
	require.Equal(t, NoMoreDocs, doc)
}

func TestDisjunctionApproximationAdvanceToCurrentOrBelow(t *testing.T) {
	it := newTestDisjunction(t, []int32{2, 5, 9}, []int32{3, 5, 7})

	doc, err := it.Advance(5)
	require.NoError(t, err)
	require.Equal(t, int32(5), doc)

	// The target does not exceed the current doc, so the result must still be
	// no smaller than the target.
	doc, err = it.Advance(3)
	require.NoError(t, err)
	require.True(t, doc >= 3)
	require.Equal(t, []int32{7, 9}, drain(t, it))
}

func TestDisjunctionApproximationExhaustedIsAbsorbing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sub := NewMockDocIDSetIterator(ctrl)
	gomock.InOrder(
		sub.EXPECT().DocID().Return(unpositionedDocID),
		sub.EXPECT().Cost().Return(int64(1)),
		sub.EXPECT().NextDoc().Return(int32(4), nil),
		sub.EXPECT().NextDoc().Return(NoMoreDocs, nil),
		sub.EXPECT().Close(),
	)

	it, err := NewDisjunctionApproximationFrom(sub)
	require.NoError(t, err)

	doc, err := it.NextDoc()
	require.NoError(t, err)
	require.Equal(t, int32(4), doc)

	doc, err = it.NextDoc()
	require.NoError(t, err)
	require.Equal(t, NoMoreDocs, doc)

	// Exhausted sub-iterators are not touched again.
	for i := 0; i < 3; i++ {
		doc, err = it.NextDoc()
		require.NoError(t, err)
		require.Equal(t, NoMoreDocs, doc)

		doc, err = it.Advance(int32(i))
		require.NoError(t, err)
		require.Equal(t, NoMoreDocs, doc)
	}
	it.Close()
}

func TestDisjunctionApproximationPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	errRead := errors.New("error reading postings")
	sub := NewMockDocIDSetIterator(ctrl)
	gomock.InOrder(
		sub.EXPECT().DocID().Return(unpositionedDocID),
		sub.EXPECT().Cost().Return(int64(3)),
		sub.EXPECT().NextDoc().Return(int32(0), errRead),
		sub.EXPECT().Advance(int32(10)).Return(int32(0), errRead),
	)

	it, err := NewDisjunctionApproximationFrom(
		NewArrayBasedDocIDSetIterator([]int32{1, 2}),
		sub,
	)
	require.NoError(t, err)
	require.Equal(t, int64(5), it.Cost())

	// The array iterator is cheaper so it is advanced first.
	doc, err := it.NextDoc()
	require.Equal(t, errRead, err)
	require.Equal(t, int32(0), doc)
	require.Equal(t, sub, it.SubIterators().Top().Iter())

	_, err = it.Advance(10)
	require.Equal(t, errRead, err)
}

func TestNewDisjunctionApproximationFromNoIterators(t *testing.T) {
	_, err := NewDisjunctionApproximationFrom()
	require.Equal(t, ErrNoSubIterators, err)
}

func TestDisjunctionApproximationNested(t *testing.T) {
	inner1 := newTestDisjunction(t, []int32{1, 4}, []int32{4, 6})
	inner2 := newTestDisjunction(t, []int32{2, 6}, []int32{9})
	outer, err := NewDisjunctionApproximationFrom(inner1, inner2)
	require.NoError(t, err)
	defer outer.Close()

	require.Equal(t, int64(7), outer.Cost())
	require.Equal(t, []int32{1, 2, 4, 6, 9}, drain(t, outer))
}

func TestDisjunctionApproximationSubIteratorsOnSameDoc(t *testing.T) {
	it := newTestDisjunction(t, []int32{2, 5}, []int32{5}, []int32{5, 8})

	doc, err := it.Advance(5)
	require.NoError(t, err)
	require.Equal(t, int32(5), doc)
	require.True(t, it.SubIterators().AllOnDoc(5))

	doc, err = it.NextDoc()
	require.NoError(t, err)
	require.Equal(t, int32(8), doc)
	require.False(t, it.SubIterators().AllOnDoc(8))
}

func TestDisjunctionApproximationRandomized(t *testing.T) {
	rnd := rand.New(rand.NewSource(1234))
	for iter := 0; iter < 200; iter++ {
		var (
			numIters = 1 + rnd.Intn(8)
			docIDs   = make([][]int32, numIters)
			union    = make(map[int32]struct{})
			cost     int64
		)
		for i := 0; i < numIters; i++ {
			docIDs[i] = randomDocIDs(rnd, rnd.Intn(50), 200)
			cost += int64(len(docIDs[i]))
			for _, d := range docIDs[i] {
				union[d] = struct{}{}
			}
		}
		var expected []int32
		for d := range union {
			expected = append(expected, d)
		}
		sort.Slice(expected, func(i, j int) bool { return expected[i] < expected[j] })

		it := newTestDisjunction(t, docIDs...)
		require.Equal(t, cost, it.Cost())
		require.Equal(t, expected, drain(t, it))
		require.Equal(t, cost, it.Cost())

		// Advancing to increasing targets must match stepping one doc at a time.
		var (
			advanceIt = newTestDisjunction(t, docIDs...)
			target    int32
		)
		for {
			target += int32(1 + rnd.Intn(20))
			doc, err := advanceIt.Advance(target)
			require.NoError(t, err)
			require.Equal(t, firstNoSmallerThan(expected, target), doc)
			if doc == NoMoreDocs {
				break
			}
			target = doc
		}
	}
}

func newTestDisjunction(t *testing.T, docIDs ...[]int32) *DisjunctionApproximation {
	iters := make([]DocIDSetIterator, 0, len(docIDs))
	for _, ids := range docIDs {
		iters = append(iters, NewArrayBasedDocIDSetIterator(ids))
	}
	it, err := NewDisjunctionApproximationFrom(iters...)
	require.NoError(t, err)
	return it
}

func drain(t *testing.T, it DocIDSetIterator) []int32 {
	var res []int32
	for {
		doc, err := it.NextDoc()
		require.NoError(t, err)
		if doc == NoMoreDocs {
			return res
		}
		res = append(res, doc)
	}
}

func randomDocIDs(rnd *rand.Rand, n int, maxDocID int32) []int32 {
	seen := make(map[int32]struct{}, n)
	res := make([]int32, 0, n)
	for i := 0; i < n; i++ {
		d := rnd.Int31n(maxDocID)
		if _, exists := seen[d]; exists {
			continue
		}
		seen[d] = struct{}{}
		res = append(res, d)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

func firstNoSmallerThan(sorted []int32, target int32) int32 {
	idx := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= target })
	if idx == len(sorted) {
		return NoMoreDocs
	}
	return sorted[idx]
}
