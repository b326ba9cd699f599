package index

import (
	"testing"

	"github.com/pilosa/pilosa/roaring"
)

const (
	benchNumTotalDocs = 1024 * 1024
)

var (
	benchDocID int32
)

func BenchmarkDisjunctionApproximationNextDocFew(b *testing.B) {
	benchmarkDisjunctionApproximationNextDoc(b, []int{3, 5, 7})
}

func BenchmarkDisjunctionApproximationNextDocMany(b *testing.B) {
	benchmarkDisjunctionApproximationNextDoc(b, []int{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41})
}

func BenchmarkDisjunctionApproximationAdvance(b *testing.B) {
	bms := initBenchBitmaps(benchNumTotalDocs, []int{3, 5, 7, 11})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := newBenchDisjunction(bms)
		for target := int32(0); ; {
			doc, err := it.Advance(target)
			if err != nil {
				b.Fatal(err)
			}
			if doc == NoMoreDocs {
				break
			}
			benchDocID = doc
			target = doc + 1000
		}
		it.Close()
	}
}

func benchmarkDisjunctionApproximationNextDoc(b *testing.B, everyNs []int) {
	bms := initBenchBitmaps(benchNumTotalDocs, everyNs)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := newBenchDisjunction(bms)
		for {
			doc, err := it.NextDoc()
			if err != nil {
				b.Fatal(err)
			}
			if doc == NoMoreDocs {
				break
			}
			benchDocID = doc
		}
		it.Close()
	}
}

func newBenchDisjunction(bms []*roaring.Bitmap) *DisjunctionApproximation {
	iters := make([]DocIDSetIterator, 0, len(bms))
	for _, bm := range bms {
		iters = append(iters, newBitmapBasedDocIDSetIterator(bm))
	}
	it, _ := NewDisjunctionApproximationFrom(iters...)
	return it
}

func initBenchBitmaps(n int, everyNs []int) []*roaring.Bitmap {
	bms := make([]*roaring.Bitmap, 0, len(everyNs))
	for _, everyN := range everyNs {
		bm := roaring.NewBitmap()
		for j := 0; j < n; j++ {
			if j%everyN == 0 {
				bm.DirectAdd(uint64(j))
			}
		}
		bm.Optimize()
		bms = append(bms, bm)
	}
	return bms
}
