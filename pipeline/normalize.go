package pipeline

import (
	"github.com/emirpasic/gods/v2/maps/treemap"
	"github.com/liznear/seedmap/model"
)

// Normalize merges overlapping and adjacent ranges. The result is sorted by start and
// holds the fewest disjoint, non-adjacent ranges covering the same values as the input.
func Normalize(ranges []model.Range) []model.Range {
	if len(ranges) == 0 {
		return nil
	}

	// start -> largest end seen for that start.
	ends := treemap.New[uint64, uint64]()
	for _, r := range ranges {
		if end, ok := ends.Get(r.Start()); ok && end >= r.End() {
			continue
		}
		ends.Put(r.Start(), r.End())
	}

	var ret []model.Range
	iter := ends.Iterator()
	iter.Next()
	start, end := iter.Key(), iter.Value()
	for iter.Next() {
		// End() is at most MaxUint64-1, so end+1 cannot wrap.
		if iter.Key() <= end+1 {
			end = max(end, iter.Value())
			continue
		}
		ret = append(ret, model.MustNewRange(start, end-start+1))
		start, end = iter.Key(), iter.Value()
	}
	return append(ret, model.MustNewRange(start, end-start+1))
}
