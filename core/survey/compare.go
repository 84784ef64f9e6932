package survey

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Response buckets for the percentage breakdown.
const (
	BucketAgree    = "Agree"
	BucketNeutral  = "Neutral"
	BucketDisagree = "Disagree"
	BucketUnknown  = "Unknown"
)

// Buckets fixes the display order.
var Buckets = []string{BucketAgree, BucketNeutral, BucketDisagree, BucketUnknown}

// GroupStat is the comparison result for one distinct value of the grouping
// column: the mean target score, the number of non-missing responses, and the
// bucket percentages (rounded to one decimal; they sum to 100 +/- rounding
// error per group).
type GroupStat struct {
	Group     string             `json:"group"`
	Mean      float64            `json:"mean"`
	Count     int                `json:"count"`
	Breakdown map[string]float64 `json:"breakdown"`
}

var ErrColumnNotFound = errors.New("column not found in dataset")

// Compare cross-tabulates the target numeric column against the grouping
// column. Rows with a missing group or target cell are dropped up front; a
// cell that survives but fails numeric coercion lands in the Unknown bucket.
// Buckets: value <= 2 Disagree, == 3 Neutral, >= 4 Agree.
//
// A group with zero numeric responses has no defined mean and is omitted from
// the output entirely — no placeholder row is synthesized. Groups are
// returned in lexicographic order.
func Compare(ds *Dataset, targetCol, groupCol string) ([]GroupStat, error) {
	if !ds.HasColumn(targetCol) {
		return nil, errors.Wrap(ErrColumnNotFound, targetCol)
	}
	if !ds.HasColumn(groupCol) {
		return nil, errors.Wrap(ErrColumnNotFound, groupCol)
	}

	groups := ds.Records(groupCol)
	targets := ds.Records(targetCol)

	type acc struct {
		sum     float64
		count   int
		buckets map[string]int
		total   int
	}
	byGroup := make(map[string]*acc)

	for i, g := range groups {
		if isMissing(g) || isMissing(targets[i]) {
			continue
		}
		a, ok := byGroup[g]
		if !ok {
			a = &acc{buckets: make(map[string]int)}
			byGroup[g] = a
		}
		v := coerceFloat(targets[i])
		a.buckets[bucketFor(v)]++
		a.total++
		if !math.IsNaN(v) {
			a.sum += v
			a.count++
		}
	}

	names := make([]string, 0, len(byGroup))
	for g, a := range byGroup {
		if a.count == 0 {
			continue // no mean is defined; omit rather than synthesize
		}
		names = append(names, g)
	}
	sort.Strings(names)

	stats := make([]GroupStat, 0, len(names))
	for _, g := range names {
		a := byGroup[g]
		breakdown := make(map[string]float64, len(Buckets))
		for _, b := range Buckets {
			if n := a.buckets[b]; n > 0 {
				breakdown[b] = round1(float64(n) / float64(a.total) * 100)
			}
		}
		stats = append(stats, GroupStat{
			Group:     g,
			Mean:      a.sum / float64(a.count),
			Count:     a.count,
			Breakdown: breakdown,
		})
	}
	return stats, nil
}

func bucketFor(v float64) string {
	switch {
	case math.IsNaN(v):
		return BucketUnknown
	case v <= 2:
		return BucketDisagree
	case v == 3:
		return BucketNeutral
	case v >= 4:
		return BucketAgree
	}
	return BucketUnknown
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
