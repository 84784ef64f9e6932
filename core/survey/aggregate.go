package survey

import "math"

// Derived column names appended to the dataset by Aggregate.
const (
	ColBelongingRaw   = "BelongingRaw"
	ColBelongingCount = "BelongingCount"
	ColBelongingScore = "BelongingScore"
)

// Insights holds everything the dashboard and the report consume.
type Insights struct {
	Matched          MatchedColumns       `json:"matched_columns"`
	CategoryAverages map[Category]float64 `json:"category_averages"`

	// OverallScore is the mean of all respondents' individual scores. Only
	// meaningful when HasData is true.
	OverallScore float64 `json:"overall_score"`

	// HasData is false when no column matched any category; callers must
	// surface that as "no survey columns matched", not as a zero score, and
	// gate report generation off.
	HasData bool `json:"has_data"`

	// HighestArea is the category with the maximum average. LowestArea is the
	// minimum among categories with average > 0; it is empty when every
	// category is filtered out, which callers must treat as undefined rather
	// than a real low score.
	HighestArea Category `json:"highest_area,omitempty"`
	LowestArea  Category `json:"lowest_area,omitempty"`
}

// Aggregate computes per-respondent scores and category averages over the
// normalized dataset, appending the three derived score columns in place.
//
// Per respondent: raw is the sum over the union of matched columns (each
// column counted once even when it matches several categories), count is the
// number of non-missing values, and score is raw/count, or 0.0 when the
// respondent answered none of the matched questions.
//
// A category's average is the mean of its matched columns' individual means —
// a mean of column means, not a respondent-weighted mean. Columns with no
// numeric data contribute nothing to either numerator or denominator.
func Aggregate(ds *Dataset, matched MatchedColumns) Insights {
	insights := Insights{
		Matched:          matched,
		CategoryAverages: make(map[Category]float64, len(Categories)),
	}

	union := matched.Union()
	if len(union) == 0 {
		for _, cat := range Categories {
			insights.CategoryAverages[cat] = 0
		}
		ds.SetFloatColumn(ColBelongingRaw, zeros(ds.NumRows()))
		ds.SetFloatColumn(ColBelongingCount, zeros(ds.NumRows()))
		ds.SetFloatColumn(ColBelongingScore, zeros(ds.NumRows()))
		return insights
	}

	nrows := ds.NumRows()
	raw := make([]float64, nrows)
	count := make([]float64, nrows)
	score := make([]float64, nrows)

	for _, col := range union {
		for i, v := range ds.Floats(col) {
			if math.IsNaN(v) {
				continue
			}
			raw[i] += v
			count[i]++
		}
	}
	for i := range score {
		if count[i] > 0 {
			score[i] = raw[i] / count[i]
		}
	}
	ds.SetFloatColumn(ColBelongingRaw, raw)
	ds.SetFloatColumn(ColBelongingCount, count)
	ds.SetFloatColumn(ColBelongingScore, score)

	for _, cat := range Categories {
		insights.CategoryAverages[cat] = meanOfColumnMeans(ds, matched[cat])
	}

	insights.OverallScore = mean(score)
	insights.HasData = true
	insights.HighestArea, insights.LowestArea = selectAreas(insights.CategoryAverages)
	return insights
}

// selectAreas picks the highest-averaging category, and the lowest among
// those with average > 0 — a category averaging exactly 0 typically means "no
// matched columns", and reporting it as the worst-performing area would be
// misleading. Ties resolve to the earlier category in the fixed order.
func selectAreas(averages map[Category]float64) (highest, lowest Category) {
	bestVal := math.Inf(-1)
	worstVal := math.Inf(1)
	for _, cat := range Categories {
		avg := averages[cat]
		if avg > bestVal {
			bestVal = avg
			highest = cat
		}
		if avg > 0 && avg < worstVal {
			worstVal = avg
			lowest = cat
		}
	}
	return highest, lowest
}

func meanOfColumnMeans(ds *Dataset, cols []string) float64 {
	var sum float64
	var n int
	for _, col := range cols {
		m, ok := columnMean(ds.Floats(col))
		if !ok {
			continue
		}
		sum += m
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func columnMean(vals []float64) (float64, bool) {
	var sum float64
	var n int
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func zeros(n int) []float64 {
	return make([]float64, n)
}
