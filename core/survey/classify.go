package survey

import "strings"

// MatchedColumns maps each category to the ordered list of column names whose
// header contains at least one of its keywords. Recomputed whenever the
// column set changes; never persisted.
type MatchedColumns map[Category][]string

// Classify derives the matched-columns index from the dataset's schema. A
// column may appear under zero, one or multiple categories; an empty list
// means "no data for this category", not a failure.
func Classify(columns []string, tax Taxonomy) MatchedColumns {
	matched := make(MatchedColumns, len(tax))
	for _, cat := range Categories {
		keywords := tax[cat]
		var cols []string
		for _, col := range columns {
			if containsAnyKeyword(col, keywords) {
				cols = append(cols, col)
			}
		}
		matched[cat] = cols
	}
	return matched
}

// Union flattens the matched columns across all categories into one ordered,
// de-duplicated list. A column matching several categories is included once:
// the overall belonging score sums every matched column exactly once.
func (mc MatchedColumns) Union() []string {
	seen := make(map[string]bool)
	var cols []string
	for _, cat := range Categories {
		for _, col := range mc[cat] {
			if !seen[col] {
				seen[col] = true
				cols = append(cols, col)
			}
		}
	}
	return cols
}

// Empty reports whether no column matched any category.
func (mc MatchedColumns) Empty() bool {
	for _, cols := range mc {
		if len(cols) > 0 {
			return false
		}
	}
	return true
}

func containsAnyKeyword(col string, keywords []string) bool {
	lower := strings.ToLower(col)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// FindColumn returns the first column whose header contains any of the
// keywords (case-insensitive substring), or "" when none matches.
func FindColumn(columns []string, keywords []string) string {
	for _, col := range columns {
		if containsAnyKeyword(col, keywords) {
			return col
		}
	}
	return ""
}

// TimestampColumns lists the columns that must be dropped before processing.
func TimestampColumns(columns []string) []string {
	var cols []string
	for _, col := range columns {
		if containsAnyKeyword(col, timestampKeywords) {
			cols = append(cols, col)
		}
	}
	return cols
}
