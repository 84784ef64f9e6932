package survey

import (
	"math"
	"strings"
	"unicode"
)

// Normalize converts every survey-like column to its numeric 1–5 form, in
// place. A column is survey-like when at least one non-missing cell, trimmed
// and title-cased, is a canonical Likert label. Within such a column each
// cell becomes its Likert integer; anything else is coerced numerically and
// becomes missing when unparseable (a per-cell soft failure, never an error).
//
// Normalization is idempotent: an already-numeric column holds no Likert
// labels, so it is either skipped entirely or preserved by the numeric
// coercion pass. Returns the names of the columns that were converted.
func Normalize(ds *Dataset) []string {
	var converted []string
	for _, col := range ds.Columns() {
		records := ds.Records(col)
		if !isSurveyColumn(records) {
			continue
		}
		vals := make([]float64, len(records))
		for i, rec := range records {
			vals[i] = normalizeCell(rec)
		}
		ds.SetFloatColumn(col, vals)
		converted = append(converted, col)
	}
	return converted
}

func isSurveyColumn(records []string) bool {
	for _, rec := range records {
		if isMissing(rec) {
			continue
		}
		if _, ok := LikertScale[titleCase(rec)]; ok {
			return true
		}
	}
	return false
}

func normalizeCell(rec string) float64 {
	if isMissing(rec) {
		return math.NaN()
	}
	if v, ok := LikertScale[titleCase(rec)]; ok {
		return float64(v)
	}
	return coerceFloat(rec)
}

// titleCase lowercases s and uppercases the first letter of every word, the
// way the Likert labels are canonically written ("strongly agree" ->
// "Strongly Agree").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) && !prevLetter {
			r = unicode.ToUpper(r)
		}
		prevLetter = unicode.IsLetter(r)
		b.WriteRune(r)
	}
	return b.String()
}
