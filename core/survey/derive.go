package survey

import (
	"math"
	"strings"
)

// Derived column names appended by the derivation pass.
const (
	ColKaashScore      = "KaashScore"
	ColIncomeCategory  = "Income Category"
	ColEthnicityLabel  = "ethnicity_cleaned"
	possessionsKeyword = "what items among these do you have at home"
)

// Income categories derived from the possessions question.
const (
	IncomeHigh    = "High"
	IncomeMid     = "Mid"
	IncomeLow     = "Low"
	IncomeUnknown = "Unknown"
)

// Derive appends the supporting derived columns: the KaashScore adjustment
// column, the income category bucketing and the cleaned ethnicity labels.
// Each derivation is skipped silently when its source column is absent.
func Derive(ds *Dataset) {
	DeriveKaashScore(ds)
	DeriveIncomeCategory(ds)
	CleanEthnicity(ds)
}

// DeriveKaashScore appends the per-respondent mean of all "kaash" columns,
// or a zero column when none exist.
func DeriveKaashScore(ds *Dataset) {
	var kaashCols []string
	for _, col := range ds.Columns() {
		if strings.Contains(strings.ToLower(col), "kaash") {
			kaashCols = append(kaashCols, col)
		}
	}

	vals := zeros(ds.NumRows())
	if len(kaashCols) > 0 {
		counts := make([]int, ds.NumRows())
		for _, col := range kaashCols {
			for i, v := range ds.Floats(col) {
				if math.IsNaN(v) {
					continue
				}
				vals[i] += v
				counts[i]++
			}
		}
		for i := range vals {
			if counts[i] > 0 {
				vals[i] /= float64(counts[i])
			} else {
				vals[i] = math.NaN()
			}
		}
	}
	ds.SetFloatColumn(ColKaashScore, vals)
}

// DeriveIncomeCategory buckets the possessions answer into High/Mid/Low:
// car + own home is High, a computer (or an own home without a car) is Mid,
// anything else is Low; a missing answer is Unknown.
func DeriveIncomeCategory(ds *Dataset) {
	col := FindColumn(ds.Columns(), []string{possessionsKeyword})
	if col == "" {
		return
	}
	records := ds.Records(col)
	cats := make([]string, len(records))
	for i, rec := range records {
		cats[i] = CategorizeIncome(rec)
	}
	ds.SetStringColumn(ColIncomeCategory, cats)
}

func CategorizeIncome(possessions string) string {
	if isMissing(possessions) {
		return IncomeUnknown
	}
	items := strings.ToLower(possessions)
	hasCar := strings.Contains(items, "car")
	hasComputer := strings.Contains(items, "computer") || strings.Contains(items, "laptop")
	hasHome := strings.Contains(items, "apna ghar")
	if hasCar && hasHome {
		return IncomeHigh
	}
	if hasComputer || (hasHome && !hasCar) {
		return IncomeMid
	}
	return IncomeLow
}

// CleanEthnicity appends a normalized ethnicity column bucketing free-text
// answers into the census categories. The substring checks run in a fixed
// order; an answer matching none of them passes through unchanged.
func CleanEthnicity(ds *Dataset) {
	col := FindColumn(ds.Columns(), []string{"ethnicity"})
	if col == "" || col == ColEthnicityLabel {
		return
	}
	records := ds.Records(col)
	cleaned := make([]string, len(records))
	for i, rec := range records {
		cleaned[i] = cleanEthnicityValue(rec)
	}
	ds.SetStringColumn(ColEthnicityLabel, cleaned)
}

func cleanEthnicityValue(v string) string {
	lower := strings.ToLower(v)
	switch {
	case strings.Contains(lower, "general"):
		return "General"
	case strings.Contains(lower, "sc"):
		return "SC"
	case strings.Contains(lower, "other"):
		return "OBC"
	case strings.Contains(lower, "do"):
		return "Don't Know"
	case strings.Contains(lower, "st"):
		return "ST"
	}
	return v
}
