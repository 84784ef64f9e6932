package survey

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Dataset wraps one uploaded table. Rows are ordered, columns are named by the
// file's header row; cell values are strings, numbers or missing. Derived
// columns are appended in place by the pipeline; the whole thing is discarded
// when a new file is uploaded or the session ends.
type Dataset struct {
	df dataframe.DataFrame
}

func NewDataset(df dataframe.DataFrame) *Dataset {
	return &Dataset{df: df}
}

func (ds *Dataset) Frame() dataframe.DataFrame { return ds.df }

func (ds *Dataset) Columns() []string { return ds.df.Names() }

func (ds *Dataset) NumRows() int { return ds.df.Nrow() }

func (ds *Dataset) NumColumns() int { return ds.df.Ncol() }

func (ds *Dataset) HasColumn(name string) bool {
	for _, col := range ds.df.Names() {
		if col == name {
			return true
		}
	}
	return false
}

// DropColumns removes the named columns; unknown names are ignored.
func (ds *Dataset) DropColumns(names ...string) {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}
	keep := make([]string, 0, ds.df.Ncol())
	for _, col := range ds.df.Names() {
		if !drop[col] {
			keep = append(keep, col)
		}
	}
	if len(keep) < ds.df.Ncol() {
		ds.df = ds.df.Select(keep)
	}
}

// Records returns the raw cell strings of a column.
func (ds *Dataset) Records(col string) []string {
	return ds.df.Col(col).Records()
}

// Floats returns the numeric view of a column: each cell is coerced with
// ParseFloat and anything unparseable (including missing) becomes NaN.
func (ds *Dataset) Floats(col string) []float64 {
	records := ds.df.Col(col).Records()
	vals := make([]float64, len(records))
	for i, rec := range records {
		vals[i] = coerceFloat(rec)
	}
	return vals
}

// SetFloatColumn replaces or appends a float column.
func (ds *Dataset) SetFloatColumn(name string, vals []float64) {
	ds.df = ds.df.Mutate(series.New(vals, series.Float, name))
}

// SetStringColumn replaces or appends a string column.
func (ds *Dataset) SetStringColumn(name string, vals []string) {
	ds.df = ds.df.Mutate(series.New(vals, series.String, name))
}

func coerceFloat(rec string) float64 {
	if isMissing(rec) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(rec), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func isMissing(rec string) bool {
	switch strings.TrimSpace(rec) {
	case "", "NaN", "NA", "<nil>":
		return true
	}
	return false
}
