package survey

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
)

func newTestDataset(t *testing.T, records [][]string) *Dataset {
	t.Helper()
	df := dataframe.LoadRecords(records)
	if df.Error() != nil {
		t.Fatalf("newTestDataset() failed: %v", df.Error())
	}
	return NewDataset(df)
}

func assertFloats(t *testing.T, got []float64, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if math.IsNaN(want[i]) {
			if !math.IsNaN(got[i]) {
				t.Errorf("[%d] = %v; want NaN", i, got[i])
			}
			continue
		}
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}
