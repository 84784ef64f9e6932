package survey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_sampleDataset(t *testing.T) {
	ds := Sample()

	insights, converted := Analyze(ds)

	require.True(t, insights.HasData)
	assert.Contains(t, converted, "Do_you_feel_safe_at_school")
	assert.Contains(t, insights.Matched[CategorySafety], "Do_you_feel_safe_at_school")
	assert.Contains(t, insights.Matched[CategoryWelcome], "Do_you_feel_welcome_at_school")

	// every score stays on the 1..5 scale
	assert.Greater(t, insights.OverallScore, 1.0)
	assert.Less(t, insights.OverallScore, 5.0)
	for _, v := range ds.Floats(ColBelongingScore) {
		assert.GreaterOrEqual(t, v, 1.0)
		assert.LessOrEqual(t, v, 5.0)
	}

	// the pipeline appends its derived columns
	assert.True(t, ds.HasColumn(ColBelongingRaw))
	assert.True(t, ds.HasColumn(ColBelongingCount))
	assert.True(t, ds.HasColumn(ColBelongingScore))
	assert.True(t, ds.HasColumn(ColKaashScore))
}

func TestSampleCSV(t *testing.T) {
	csv, err := SampleCSV()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(csv)), "\n")
	assert.Len(t, lines, 11) // header + 10 respondents
	assert.Contains(t, lines[0], "Do_you_feel_safe_at_school")
}
