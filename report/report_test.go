package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apnapan/pulse/core"
	"github.com/apnapan/pulse/core/survey"
)

func testInsights() survey.Insights {
	return survey.Insights{
		HasData:      true,
		OverallScore: 3.87,
		CategoryAverages: map[survey.Category]float64{
			survey.CategorySafety:  4.1,
			survey.CategoryRespect: 3.2,
			survey.CategoryWelcome: 4.4,
		},
		HighestArea: survey.CategoryWelcome,
		LowestArea:  survey.CategoryRespect,
	}
}

func TestGenerate(t *testing.T) {
	pdf, err := Generate("Springfield High", testInsights())
	require.NoError(t, err)

	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerate_refusesWithoutData(t *testing.T) {
	_, err := Generate("Springfield High", survey.Insights{})

	assert.ErrorIs(t, err, ErrNoData)
	assert.EqualError(t, err, "Cannot generate report: no valid data available. Please upload a file and process it.")
}

func TestGenerate_requiresSchoolName(t *testing.T) {
	for _, name := range []string{"", "   "} {
		_, err := Generate(name, testInsights())

		var verr *core.ValidationError
		assert.ErrorAs(t, err, &verr)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Springfield High", "Springfield_High_insights_report.pdf"},
		{"St. Mary's School #1", "St_Marys_School_1_insights_report.pdf"},
		{"  padded  ", "padded_insights_report.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename(tt.in))
	}
}
