// Package report assembles computed survey metrics into a fixed-layout
// printable PDF document.
package report

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"github.com/apnapan/pulse/core"
	"github.com/apnapan/pulse/core/survey"
)

// ErrNoData gates report generation off entirely when no valid aggregate
// exists; individual missing metrics inside a valid report render as 0.00.
var ErrNoData = errors.New("Cannot generate report: no valid data available. Please upload a file and process it.")

var unsafeFilenameChars = regexp.MustCompile(`[^\w\s-]`)

type metricCard struct {
	label   string
	value   float64
	r, g, b int
}

// Generate renders the insights snapshot for the named school: an intro
// paragraph, four metric blocks (Overall Belonging, Safety, Respect,
// Welcome) formatted to two decimal places, and a footer naming the tool and
// the generation date.
func Generate(schoolName string, insights survey.Insights) ([]byte, error) {
	if !insights.HasData {
		return nil, ErrNoData
	}
	schoolName = core.CleanString(schoolName)
	if schoolName == "" {
		return nil, core.NewValidationError(nil, core.FieldError{Field: "school_name", Error: "this field is required"})
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 18)
		pdf.SetTextColor(0, 51, 102)
		pdf.CellFormat(0, 10, schoolName, "", 1, "C", false, 0, "")
		pdf.SetFont("Arial", "", 13)
		pdf.CellFormat(0, 10, "Data Insights Snapshot", "", 1, "C", false, 0, "")
		pdf.Ln(8)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-20)
		pdf.SetFont("Arial", "I", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 10, fmt.Sprintf("Generated using the %s Data Insights Tool", core.Conf.AppName), "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 10, time.Now().Format("January 2, 2006"), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	writeIntro(pdf, schoolName)

	cards := []metricCard{
		{"Overall Belonging Score", insights.OverallScore, 0, 102, 204},
		{"Safety", insights.CategoryAverages[survey.CategorySafety], 0, 153, 0},
		{"Respect", insights.CategoryAverages[survey.CategoryRespect], 255, 153, 51},
		{"Welcomed", insights.CategoryAverages[survey.CategoryWelcome], 204, 0, 102},
	}
	for _, c := range cards {
		writeMetricCard(pdf, c)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "rendering report")
	}
	return buf.Bytes(), nil
}

func writeIntro(pdf *gofpdf.Fpdf, schoolName string) {
	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"This report presents a snapshot of how students experience Belonging, "+
			"Safety, Respect, and Welcome at %s. The results are based on "+
			"student-reported data collected from the survey file.", schoolName),
		"", "L", false)
	pdf.Ln(8)
}

func writeMetricCard(pdf *gofpdf.Fpdf, c metricCard) {
	pdf.SetFillColor(c.r, c.g, c.b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 12, fmt.Sprintf("%s: %.2f", c.label, c.value), "", 1, "C", true, 0, "")
	pdf.Ln(2)
}

// Filename derives a filesystem-safe report name from the school name.
func Filename(schoolName string) string {
	clean := unsafeFilenameChars.ReplaceAllString(schoolName, "")
	clean = strings.ReplaceAll(strings.TrimSpace(clean), " ", "_")
	return clean + "_insights_report.pdf"
}
