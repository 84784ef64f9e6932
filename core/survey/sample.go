package survey

import (
	"bytes"

	"github.com/go-gota/gota/dataframe"
)

// sampleRecords is the fixed illustrative dataset offered for download to show
// the expected input shape: demographic columns, a socio-economic indicator
// and five Likert survey questions.
var sampleRecords = [][]string{
	{"StudentID", "Gender", "Grade", "Religion", "Ethnicity_cleaned", "What_items_among_these_do_you_have_at_home", "Do_you_feel_safe_at_school", "Do_you_feel_welcome_at_school", "Are_you_respected_by_peers", "Do_teachers_notice_you", "Do_you_have_a_close_teacher"},
	{"1", "Male", "10", "Hindu", "Asian", "Car, Computer, Apna Ghar", "Agree", "Strongly Agree", "Neutral", "Disagree", "Agree"},
	{"2", "Female", "9", "Muslim", "African", "Laptop, Rent", "Neutral", "Agree", "Agree", "Neutral", "Neutral"},
	{"3", "Male", "11", "Christian", "Latin", "Apna Ghar", "Strongly Agree", "Neutral", "Strongly Agree", "Agree", "Strongly Agree"},
	{"4", "Female", "8", "Sikh", "Asian", "Computer", "Disagree", "Disagree", "Neutral", "Disagree", "Disagree"},
	{"5", "Male", "12", "Hindu", "African", "Car, Apna Ghar", "Agree", "Agree", "Agree", "Neutral", "Agree"},
	{"6", "Female", "10", "Buddhist", "Latin", "Rent", "Neutral", "Neutral", "Disagree", "Strongly Disagree", "Neutral"},
	{"7", "Male", "9", "Jain", "Asian", "Computer, Apna Ghar", "Strongly Agree", "Strongly Agree", "Strongly Agree", "Agree", "Strongly Agree"},
	{"8", "Female", "11", "Islam", "African", "Laptop", "Disagree", "Neutral", "Neutral", "Disagree", "Disagree"},
	{"9", "Male", "10", "Hindu", "Latin", "Car, Computer", "Agree", "Agree", "Agree", "Neutral", "Agree"},
	{"10", "Female", "12", "Christian", "Asian", "Apna Ghar", "Neutral", "Disagree", "Neutral", "Disagree", "Neutral"},
}

// Sample returns a fresh copy of the illustrative dataset.
func Sample() *Dataset {
	return NewDataset(dataframe.LoadRecords(sampleRecords))
}

// SampleCSV renders the sample dataset as CSV for download.
func SampleCSV() ([]byte, error) {
	var buf bytes.Buffer
	if err := Sample().Frame().WriteCSV(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
