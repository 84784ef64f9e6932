// Package ingest parses uploaded survey files into datasets. Comma-delimited
// text and Excel workbooks are supported; timestamp-like columns are dropped
// unconditionally before the dataset reaches the pipeline.
package ingest

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/apnapan/pulse/core/survey"
)

// User-visible ingestion errors. A failed upload halts processing for that
// file; no partial dataset is retained.
var (
	ErrUnsupportedFormat = errors.New("Unsupported file format. Please upload a CSV, TXT, XLS, or XLSX file.")
	ErrEmptyFile         = errors.New("The uploaded file contains no data rows.")
)

// ReadFile parses the upload named filename from r. It returns the dataset
// and the list of timestamp columns that were removed.
func ReadFile(filename string, r io.Reader) (*survey.Dataset, []string, error) {
	var ds *survey.Dataset
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		ds, err = readCSV(r)
	case ".xlsx", ".xls":
		ds, err = readExcel(r)
	default:
		return nil, nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, nil, err
	}
	if ds.NumRows() == 0 {
		return nil, nil, ErrEmptyFile
	}

	dropped := survey.TimestampColumns(ds.Columns())
	if len(dropped) > 0 {
		ds.DropColumns(dropped...)
	}
	return ds, dropped, nil
}

func readCSV(r io.Reader) (*survey.Dataset, error) {
	df := dataframe.ReadCSV(r)
	if df.Error() != nil {
		return nil, errors.Wrap(df.Error(), "parsing delimited file")
	}
	return survey.NewDataset(df), nil
}

func readExcel(r io.Reader) (*survey.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "opening workbook")
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "reading workbook rows")
	}
	if len(rows) < 2 {
		return nil, ErrEmptyFile
	}

	// Trailing empty cells are omitted by the reader; pad every row to the
	// header width so the dataframe loads cleanly.
	width := len(rows[0])
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row[:width]
	}

	df := dataframe.LoadRecords(rows)
	if df.Error() != nil {
		return nil, errors.Wrap(df.Error(), "loading workbook records")
	}
	return survey.NewDataset(df), nil
}
