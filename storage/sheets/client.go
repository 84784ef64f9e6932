// Package sheetsdb implements the remote-store repositories on top of the
// Google Sheets API. Accounts and feedback each live in one spreadsheet,
// accessed through simple, independent read/append calls — there is no
// transactional guarantee across calls, which is accepted at the expected
// usage scale.
package sheetsdb

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/apnapan/pulse/core"
)

const timestampLayout = "2006-01-02 15:04:05"

type DB struct {
	svc *sheets.Service
}

// Open authorizes a Sheets client with the configured service-account
// credentials file.
func Open(ctx context.Context, conf *core.Config) (*DB, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(conf.Sheets.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, "authorizing sheets client")
	}
	return &DB{svc: svc}, nil
}

func (db *DB) readRows(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error) {
	resp, err := db.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, core.NewConnectivityError(err, "reading rows")
	}
	return resp.Values, nil
}

func (db *DB) appendRow(ctx context.Context, spreadsheetID, writeRange string, row []interface{}) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := db.svc.Spreadsheets.Values.Append(spreadsheetID, writeRange, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return core.NewConnectivityError(err, "appending row")
	}
	return nil
}

func (db *DB) updateCell(ctx context.Context, spreadsheetID, cellRange string, value interface{}) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{{value}}}
	_, err := db.svc.Spreadsheets.Values.Update(spreadsheetID, cellRange, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return core.NewConnectivityError(err, "updating cell")
	}
	return nil
}

func cellString(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	if s, ok := row[idx].(string); ok {
		return s
	}
	return ""
}
