package sheetsdb

import (
	"context"

	"github.com/apnapan/pulse/core/feedback"
)

// Feedback table columns: A timestamp, B free text. Append-only.
const feedbackRange = "A:B"

type feedbackRepository struct {
	db            *DB
	spreadsheetID string
}

func NewFeedbackRepository(db *DB, spreadsheetID string) feedback.Repository {
	return &feedbackRepository{db: db, spreadsheetID: spreadsheetID}
}

func (repo *feedbackRepository) AppendEntry(entry feedback.Entry) error {
	row := []interface{}{
		entry.CreatedAt.Format(timestampLayout),
		entry.Text,
	}
	return repo.db.appendRow(context.Background(), repo.spreadsheetID, feedbackRange, row)
}
