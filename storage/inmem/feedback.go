package inmemdb

import "github.com/apnapan/pulse/core/feedback"

type feedbackRepository struct {
	db *DB
}

func NewFeedbackRepository(db *DB) feedback.Repository {
	return &feedbackRepository{db: db}
}

func (repo *feedbackRepository) AppendEntry(entry feedback.Entry) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.feedback = append(repo.db.feedback, entry)
	return nil
}

// Entries returns a snapshot of the appended feedback, for tests.
func (repo *feedbackRepository) Entries() []feedback.Entry {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	entries := make([]feedback.Entry, len(repo.db.feedback))
	copy(entries, repo.db.feedback)
	return entries
}
