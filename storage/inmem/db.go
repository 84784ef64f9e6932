// Package inmemdb provides in-memory implementations of the remote-store
// repositories for tests and local development.
package inmemdb

import (
	"sync"

	"github.com/apnapan/pulse/core/account"
	"github.com/apnapan/pulse/core/feedback"
)

type DB struct {
	mutex    sync.RWMutex
	accounts map[string]*account.Account
	feedback []feedback.Entry
}

func Open() (*DB, error) {
	return &DB{accounts: make(map[string]*account.Account)}, nil
}
