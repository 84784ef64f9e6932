package sheetsdb

import (
	"context"
	"fmt"
	"time"

	"github.com/apnapan/pulse/core/account"
)

// Account table columns, in positional order:
// A school ID, B password hash, C salt, D email, E creation timestamp.
const accountsRange = "A:E"

type accountRepository struct {
	db            *DB
	spreadsheetID string
}

func NewAccountRepository(db *DB, spreadsheetID string) account.Repository {
	return &accountRepository{db: db, spreadsheetID: spreadsheetID}
}

// findRow returns the account and its 1-based sheet row, or ErrNotFound.
func (repo *accountRepository) findRow(schoolID string) (account.Account, int, error) {
	rows, err := repo.db.readRows(context.Background(), repo.spreadsheetID, accountsRange)
	if err != nil {
		return account.Account{}, 0, err
	}
	for i, row := range rows {
		if cellString(row, 0) != schoolID {
			continue
		}
		acct := account.Account{
			SchoolID:     cellString(row, 0),
			PasswordHash: cellString(row, 1),
			Salt:         cellString(row, 2),
			Email:        cellString(row, 3),
		}
		if ts, err := time.Parse(timestampLayout, cellString(row, 4)); err == nil {
			acct.CreatedAt = ts
		}
		return acct, i + 1, nil
	}
	return account.Account{}, 0, account.ErrNotFound
}

func (repo *accountRepository) GetAccount(schoolID string) (account.Account, error) {
	acct, _, err := repo.findRow(schoolID)
	return acct, err
}

func (repo *accountRepository) CreateAccount(acct account.Account) error {
	row := []interface{}{
		acct.SchoolID,
		acct.PasswordHash,
		acct.Salt,
		acct.Email,
		acct.CreatedAt.Format(timestampLayout),
	}
	return repo.db.appendRow(context.Background(), repo.spreadsheetID, accountsRange, row)
}

func (repo *accountRepository) UpdatePasswordHash(schoolID, hash string) error {
	_, rowNum, err := repo.findRow(schoolID)
	if err != nil {
		return err
	}
	return repo.db.updateCell(context.Background(), repo.spreadsheetID, fmt.Sprintf("B%d", rowNum), hash)
}
