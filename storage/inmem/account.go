package inmemdb

import "github.com/apnapan/pulse/core/account"

type accountRepository struct {
	db *DB
}

func NewAccountRepository(db *DB) account.Repository {
	return &accountRepository{db: db}
}

func (repo *accountRepository) GetAccount(schoolID string) (account.Account, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if acct, ok := repo.db.accounts[schoolID]; ok {
		return *acct, nil
	}
	return account.Account{}, account.ErrNotFound
}

func (repo *accountRepository) CreateAccount(acct account.Account) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.accounts[acct.SchoolID] = &acct
	return nil
}

func (repo *accountRepository) UpdatePasswordHash(schoolID, hash string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	acct, ok := repo.db.accounts[schoolID]
	if !ok {
		return account.ErrNotFound
	}
	acct.PasswordHash = hash
	return nil
}
