package account

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/apnapan/pulse/core"
)

// User-visible errors. The messages are part of the product contract and are
// rendered to the user verbatim.
var (
	ErrNotFound        = errors.New("School ID not found.")
	ErrSchoolIDExists  = errors.New("School ID already exists.")
	ErrInvalidPassword = errors.New("Invalid password.")
	ErrEmailMismatch   = errors.New("The email address provided does not match our records for this School ID.")
)

type (
	// Repository abstracts the remote accounts table. Implementations return
	// ErrNotFound for missing records and a *core.ConnectivityError when the
	// store cannot be reached; no other failure modes exist. Every call is a
	// best-effort single attempt.
	Repository interface {
		GetAccount(schoolID string) (Account, error)
		CreateAccount(acct Account) error
		UpdatePasswordHash(schoolID, hash string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new school account. Identifier uniqueness is enforced by
// a pre-insert existence check, not by a store constraint; a race between two
// concurrent registrations is accepted at the expected usage scale.
func (svc *Service) Register(na NewAccount) (Account, error) {
	_, err := svc.repo.GetAccount(na.SchoolID)
	switch {
	case err == nil:
		return Account{}, core.NewValidationError(ErrSchoolIDExists, core.FieldError{Field: "school_id", Error: ErrSchoolIDExists.Error()})
	case errors.Is(err, ErrNotFound):
		// free to proceed
	default:
		return Account{}, err
	}

	salt, err := generateSalt()
	if err != nil {
		return Account{}, err
	}
	acct := Account{
		SchoolID:  na.SchoolID,
		Salt:      salt,
		Email:     na.Email,
		CreatedAt: time.Now().UTC(),
	}
	acct.SetPassword(na.Password)

	if err := svc.repo.CreateAccount(acct); err != nil {
		return Account{}, err
	}
	return acct, nil
}

// Authenticate validates login credentials. The stored hash is never modified
// on a failed attempt.
func (svc *Service) Authenticate(schoolID, pwd string) (Account, error) {
	acct, err := svc.repo.GetAccount(core.CleanString(schoolID))
	if err != nil {
		return Account{}, err
	}
	if err := acct.CheckPassword(pwd); err != nil {
		return Account{}, err
	}
	return acct, nil
}

// VerifyReset checks that the school ID and registered email match a record.
// The email comparison is case-insensitive and ignores surrounding whitespace.
func (svc *Service) VerifyReset(schoolID, email string) (Account, error) {
	acct, err := svc.repo.GetAccount(core.CleanString(schoolID))
	if err != nil {
		return Account{}, err
	}
	if core.CleanString(email, true /* lower */) != core.CleanString(acct.Email, true /* lower */) {
		return Account{}, ErrEmailMismatch
	}
	return acct, nil
}

// SetNewPassword re-hashes with the existing stored salt for the account;
// salts are unique per account and never reused across accounts, but a reset
// does not rotate them.
func (svc *Service) SetNewPassword(schoolID, pwd string) (Account, error) {
	acct, err := svc.repo.GetAccount(core.CleanString(schoolID))
	if err != nil {
		return Account{}, err
	}
	acct.SetPassword(pwd)
	if err := svc.repo.UpdatePasswordHash(acct.SchoolID, acct.PasswordHash); err != nil {
		return Account{}, err
	}
	return acct, nil
}

func generateSalt() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
