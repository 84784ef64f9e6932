package account

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/apnapan/pulse/core"
)

// Account is a school account as stored in the remote accounts table.
// The positional order of the fields mirrors the table's columns:
// school ID, password hash, salt, email, creation timestamp.
type Account struct {
	SchoolID     string    `json:"school_id"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"` // UTC
}

// SetPassword hashes pwd as hex(SHA-256(salt || password)) using the account's
// current salt. The salt must already be set; it is generated once at account
// creation and is never rotated, even on password reset.
func (a *Account) SetPassword(pwd string) {
	sum := sha256.Sum256([]byte(a.Salt + pwd))
	a.PasswordHash = hex.EncodeToString(sum[:])
}

func (a *Account) CheckPassword(pwd string) error {
	sum := sha256.Sum256([]byte(a.Salt + pwd))
	if subtle.ConstantTimeCompare([]byte(hex.EncodeToString(sum[:])), []byte(a.PasswordHash)) != 1 {
		return ErrInvalidPassword
	}
	return nil
}

// NewAccount contains information needed to register a new Account.
type NewAccount struct {
	SchoolID        string `json:"school_id" validate:"required,alphanum_"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	Email           string `json:"email" validate:"required,email"`
}

func (na *NewAccount) Validate() error {
	na.SchoolID = core.CleanString(na.SchoolID)
	na.Email = core.CleanString(na.Email, true /* lower */)
	return core.Validate.Struct(na)
}

// ResetRequest is step 1 of the password-reset flow: the school ID and the
// registered email must match an existing record.
type ResetRequest struct {
	SchoolID string `json:"school_id" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

func (rr *ResetRequest) Validate() error {
	rr.SchoolID = core.CleanString(rr.SchoolID)
	rr.Email = core.CleanString(rr.Email, true /* lower */)
	return core.Validate.Struct(rr)
}

// ResetConfirm is step 2: setting the new password for a verified school ID.
type ResetConfirm struct {
	SchoolID        string `json:"school_id" validate:"required"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (rc *ResetConfirm) Validate() error {
	rc.SchoolID = core.CleanString(rc.SchoolID)
	return core.Validate.Struct(rc)
}
