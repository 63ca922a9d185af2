package beneficiary

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNameMismatch is returned when the supplied beneficiary name does not
	// match the account holder's registered full name.
	ErrNameMismatch = errors.New("beneficiary name does not match account holder's name")

	// ErrDuplicateBeneficiary is returned when the (user, account number) pair
	// already exists.
	ErrDuplicateBeneficiary = errors.New("this beneficiary is already added")

	// ErrBeneficiaryNotFound is returned when a beneficiary cannot be found.
	ErrBeneficiaryNotFound = errors.New("beneficiary not found")
)

// Beneficiary is a saved, trusted destination account a user may transfer to.
// The (UserID, AccountNumber) pair is unique.
type Beneficiary struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	AccountNumber string
	CreatedAt     time.Time
}

// New creates a Beneficiary for the given owner, trimming the display name.
func New(userID uuid.UUID, name, accountNumber string) *Beneficiary {
	return &Beneficiary{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          strings.TrimSpace(name),
		AccountNumber: accountNumber,
		CreatedAt:     time.Now().UTC(),
	}
}

// NameMatches reports whether the entered name equals the account holder's
// registered name, compared case-insensitively on trimmed values. This is
// the add-time identity check for a payee.
func NameMatches(registered, entered string) bool {
	return strings.EqualFold(strings.TrimSpace(registered), strings.TrimSpace(entered))
}
