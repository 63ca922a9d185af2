package repository

import (
	"github.com/cdacbank/onlinebanking/pkg/domain/account"
	"github.com/cdacbank/onlinebanking/pkg/domain/beneficiary"
	"github.com/cdacbank/onlinebanking/pkg/domain/contact"
	"github.com/cdacbank/onlinebanking/pkg/domain/user"
	"github.com/google/uuid"
)

// AccountRepository is the persistence boundary for accounts. It performs no
// business validation; every balance mutation flows through Update inside a
// unit of work.
type AccountRepository interface {
	Get(id uuid.UUID) (*account.Account, error)
	// GetForUpdate loads the account row under an exclusive row lock held for
	// the remainder of the enclosing unit of work, serializing concurrent
	// balance-affecting operations on the same account.
	GetForUpdate(id uuid.UUID) (*account.Account, error)
	GetByNumber(number string) (*account.Account, error)
	GetByNumberForUpdate(number string) (*account.Account, error)
	ListForUser(userID uuid.UUID) ([]*account.Account, error)
	Create(a *account.Account) error
	Update(a *account.Account) error
}

// TransactionRepository is the append-only ledger. Entries are immutable
// after Create; there is no update or delete contract.
type TransactionRepository interface {
	Create(tx *account.Transaction) error
	// ListForAccount returns entries touching the account, newest first.
	ListForAccount(accountID uuid.UUID) ([]*account.Transaction, error)
	// ListRecent returns at most limit entries for the account, newest first.
	ListRecent(accountID uuid.UUID, limit int) ([]*account.Transaction, error)
	ListForUser(userID uuid.UUID) ([]*account.Transaction, error)
}

// BeneficiaryRepository persists saved payees.
type BeneficiaryRepository interface {
	Create(b *beneficiary.Beneficiary) error
	ListForUser(userID uuid.UUID) ([]*beneficiary.Beneficiary, error)
	FindByOwnerAndNumber(userID uuid.UUID, accountNumber string) (*beneficiary.Beneficiary, error)
	// DeleteForUser removes the beneficiary only when it belongs to userID;
	// a foreign id is a silent no-op.
	DeleteForUser(id, userID uuid.UUID) error
}

// UserRepository persists users.
type UserRepository interface {
	Get(id uuid.UUID) (*user.User, error)
	GetByEmail(email string) (*user.User, error)
	List() ([]*user.User, error)
	Create(u *user.User) error
	Update(u *user.User) error
}

// ContactRepository persists contact-form messages.
type ContactRepository interface {
	Create(c *contact.Contact) error
	List() ([]*contact.Contact, error)
}

// SequenceRepository hands out monotonically increasing values for the
// account-number allocator, atomically within the enclosing unit of work.
type SequenceRepository interface {
	Next(name string) (int64, error)
}
