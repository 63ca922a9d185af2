package repository

import (
	"context"

	"github.com/cdacbank/onlinebanking/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// All repositories handed out inside Do share the same *gorm.DB transaction
// session, which is what makes balance updates and ledger appends atomic.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a UoW over the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn in a database transaction, providing a UnitOfWork whose
// repositories are bound to that transaction. fn returning an error rolls
// everything back.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// session returns the transaction when inside Do, the bare connection otherwise.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// AccountRepository returns an account repository bound to the current session.
func (u *UoW) AccountRepository() repository.AccountRepository {
	return NewAccountRepository(u.session())
}

// TransactionRepository returns a ledger repository bound to the current session.
func (u *UoW) TransactionRepository() repository.TransactionRepository {
	return NewTransactionRepository(u.session())
}

// BeneficiaryRepository returns a beneficiary repository bound to the current session.
func (u *UoW) BeneficiaryRepository() repository.BeneficiaryRepository {
	return NewBeneficiaryRepository(u.session())
}

// UserRepository returns a user repository bound to the current session.
func (u *UoW) UserRepository() repository.UserRepository {
	return NewUserRepository(u.session())
}

// ContactRepository returns a contact repository bound to the current session.
func (u *UoW) ContactRepository() repository.ContactRepository {
	return NewContactRepository(u.session())
}

// SequenceRepository returns a sequence repository bound to the current session.
func (u *UoW) SequenceRepository() repository.SequenceRepository {
	return NewSequenceRepository(u.session())
}
