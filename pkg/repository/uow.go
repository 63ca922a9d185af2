package repository

import "context"

// UnitOfWork is the transaction boundary for all repository access.
//
// Do runs fn inside one atomic commit; every repository obtained from the
// UnitOfWork passed to fn is bound to the same database session, so balance
// mutations and their ledger appends either land together or not at all. If
// fn returns an error the transaction is rolled back and no partial state is
// visible to subsequent reads.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	AccountRepository() AccountRepository
	TransactionRepository() TransactionRepository
	BeneficiaryRepository() BeneficiaryRepository
	UserRepository() UserRepository
	ContactRepository() ContactRepository
	SequenceRepository() SequenceRepository
}
