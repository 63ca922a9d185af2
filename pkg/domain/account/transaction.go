package account

import (
	"time"

	"github.com/cdacbank/onlinebanking/pkg/money"
	"github.com/google/uuid"
)

// Kind classifies a ledger entry by the operation that produced it.
type Kind string

// Transaction kinds.
const (
	KindDeposit  Kind = "Deposit"
	KindWithdraw Kind = "Withdraw"
	KindTransfer Kind = "Transfer"
)

// Status is the lifecycle state of a ledger entry. All core operations
// resolve synchronously, so only Completed entries are ever produced;
// Pending and Failed exist for the wire taxonomy.
type Status string

// Transaction statuses.
const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusFailed    Status = "Failed"
)

// Transaction is one immutable entry in the append-only ledger. Exactly one
// of FromAccountID/ToAccountID is nil for deposits and withdrawals; both are
// set for transfers.
type Transaction struct {
	ID            uuid.UUID
	FromAccountID *uuid.UUID
	ToAccountID   *uuid.UUID
	Amount        money.Money
	Kind          Kind
	Status        Status
	Description   string
	CreatedAt     time.Time
}

// NewDeposit creates a completed deposit entry crediting toAccountID.
func NewDeposit(toAccountID uuid.UUID, amount money.Money, description string, now time.Time) *Transaction {
	if description == "" {
		description = "Deposit"
	}
	return &Transaction{
		ID:          uuid.New(),
		ToAccountID: &toAccountID,
		Amount:      amount,
		Kind:        KindDeposit,
		Status:      StatusCompleted,
		Description: description,
		CreatedAt:   now,
	}
}

// NewWithdrawal creates a completed withdrawal entry debiting fromAccountID.
func NewWithdrawal(fromAccountID uuid.UUID, amount money.Money, description string, now time.Time) *Transaction {
	if description == "" {
		description = "Withdrawal"
	}
	return &Transaction{
		ID:            uuid.New(),
		FromAccountID: &fromAccountID,
		Amount:        amount,
		Kind:          KindWithdraw,
		Status:        StatusCompleted,
		Description:   description,
		CreatedAt:     now,
	}
}

// NewTransfer creates a completed transfer entry moving amount between two
// distinct accounts.
func NewTransfer(fromAccountID, toAccountID uuid.UUID, amount money.Money, description string, now time.Time) *Transaction {
	if description == "" {
		description = "Transfer"
	}
	return &Transaction{
		ID:            uuid.New(),
		FromAccountID: &fromAccountID,
		ToAccountID:   &toAccountID,
		Amount:        amount,
		Kind:          KindTransfer,
		Status:        StatusCompleted,
		Description:   description,
		CreatedAt:     now,
	}
}

// NewTransactionFromData hydrates a Transaction from raw data. This bypasses
// invariants and should only be used by repositories and test fixtures.
func NewTransactionFromData(
	id uuid.UUID,
	from, to *uuid.UUID,
	amount money.Money,
	kind Kind,
	status Status,
	description string,
	created time.Time,
) *Transaction {
	return &Transaction{
		ID:            id,
		FromAccountID: from,
		ToAccountID:   to,
		Amount:        amount,
		Kind:          kind,
		Status:        status,
		Description:   description,
		CreatedAt:     created,
	}
}
