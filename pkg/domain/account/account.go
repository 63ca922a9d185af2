package account

import (
	"errors"
	"time"

	"github.com/cdacbank/onlinebanking/pkg/currency"
	"github.com/cdacbank/onlinebanking/pkg/money"
	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountInactive is returned when an operation targets a deactivated account.
	ErrAccountInactive = errors.New("account is deactivated")

	// ErrInvalidAmount is returned when a transaction amount is not positive.
	ErrInvalidAmount = errors.New("transaction amount must be positive")

	// ErrInsufficientFunds is returned when an account has insufficient funds
	// for a withdrawal or transfer.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSameAccountTransfer is returned when a transfer is attempted from an
	// account to itself.
	ErrSameAccountTransfer = errors.New("cannot transfer to the same account")

	// ErrCurrencyMismatch is returned when there is a currency mismatch between
	// accounts or transactions.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrAccountHasBalance is returned when closing or deleting would strand funds.
	ErrAccountHasBalance = errors.New("account still holds a balance")
)

// Account represents a monetary balance holder, addressable by an internal
// id and an external account number.
//
// Invariants:
//   - An account must always have a valid owner (UserID) and a non-empty number.
//   - The balance is a Money value object and can never go negative.
//   - The balance is mutated only through Credit and Debit, which callers
//     persist inside a single unit of work together with the ledger entry.
type Account struct {
	ID                uuid.UUID
	Number            string
	UserID            uuid.UUID
	Balance           money.Money
	Active            bool
	CreatedAt         time.Time
	LastTransactionAt *time.Time
}

// Builder provides a fluent API for constructing Account instances, so that
// only valid accounts are ever handed out.
type Builder struct {
	id        uuid.UUID
	number    string
	userID    uuid.UUID
	balance   int64
	currency  currency.Code
	active    bool
	createdAt time.Time
	lastTxAt  *time.Time
}

// New creates a Builder with sensible defaults: a fresh UUID, the default
// currency, an active flag, and a zero balance.
func New() *Builder {
	return &Builder{
		id:        uuid.New(),
		currency:  currency.DefaultCurrency,
		active:    true,
		createdAt: time.Now().UTC(),
	}
}

// WithID sets the ID for the account being built.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithNumber sets the external account number. Mandatory.
func (b *Builder) WithNumber(number string) *Builder {
	b.number = number
	return b
}

// WithUserID sets the owning user. Mandatory.
func (b *Builder) WithUserID(userID uuid.UUID) *Builder {
	b.userID = userID
	return b
}

// WithCurrency sets the account currency. Defaults to the system currency.
func (b *Builder) WithCurrency(code currency.Code) *Builder {
	b.currency = code
	return b
}

// WithBalance sets the balance in the smallest currency unit. Intended for
// hydration from a data store and for test setup.
func (b *Builder) WithBalance(balance int64) *Builder {
	b.balance = balance
	return b
}

// WithActive sets the active flag. Accounts are active unless deactivated.
func (b *Builder) WithActive(active bool) *Builder {
	b.active = active
	return b
}

// WithCreatedAt sets the creation timestamp, for hydration.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// WithLastTransactionAt sets the last-transaction timestamp, for hydration.
func (b *Builder) WithLastTransactionAt(t *time.Time) *Builder {
	b.lastTxAt = t
	return b
}

// Build validates all invariants and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if !currency.IsValidCurrencyFormat(string(b.currency)) {
		return nil, money.ErrInvalidCurrency
	}
	if !currency.IsSupported(b.currency) {
		return nil, money.ErrInvalidCurrency
	}
	if b.userID == uuid.Nil {
		return nil, errors.New("userID is required")
	}
	if b.number == "" {
		return nil, errors.New("account number is required")
	}
	if b.balance < 0 {
		return nil, ErrInsufficientFunds
	}
	bal, err := money.NewFromSmallestUnit(b.balance, b.currency)
	if err != nil {
		return nil, err
	}
	return &Account{
		ID:                b.id,
		Number:            b.number,
		UserID:            b.userID,
		Balance:           bal,
		Active:            b.active,
		CreatedAt:         b.createdAt,
		LastTransactionAt: b.lastTxAt,
	}, nil
}

// Currency returns the account's currency code.
func (a *Account) Currency() currency.Code {
	return a.Balance.Currency()
}

// validateAmount checks the shared amount invariant for all operations.
func (a *Account) validateAmount(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !a.Balance.IsSameCurrency(amount) {
		return ErrCurrencyMismatch
	}
	return nil
}

// ValidateCredit checks all invariants for crediting the account.
func (a *Account) ValidateCredit(amount money.Money) error {
	if !a.Active {
		return ErrAccountInactive
	}
	return a.validateAmount(amount)
}

// ValidateDebit checks all invariants for debiting the account, including
// the sufficient-funds rule.
func (a *Account) ValidateDebit(amount money.Money) error {
	if !a.Active {
		return ErrAccountInactive
	}
	if err := a.validateAmount(amount); err != nil {
		return err
	}
	less, err := a.Balance.LessThan(amount)
	if err != nil {
		return err
	}
	if less {
		return ErrInsufficientFunds
	}
	return nil
}

// Credit adds amount to the balance and stamps the last-transaction time.
// It runs the same checks as ValidateCredit before mutating anything.
func (a *Account) Credit(amount money.Money, now time.Time) error {
	if err := a.ValidateCredit(amount); err != nil {
		return err
	}
	newBalance, err := a.Balance.Add(amount)
	if err != nil {
		return err
	}
	a.Balance = newBalance
	a.LastTransactionAt = &now
	return nil
}

// Debit removes amount from the balance and stamps the last-transaction time.
func (a *Account) Debit(amount money.Money, now time.Time) error {
	if err := a.ValidateDebit(amount); err != nil {
		return err
	}
	newBalance, err := a.Balance.Subtract(amount)
	if err != nil {
		return err
	}
	a.Balance = newBalance
	a.LastTransactionAt = &now
	return nil
}

// Deactivate marks the account inactive. Accounts are never physically
// deleted; deactivation is the terminal lifecycle state.
func (a *Account) Deactivate() {
	a.Active = false
}
