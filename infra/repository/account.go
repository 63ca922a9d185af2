package repository

import (
	"errors"
	"time"

	"github.com/cdacbank/onlinebanking/pkg/currency"
	"github.com/cdacbank/onlinebanking/pkg/domain/account"
	"github.com/cdacbank/onlinebanking/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a GORM-backed account repository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Get(id uuid.UUID) (*account.Account, error) {
	return r.first(r.db, "id = ?", id)
}

func (r *accountRepository) GetForUpdate(id uuid.UUID) (*account.Account, error) {
	return r.first(forUpdate(r.db), "id = ?", id)
}

func (r *accountRepository) GetByNumber(number string) (*account.Account, error) {
	return r.first(r.db, "number = ?", number)
}

func (r *accountRepository) GetByNumberForUpdate(number string) (*account.Account, error) {
	return r.first(forUpdate(r.db), "number = ?", number)
}

// forUpdate adds a row lock on dialects that support it. SQLite has no
// SELECT FOR UPDATE; its single-writer transactions give the same guarantee.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *accountRepository) first(db *gorm.DB, query string, arg any) (*account.Account, error) {
	var m Account
	result := db.Where(query, arg).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, account.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return toDomainAccount(&m)
}

func (r *accountRepository) ListForUser(userID uuid.UUID) ([]*account.Account, error) {
	var models []Account
	if err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}
	accounts := make([]*account.Account, 0, len(models))
	for i := range models {
		a, err := toDomainAccount(&models[i])
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

func (r *accountRepository) Create(a *account.Account) error {
	m := Account{
		Model:             gorm.Model{CreatedAt: a.CreatedAt, UpdatedAt: a.CreatedAt},
		ID:                a.ID,
		Number:            a.Number,
		UserID:            a.UserID,
		Balance:           a.Balance.Amount(),
		Currency:          string(a.Currency()),
		Active:            a.Active,
		LastTransactionAt: a.LastTransactionAt,
	}
	return r.db.Create(&m).Error
}

func (r *accountRepository) Update(a *account.Account) error {
	m := Account{
		Model:             gorm.Model{CreatedAt: a.CreatedAt, UpdatedAt: time.Now().UTC()},
		ID:                a.ID,
		Number:            a.Number,
		UserID:            a.UserID,
		Balance:           a.Balance.Amount(),
		Currency:          string(a.Currency()),
		Active:            a.Active,
		LastTransactionAt: a.LastTransactionAt,
	}
	return r.db.Save(&m).Error
}

func toDomainAccount(m *Account) (*account.Account, error) {
	return account.New().
		WithID(m.ID).
		WithNumber(m.Number).
		WithUserID(m.UserID).
		WithCurrency(currency.Code(m.Currency)).
		WithBalance(m.Balance).
		WithActive(m.Active).
		WithCreatedAt(m.CreatedAt).
		WithLastTransactionAt(m.LastTransactionAt).
		Build()
}
