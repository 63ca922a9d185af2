package repository

import (
	"github.com/cdacbank/onlinebanking/pkg/currency"
	"github.com/cdacbank/onlinebanking/pkg/domain/account"
	"github.com/cdacbank/onlinebanking/pkg/money"
	"github.com/cdacbank/onlinebanking/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a GORM-backed ledger repository. The
// ledger is append-only; this type intentionally exposes no update or
// delete operations.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(tx *account.Transaction) error {
	m := Transaction{
		Model:         gorm.Model{CreatedAt: tx.CreatedAt, UpdatedAt: tx.CreatedAt},
		ID:            tx.ID,
		FromAccountID: tx.FromAccountID,
		ToAccountID:   tx.ToAccountID,
		Amount:        tx.Amount.Amount(),
		Currency:      string(tx.Amount.Currency()),
		Kind:          string(tx.Kind),
		Status:        string(tx.Status),
		Description:   tx.Description,
	}
	return r.db.Create(&m).Error
}

func (r *transactionRepository) ListForAccount(accountID uuid.UUID) ([]*account.Transaction, error) {
	return r.list(r.db.Where("from_account_id = ? OR to_account_id = ?", accountID, accountID))
}

func (r *transactionRepository) ListRecent(accountID uuid.UUID, limit int) ([]*account.Transaction, error) {
	return r.list(r.db.
		Where("from_account_id = ? OR to_account_id = ?", accountID, accountID).
		Limit(limit))
}

func (r *transactionRepository) ListForUser(userID uuid.UUID) ([]*account.Transaction, error) {
	sub := r.db.Model(&Account{}).Select("id").Where("user_id = ?", userID)
	return r.list(r.db.Where("from_account_id IN (?) OR to_account_id IN (?)", sub, sub))
}

func (r *transactionRepository) list(db *gorm.DB) ([]*account.Transaction, error) {
	var models []Transaction
	if err := db.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	txs := make([]*account.Transaction, 0, len(models))
	for i := range models {
		tx, err := toDomainTransaction(&models[i])
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func toDomainTransaction(m *Transaction) (*account.Transaction, error) {
	amount, err := money.NewFromSmallestUnit(m.Amount, currency.Code(m.Currency))
	if err != nil {
		return nil, err
	}
	return account.NewTransactionFromData(
		m.ID,
		m.FromAccountID,
		m.ToAccountID,
		amount,
		account.Kind(m.Kind),
		account.Status(m.Status),
		m.Description,
		m.CreatedAt,
	), nil
}
