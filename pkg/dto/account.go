package dto

import (
	"time"

	"github.com/google/uuid"
)

// AccountRead is a read-optimized snapshot of an account for API responses.
type AccountRead struct {
	ID                uuid.UUID  `json:"id"`
	Number            string     `json:"account_number"`
	UserID            uuid.UUID  `json:"user_id"`
	Balance           float64    `json:"balance"`
	Currency          string     `json:"currency"`
	Active            bool       `json:"active"`
	CreatedAt         time.Time  `json:"created_at"`
	LastTransactionAt *time.Time `json:"last_transaction_at,omitempty"`
}

// AccountSummary is an account snapshot together with its most recent
// ledger entries.
type AccountSummary struct {
	Account            AccountRead       `json:"account"`
	RecentTransactions []TransactionRead `json:"recent_transactions"`
}
