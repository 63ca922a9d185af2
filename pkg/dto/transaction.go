package dto

import (
	"time"

	"github.com/google/uuid"
)

// TransactionRead is a fixed-shape snapshot of one ledger entry. From/To
// carry external account numbers, not internal ids.
type TransactionRead struct {
	ID                uuid.UUID `json:"id"`
	Amount            float64   `json:"amount"`
	Currency          string    `json:"currency"`
	Kind              string    `json:"kind"`
	Status            string    `json:"status"`
	Description       string    `json:"description,omitempty"`
	FromAccountNumber string    `json:"from_account_number,omitempty"`
	ToAccountNumber   string    `json:"to_account_number,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
