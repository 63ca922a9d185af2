package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a user record in the database.
type User struct {
	gorm.Model
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	FullName    string    `gorm:"not null;size:100"`
	Email       string    `gorm:"uniqueIndex;not null;size:150"`
	Password    string    `gorm:"not null;size:255"`
	Role        string    `gorm:"not null;size:20;default:'Customer'"`
	Active      bool      `gorm:"not null;default:true"`
	LastLoginAt *time.Time
}

// Account represents an account record in the database. Rows are never
// deleted; closed accounts are deactivated.
type Account struct {
	gorm.Model
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	Number            string    `gorm:"uniqueIndex;not null;size:20"`
	UserID            uuid.UUID `gorm:"type:uuid;index;not null"`
	Balance           int64     `gorm:"not null;default:0"`
	Currency          string    `gorm:"type:varchar(3);not null;default:'USD'"`
	Active            bool      `gorm:"not null;default:true"`
	LastTransactionAt *time.Time
}

// Transaction represents one row of the append-only ledger.
type Transaction struct {
	gorm.Model
	ID            uuid.UUID  `gorm:"type:uuid;primary_key"`
	FromAccountID *uuid.UUID `gorm:"type:uuid;index"`
	ToAccountID   *uuid.UUID `gorm:"type:uuid;index"`
	Amount        int64      `gorm:"not null"`
	Currency      string     `gorm:"type:varchar(3);not null;default:'USD'"`
	Kind          string     `gorm:"type:varchar(20);not null"`
	Status        string     `gorm:"type:varchar(20);not null;default:'Completed'"`
	Description   string
}

// Beneficiary represents a saved payee. The (UserID, AccountNumber) pair is
// unique per the unique_user_account index.
type Beneficiary struct {
	gorm.Model
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex:unique_user_account;not null"`
	Name          string    `gorm:"not null;size:100"`
	AccountNumber string    `gorm:"uniqueIndex:unique_user_account;not null;size:20"`
}

// Contact represents a contact-form message.
type Contact struct {
	gorm.Model
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Name    string    `gorm:"not null;size:100"`
	Email   string    `gorm:"not null;size:150"`
	Phone   string    `gorm:"size:30"`
	Subject string    `gorm:"size:200"`
	Message string    `gorm:"type:text"`
}

// Sequence backs the account-number allocator with a named monotonic counter.
type Sequence struct {
	Name  string `gorm:"primary_key;size:50"`
	Value int64  `gorm:"not null"`
}

// AllModels lists every model for migration.
func AllModels() []any {
	return []any{&User{}, &Account{}, &Transaction{}, &Beneficiary{}, &Contact{}, &Sequence{}}
}
