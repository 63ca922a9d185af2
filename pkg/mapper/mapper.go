// Package mapper shapes domain objects into fixed wire DTOs.
package mapper

import (
	"github.com/cdacbank/onlinebanking/pkg/domain/account"
	"github.com/cdacbank/onlinebanking/pkg/domain/beneficiary"
	"github.com/cdacbank/onlinebanking/pkg/domain/contact"
	"github.com/cdacbank/onlinebanking/pkg/domain/user"
	"github.com/cdacbank/onlinebanking/pkg/dto"
)

// ToAccountRead maps an account to its API snapshot.
func ToAccountRead(a *account.Account) dto.AccountRead {
	return dto.AccountRead{
		ID:                a.ID,
		Number:            a.Number,
		UserID:            a.UserID,
		Balance:           a.Balance.AmountFloat(),
		Currency:          string(a.Currency()),
		Active:            a.Active,
		CreatedAt:         a.CreatedAt,
		LastTransactionAt: a.LastTransactionAt,
	}
}

// ToTransactionRead maps a ledger entry to its API snapshot. The from/to
// account numbers are resolved by the caller, which knows the accounts the
// entry references.
func ToTransactionRead(tx *account.Transaction, fromNumber, toNumber string) dto.TransactionRead {
	return dto.TransactionRead{
		ID:                tx.ID,
		Amount:            tx.Amount.AmountFloat(),
		Currency:          string(tx.Amount.Currency()),
		Kind:              string(tx.Kind),
		Status:            string(tx.Status),
		Description:       tx.Description,
		FromAccountNumber: fromNumber,
		ToAccountNumber:   toNumber,
		CreatedAt:         tx.CreatedAt,
	}
}

// ToUserRead maps a user to its API snapshot, omitting credentials.
func ToUserRead(u *user.User) dto.UserRead {
	return dto.UserRead{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		Role:        string(u.Role),
		Active:      u.Active,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

// ToBeneficiaryRead maps a saved payee to its API snapshot.
func ToBeneficiaryRead(b *beneficiary.Beneficiary) dto.BeneficiaryRead {
	return dto.BeneficiaryRead{
		ID:            b.ID,
		Name:          b.Name,
		AccountNumber: b.AccountNumber,
		CreatedAt:     b.CreatedAt,
	}
}

// ToContactRead maps a contact-form message to its API snapshot.
func ToContactRead(c *contact.Contact) dto.ContactRead {
	return dto.ContactRead{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}
