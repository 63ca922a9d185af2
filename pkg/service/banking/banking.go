// Package banking implements the money-movement core: deposits, withdrawals,
// and transfers over the account store and the append-only ledger.
//
// Every operation runs as one unit of work. Account rows are locked for the
// read-modify-write, which serializes concurrent balance-affecting operations
// per account; the balance mutation(s) and the single ledger append commit
// together or not at all.
package banking

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cdacbank/onlinebanking/pkg/domain/account"
	"github.com/cdacbank/onlinebanking/pkg/domain/beneficiary"
	"github.com/cdacbank/onlinebanking/pkg/domain/common"
	"github.com/cdacbank/onlinebanking/pkg/domain/user"
	"github.com/cdacbank/onlinebanking/pkg/dto"
	"github.com/cdacbank/onlinebanking/pkg/mapper"
	"github.com/cdacbank/onlinebanking/pkg/money"
	"github.com/cdacbank/onlinebanking/pkg/repository"
	"github.com/google/uuid"
)

// Service exposes deposit, withdraw, and transfer as atomic use-cases.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a banking Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Deposit adds funds to the account and appends one ledger entry, returning
// the updated account snapshot.
func (s *Service) Deposit(
	ctx context.Context,
	accountID uuid.UUID,
	amount float64,
	description string,
) (*dto.AccountRead, error) {
	logger := s.logger.With("op", "deposit", "accountID", accountID, "amount", amount)

	var snapshot dto.AccountRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		acc, err := uow.AccountRepository().GetForUpdate(accountID)
		if err != nil {
			return err
		}
		m, err := money.New(amount, acc.Currency())
		if err != nil {
			return fmt.Errorf("%w: %v", account.ErrInvalidAmount, err)
		}
		now := time.Now().UTC()
		if err := acc.Credit(m, now); err != nil {
			return err
		}
		if err := uow.AccountRepository().Update(acc); err != nil {
			return err
		}
		if err := uow.TransactionRepository().Create(
			account.NewDeposit(acc.ID, m, description, now),
		); err != nil {
			return err
		}
		snapshot = mapper.ToAccountRead(acc)
		return nil
	})
	if err != nil {
		logger.Error("Deposit failed", "error", err)
		return nil, wrapStorage(err)
	}
	logger.Info("Deposit successful", "balance", snapshot.Balance)
	return &snapshot, nil
}

// Withdraw removes funds from the account and appends one ledger entry,
// returning the updated account snapshot.
func (s *Service) Withdraw(
	ctx context.Context,
	accountID uuid.UUID,
	amount float64,
	description string,
) (*dto.AccountRead, error) {
	logger := s.logger.With("op", "withdraw", "accountID", accountID, "amount", amount)

	var snapshot dto.AccountRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		acc, err := uow.AccountRepository().GetForUpdate(accountID)
		if err != nil {
			return err
		}
		m, err := money.New(amount, acc.Currency())
		if err != nil {
			return fmt.Errorf("%w: %v", account.ErrInvalidAmount, err)
		}
		now := time.Now().UTC()
		if err := acc.Debit(m, now); err != nil {
			return err
		}
		if err := uow.AccountRepository().Update(acc); err != nil {
			return err
		}
		if err := uow.TransactionRepository().Create(
			account.NewWithdrawal(acc.ID, m, description, now),
		); err != nil {
			return err
		}
		snapshot = mapper.ToAccountRead(acc)
		return nil
	})
	if err != nil {
		logger.Error("Withdraw failed", "error", err)
		return nil, wrapStorage(err)
	}
	logger.Info("Withdraw successful", "balance", snapshot.Balance)
	return &snapshot, nil
}

// Transfer moves funds from the source account to the account addressed by
// toAccountNumber. Both balance updates and the single ledger entry commit
// atomically; a partial transfer is never visible.
//
// Validation order is fixed so error messages are deterministic: source not
// found, source inactive, insufficient funds, destination not found,
// destination inactive, same-account transfer. The amount itself is checked
// before any funds comparison.
func (s *Service) Transfer(
	ctx context.Context,
	fromAccountID uuid.UUID,
	toAccountNumber string,
	amount float64,
	description string,
) (*dto.TransactionRead, error) {
	logger := s.logger.With(
		"op", "transfer",
		"fromAccountID", fromAccountID,
		"toAccountNumber", toAccountNumber,
		"amount", amount,
	)

	var snapshot dto.TransactionRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts := uow.AccountRepository()

		// Resolve the destination id first so both rows can be locked in
		// ascending id order; a missing destination is reported only after
		// the source checks, per the validation order above.
		dest, destErr := accounts.GetByNumber(toAccountNumber)
		if destErr != nil && !errors.Is(destErr, account.ErrAccountNotFound) {
			return destErr
		}

		var src *account.Account
		var err error
		if dest != nil && lockBefore(dest.ID, fromAccountID) {
			if dest, err = accounts.GetByNumberForUpdate(toAccountNumber); err != nil {
				return err
			}
			src, err = accounts.GetForUpdate(fromAccountID)
		} else {
			if src, err = accounts.GetForUpdate(fromAccountID); err != nil {
				return err
			}
			if dest != nil {
				dest, err = accounts.GetByNumberForUpdate(toAccountNumber)
			}
		}
		if err != nil {
			return err
		}

		if !src.Active {
			return account.ErrAccountInactive
		}
		m, err := money.New(amount, src.Currency())
		if err != nil {
			return fmt.Errorf("%w: %v", account.ErrInvalidAmount, err)
		}
		if err := src.ValidateDebit(m); err != nil {
			return err
		}
		if dest == nil {
			return destErr
		}
		if !dest.Active {
			return account.ErrAccountInactive
		}
		if src.ID == dest.ID {
			return account.ErrSameAccountTransfer
		}

		now := time.Now().UTC()
		if err := src.Debit(m, now); err != nil {
			return err
		}
		if err := dest.Credit(m, now); err != nil {
			return err
		}
		if err := accounts.Update(src); err != nil {
			return err
		}
		if err := accounts.Update(dest); err != nil {
			return err
		}
		tx := account.NewTransfer(src.ID, dest.ID, m, description, now)
		if err := uow.TransactionRepository().Create(tx); err != nil {
			return err
		}
		snapshot = mapper.ToTransactionRead(tx, src.Number, dest.Number)
		return nil
	})
	if err != nil {
		logger.Error("Transfer failed", "error", err)
		return nil, wrapStorage(err)
	}
	logger.Info("Transfer successful", "transactionID", snapshot.ID)
	return &snapshot, nil
}

// lockBefore fixes the global lock acquisition order between two accounts:
// ascending id, so two transfers moving money in opposite directions between
// the same pair never deadlock.
func lockBefore(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

// wrapStorage passes domain errors through untouched and wraps anything else
// as a storage failure, so callers can tell an invalid request from a system
// that could not complete a valid one.
func wrapStorage(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{
		account.ErrAccountNotFound,
		account.ErrAccountInactive,
		account.ErrInvalidAmount,
		account.ErrInsufficientFunds,
		account.ErrSameAccountTransfer,
		account.ErrCurrencyMismatch,
		account.ErrAccountHasBalance,
		beneficiary.ErrNameMismatch,
		beneficiary.ErrDuplicateBeneficiary,
		beneficiary.ErrBeneficiaryNotFound,
		user.ErrUserNotFound,
		money.ErrInvalidAmount,
		money.ErrInvalidCurrency,
		money.ErrAmountExceedsMaxSafeInt,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", common.ErrStorageFailure, err)
}
