package banking

import (
	"context"

	"github.com/cdacbank/onlinebanking/pkg/domain/account"
	"github.com/cdacbank/onlinebanking/pkg/dto"
	"github.com/cdacbank/onlinebanking/pkg/mapper"
	"github.com/cdacbank/onlinebanking/pkg/repository"
	"github.com/google/uuid"
)

// recentTransactionLimit bounds the summary's transaction list.
const recentTransactionLimit = 5

// GetAccount returns the account snapshot.
func (s *Service) GetAccount(ctx context.Context, accountID uuid.UUID) (*dto.AccountRead, error) {
	var snapshot dto.AccountRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		acc, err := uow.AccountRepository().Get(accountID)
		if err != nil {
			return err
		}
		snapshot = mapper.ToAccountRead(acc)
		return nil
	})
	if err != nil {
		return nil, wrapStorage(err)
	}
	return &snapshot, nil
}

// ListAccountsForUser returns snapshots of every account the user owns.
func (s *Service) ListAccountsForUser(ctx context.Context, userID uuid.UUID) ([]dto.AccountRead, error) {
	var out []dto.AccountRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository().ListForUser(userID)
		if err != nil {
			return err
		}
		out = make([]dto.AccountRead, 0, len(accounts))
		for _, acc := range accounts {
			out = append(out, mapper.ToAccountRead(acc))
		}
		return nil
	})
	if err != nil {
		return nil, wrapStorage(err)
	}
	return out, nil
}

// GetAccountSummary returns the account snapshot together with its most
// recent ledger entries, newest first.
func (s *Service) GetAccountSummary(ctx context.Context, accountID uuid.UUID) (*dto.AccountSummary, error) {
	var summary dto.AccountSummary
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		acc, err := uow.AccountRepository().Get(accountID)
		if err != nil {
			return err
		}
		recent, err := uow.TransactionRepository().ListRecent(accountID, recentTransactionLimit)
		if err != nil {
			return err
		}
		reads, err := s.toTransactionReads(uow, recent)
		if err != nil {
			return err
		}
		summary = dto.AccountSummary{
			Account:            mapper.ToAccountRead(acc),
			RecentTransactions: reads,
		}
		return nil
	})
	if err != nil {
		return nil, wrapStorage(err)
	}
	return &summary, nil
}

// GetUserTransactions returns every ledger entry touching any account the
// user owns, newest first.
func (s *Service) GetUserTransactions(ctx context.Context, userID uuid.UUID) ([]dto.TransactionRead, error) {
	var out []dto.TransactionRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txs, err := uow.TransactionRepository().ListForUser(userID)
		if err != nil {
			return err
		}
		out, err = s.toTransactionReads(uow, txs)
		return err
	})
	if err != nil {
		return nil, wrapStorage(err)
	}
	return out, nil
}

// GetTransactionHistory returns every ledger entry touching the account,
// newest first.
func (s *Service) GetTransactionHistory(ctx context.Context, accountID uuid.UUID) ([]dto.TransactionRead, error) {
	var out []dto.TransactionRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.AccountRepository().Get(accountID); err != nil {
			return err
		}
		txs, err := uow.TransactionRepository().ListForAccount(accountID)
		if err != nil {
			return err
		}
		out, err = s.toTransactionReads(uow, txs)
		return err
	})
	if err != nil {
		return nil, wrapStorage(err)
	}
	return out, nil
}

// toTransactionReads shapes ledger entries for the wire, resolving account
// ids to external account numbers with a per-call lookup cache.
func (s *Service) toTransactionReads(
	uow repository.UnitOfWork,
	txs []*account.Transaction,
) ([]dto.TransactionRead, error) {
	numbers := map[uuid.UUID]string{}
	resolve := func(id *uuid.UUID) (string, error) {
		if id == nil {
			return "", nil
		}
		if n, ok := numbers[*id]; ok {
			return n, nil
		}
		acc, err := uow.AccountRepository().Get(*id)
		if err != nil {
			return "", err
		}
		numbers[*id] = acc.Number
		return acc.Number, nil
	}

	reads := make([]dto.TransactionRead, 0, len(txs))
	for _, tx := range txs {
		from, err := resolve(tx.FromAccountID)
		if err != nil {
			return nil, err
		}
		to, err := resolve(tx.ToAccountID)
		if err != nil {
			return nil, err
		}
		reads = append(reads, mapper.ToTransactionRead(tx, from, to))
	}
	return reads, nil
}
