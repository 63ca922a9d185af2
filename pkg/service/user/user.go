// Package user implements profile and administrative user management.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cdacbank/onlinebanking/pkg/domain/account"
	"github.com/cdacbank/onlinebanking/pkg/domain/common"
	"github.com/cdacbank/onlinebanking/pkg/domain/user"
	"github.com/cdacbank/onlinebanking/pkg/dto"
	"github.com/cdacbank/onlinebanking/pkg/mapper"
	"github.com/cdacbank/onlinebanking/pkg/repository"
	"github.com/google/uuid"
)

// Service implements user management use-cases.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a user Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Get returns the user's profile snapshot.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*dto.UserRead, error) {
	var snapshot dto.UserRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		u, err := uow.UserRepository().Get(userID)
		if err != nil {
			return err
		}
		snapshot = mapper.ToUserRead(u)
		return nil
	})
	if err != nil {
		return nil, wrapStorage(err)
	}
	return &snapshot, nil
}

// List returns every registered user. Admin use only; the boundary enforces
// the role.
func (s *Service) List(ctx context.Context) ([]dto.UserRead, error) {
	var out []dto.UserRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository().List()
		if err != nil {
			return err
		}
		out = make([]dto.UserRead, 0, len(users))
		for _, u := range users {
			out = append(out, mapper.ToUserRead(u))
		}
		return nil
	})
	if err != nil {
		return nil, wrapStorage(err)
	}
	return out, nil
}

// Deactivate soft-deletes a user: the user and all their accounts are marked
// inactive. Deactivation is refused while any of the user's accounts still
// holds a balance, so funds are never stranded; ledger rows are untouched
// either way.
func (s *Service) Deactivate(ctx context.Context, userID uuid.UUID) error {
	logger := s.logger.With("op", "deactivateUser", "userID", userID)

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		u, err := uow.UserRepository().Get(userID)
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository().ListForUser(userID)
		if err != nil {
			return err
		}
		for _, acc := range accounts {
			if !acc.Balance.IsZero() {
				return account.ErrAccountHasBalance
			}
		}
		for _, acc := range accounts {
			acc.Deactivate()
			if err := uow.AccountRepository().Update(acc); err != nil {
				return err
			}
		}
		u.Active = false
		return uow.UserRepository().Update(u)
	})
	if err != nil {
		logger.Error("Deactivate failed", "error", err)
		return wrapStorage(err)
	}
	logger.Info("User deactivated")
	return nil
}

func wrapStorage(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{
		user.ErrUserNotFound,
		account.ErrAccountHasBalance,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", common.ErrStorageFailure, err)
}
