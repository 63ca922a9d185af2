// Package beneficiary manages a user's saved payees.
package beneficiary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cdacbank/onlinebanking/pkg/domain/account"
	"github.com/cdacbank/onlinebanking/pkg/domain/beneficiary"
	"github.com/cdacbank/onlinebanking/pkg/domain/common"
	"github.com/cdacbank/onlinebanking/pkg/dto"
	"github.com/cdacbank/onlinebanking/pkg/mapper"
	"github.com/cdacbank/onlinebanking/pkg/repository"
	"github.com/google/uuid"
)

// Service implements the beneficiary registry.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a beneficiary Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Add saves a new payee for userID after verifying that the account number
// exists, that the entered name matches the account holder's registered full
// name (trimmed, case-insensitive), and that the pair is not already saved.
func (s *Service) Add(
	ctx context.Context,
	userID uuid.UUID,
	name, accountNumber string,
) (*dto.BeneficiaryRead, error) {
	logger := s.logger.With("op", "addBeneficiary", "userID", userID, "accountNumber", accountNumber)

	var snapshot dto.BeneficiaryRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		target, err := uow.AccountRepository().GetByNumber(accountNumber)
		if err != nil {
			return err
		}
		owner, err := uow.UserRepository().Get(target.UserID)
		if err != nil {
			return err
		}
		if !beneficiary.NameMatches(owner.FullName, name) {
			return beneficiary.ErrNameMismatch
		}
		_, err = uow.BeneficiaryRepository().FindByOwnerAndNumber(userID, accountNumber)
		if err == nil {
			return beneficiary.ErrDuplicateBeneficiary
		}
		if !errors.Is(err, beneficiary.ErrBeneficiaryNotFound) {
			return err
		}
		b := beneficiary.New(userID, name, accountNumber)
		if err := uow.BeneficiaryRepository().Create(b); err != nil {
			return err
		}
		snapshot = mapper.ToBeneficiaryRead(b)
		return nil
	})
	if err != nil {
		logger.Error("AddBeneficiary failed", "error", err)
		return nil, wrapStorage(err)
	}
	logger.Info("Beneficiary added", "beneficiaryID", snapshot.ID)
	return &snapshot, nil
}

// ListForUser returns the user's saved payees.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]dto.BeneficiaryRead, error) {
	var out []dto.BeneficiaryRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		list, err := uow.BeneficiaryRepository().ListForUser(userID)
		if err != nil {
			return err
		}
		out = make([]dto.BeneficiaryRead, 0, len(list))
		for _, b := range list {
			out = append(out, mapper.ToBeneficiaryRead(b))
		}
		return nil
	})
	if err != nil {
		return nil, wrapStorage(err)
	}
	return out, nil
}

// Remove deletes the beneficiary when it belongs to userID. An id owned by a
// different user is a silent no-op, never a cross-user deletion.
func (s *Service) Remove(ctx context.Context, beneficiaryID, userID uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.BeneficiaryRepository().DeleteForUser(beneficiaryID, userID)
	})
	if err != nil {
		s.logger.Error("RemoveBeneficiary failed", "beneficiaryID", beneficiaryID, "error", err)
		return wrapStorage(err)
	}
	return nil
}

func wrapStorage(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{
		account.ErrAccountNotFound,
		beneficiary.ErrNameMismatch,
		beneficiary.ErrDuplicateBeneficiary,
		beneficiary.ErrBeneficiaryNotFound,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", common.ErrStorageFailure, err)
}
