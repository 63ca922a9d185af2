// Package contact captures contact-form messages and lists them for admins.
package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cdacbank/onlinebanking/pkg/domain/common"
	"github.com/cdacbank/onlinebanking/pkg/domain/contact"
	"github.com/cdacbank/onlinebanking/pkg/dto"
	"github.com/cdacbank/onlinebanking/pkg/mapper"
	"github.com/cdacbank/onlinebanking/pkg/repository"
)

// Service implements contact-form use-cases.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a contact Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Submit stores a contact-form message.
func (s *Service) Submit(ctx context.Context, name, email, phone, subject, message string) (*dto.ContactRead, error) {
	c := contact.New(name, email, phone, subject, message)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.ContactRepository().Create(c)
	})
	if err != nil {
		s.logger.Error("Contact submit failed", "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrStorageFailure, err)
	}
	s.logger.Info("Contact message stored", "contactID", c.ID)
	read := mapper.ToContactRead(c)
	return &read, nil
}

// List returns every stored message, newest first. Admin use only.
func (s *Service) List(ctx context.Context) ([]dto.ContactRead, error) {
	var out []dto.ContactRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		contacts, err := uow.ContactRepository().List()
		if err != nil {
			return err
		}
		out = make([]dto.ContactRead, 0, len(contacts))
		for _, c := range contacts {
			out = append(out, mapper.ToContactRead(c))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageFailure, err)
	}
	return out, nil
}
