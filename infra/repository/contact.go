package repository

import (
	"github.com/cdacbank/onlinebanking/pkg/domain/contact"
	"github.com/cdacbank/onlinebanking/pkg/repository"
	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a GORM-backed contact repository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(c *contact.Contact) error {
	m := Contact{
		Model:   gorm.Model{CreatedAt: c.CreatedAt, UpdatedAt: c.CreatedAt},
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Subject: c.Subject,
		Message: c.Message,
	}
	return r.db.Create(&m).Error
}

func (r *contactRepository) List() ([]*contact.Contact, error) {
	var models []Contact
	if err := r.db.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*contact.Contact, 0, len(models))
	for i := range models {
		m := &models[i]
		out = append(out, &contact.Contact{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Phone:     m.Phone,
			Subject:   m.Subject,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}
