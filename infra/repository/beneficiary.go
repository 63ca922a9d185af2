package repository

import (
	"errors"
	"strings"

	"github.com/cdacbank/onlinebanking/pkg/domain/beneficiary"
	"github.com/cdacbank/onlinebanking/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type beneficiaryRepository struct {
	db *gorm.DB
}

// NewBeneficiaryRepository creates a GORM-backed beneficiary repository.
func NewBeneficiaryRepository(db *gorm.DB) repository.BeneficiaryRepository {
	return &beneficiaryRepository{db: db}
}

func (r *beneficiaryRepository) Create(b *beneficiary.Beneficiary) error {
	m := Beneficiary{
		Model:         gorm.Model{CreatedAt: b.CreatedAt, UpdatedAt: b.CreatedAt},
		ID:            b.ID,
		UserID:        b.UserID,
		Name:          b.Name,
		AccountNumber: b.AccountNumber,
	}
	if err := r.db.Create(&m).Error; err != nil {
		// The unique_user_account index backs the duplicate check even when
		// two adds race past the service-level lookup.
		if strings.Contains(err.Error(), "unique_user_account") ||
			errors.Is(err, gorm.ErrDuplicatedKey) {
			return beneficiary.ErrDuplicateBeneficiary
		}
		return err
	}
	return nil
}

func (r *beneficiaryRepository) ListForUser(userID uuid.UUID) ([]*beneficiary.Beneficiary, error) {
	var models []Beneficiary
	if err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*beneficiary.Beneficiary, 0, len(models))
	for i := range models {
		out = append(out, toDomainBeneficiary(&models[i]))
	}
	return out, nil
}

func (r *beneficiaryRepository) FindByOwnerAndNumber(userID uuid.UUID, accountNumber string) (*beneficiary.Beneficiary, error) {
	var m Beneficiary
	result := r.db.Where("user_id = ? AND account_number = ?", userID, accountNumber).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, beneficiary.ErrBeneficiaryNotFound
		}
		return nil, result.Error
	}
	return toDomainBeneficiary(&m), nil
}

// DeleteForUser is scoped to the owning user: deleting an id that belongs to
// another user matches no rows and is a silent no-op.
func (r *beneficiaryRepository) DeleteForUser(id, userID uuid.UUID) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&Beneficiary{}).Error
}

func toDomainBeneficiary(m *Beneficiary) *beneficiary.Beneficiary {
	return &beneficiary.Beneficiary{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		AccountNumber: m.AccountNumber,
		CreatedAt:     m.CreatedAt,
	}
}
