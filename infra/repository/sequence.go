package repository

import (
	"errors"

	"github.com/cdacbank/onlinebanking/pkg/repository"
	"gorm.io/gorm"
)

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a GORM-backed named-counter repository.
func NewSequenceRepository(db *gorm.DB) repository.SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next increments and returns the named counter. The row is locked for the
// remainder of the enclosing transaction, so concurrent allocations never
// observe the same value.
func (r *sequenceRepository) Next(name string) (int64, error) {
	var seq Sequence
	err := forUpdate(r.db).Where("name = ?", name).First(&seq).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			seq = Sequence{Name: name, Value: 1}
			if err := r.db.Create(&seq).Error; err != nil {
				return 0, err
			}
			return seq.Value, nil
		}
		return 0, err
	}
	seq.Value++
	if err := r.db.Save(&seq).Error; err != nil {
		return 0, err
	}
	return seq.Value, nil
}
