package repository

import (
	"errors"
	"time"

	"github.com/cdacbank/onlinebanking/pkg/domain/user"
	"github.com/cdacbank/onlinebanking/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a GORM-backed user repository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Get(id uuid.UUID) (*user.User, error) {
	var m User
	result := r.db.Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, result.Error
	}
	return toDomainUser(&m), nil
}

func (r *userRepository) GetByEmail(email string) (*user.User, error) {
	var m User
	result := r.db.Where("email = ?", email).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, result.Error
	}
	return toDomainUser(&m), nil
}

func (r *userRepository) List() ([]*user.User, error) {
	var models []User
	if err := r.db.Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}
	users := make([]*user.User, 0, len(models))
	for i := range models {
		users = append(users, toDomainUser(&models[i]))
	}
	return users, nil
}

func (r *userRepository) Create(u *user.User) error {
	m := User{
		Model:       gorm.Model{CreatedAt: u.CreatedAt, UpdatedAt: u.CreatedAt},
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		Password:    u.Password,
		Role:        string(u.Role),
		Active:      u.Active,
		LastLoginAt: u.LastLoginAt,
	}
	return r.db.Create(&m).Error
}

func (r *userRepository) Update(u *user.User) error {
	m := User{
		Model:       gorm.Model{CreatedAt: u.CreatedAt, UpdatedAt: time.Now().UTC()},
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		Password:    u.Password,
		Role:        string(u.Role),
		Active:      u.Active,
		LastLoginAt: u.LastLoginAt,
	}
	return r.db.Save(&m).Error
}

func toDomainUser(m *User) *user.User {
	return user.NewUserFromData(
		m.ID,
		m.FullName,
		m.Email,
		m.Password,
		user.Role(m.Role),
		m.Active,
		m.CreatedAt,
		m.LastLoginAt,
	)
}
