package user

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/cdacbank/onlinebanking/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the repository.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrInvalidCredentials is returned on a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserInactive is returned when a deactivated user attempts to sign in.
	ErrUserInactive = errors.New("user is deactivated")
	// ErrInvalidRole is returned when a role is neither Admin nor Customer.
	ErrInvalidRole = errors.New("invalid role: must be Admin or Customer")
)

// Role distinguishes administrative users from bank customers.
type Role string

// User roles.
const (
	RoleAdmin    Role = "Admin"
	RoleCustomer Role = "Customer"
)

var fullNameFormat = regexp.MustCompile(`^[A-Za-z\s\-']+$`)

// User represents a registered user of the bank.
type User struct {
	ID          uuid.UUID
	FullName    string
	Email       string
	Password    string // bcrypt hash
	Role        Role
	Active      bool
	CreatedAt   time.Time
	LastLoginAt *time.Time
}

// NewUser creates a User with a hashed password and current timestamps.
func NewUser(fullName, email, password string, role Role) (*User, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" || !fullNameFormat.MatchString(fullName) {
		return nil, errors.New("full name can only contain letters, spaces, hyphens, and apostrophes")
	}
	if !utils.IsEmail(email) {
		return nil, errors.New("invalid email address")
	}
	if role != RoleAdmin && role != RoleCustomer {
		return nil, ErrInvalidRole
	}
	if len(password) < 6 {
		return nil, errors.New("password must be at least 6 characters long")
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:        uuid.New(),
		FullName:  fullName,
		Email:     email,
		Password:  hashed,
		Role:      role,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewUserFromData creates a User from raw data (used for DB hydration).
func NewUserFromData(
	id uuid.UUID,
	fullName, email, password string,
	role Role,
	active bool,
	created time.Time,
	lastLogin *time.Time,
) *User {
	return &User{
		ID:          id,
		FullName:    fullName,
		Email:       email,
		Password:    password,
		Role:        role,
		Active:      active,
		CreatedAt:   created,
		LastLoginAt: lastLogin,
	}
}

// IsAdmin reports whether the user holds the Admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
