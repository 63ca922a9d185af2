// Package auth implements registration, login, and JWT issuance.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cdacbank/onlinebanking/pkg/accountnumber"
	"github.com/cdacbank/onlinebanking/pkg/config"
	accountdomain "github.com/cdacbank/onlinebanking/pkg/domain/account"
	"github.com/cdacbank/onlinebanking/pkg/domain/common"
	"github.com/cdacbank/onlinebanking/pkg/domain/user"
	"github.com/cdacbank/onlinebanking/pkg/dto"
	"github.com/cdacbank/onlinebanking/pkg/mapper"
	"github.com/cdacbank/onlinebanking/pkg/repository"
	"github.com/cdacbank/onlinebanking/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidSecretKey is returned when admin registration carries a wrong
	// or missing secret key.
	ErrInvalidSecretKey = errors.New("invalid or missing admin secret key")

	// ErrPasswordMismatch is returned when a password change confirmation
	// does not match.
	ErrPasswordMismatch = errors.New("new passwords do not match")

	// ErrWrongPassword is returned when the current password is incorrect.
	ErrWrongPassword = errors.New("current password is incorrect")
)

// Service implements authentication use-cases.
type Service struct {
	uow    repository.UnitOfWork
	jwtCfg config.JwtConfig
	admin  config.AdminConfig
	logger *slog.Logger
}

// New creates an auth Service.
func New(uow repository.UnitOfWork, jwtCfg config.JwtConfig, admin config.AdminConfig, logger *slog.Logger) *Service {
	return &Service{uow: uow, jwtCfg: jwtCfg, admin: admin, logger: logger}
}

// Register creates a user and, for customers, opens their default account
// with a freshly allocated account number, all in one unit of work. Admin
// registration requires the configured secret key.
func (s *Service) Register(
	ctx context.Context,
	fullName, email, password string,
	role user.Role,
	secretKey string,
) (*dto.AuthResponse, error) {
	logger := s.logger.With("op", "register", "email", email, "role", role)

	if role == user.RoleAdmin && secretKey != s.admin.SecretKey {
		logger.Warn("Admin registration rejected: bad secret key")
		return nil, ErrInvalidSecretKey
	}

	u, err := user.NewUser(fullName, email, password, role)
	if err != nil {
		logger.Warn("Registration rejected", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.UserRepository().GetByEmail(email); err == nil {
			return user.ErrEmailTaken
		} else if !errors.Is(err, user.ErrUserNotFound) {
			return err
		}
		if err := uow.UserRepository().Create(u); err != nil {
			return err
		}
		if role != user.RoleCustomer {
			return nil
		}
		number, err := accountnumber.New(uow.SequenceRepository()).Next()
		if err != nil {
			return err
		}
		acc, err := accountdomain.New().
			WithNumber(number).
			WithUserID(u.ID).
			Build()
		if err != nil {
			return err
		}
		return uow.AccountRepository().Create(acc)
	})
	if err != nil {
		logger.Error("Registration failed", "error", err)
		return nil, wrapStorage(err)
	}

	resp, err := s.issueTokens(u)
	if err != nil {
		logger.Error("Token issuance failed", "error", err)
		return nil, err
	}
	logger.Info("User registered", "userID", u.ID)
	return resp, nil
}

// Login authenticates by email and password, stamps the login time, and
// returns fresh tokens.
func (s *Service) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	logger := s.logger.With("op", "login", "email", email)

	var u *user.User
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		var err error
		u, err = uow.UserRepository().GetByEmail(email)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return user.ErrInvalidCredentials
			}
			return err
		}
		if !utils.CheckPasswordHash(password, u.Password) {
			return user.ErrInvalidCredentials
		}
		if !u.Active {
			return user.ErrUserInactive
		}
		now := time.Now().UTC()
		u.LastLoginAt = &now
		return uow.UserRepository().Update(u)
	})
	if err != nil {
		logger.Warn("Login failed", "error", err)
		return nil, wrapStorage(err)
	}

	resp, err := s.issueTokens(u)
	if err != nil {
		logger.Error("Token issuance failed", "error", err)
		return nil, err
	}
	logger.Info("Login successful", "userID", u.ID)
	return resp, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, current, newPassword, confirm string) error {
	logger := s.logger.With("op", "changePassword", "userID", userID)

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		u, err := uow.UserRepository().Get(userID)
		if err != nil {
			return err
		}
		if !utils.CheckPasswordHash(current, u.Password) {
			return ErrWrongPassword
		}
		if newPassword != confirm {
			return ErrPasswordMismatch
		}
		if len(newPassword) < 6 {
			return errors.New("password must be at least 6 characters long")
		}
		hashed, err := utils.HashPassword(newPassword)
		if err != nil {
			return err
		}
		u.Password = hashed
		return uow.UserRepository().Update(u)
	})
	if err != nil {
		logger.Error("ChangePassword failed", "error", err)
		return wrapStorage(err)
	}
	logger.Info("Password changed")
	return nil
}

// GetCurrentUserID extracts the authenticated user's id from a verified token.
func (s *Service) GetCurrentUserID(token *jwt.Token) (uuid.UUID, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid token claims")
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("token missing user_id claim")
	}
	return uuid.Parse(raw)
}

// CurrentRole extracts the role claim from a verified token.
func (s *Service) CurrentRole(token *jwt.Token) user.Role {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	role, _ := claims["role"].(string)
	return user.Role(role)
}

func (s *Service) issueTokens(u *user.User) (*dto.AuthResponse, error) {
	expiresAt := time.Now().Add(s.jwtCfg.Expiry)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID.String(),
		"email":   u.Email,
		"role":    string(u.Role),
		"exp":     expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		return nil, err
	}
	refresh, err := refreshToken()
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:        signed,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
		User:         mapper.ToUserRead(u),
	}, nil
}

func refreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

func wrapStorage(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{
		user.ErrUserNotFound,
		user.ErrEmailTaken,
		user.ErrInvalidCredentials,
		user.ErrUserInactive,
		user.ErrInvalidRole,
		ErrInvalidSecretKey,
		ErrPasswordMismatch,
		ErrWrongPassword,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", common.ErrStorageFailure, err)
}
