// Package fixtures provides shared helpers for integration-style tests that
// run the full repository stack against an in-memory SQLite database.
package fixtures

import (
	"context"
	"io"
	"log/slog"
	"testing"

	infrarepo "github.com/cdacbank/onlinebanking/infra/repository"
	"github.com/cdacbank/onlinebanking/internal/database"
	"github.com/cdacbank/onlinebanking/pkg/accountnumber"
	accountdomain "github.com/cdacbank/onlinebanking/pkg/domain/account"
	"github.com/cdacbank/onlinebanking/pkg/domain/user"
	"github.com/cdacbank/onlinebanking/pkg/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB opens a fresh in-memory SQLite database with the schema
// migrated. The pool is capped at one connection: the in-memory database
// lives on that connection, and the cap serializes concurrent test
// goroutines the way row locks do on Postgres.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.ConnectSQLite(":memory:")
	require.NoError(t, err, "in-memory database should open")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// NewTestUoW returns a unit of work over a fresh in-memory database.
func NewTestUoW(t *testing.T) repository.UnitOfWork {
	t.Helper()
	return infrarepo.NewUoW(NewTestDB(t))
}

// Logger returns a logger that discards everything, keeping test output clean.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SeedCustomer persists a customer with one active account holding
// balance (in the smallest currency unit) and returns both.
func SeedCustomer(t *testing.T, uow repository.UnitOfWork, email string, balance int64) (*user.User, *accountdomain.Account) {
	t.Helper()
	u, err := user.NewUser("Test Customer", email, "s3cret!", user.RoleCustomer)
	require.NoError(t, err)

	var acc *accountdomain.Account
	err = uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
		if err := uow.UserRepository().Create(u); err != nil {
			return err
		}
		number, err := accountnumber.New(uow.SequenceRepository()).Next()
		if err != nil {
			return err
		}
		acc, err = accountdomain.New().
			WithNumber(number).
			WithUserID(u.ID).
			WithBalance(balance).
			Build()
		if err != nil {
			return err
		}
		return uow.AccountRepository().Create(acc)
	})
	require.NoError(t, err, "seeding a customer should not fail")
	return u, acc
}
