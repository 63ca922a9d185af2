package banking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	infrarepo "github.com/cdacbank/onlinebanking/infra/repository"
	"github.com/cdacbank/onlinebanking/internal/fixtures"
	"github.com/cdacbank/onlinebanking/pkg/domain/common"
	"github.com/cdacbank/onlinebanking/pkg/service/banking"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Verifies the unit-of-work contract at the SQL level: when a statement
// inside the transaction fails, everything before it is rolled back and the
// caller sees a storage failure, not a half-applied operation.
func TestDepositRollsBackOnStorageFailure(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(err)
	defer sqlDB.Close() //nolint:errcheck

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(err)

	accountID := uuid.New()
	ownerID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "accounts" WHERE id = (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "created_at", "updated_at", "deleted_at",
			"number", "user_id", "balance", "currency", "active", "last_transaction_at",
		}).AddRow(
			accountID.String(), now, now, nil,
			"0100000013", ownerID.String(), int64(1000), "USD", true, nil,
		))
	mock.ExpectExec(`UPDATE "accounts" SET`).
		WillReturnError(errDiskFull)
	mock.ExpectRollback()

	svc := banking.New(infrarepo.NewUoW(db), fixtures.Logger())
	_, err = svc.Deposit(context.Background(), accountID, 10, "")
	require.Error(err)
	require.ErrorIs(err, common.ErrStorageFailure,
		"infrastructure failures surface as storage failures, not domain errors")
	require.NoError(mock.ExpectationsWereMet(), "the transaction must be rolled back")
}

var errDiskFull = errors.New("disk full")
