package database

import (
	"fmt"

	infra "github.com/cdacbank/onlinebanking/infra/repository"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a Postgres connection and migrates the schema.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not connect to the database: %w", err)
	}
	if err := db.AutoMigrate(infra.AllModels()...); err != nil {
		return nil, fmt.Errorf("could not migrate schema: %w", err)
	}
	return db, nil
}

// ConnectSQLite opens an SQLite database and migrates the schema. Used by
// the CLI and by integration tests (path ":memory:" gives an in-memory DB).
func ConnectSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database: %w", err)
	}
	if err := db.AutoMigrate(infra.AllModels()...); err != nil {
		return nil, fmt.Errorf("could not migrate schema: %w", err)
	}
	return db, nil
}
