package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

// Config captures the settings for establishing a Postgres connection.
type Config struct {
	DSN      string
	LogLevel logger.LogLevel
}

// Connect opens a gorm connection pool against Postgres. TranslateError is
// enabled so unique-constraint violations surface as gorm.ErrDuplicatedKey.
func Connect(cfg Config) (*gorm.DB, error) {
	lvl := cfg.LogLevel
	if lvl == 0 {
		lvl = logger.Warn
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger:         logger.Default.LogMode(lvl),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	return db, nil
}

// Migrate creates or updates the schema, including the unique indexes on
// users.email and ratings (user_id, store_id) that back the duplicate-email
// check and the atomic rating upsert.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&userModel{}, &storeModel{}, &ratingModel{})
}
