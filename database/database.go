// Package database owns the connection to the relational store.
package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/storelab/catalog-api/models"
)

// Open connects to the store named by dsn and ensures the schema exists.
// A postgres:// (or key=value) DSN selects Postgres; anything else is treated
// as a SQLite path, which keeps local runs and tests dependency-free.
// Schema creation is idempotent: existing tables are never migrated.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "catalog.db"
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	cfg := &gorm.Config{
		Logger: gormLogger,
		// Map driver constraint violations onto gorm sentinel errors so the
		// repositories can treat them as the authoritative duplicate signal.
		TranslateError: true,
	}

	db, err := gorm.Open(dialectorFor(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.User{}); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return db, nil
}

func dialectorFor(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
