package database

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/ceccimesquita/papillon/internal/domain/entities"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectPostgres opens the Postgres connection and migrates the schema.
//
// Supported env vars (local-friendly):
//   - DB_HOST (default: localhost)
//   - DB_PORT (default: 5432)
//   - DB_USER (default: postgres)
//   - DB_PASSWORD (default: postgres)
//   - DB_NAME (default: papillon)
//   - DB_SSLMODE (default: disable)
func ConnectPostgres() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getenvDefault("DB_HOST", "localhost"),
		getenvDefault("DB_PORT", "5432"),
		getenvDefault("DB_USER", "postgres"),
		getenvDefault("DB_PASSWORD", "postgres"),
		getenvDefault("DB_NAME", "papillon"),
		getenvDefault("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Client{},
		&entities.PaymentMethod{},
		&entities.Budget{},
		&entities.Event{},
		&entities.Menu{},
		&entities.MenuItem{},
		&entities.Employee{},
		&entities.Supply{},
		&entities.User{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	slog.Info("connected to postgres", "database", getenvDefault("DB_NAME", "papillon"))
	return db
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
