package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ayursutra/panchakarma-portal/internal/models"
)

// Open connects to the store. A postgres:// (or postgresql://) DSN gets
// the postgres driver; anything else is treated as sqlite, which covers
// both the default in-memory DSN and file-backed databases.
func Open(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	lower := strings.ToLower(strings.TrimSpace(dsn))
	var (
		conn *gorm.DB
		err  error
	)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		conn, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		conn, err = gorm.Open(sqlite.Open(dsn), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return conn, nil
}

// Migrate applies the schema for every portal entity.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&models.User{},
		&models.TherapySession{},
		&models.Notification{},
		&models.Feedback{},
		&models.TherapyPlan{},
		&models.ProgressPoint{},
	); err != nil {
		return fmt.Errorf("migrate store: %w", err)
	}
	return nil
}
