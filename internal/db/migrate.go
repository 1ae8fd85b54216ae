package db

import (
	"fmt" // Error wrapping

	"moneywise/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Open connects to MySQL through GORM
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the sessions table
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing columns and indexes
	if err := db.AutoMigrate(&domain.Session{}); err != nil {
		return fmt.Errorf("migrate sessions: %w", err)
	}
	logrus.Info("Migration completed.")
	return nil
}
