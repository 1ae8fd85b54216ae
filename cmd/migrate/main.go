package main

import (
	"moneywise/internal/config" // Custom import path (Config)
	"moneywise/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus"
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	gdb, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatal(err)
	}
}
