package config

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDatabase opens the session-scoped in-memory database. All order data
// lives for the lifetime of the process and is rebuilt from the seed on the
// next start; there is deliberately no durable storage behind it.
func OpenDatabase() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	// An in-memory sqlite database exists per connection. Pin the pool to a
	// single connection so every checkout sees the same data.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
