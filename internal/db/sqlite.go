package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	connectRetries    = 5
	connectRetryDelay = 5 * time.Second
)

func OpenSQLite(dbPath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}

// Connect opens the database with a fixed number of bounded retries so a
// briefly unavailable data directory does not kill the process at boot.
func Connect(dbPath string) (*gorm.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= connectRetries; attempt++ {
		database, err := OpenSQLite(dbPath)
		if err == nil {
			return database, nil
		}
		lastErr = err
		log.Printf("database connection failed (attempt %d/%d): %v", attempt, connectRetries, err)
		if attempt < connectRetries {
			time.Sleep(connectRetryDelay)
		}
	}
	return nil, fmt.Errorf("connect after %d attempts: %w", connectRetries, lastErr)
}
