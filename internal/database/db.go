package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(dbPath string) (*gorm.DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Query{},
		&Judgment{},
		&CauseListFetch{},
	); err != nil {
		return err
	}

	return createIndexes(db)
}

// createIndexes creates secondary indexes used by the history and
// deduplication paths.
func createIndexes(db *gorm.DB) error {
	// Lookup by query identity
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_queries_identity
		ON queries(case_type, case_number, year, court_name)
	`).Error; err != nil {
		return err
	}

	// History listing
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_queries_time
		ON queries(query_time)
	`).Error; err != nil {
		return err
	}

	// Judgments by owning query
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_judgments_query
		ON judgments(query_id)
	`).Error; err != nil {
		return err
	}

	// Cause lists by court and date
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_cause_lists_court_date
		ON cause_list_fetches(court_name, list_date)
	`).Error; err != nil {
		return err
	}

	return nil
}
