package store

import (
	"database/sql"
	"fmt"
)

const schemaVersion = 1

func initSchema(db *sql.DB) error {
	// Check schema version
	var version int
	err := db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	if version == schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Raw dictionary responses keyed by the lowercase headword. The value
	// is stored exactly as the service sent it and decoded on every read.
	query := `CREATE TABLE IF NOT EXISTS definitions (
        word TEXT PRIMARY KEY,
        response BLOB NOT NULL
    )`
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	// Update schema version
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to update schema version: %w", err)
	}

	return tx.Commit()
}
