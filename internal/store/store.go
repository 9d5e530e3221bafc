// Package store persists raw dictionary responses in a SQLite database,
// keyed by word. One Store is opened at startup and shared by every
// request for the lifetime of the process.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

// Open opens the definition cache at path, creating the file, its parent
// directory, and the schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode, durable writes and a busy timeout
	if _, err := db.Exec(`
        PRAGMA journal_mode = WAL;
        PRAGMA synchronous = FULL;
        PRAGMA busy_timeout = 5000;
    `); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set PRAGMA: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the raw response stored for word, or ErrNotFound.
func (s *Store) Get(word string) ([]byte, error) {
	var response []byte
	err := s.db.QueryRow(
		"SELECT response FROM definitions WHERE word = ?",
		word,
	).Scan(&response)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query definition: %w", err)
	}

	return response, nil
}

// Put stores the raw response for word, replacing any previous value. The
// write is a single upsert, rewrites of the same word stay atomic.
func (s *Store) Put(word string, response []byte) error {
	_, err := s.db.Exec(`
        INSERT INTO definitions (word, response)
        VALUES (?, ?)
        ON CONFLICT(word) DO UPDATE SET
            response = excluded.response
    `, word, response)

	if err != nil {
		return fmt.Errorf("failed to upsert definition: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
