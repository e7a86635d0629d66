package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA foreign_keys=ON",
}

// ConnectSQLite opens an existing database read-only.
func ConnectSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := prepare(db); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenSQLite opens path for writing, creating it if needed, and applies
// each schema statement in order. Statements should be idempotent
// (CREATE TABLE IF NOT EXISTS).
func OpenSQLite(path string, schema ...string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer; the pragmas are per connection.
	db.SetMaxOpenConns(1)

	if err := prepare(db); err != nil {
		return nil, err
	}
	for _, ddl := range schema {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("create table: %w", err)
		}
	}
	return db, nil
}

func prepare(db *sql.DB) error {
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return fmt.Errorf("pragma %s: %w", pragma, err)
		}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("ping sqlite: %w", err)
	}
	return nil
}
