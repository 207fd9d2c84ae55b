package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteDB wraps the database handle for the embedded store
type SQLiteDB struct {
	DB *sql.DB
}

// NewSQLiteDB opens (creating if absent) the SQLite store at the given path
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)", path)

	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single writer connection avoids SQLITE_BUSY under concurrent writes
	database.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &SQLiteDB{DB: database}, nil
}

// Close closes the database handle
func (d *SQLiteDB) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
