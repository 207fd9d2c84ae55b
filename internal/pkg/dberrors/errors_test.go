package dberrors

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func TestIsUniqueViolation(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE t (v TEXT NOT NULL UNIQUE)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO t (v) VALUES ('x')`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	_, err = db.Exec(`INSERT INTO t (v) VALUES ('x')`)
	if err == nil {
		t.Fatal("expected constraint violation")
	}
	if !IsUniqueViolation(err) {
		t.Fatalf("expected unique violation for %v", err)
	}
	if !IsUniqueViolation(fmt.Errorf("wrapped: %w", err)) {
		t.Fatal("expected unique violation through wrapping")
	}
}

func TestIsUniqueViolationOtherErrors(t *testing.T) {
	if IsUniqueViolation(nil) {
		t.Fatal("nil is not a violation")
	}
	if IsUniqueViolation(errors.New("boom")) {
		t.Fatal("plain error is not a violation")
	}
	if IsUniqueViolation(sql.ErrNoRows) {
		t.Fatal("ErrNoRows is not a violation")
	}
}
