// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a record of generation runs in a SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const dbFile = "history.db"

// Entry is one recorded generation run.
type Entry struct {
	ID           int64     `json:"id" yaml:"id"`
	Title        string    `json:"title" yaml:"title"`
	Source       string    `json:"source" yaml:"source"`
	Output       string    `json:"output" yaml:"output"`
	Matched      int       `json:"matched" yaml:"matched"`
	Placeholders int       `json:"placeholders" yaml:"placeholders"`
	Bytes        int       `json:"bytes" yaml:"bytes"`
	GeneratedAt  time.Time `json:"generated_at" yaml:"generated_at"`
}

// Store manages the generation history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database under dir, creating the
// directory and schema as needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS generations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		source TEXT,
		output TEXT,
		matched INTEGER,
		placeholders INTEGER,
		bytes INTEGER,
		generated_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts one generation run. A zero GeneratedAt is stamped with the
// current time.
func (s *Store) Record(e Entry) error {
	ts := e.GeneratedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO generations (title, source, output, matched, placeholders, bytes, generated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Title, e.Source, e.Output, e.Matched, e.Placeholders, e.Bytes,
		ts.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting generation record: %w", err)
	}
	return nil
}

// List returns up to limit entries, newest first. A non-positive limit
// defaults to 20.
func (s *Store) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, title, source, output, matched, placeholders, bytes, generated_at
		 FROM generations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying generations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.ID, &e.Title, &e.Source, &e.Output,
			&e.Matched, &e.Placeholders, &e.Bytes, &ts); err != nil {
			return nil, fmt.Errorf("scanning generation row: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			e.GeneratedAt = parsed
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
