// Package storage provides SQLite-based persistence for the storefront client:
// the opaque access token per owner and the recently viewed products.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// LocalOwner is the owner name used by the local CLI. Served sessions use
// the SSH user name.
const LocalOwner = "local"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// View is a product detail visit.
type View struct {
	ProductID string
	Name      string
	ViewedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS tokens (
			owner TEXT PRIMARY KEY,
			token TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS views (
			owner TEXT NOT NULL,
			product_id TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			seq INTEGER NOT NULL,
			viewed_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (owner, product_id)
		);
		CREATE INDEX IF NOT EXISTS idx_views_recent ON views(owner, seq DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveToken stores the access token for owner, replacing any previous one.
func (s *Store) SaveToken(owner, token string) error {
	_, err := s.db.Exec(
		`INSERT INTO tokens (owner, token, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(owner) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at`,
		owner, token,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save token: %w", err)
	}
	return nil
}

// Token returns the stored token for owner, or "" when none is stored.
func (s *Store) Token(owner string) (string, error) {
	var token string
	err := s.db.QueryRow("SELECT token FROM tokens WHERE owner = ?", owner).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot query token: %w", err)
	}
	return token, nil
}

// ClearToken forgets the token for owner.
func (s *Store) ClearToken(owner string) error {
	if _, err := s.db.Exec("DELETE FROM tokens WHERE owner = ?", owner); err != nil {
		return fmt.Errorf("storage: cannot clear token: %w", err)
	}
	return nil
}

// RecordView marks a product as viewed by owner. Viewing a product again
// moves it to the front of RecentViews.
func (s *Store) RecordView(owner, productID, name string) error {
	_, err := s.db.Exec(
		`INSERT INTO views (owner, product_id, name, seq, viewed_at)
		 VALUES (?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM views), CURRENT_TIMESTAMP)
		 ON CONFLICT(owner, product_id) DO UPDATE SET
		   name = excluded.name, seq = excluded.seq, viewed_at = excluded.viewed_at`,
		owner, productID, name,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record view: %w", err)
	}
	return nil
}

// RecentViews returns up to limit products viewed by owner, most recent first.
func (s *Store) RecentViews(owner string, limit int) ([]View, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT product_id, name, viewed_at
		 FROM views
		 WHERE owner = ?
		 ORDER BY seq DESC
		 LIMIT ?`,
		owner, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query views: %w", err)
	}
	defer rows.Close()

	var views []View
	for rows.Next() {
		var v View
		var viewedAt any
		if err := rows.Scan(&v.ProductID, &v.Name, &viewedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch t := viewedAt.(type) {
		case time.Time:
			v.ViewedAt = t
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
				v.ViewedAt = parsed
			}
		}
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return views, nil
}

// ClearViews deletes the view history of owner.
func (s *Store) ClearViews(owner string) error {
	if _, err := s.db.Exec("DELETE FROM views WHERE owner = ?", owner); err != nil {
		return fmt.Errorf("storage: cannot clear views: %w", err)
	}
	return nil
}
