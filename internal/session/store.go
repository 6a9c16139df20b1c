// Package session owns the client-side notion of "is there a live session":
// a persisted credential store and an in-memory state manager layered on it.
package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/dbx"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/session/migrations"
)

// tokenKey is the single fixed key the bearer token lives under.
const tokenKey = "access_token"

// Store persists the session credential across process restarts.
// Absence of a token is not an error: Read returns ("", nil).
type Store interface {
	Save(ctx context.Context, token string) error
	Read(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// SQLiteStore keeps the credential in a local SQLite key/value table, the
// CLI's analogue of origin-scoped browser storage.
type SQLiteStore struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the credential database at path and
// brings its schema up to date.
func OpenStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening credential store: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating credential store: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *SQLiteStore) Save(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, tokenKey, token)
	if err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Read(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, tokenKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	return value, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	// A single transaction so a half-cleared store can never be observed.
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM credentials`)
		return err
	})
	if err != nil {
		return fmt.Errorf("clearing credentials: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
