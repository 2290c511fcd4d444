package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/MrSnakeDoc/alumnet/internal/store"
)

// Backend stores each collection as one JSON document row in an embedded SQLite database.
type Backend struct {
	db   *sql.DB
	path string
}

// New opens (or creates) the database at path.
func New(path string) (*Backend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One connection keeps the pragmas below in effect for every query.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	b := &Backend{db: db, path: path}
	if err := b.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return b, nil
}

func (b *Backend) migrate() error {
	_, err := b.db.Exec(`
		CREATE TABLE IF NOT EXISTS collections (
			name       TEXT PRIMARY KEY,
			data       TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create collections table: %w", err)
	}
	return nil
}

func (b *Backend) Name() string { return "sqlite" }

// Path returns the database file path.
func (b *Backend) Path() string { return b.path }

func (b *Backend) Load(ctx context.Context, c store.Collection) ([]byte, error) {
	var data string
	err := b.db.QueryRowContext(ctx, "SELECT data FROM collections WHERE name = ?", string(c)).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", c, store.ErrCollectionMissing)
		}
		return nil, err
	}
	return []byte(data), nil
}

func (b *Backend) Save(ctx context.Context, c store.Collection, data []byte) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO collections (name, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(c), string(data), time.Now().UTC().Format(time.RFC3339))
	return err
}

func (b *Backend) Ensure(ctx context.Context, c store.Collection) (bool, error) {
	res, err := b.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO collections (name, data, updated_at) VALUES (?, '[]', ?)",
		string(c), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (b *Backend) Ping(ctx context.Context) error { return b.db.PingContext(ctx) }

// Close closes the database connection.
func (b *Backend) Close() error { return b.db.Close() }
