package progress

import (
	"database/sql"
	"errors"
	"fmt"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Well-known storage keys: the live snapshot and the most recent
// export, kept separately for interoperability.
const (
	keySnapshot = "progress"
	keyExport   = "export"
)

// SQLiteBackend persists the snapshot document in a single-table
// SQLite database. The document is read and written whole under a
// fixed key; there is no relational query surface.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and
// prepares the snapshot table.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	if err := EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		key  TEXT PRIMARY KEY,
		data BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create snapshot table: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

func (b *SQLiteBackend) Load() ([]byte, error) {
	return b.load(keySnapshot)
}

func (b *SQLiteBackend) Save(data []byte) error {
	return b.save(keySnapshot, data)
}

func (b *SQLiteBackend) Clear() error {
	_, err := b.db.Exec(`DELETE FROM snapshots WHERE key = ?`, keySnapshot)
	return err
}

// RecordExport keeps the latest export under its own key.
func (b *SQLiteBackend) RecordExport(data []byte) error {
	return b.save(keyExport, data)
}

// LastExport returns the most recent export, or nil when none exists.
func (b *SQLiteBackend) LastExport() ([]byte, error) {
	return b.load(keyExport)
}

func (b *SQLiteBackend) load(key string) ([]byte, error) {
	var data []byte
	err := b.db.QueryRow(`SELECT data FROM snapshots WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return data, nil
}

func (b *SQLiteBackend) save(key string, data []byte) error {
	_, err := b.db.Exec(`INSERT INTO snapshots (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data`, key, data)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
