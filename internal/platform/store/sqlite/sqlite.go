// Package sqlite opens an embedded SQLite database through the pure Go modernc driver
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Memory is the path of a private in-memory database
const Memory = ":memory:"

const defaultBusyTimeoutMs = 5000

// Config configures the sqlite client
type Config struct {
	Path          string
	BusyTimeoutMs int
	SlowMs        int
}

// DB is an open sqlite handle
type DB struct {
	SQL    *sql.DB
	Path   string
	SlowMs int
}

// DSN builds the driver name with per connection pragmas
func DSN(cfg Config) string {
	busy := cfg.BusyTimeoutMs
	if busy <= 0 {
		busy = defaultBusyTimeoutMs
	}
	path := cfg.Path
	if path == "" {
		path = Memory
	}
	return fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)", path, busy)
}

// Open opens and pings the database, creating the parent directory of a file path
func Open(ctx context.Context, cfg Config) (*DB, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		path = Memory
	}
	cfg.Path = path
	if path != Memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: create data dir: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	// every connection to :memory: is its own database; a single writer also avoids SQLITE_BUSY
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("sqlite: ping %s: %w", path, err)
	}
	if path != Memory {
		if _, err := conn.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("sqlite: enable wal: %w", err)
		}
	}
	return &DB{SQL: conn, Path: path, SlowMs: cfg.SlowMs}, nil
}

// Close closes the handle
func (d *DB) Close() error {
	if d == nil || d.SQL == nil {
		return nil
	}
	return d.SQL.Close()
}
