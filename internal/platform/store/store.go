// Package store opens the conversation database: postgres when configured, embedded sqlite otherwise
package store

import (
	"context"
	"errors"
	"fmt"

	"careerassist/internal/platform/logger"
)

// Store owns the one open backend
// the zero value has no backend; SQL reports DialectNone
type Store struct {
	// Log receives sql trace lines when LogSQL is set
	Log logger.Logger

	db      TxRunner
	dialect Dialect
}

// Row is the scan contract for a single row
type Row interface {
	Scan(dest ...any) error
}

// Rows iterates a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports what a write touched
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the read and write surface repos use
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner runs fn inside a transaction, committing when fn returns nil
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Pinger reports backend readiness
type Pinger interface{ Ping(context.Context) error }

// Open connects the backend cfg selects
// postgres wins when both are enabled; a postgres failure does not fall back
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	var err error
	switch {
	case cfg.PG.Enabled:
		s.db, err = openPG(ctx, cfg, s.Log)
		s.dialect = DialectPostgres
	case cfg.SQLite.Enabled:
		s.db, err = openSQLite(ctx, cfg, s.Log)
		s.dialect = DialectSQLite
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SQL returns the open backend and its dialect
func (s *Store) SQL() (TxRunner, Dialect) {
	if s == nil || s.db == nil {
		return nil, DialectNone
	}
	return s.db, s.dialect
}

// Guard pings the open backend; a store without one passes
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	if p, ok := s.db.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("%s: %w", s.dialect, err)
		}
	}
	return nil
}

// Close releases the backend
func (s *Store) Close(context.Context) error {
	if c, ok := s.db.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
