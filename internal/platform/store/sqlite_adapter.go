package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"careerassist/internal/platform/logger"
	"careerassist/internal/platform/store/sqlite"
)

// sqliteAdapter wraps sqlite.DB and implements RowQuerier + TxRunner
// statements are written with postgres placeholders and rebound here
type sqliteAdapter struct {
	db     *sqlite.DB
	log    logger.Logger
	logSQL bool
}

func newSQLiteAdapter(db *sqlite.DB, log logger.Logger, logSQL bool) *sqliteAdapter {
	return &sqliteAdapter{db: db, log: log.With().Str("component", "sqlite").Logger(), logSQL: logSQL}
}

func (a *sqliteAdapter) Ping(ctx context.Context) error {
	if a == nil || a.db == nil {
		return errors.New("sqlite: nil adapter")
	}
	return a.db.SQL.PingContext(ctx)
}

func (a *sqliteAdapter) Close() error { return a.db.Close() }

func (a *sqliteAdapter) Exec(ctx context.Context, q string, args ...any) (CommandTag, error) {
	return execLite(ctx, a.db.SQL, a, q, args)
}

func (a *sqliteAdapter) Query(ctx context.Context, q string, args ...any) (Rows, error) {
	return queryLite(ctx, a.db.SQL, a, q, args)
}

func (a *sqliteAdapter) QueryRow(ctx context.Context, q string, args ...any) Row {
	return queryRowLite(ctx, a.db.SQL, a, q, args)
}

func (a *sqliteAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.db.SQL.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(liteTx{tx: tx, a: a}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (a *sqliteAdapter) emit(q string, args []any, start time.Time, err error) {
	elapsed := time.Since(start)
	slow := a.db.SlowMs > 0 && elapsed >= time.Duration(a.db.SlowMs)*time.Millisecond
	if !a.logSQL && !slow {
		return
	}
	evt := a.log.Debug()
	if slow {
		evt = a.log.Warn()
	}
	evt.Float64("elapsed_ms", float64(elapsed.Microseconds())/1000).
		Bool("slow", slow).
		Str("sql", q).
		Interface("args", args).
		Err(err).
		Msg("sqlite query")
}

// liteConn is the part of *sql.DB and *sql.Tx the adapter uses
type liteConn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func execLite(ctx context.Context, c liteConn, a *sqliteAdapter, q string, args []any) (CommandTag, error) {
	start := time.Now()
	res, err := c.ExecContext(ctx, rebind(q), args...)
	a.emit(q, args, start, err)
	if err != nil {
		return liteTag{}, err
	}
	n, _ := res.RowsAffected()
	return liteTag{n: n}, nil
}

func queryLite(ctx context.Context, c liteConn, a *sqliteAdapter, q string, args []any) (Rows, error) {
	start := time.Now()
	rs, err := c.QueryContext(ctx, rebind(q), args...)
	a.emit(q, args, start, err)
	if err != nil {
		return nil, err
	}
	return liteRows{r: rs}, nil
}

func queryRowLite(ctx context.Context, c liteConn, a *sqliteAdapter, q string, args []any) Row {
	start := time.Now()
	r := c.QueryRowContext(ctx, rebind(q), args...)
	return row{
		r: r,
		after: func(scanErr error) {
			a.emit(q, args, start, scanErr)
		},
	}
}

// liteTx routes statements through an open transaction
type liteTx struct {
	tx *sql.Tx
	a  *sqliteAdapter
}

func (t liteTx) Exec(ctx context.Context, q string, args ...any) (CommandTag, error) {
	return execLite(ctx, t.tx, t.a, q, args)
}

func (t liteTx) Query(ctx context.Context, q string, args ...any) (Rows, error) {
	return queryLite(ctx, t.tx, t.a, q, args)
}

func (t liteTx) QueryRow(ctx context.Context, q string, args ...any) Row {
	return queryRowLite(ctx, t.tx, t.a, q, args)
}

type liteRows struct{ r *sql.Rows }

func (x liteRows) Next() bool            { return x.r.Next() }
func (x liteRows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x liteRows) Err() error            { return x.r.Err() }
func (x liteRows) Close()                { _ = x.r.Close() }
func (x liteRows) Columns() []string {
	cols, _ := x.r.Columns()
	return cols
}

// liteTag renders like a postgres tag so ExecOne works on both backends
type liteTag struct{ n int64 }

func (t liteTag) String() string      { return fmt.Sprintf("ROWS %d", t.n) }
func (t liteTag) RowsAffected() int64 { return t.n }
