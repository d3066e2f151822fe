package store

import (
	"context"
	"fmt"
	"time"

	"careerassist/internal/platform/logger"
	"careerassist/internal/platform/store/pg"
	"careerassist/internal/platform/store/sqlite"

	"github.com/cenkalti/backoff/v4"
)

// openPG opens the pool and waits for the server to answer
func openPG(ctx context.Context, cfg Config, log logger.Logger) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		AppName:  cfg.AppName,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
	}, tracer)
	if err != nil {
		return nil, err
	}

	if err := pingWithBackoff(ctx, p, cfg.PG.ConnectRetries, cfg.PG.PingTimeout); err != nil {
		p.Close()
		return nil, err
	}
	return newPGAdapter(p), nil
}

const (
	defaultPingAttempts = 20
	defaultPingTimeout  = 3 * time.Second
	backoffStart        = 150 * time.Millisecond
	backoffCeiling      = 2 * time.Second
)

// pingWithBackoff pings the pool directly so no trace line is emitted
func pingWithBackoff(ctx context.Context, p *pg.PG, attemptsMax int, timeout time.Duration) error {
	if attemptsMax <= 0 {
		attemptsMax = defaultPingAttempts
	}
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = backoffStart
	b.MaxInterval = backoffCeiling
	b.MaxElapsedTime = 0

	attempts := 0
	err := backoff.Retry(func() error {
		attempts++
		toCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return p.Pool.Ping(toCtx)
	}, backoff.WithContext(backoff.WithMaxRetries(b, uint64(attemptsMax-1)), ctx))
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, err)
}

// openSQLite opens the embedded database
func openSQLite(ctx context.Context, cfg Config, log logger.Logger) (TxRunner, error) {
	db, err := sqlite.Open(ctx, sqlite.Config{
		Path:          cfg.SQLite.Path,
		BusyTimeoutMs: cfg.SQLite.BusyTimeoutMs,
		SlowMs:        cfg.SQLite.SlowQueryMs,
	})
	if err != nil {
		return nil, err
	}
	return newSQLiteAdapter(db, log, cfg.SQLite.LogSQL), nil
}
