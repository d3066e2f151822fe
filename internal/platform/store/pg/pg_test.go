package pg

import (
	"context"
	"errors"
	"testing"

	"careerassist/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestOpen_BadURL(t *testing.T) {
	if _, err := Open(context.Background(), Config{URL: "://bad"}, nil); err == nil {
		t.Fatalf("Open(bad url) err = nil")
	}
}

func TestOpen_AppliesConfig(t *testing.T) {
	testkit.Serial(t)

	var seen *pgxpool.Config
	testkit.Swap(t, &newPool, func(_ context.Context, c *pgxpool.Config) (*pgxpool.Pool, error) {
		seen = c
		return &pgxpool.Pool{}, nil
	})

	p, err := Open(context.Background(), Config{
		URL:      "postgres://careerassist@localhost:5432/careerassist?sslmode=disable",
		AppName:  "careerassist-api",
		MaxConns: 7,
		SlowMs:   250,
	}, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if seen.MaxConns != 7 || seen.ConnConfig.RuntimeParams["application_name"] != "careerassist-api" {
		t.Fatalf("pool config = max %d app %q", seen.MaxConns, seen.ConnConfig.RuntimeParams["application_name"])
	}
	if p.SlowMs != 250 || p.Pool == nil {
		t.Fatalf("PG = %+v", p)
	}
}

func TestOpen_PoolError(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &newPool, func(context.Context, *pgxpool.Config) (*pgxpool.Pool, error) {
		return nil, errors.New("refused")
	})
	if _, err := Open(context.Background(), Config{URL: "postgres://localhost/db"}, nil); err == nil {
		t.Fatalf("Open err = nil, want pool error")
	}
}

func TestClose_NilSafe(t *testing.T) {
	var p *PG
	p.Close()
	(&PG{}).Close()
}
