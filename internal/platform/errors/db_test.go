package errors

import (
	"context"
	"database/sql"
	stderrs "errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	_ "modernc.org/sqlite"
)

func pg(code string) *pgconn.PgError { return &pgconn.PgError{Code: code} }

// liteErr provokes a real sqlite error so the driver's own type is classified
func liteErr(t *testing.T, stmt string) error {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)
	for _, s := range []string{
		`PRAGMA foreign_keys = ON`,
		`CREATE TABLE chats (id TEXT PRIMARY KEY, user_id TEXT NOT NULL)`,
		`CREATE TABLE messages (chat_id TEXT NOT NULL REFERENCES chats(id), seq INTEGER NOT NULL CHECK (seq > 0))`,
		`INSERT INTO chats (id, user_id) VALUES ('c1', 'u1')`,
	} {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("%s: %v", s, err)
		}
	}
	_, err = db.Exec(stmt)
	if err == nil {
		t.Fatalf("%s: expected an error", stmt)
	}
	return err
}

func TestDBErrorCode_Postgres(t *testing.T) {
	cases := []struct {
		sqlstate string
		want     ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},
		{"23503", ErrorCodeInvalidArgument},
		{"23502", ErrorCodeValidation},
		{"23514", ErrorCodeValidation},
		{"22P02", ErrorCodeInvalidArgument},
		{"40001", ErrorCodeDB},
		{"57P03", ErrorCodeUnavailable},
		{"XX000", ErrorCodeDB},
	}
	for _, c := range cases {
		got, ok := DBErrorCode(pg(c.sqlstate))
		if !ok || got != c.want {
			t.Fatalf("DBErrorCode(%s) = %s, %v, want %s", c.sqlstate, got, ok, c.want)
		}
	}
	if _, ok := DBErrorCode(stderrs.New("nope")); ok {
		t.Fatalf("DBErrorCode(plain error) ok = true")
	}
}

func TestDBErrorCode_SQLite(t *testing.T) {
	cases := []struct {
		name string
		stmt string
		want ErrorCode
	}{
		{"primary key", `INSERT INTO chats (id, user_id) VALUES ('c1', 'u2')`, ErrorCodeDuplicateKey},
		{"not null", `INSERT INTO chats (id) VALUES ('c2')`, ErrorCodeValidation},
		{"foreign key", `INSERT INTO messages (chat_id, seq) VALUES ('gone', 1)`, ErrorCodeInvalidArgument},
		{"check", `INSERT INTO messages (chat_id, seq) VALUES ('c1', 0)`, ErrorCodeValidation},
		{"syntax", `SELEC 1`, ErrorCodeDB},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := DBErrorCode(liteErr(t, c.stmt))
			if !ok || got != c.want {
				t.Fatalf("DBErrorCode = %s, %v, want %s", got, ok, c.want)
			}
		})
	}
}

func TestFromDB(t *testing.T) {
	if FromDB(nil, "x") != nil {
		t.Fatalf("FromDB(nil) != nil")
	}
	for _, src := range []error{pgx.ErrNoRows, sql.ErrNoRows} {
		if got := CodeOf(FromDB(src, "read chat")); got != ErrorCodeNotFound {
			t.Fatalf("FromDB(%v) code = %s, want not_found", src, got)
		}
	}
	if got := CodeOf(FromDB(pg("23503"), "append message")); got != ErrorCodeInvalidArgument {
		t.Fatalf("fk violation code = %s, want invalid_argument", got)
	}
	if got := CodeOf(FromDB(stderrs.New("disk I/O error"), "write memory")); got != ErrorCodeDB {
		t.Fatalf("unknown driver error code = %s, want db", got)
	}
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{pg("40001"), true},
		{pg("40P01"), true},
		{pg("23505"), false},
		{Wrap(pg("55P03"), ErrorCodeDB, "append message"), true},
		{stderrs.New("commit unexpectedly resulted in rollback"), true},
		{stderrs.New("nope"), false},
		{context.DeadlineExceeded, false},
		{nil, false},
	}
	for _, c := range cases {
		if got := IsRetryable(c.err); got != c.want {
			t.Fatalf("IsRetryable(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}
