package errors

import (
	"context"
	"database/sql"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLSTATE classes the conversation store can hit
var pgCodes = map[string]ErrorCode{
	"23505": ErrorCodeDuplicateKey,
	"23503": ErrorCodeInvalidArgument, // message for a chat that is gone
	"23502": ErrorCodeValidation,
	"23514": ErrorCodeValidation,
	"22001": ErrorCodeInvalidArgument,
	"22P02": ErrorCodeInvalidArgument,
	"40001": ErrorCodeDB,
	"40P01": ErrorCodeDB,
	"55P03": ErrorCodeDB,
	"25006": ErrorCodeUnavailable,
	"57P03": ErrorCodeUnavailable,
}

// sqlite extended result codes with the same meaning
var sqliteCodes = map[int]ErrorCode{
	sqlite3.SQLITE_CONSTRAINT_UNIQUE:     ErrorCodeDuplicateKey,
	sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY: ErrorCodeDuplicateKey,
	sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY: ErrorCodeInvalidArgument,
	sqlite3.SQLITE_CONSTRAINT_NOTNULL:    ErrorCodeValidation,
	sqlite3.SQLITE_CONSTRAINT_CHECK:      ErrorCodeValidation,
	sqlite3.SQLITE_BUSY:                  ErrorCodeUnavailable,
	sqlite3.SQLITE_LOCKED:                ErrorCodeUnavailable,
}

// DBErrorCode classifies a driver error from either store backend
// ok is false when err did not come from postgres or sqlite
func DBErrorCode(err error) (ErrorCode, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		if c, ok := pgCodes[pgErr.Code]; ok {
			return c, true
		}
		return ErrorCodeDB, true
	}
	var liteErr *sqlite.Error
	if stderrs.As(err, &liteErr) {
		if c, ok := sqliteCodes[liteErr.Code()]; ok {
			return c, true
		}
		return ErrorCodeDB, true
	}
	return ErrorCodeUnknown, false
}

// FromDB wraps a store error with its mapped code; missing rows become not found
func FromDB(err error, msg string) error {
	if err == nil {
		return nil
	}
	if stderrs.Is(err, pgx.ErrNoRows) || stderrs.Is(err, sql.ErrNoRows) {
		return Wrap(err, ErrorCodeNotFound, msg)
	}
	code, _ := DBErrorCode(err)
	if code == ErrorCodeUnknown {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// IsRetryable reports contention a fresh transaction may get past
// context cancellation is never retryable here
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	root := Root(err)

	var pgErr *pgconn.PgError
	if stderrs.As(root, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03":
			return true
		}
		return false
	}
	var liteErr *sqlite.Error
	if stderrs.As(root, &liteErr) {
		c := liteErr.Code() & 0xff
		return c == sqlite3.SQLITE_BUSY || c == sqlite3.SQLITE_LOCKED
	}

	// pgx reports a serialization abort at commit as plain text
	s := strings.ToLower(root.Error())
	for _, frag := range []string{
		"commit unexpectedly resulted in rollback",
		"deadlock detected",
		"could not serialize access",
		"canceling statement due to lock timeout",
	} {
		if strings.Contains(s, frag) {
			return true
		}
	}
	return false
}
