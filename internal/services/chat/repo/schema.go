package repo

import (
	"context"

	"careerassist/internal/modkit/repokit"
	perr "careerassist/internal/platform/errors"
	"careerassist/internal/platform/store"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS chats (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		title      TEXT NOT NULL,
		emoji      TEXT NOT NULL,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS chats_user_updated_idx ON chats (user_id, updated_at DESC)`,
	`CREATE TABLE IF NOT EXISTS chat_contexts (
		chat_id    TEXT PRIMARY KEY REFERENCES chats (id) ON DELETE CASCADE,
		context    TEXT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id         TEXT PRIMARY KEY,
		chat_id    TEXT NOT NULL REFERENCES chats (id) ON DELETE CASCADE,
		seq        INTEGER NOT NULL,
		role       TEXT NOT NULL CHECK (role IN ('user', 'assistant')),
		content    TEXT NOT NULL,
		created_at BIGINT NOT NULL,
		UNIQUE (chat_id, seq)
	)`,
}

// Migrate creates the conversation tables when they are missing
// concurrent postgres callers serialize on an advisory lock
func Migrate(ctx context.Context, db repokit.TxRunner, d store.Dialect) error {
	if d == store.DialectPostgres {
		db = repokit.WithBeginHooks(db, lockSchema)
	}
	return repokit.WithTx(ctx, db, func(q repokit.Queryer) error {
		for _, stmt := range schema {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return perr.FromDB(err, "migrate chat schema")
			}
		}
		return nil
	})
}

func lockSchema(ctx context.Context, q repokit.Queryer) error {
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('careerassist_chat_schema'))`); err != nil {
		return perr.FromDB(err, "lock chat schema")
	}
	return nil
}
