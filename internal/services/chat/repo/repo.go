// Package repo provides the conversation store over postgres or sqlite
//
// Queries stay inside the dialect both backends accept; timestamps are unix milliseconds
package repo

import (
	"context"

	"careerassist/internal/modkit/repokit"
	perr "careerassist/internal/platform/errors"
	"careerassist/internal/platform/store"
)

type (
	sqlRepo struct{ q repokit.Queryer }
	binder  struct{}
)

// NewSQL constructs a new repo binder
func NewSQL() repokit.Binder[Repo] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Repo { return &sqlRepo{q: q} }

// RowChat is a chats row joined to its context
type RowChat struct {
	ID        string
	UserID    string
	Title     string
	Emoji     string
	Context   string
	CreatedAt int64
	UpdatedAt int64
}

// RowMessage is a messages row
type RowMessage struct {
	ID        string
	ChatID    string
	Seq       int64
	Role      string
	Content   string
	CreatedAt int64
}

// Repo defines the conversation store
type Repo interface {
	ReadMemory(ctx context.Context, chatID string) (RowChat, error)
	WriteMemory(ctx context.Context, c RowChat) error
	AppendMessages(ctx context.Context, chatID string, ms []RowMessage) error
	RecentMessages(ctx context.Context, chatID string, limit int) ([]RowMessage, error)
	ListChats(ctx context.Context, userID string, limit int) ([]RowChat, error)
}

// ReadMemory returns the chat and its context, NotFound when the chat is unknown
func (r *sqlRepo) ReadMemory(ctx context.Context, chatID string) (RowChat, error) {
	var c RowChat
	err := r.q.QueryRow(ctx, `
		SELECT c.id, c.user_id, c.title, c.emoji, COALESCE(x.context, ''), c.created_at, c.updated_at
		FROM chats c
		LEFT JOIN chat_contexts x ON x.chat_id = c.id
		WHERE c.id = $1`, chatID,
	).Scan(&c.ID, &c.UserID, &c.Title, &c.Emoji, &c.Context, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return RowChat{}, perr.FromDB(err, "read chat memory")
	}
	return c, nil
}

// WriteMemory upserts the chat identity and its context
// created_at and user_id are only written on insert
func (r *sqlRepo) WriteMemory(ctx context.Context, c RowChat) error {
	if _, err := r.q.Exec(ctx, `
		INSERT INTO chats (id, user_id, title, emoji, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			emoji = excluded.emoji,
			updated_at = excluded.updated_at`,
		c.ID, c.UserID, c.Title, c.Emoji, c.CreatedAt, c.UpdatedAt,
	); err != nil {
		return perr.FromDB(err, "write chat")
	}
	if _, err := r.q.Exec(ctx, `
		INSERT INTO chat_contexts (chat_id, context, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (chat_id) DO UPDATE SET
			context = excluded.context,
			updated_at = excluded.updated_at`,
		c.ID, c.Context, c.UpdatedAt,
	); err != nil {
		return perr.FromDB(err, "write chat context")
	}
	return nil
}

// AppendMessages stores ms after the chat's last message, in order
// Seq on the inputs is ignored and assigned here
func (r *sqlRepo) AppendMessages(ctx context.Context, chatID string, ms []RowMessage) error {
	if len(ms) == 0 {
		return nil
	}
	last, err := store.Scalar[int64](ctx, r.q, `SELECT COALESCE(MAX(seq), 0) FROM messages WHERE chat_id = $1`, chatID)
	if err != nil {
		return perr.FromDB(err, "read last message seq")
	}
	for i, m := range ms {
		if _, err := r.q.Exec(ctx, `
			INSERT INTO messages (id, chat_id, seq, role, content, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			m.ID, chatID, last+int64(i)+1, m.Role, m.Content, m.CreatedAt,
		); err != nil {
			return perr.FromDB(err, "append message")
		}
	}
	return nil
}

// RecentMessages returns up to limit of the newest messages, oldest first
func (r *sqlRepo) RecentMessages(ctx context.Context, chatID string, limit int) ([]RowMessage, error) {
	out, err := store.Many(ctx, r.q, scanMessage, `
		SELECT id, chat_id, seq, role, content, created_at
		FROM messages
		WHERE chat_id = $1
		ORDER BY seq DESC
		LIMIT $2`, chatID, limit,
	)
	if err != nil {
		return nil, perr.FromDB(err, "read recent messages")
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// ListChats returns the user's chats, most recently updated first
func (r *sqlRepo) ListChats(ctx context.Context, userID string, limit int) ([]RowChat, error) {
	out, err := store.Many(ctx, r.q, scanChat, `
		SELECT id, user_id, title, emoji, created_at, updated_at
		FROM chats
		WHERE user_id = $1
		ORDER BY updated_at DESC, id
		LIMIT $2`, userID, limit,
	)
	if err != nil {
		return nil, perr.FromDB(err, "list chats")
	}
	return out, nil
}

func scanMessage(r store.Row) (RowMessage, error) {
	var m RowMessage
	err := r.Scan(&m.ID, &m.ChatID, &m.Seq, &m.Role, &m.Content, &m.CreatedAt)
	return m, err
}

func scanChat(r store.Row) (RowChat, error) {
	var c RowChat
	err := r.Scan(&c.ID, &c.UserID, &c.Title, &c.Emoji, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
