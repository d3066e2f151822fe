// Package service runs one chat cycle: identify, complete, classify, dispatch, persist
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"careerassist/internal/adapters/groq"
	"careerassist/internal/core/dispatch"
	"careerassist/internal/core/intent"
	"careerassist/internal/core/langid"
	"careerassist/internal/core/normalize"
	"careerassist/internal/modkit/repokit"
	perr "careerassist/internal/platform/errors"
	"careerassist/internal/platform/logger"
	"careerassist/internal/services/chat/domain"
	"careerassist/internal/services/chat/repo"
)

const persistAttempts = 3

// Completer produces the raw assistant reply
type Completer interface {
	Complete(ctx context.Context, r groq.ChatRequest) (string, error)
}

// Dispatcher turns a classified reply into the outbound message and next memory
type Dispatcher interface {
	Dispatch(ctx context.Context, in intent.Intent, prior dispatch.Memory, userMessage string) dispatch.Outcome
}

// Service defines the service contract for chat
type Service interface{ domain.ServicePort }

// Config tunes one chat cycle
type Config struct {
	// HistoryLimit is how many stored turns are replayed to the model
	HistoryLimit int
	// ListLimit caps chat and message listings when the caller gives none
	ListLimit int
	// Prompt replaces the base persona when set
	Prompt string
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	llm  Completer
	disp Dispatcher
	cfg  Config

	now   func() time.Time
	newID func() string
}

// New creates a new chat service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], llm Completer, disp Dispatcher, cfg Config) *Svc {
	if db == nil {
		panic("chat.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("chat.Service requires a non nil Repo binder")
	}
	if llm == nil || disp == nil {
		panic("chat.Service requires a Completer and a Dispatcher")
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 10
	}
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = 50
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		llm:    llm,
		disp:   disp,
		cfg:    cfg,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Send runs one chat cycle and stores both turns with the updated memory
func (s *Svc) Send(ctx context.Context, in domain.SendInput) (domain.SendOutput, error) {
	in.Message = normalize.Sanitize(in.Message)
	lang := langid.Identify(in.Message, in.Language)

	prior, history, err := s.load(ctx, in)
	if err != nil {
		return domain.SendOutput{}, localize(lang.Code, err)
	}

	raw, err := s.llm.Complete(ctx, groq.ChatRequest{
		System:  s.system(lang.Code, prior.Context),
		History: history,
		User:    in.Message,
	})
	if err != nil {
		return s.fallback(ctx, in, lang, prior, err)
	}

	kind := intent.Classify(raw)
	out := s.disp.Dispatch(ctx, kind, prior, in.Message)

	chatID := prior.ChatID
	if chatID == "" {
		chatID = in.ChatID
	}
	if chatID == "" {
		chatID = s.newID()
	}
	if err := s.persist(ctx, chatID, in, out); err != nil {
		return domain.SendOutput{}, localize(lang.Code, err)
	}

	logger.C(ctx).Debug().
		Str("component", "chat").
		Str("chat_id", chatID).
		Str("intent", kind.Kind.String()).
		Str("language", lang.Code).
		Bool("new", prior.IsNew()).
		Msg("chat cycle")

	return domain.SendOutput{
		ChatID:     chatID,
		Message:    out.Message,
		Title:      out.Memory.Title,
		Emoji:      out.Memory.Emoji,
		Intent:     kind.Kind.String(),
		Language:   lang.Code,
		Confidence: lang.Confidence,
	}, nil
}

// fallback answers a failed completion with a localized apology. Missing
// credentials stay an error; only existing chats record the exchange.
func (s *Svc) fallback(ctx context.Context, in domain.SendInput, lang langid.Result, prior dispatch.Memory, err error) (domain.SendOutput, error) {
	if perr.Terminal(err) {
		return domain.SendOutput{}, localize(lang.Code, err)
	}
	out := dispatch.Fallback(prior, in.Message, langid.UserMessage(lang.Code, err), err)
	logger.C(ctx).Warn().Err(err).
		Str("component", "chat").
		Str("chat_id", prior.ChatID).
		Msg("completion failed, answering with fallback")

	if !prior.IsNew() {
		if werr := s.persist(ctx, prior.ChatID, in, out); werr != nil {
			return domain.SendOutput{}, localize(lang.Code, werr)
		}
	}
	chatID := prior.ChatID
	if chatID == "" {
		chatID = in.ChatID
	}
	return domain.SendOutput{
		ChatID:     chatID,
		Message:    out.Message,
		Title:      out.Memory.Title,
		Emoji:      out.Memory.Emoji,
		Intent:     "error",
		Language:   lang.Code,
		Confidence: lang.Confidence,
	}, nil
}

// load reads the prior memory and replayable history
// an unknown chat id starts a new conversation stored under that id
func (s *Svc) load(ctx context.Context, in domain.SendInput) (dispatch.Memory, []groq.Message, error) {
	if in.ChatID == "" {
		return dispatch.Memory{}, nil, nil
	}
	row, err := s.Repo.ReadMemory(ctx, in.ChatID)
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return dispatch.Memory{}, nil, nil
	}
	if err != nil {
		return dispatch.Memory{}, nil, err
	}
	if row.UserID != in.UserID {
		return dispatch.Memory{}, nil, perr.Forbiddenf("chat %s belongs to another user", in.ChatID)
	}

	msgs, err := s.Repo.RecentMessages(ctx, in.ChatID, s.cfg.HistoryLimit)
	if err != nil {
		return dispatch.Memory{}, nil, err
	}
	history := make([]groq.Message, 0, len(msgs))
	for _, m := range msgs {
		history = append(history, groq.Message{Role: m.Role, Content: m.Content})
	}
	return dispatch.Memory{ChatID: row.ID, Title: row.Title, Emoji: row.Emoji, Context: row.Context}, history, nil
}

func (s *Svc) system(code, memo string) string {
	p := langid.SystemPrompt(code, s.cfg.Prompt) + "\n\n" + intent.ProtocolInstructions
	if strings.TrimSpace(memo) != "" {
		p += "\n\nConversation context:\n" + memo
	}
	return p
}

// persist stores the memory and both turns in one transaction
// a concurrent append to the same chat surfaces as a seq collision and is retried
func (s *Svc) persist(ctx context.Context, chatID string, in domain.SendInput, out dispatch.Outcome) error {
	var err error
	for attempt := 0; attempt < persistAttempts; attempt++ {
		if err = s.persistOnce(ctx, chatID, in, out); err == nil {
			return nil
		}
		if !perr.Retryable(err) && !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return err
}

func (s *Svc) persistOnce(ctx context.Context, chatID string, in domain.SendInput, out dispatch.Outcome) error {
	ts := s.now().UnixMilli()
	return repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := repokit.MustBind(s.binder, q)
		if err := r.WriteMemory(ctx, repo.RowChat{
			ID:        chatID,
			UserID:    in.UserID,
			Title:     out.Memory.Title,
			Emoji:     out.Memory.Emoji,
			Context:   out.Memory.Context,
			CreatedAt: ts,
			UpdatedAt: ts,
		}); err != nil {
			return err
		}
		return r.AppendMessages(ctx, chatID, []repo.RowMessage{
			{ID: s.newID(), Role: string(domain.RoleUser), Content: in.Message, CreatedAt: ts},
			{ID: s.newID(), Role: string(domain.RoleAssistant), Content: out.Message, CreatedAt: ts},
		})
	})
}

// Chats lists a user's conversations, newest first
func (s *Svc) Chats(ctx context.Context, q domain.ChatsQuery) ([]domain.Chat, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = s.cfg.ListLimit
	}
	rows, err := s.Repo.ListChats(ctx, q.UserID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Chat, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Chat{
			ID:        r.ID,
			Title:     r.Title,
			Emoji:     r.Emoji,
			CreatedAt: time.UnixMilli(r.CreatedAt).UTC(),
			UpdatedAt: time.UnixMilli(r.UpdatedAt).UTC(),
		})
	}
	return out, nil
}

// Messages returns the newest messages of a chat, oldest first
// only the chat's owner may read it
func (s *Svc) Messages(ctx context.Context, q domain.MessagesQuery) ([]domain.Message, error) {
	row, err := s.Repo.ReadMemory(ctx, q.ChatID)
	if err != nil {
		return nil, err
	}
	if row.UserID != q.UserID {
		return nil, perr.Forbiddenf("chat %s belongs to another user", q.ChatID)
	}
	rows, err := s.Repo.RecentMessages(ctx, q.ChatID, s.cfg.ListLimit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Message, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Message{
			ID:        r.ID,
			Role:      domain.Role(r.Role),
			Content:   r.Content,
			CreatedAt: time.UnixMilli(r.CreatedAt).UTC(),
		})
	}
	return out, nil
}

// localize keeps the error code and swaps in a message in the user's language
// errors without a dedicated message pass through unchanged
func localize(lang string, err error) error {
	for _, c := range perr.Codes(err) {
		if langid.HasMessage(c) {
			return perr.Wrap(err, perr.CodeOf(err), langid.ErrorMessage(lang, c))
		}
	}
	return err
}
