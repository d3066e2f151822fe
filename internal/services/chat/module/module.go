// Package module wires chat into the API using modkit
package module

import (
	"context"

	"careerassist/internal/adapters/cse"
	"careerassist/internal/adapters/groq"
	"careerassist/internal/adapters/resume"
	"careerassist/internal/core/dispatch"
	modkit "careerassist/internal/modkit"
	"careerassist/internal/modkit/httpkit"
	str "careerassist/internal/platform/strings"
	chatdom "careerassist/internal/services/chat/domain"
	chathttp "careerassist/internal/services/chat/http"
	chatrepo "careerassist/internal/services/chat/repo"
	chatsvc "careerassist/internal/services/chat/service"
)

// Module serves /chat
type Module struct {
	b     modkit.Built
	svc   chatsvc.Service
	ports any
}

// Ports lets callers inject collaborators, mostly for tests
// nil fields are built from configuration
type Ports struct {
	Completer  chatsvc.Completer
	Dispatcher chatsvc.Dispatcher
}

// New constructs a chat module with the provided dependencies and options
// deps.DB must be set; the schema is created on first use unless CHAT_MIGRATE=false
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("chat"), modkit.WithPrefix("/chat")}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Completer == nil {
		injected.Completer = groq.NewClient(groq.Options{
			APIKey:     cfg.GroqAPIKey,
			BaseURL:    cfg.GroqBaseURL,
			ChatModel:  cfg.GroqModel,
			Timeout:    cfg.GroqTimeout,
			MaxRetries: cfg.GroqRetries,
			MaxTokens:  cfg.GroqMaxTokens,
		})
	}
	if injected.Dispatcher == nil {
		search := cse.NewClient(cse.Options{APIKey: cfg.CSEKey, CX: cfg.CSECX, Delay: cfg.CSEDelay})
		injected.Dispatcher = dispatch.New(dispatch.Collaborators{
			Jobs:        search,
			Courses:     search,
			Communities: search,
			Resume:      resume.NewClient(resume.Options{URL: cfg.ResumeURL, Timeout: cfg.ResumeTimeout}),
		}, dispatch.WithLogger(deps.Log.With().Str("component", "dispatch").Logger()))
	}

	if deps.DB == nil {
		panic("chat module requires deps.DB")
	}
	if cfg.Migrate {
		if err := chatrepo.Migrate(context.Background(), deps.DB, deps.Dialect); err != nil {
			panic("chat schema migration failed: " + err.Error())
		}
	}

	svc := chatsvc.New(deps.DB, chatrepo.NewSQL(), injected.Completer, injected.Dispatcher, chatsvc.Config{
		HistoryLimit: cfg.HistoryLimit,
		ListLimit:    cfg.ListLimit,
		Prompt:       cfg.Prompt,
	})

	return &Module{b: b, svc: svc, ports: adaptChatPort{svc: svc}}
}

// MountRoutes implements module.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { chathttp.Register(rr, m.svc) })
}

// Name implements module.Module
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix is the mount path
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports exposes the chat service as a domain port
func (m *Module) Ports() any { return m.ports }

// adaptChatPort exposes the service through the domain port only
type adaptChatPort struct{ svc chatsvc.Service }

func (a adaptChatPort) Send(ctx context.Context, in chatdom.SendInput) (chatdom.SendOutput, error) {
	return a.svc.Send(ctx, in)
}

func (a adaptChatPort) Chats(ctx context.Context, q chatdom.ChatsQuery) ([]chatdom.Chat, error) {
	return a.svc.Chats(ctx, q)
}

func (a adaptChatPort) Messages(ctx context.Context, q chatdom.MessagesQuery) ([]chatdom.Message, error) {
	return a.svc.Messages(ctx, q)
}
