// Package module wires voice into the API using modkit
package module

import (
	"context"

	"careerassist/internal/adapters/groq"
	modkit "careerassist/internal/modkit"
	"careerassist/internal/modkit/httpkit"
	"careerassist/internal/platform/logger"
	str "careerassist/internal/platform/strings"
	voicedom "careerassist/internal/services/voice/domain"
	voicehttp "careerassist/internal/services/voice/http"
	voicesvc "careerassist/internal/services/voice/service"
)

// Module serves /voice
type Module struct {
	b     modkit.Built
	svc   voicesvc.Service
	log   logger.Logger
	ports any
}

// Ports lets callers inject the transcriber
type Ports struct {
	Transcriber voicesvc.Transcriber
}

// New constructs a voice module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("voice"), modkit.WithPrefix("/voice")}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Transcriber == nil {
		injected.Transcriber = groq.NewClient(groq.Options{
			APIKey:          cfg.APIKey,
			BaseURL:         cfg.BaseURL,
			TranscribeModel: cfg.Model,
			Timeout:         cfg.Timeout,
			MaxRetries:      cfg.MaxRetries,
		})
	}
	svc := voicesvc.New(injected.Transcriber, cfg.Prompt)

	return &Module{b: b, svc: svc, log: deps.Log, ports: adaptVoicePort{svc: svc}}
}

// MountRoutes implements module.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { voicehttp.Register(rr, m.svc, m.log) })
}

// Name implements module.Module
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix is the mount path
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports exposes the voice service as a domain port
func (m *Module) Ports() any { return m.ports }

type adaptVoicePort struct{ svc voicesvc.Service }

// Transcribe implements the domain ServicePort interface
func (a adaptVoicePort) Transcribe(ctx context.Context, in voicedom.TranscribeInput) (voicedom.TranscribeOutput, error) {
	return a.svc.Transcribe(ctx, in)
}
