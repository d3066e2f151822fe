// Package module wires meta endpoints into the API
package module

import (
	"context"
	"strings"
	"time"

	modkit "careerassist/internal/modkit"
	"careerassist/internal/modkit/httpkit"
	perr "careerassist/internal/platform/errors"
	"careerassist/internal/platform/store"
	str "careerassist/internal/platform/strings"

	metahttp "careerassist/internal/services/api/meta/http"
)

// Module serves /meta
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New constructs the meta module; readiness covers the store and the provider credentials
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	return &Module{b: b, deps: metahttp.Deps{
		ServiceName: "careerassist-api",
		StartedAt:   time.Now(),
		Checks:      checks(deps),
	}}
}

func checks(deps modkit.Deps) []metahttp.Check {
	var out []metahttp.Check
	if p, ok := deps.DB.(store.Pinger); ok {
		out = append(out, metahttp.Check{Name: string(deps.Dialect), Run: p.Ping})
	}
	for _, c := range []struct {
		name string
		env  []string
	}{
		{"groq", []string{"GROQ_API_KEY"}},
		{"google_cse", []string{"GOOGLE_CSE_KEY", "GOOGLE_CSE_CX"}},
		{"resume", []string{"RESUME_URL"}},
	} {
		var missing []string
		for _, k := range c.env {
			if deps.Cfg.MayString(k, "") == "" {
				missing = append(missing, k)
			}
		}
		out = append(out, metahttp.Check{Name: c.name, Optional: true, Run: func(context.Context) error {
			if len(missing) > 0 {
				return perr.Newf(perr.ErrorCodeAPIKeyMissing, "%s not set", strings.Join(missing, ", "))
			}
			return nil
		}})
	}
	return out
}

// MountRoutes implements module.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name implements module.Module
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Prefix is the mount path
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports implements module.Module; meta exports nothing
func (m *Module) Ports() any { return nil }
