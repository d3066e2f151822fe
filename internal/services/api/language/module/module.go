// Package module wires language identification into the API
package module

import (
	modkit "careerassist/internal/modkit"
	"careerassist/internal/modkit/httpkit"
	str "careerassist/internal/platform/strings"

	langhttp "careerassist/internal/services/api/language/http"
)

// Module serves /language; it holds no state
type Module struct{ b modkit.Built }

// New constructs the language module
func New(_ modkit.Deps, opts ...modkit.Option) *Module {
	return &Module{b: modkit.Build(append([]modkit.Option{
		modkit.WithName("language"),
		modkit.WithPrefix("/language"),
	}, opts...)...)}
}

// MountRoutes implements module.Module
func (m *Module) MountRoutes(r httpkit.Router) { m.b.Mount(r, langhttp.Register) }

// Name implements module.Module
func (m *Module) Name() string { return str.MustString(m.b.Name, "language") }

// Prefix is the mount path
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports implements module.Module; language exports nothing
func (m *Module) Ports() any { return nil }
