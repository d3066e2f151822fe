// Package api provides the HTTP API for the application
package api

import (
	"careerassist/internal/platform/config"
	"careerassist/internal/platform/logger"
	phttp "careerassist/internal/platform/net/http"
	"careerassist/internal/platform/store"

	"careerassist/internal/modkit"
	"careerassist/internal/modkit/httpkit"
	"careerassist/internal/modkit/module"
	"careerassist/internal/modkit/swaggerkit"

	langmod "careerassist/internal/services/api/language/module"
	metamod "careerassist/internal/services/api/meta/module"
	chatmod "careerassist/internal/services/chat/module"
	voicemod "careerassist/internal/services/voice/module"
)

// Options are the API options
type Options struct {
	// Config is the root view; modules read their own prefixes from it
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool

	// Stack tunes the shared middleware; zero values take the defaults
	Stack httpkit.StackOptions

	// Modules replaces the default module set, mostly for tests
	Modules func(modkit.Deps) []module.Module
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{Cfg: opt.Config}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil {
		deps.DB, deps.Dialect = opt.Store.SQL()
	}

	build := opt.Modules
	if build == nil {
		build = DefaultModules
	}
	mods := build(deps)

	stack := httpkit.CommonStack(opt.Stack)
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}

// DefaultModules is the production module set
// chat is only mounted when a conversation store is configured
func DefaultModules(deps modkit.Deps) []module.Module {
	mods := []module.Module{
		metamod.New(deps),
		langmod.New(deps),
		voicemod.New(deps),
	}
	if deps.DB != nil {
		mods = append(mods, chatmod.New(deps))
	}
	return mods
}
