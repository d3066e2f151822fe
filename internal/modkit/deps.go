package modkit

import (
	"careerassist/internal/modkit/repokit"
	"careerassist/internal/platform/config"
	"careerassist/internal/platform/logger"
	"careerassist/internal/platform/store"
)

// Deps holds core dependencies passed to modules
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	// DB is the conversation store seam; Dialect says which sql flavour it speaks
	DB      repokit.TxRunner
	Dialect store.Dialect
}
