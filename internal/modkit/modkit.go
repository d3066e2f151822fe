// Package modkit provides module wiring and core deps
package modkit

import "careerassist/internal/modkit/module"

// Module is the surface every API module satisfies
type Module = module.Module
