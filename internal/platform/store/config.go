package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG     PGConfig
	SQLite SQLiteConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// boot ping, zero values fall back to 20 attempts of 3s each
	ConnectRetries int
	PingTimeout    time.Duration
}

// SQLiteConfig configures the embedded sqlite backend
// it is used when postgres is disabled
type SQLiteConfig struct {
	Enabled       bool
	Path          string // file path or ":memory:"
	BusyTimeoutMs int
	LogSQL        bool
	SlowQueryMs   int
}
