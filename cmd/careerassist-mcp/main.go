// Command careerassist-mcp exposes language identification, reply classification
// and the search adapters as MCP tools over stdio
package main

import (
	"fmt"
	"os"

	"careerassist/internal/adapters/cse"
	"careerassist/internal/core/version"
	"careerassist/internal/platform/config"
	"careerassist/internal/platform/logger"

	"github.com/mark3labs/mcp-go/server"
)

func main() {
	// stdout carries the protocol, logs go to stderr
	lo := logger.FromEnv()
	lo.Writer = os.Stderr
	lo.Service = "careerassist-mcp"
	logger.Init(lo)
	l := logger.Get()

	cseCfg := config.New().Prefix("GOOGLE_CSE_")
	search := cse.NewClient(cse.Options{
		APIKey: cseCfg.MayString("KEY", ""),
		CX:     cseCfg.MayString("CX", ""),
		Delay:  cseCfg.MayDuration("DELAY", 0),
	})
	if !search.Configured() {
		l.Warn().Msg("GOOGLE_CSE_KEY or GOOGLE_CSE_CX missing; search tools will fail")
	}

	s := server.NewMCPServer("careerassist", version.For("careerassist-mcp").Version,
		server.WithToolCapabilities(false),
	)
	register(s, &tools{search: search})

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
