// @title         careerassist API
// @version       0.1.0
// @description   Career assistant: chat, voice transcription and language identification

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"careerassist/internal/modkit/httpkit"
	"careerassist/internal/modkit/repokit"
	"careerassist/internal/platform/config"
	"careerassist/internal/platform/logger"
	phttp "careerassist/internal/platform/net/http"
	"careerassist/internal/platform/net/middleware"
	"careerassist/internal/platform/store"

	"careerassist/internal/services/api"

	"golang.org/x/sync/errgroup"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")    // postgres when DBURL is set
	liteCfg := root.Prefix("SERVICE_SQLITE_") // sqlite fallback otherwise
	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pgURL := pgCfg.MayString("DBURL", "")
	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "careerassist-api",
			PG: store.PGConfig{
				Enabled:     pgURL != "",
				URL:         pgURL,
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),

				ConnectRetries: pgCfg.MayInt("CONNECT_RETRIES", 20),
				PingTimeout:    pgCfg.MayDuration("PING_TIMEOUT", 3*time.Second),
			},
			SQLite: store.SQLiteConfig{
				Enabled:       liteCfg.MayBool("ENABLED", true),
				Path:          liteCfg.MayString("PATH", "careerassist.db"),
				BusyTimeoutMs: liteCfg.MayInt("BUSY_MS", 5000),
				SlowQueryMs:   liteCfg.MayInt("SLOW_MS", 500),
				LogSQL:        liteCfg.MayBool("LOG_SQL", false),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			Stack: httpkit.StackOptions{
				CORS: middleware.CORSOptions{
					AllowedOrigins: apiCfg.MayCSV("CORS_ORIGINS", []string{"*"}),
					MaxAge:         300,
				},
				Timeout:     apiCfg.MayDuration("REQUEST_TIMEOUT", 60*time.Second),
				SlowRequest: apiCfg.MayDuration("SLOW_REQUEST", 2*time.Second),
				MaxInFlight: apiCfg.MayInt("MAX_IN_FLIGHT", 0),
			},
		},
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), apiCfg.MayDuration("SHUTDOWN_TIMEOUT", 15*time.Second))
		defer cancel()
		l.Info().Msg("shutting down")
		return srv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
