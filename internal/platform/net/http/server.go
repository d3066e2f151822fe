package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"strings"
	"time"

	"careerassist/internal/platform/config"
	"careerassist/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the chi mux and the listener
type Server struct {
	mux *chi.Mux
	srv *stdhttp.Server
}

// NewServer reads PORT, READ_TIMEOUT and IDLE_TIMEOUT from cfg
// PORT may be a bare number, ":port" or "host:port"
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := strings.TrimSpace(cfg.MayString("PORT", ":4000"))
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		mux: m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
			// voice uploads arrive as one multipart body
			ReadTimeout: cfg.MayDuration("READ_TIMEOUT", 30*time.Second),
			IdleTimeout: cfg.MayDuration("IDLE_TIMEOUT", 120*time.Second),
		},
	}
}

// Router returns the Router seam over the mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Run listens until Shutdown; a clean shutdown returns nil
func (s *Server) Run(ctx context.Context) error {
	logger.C(ctx).Info().Str("component", "http").Str("addr", s.srv.Addr).Msg("http listening")
	if err := s.srv.ListenAndServe(); !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
