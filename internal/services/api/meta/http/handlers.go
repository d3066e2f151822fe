// Package http serves liveness, readiness, build info and the language catalog
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"careerassist/internal/core/langid"
	"careerassist/internal/core/version"
	"careerassist/internal/modkit/httpkit"
)

const readyBudget = 2 * time.Second

// Check is one readiness probe. A failing Optional check degrades readiness
// instead of failing it.
type Check struct {
	Name     string
	Optional bool
	Run      func(stdctx.Context) error
}

type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Checks      []Check
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	m := &meta{Deps: d, clock: time.Now}
	httpkit.Get(r, "/health", m.health)
	httpkit.Get(r, "/ready", m.ready)
	httpkit.Get(r, "/version", m.version)
	httpkit.Get(r, "/languages", m.languages)
}

type meta struct {
	Deps
	clock func() time.Time
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// Health is the liveness payload
type Health struct {
	Status  string `json:"status"  example:"ok"`
	Service string `json:"service" example:"careerassist-api"`
	Started string `json:"started" example:"2026-10-01T09:00:00Z"`
	Uptime  int64  `json:"uptime_seconds" example:"300"`
	Now     string `json:"now"     example:"2026-10-01T09:05:00Z"`
}

// Probe is the outcome of one Check
type Probe struct {
	Name     string `json:"name"   example:"sqlite"`
	Status   string `json:"status" example:"ok"`
	Optional bool   `json:"optional,omitempty"`
	Error    string `json:"error,omitempty" example:"GROQ_API_KEY not set"`
}

// Readiness is ok, degraded when an optional probe failed, or fail
type Readiness struct {
	Status string  `json:"status" example:"degraded"`
	Checks []Probe `json:"checks"`
	Now    string  `json:"now"    example:"2026-10-01T09:05:00Z"`
}

// @Summary Liveness with uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} Health "ok"
// @Router /meta/health [get]
func (m *meta) health(_ *http.Request) (any, error) {
	now := m.clock()
	return Health{
		Status:  "ok",
		Service: m.ServiceName,
		Started: stamp(m.StartedAt),
		Uptime:  int64(now.Sub(m.StartedAt) / time.Second),
		Now:     stamp(now),
	}, nil
}

// @Summary Readiness of the store and provider credentials
// @Description Always 200; the status field carries the verdict
// @Tags Meta
// @Produce json
// @Success 200 {object} Readiness "ok"
// @Router /meta/ready [get]
func (m *meta) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), readyBudget)
	defer cancel()

	res := Readiness{Status: "ok", Checks: make([]Probe, len(m.Checks))}
	for i, c := range m.Checks {
		p := Probe{Name: c.Name, Status: "ok", Optional: c.Optional}
		err := c.Run(ctx)
		if err != nil {
			p.Status, p.Error = "fail", err.Error()
		}
		res.Checks[i] = p
		if err == nil {
			continue
		}
		if !c.Optional {
			res.Status = "fail"
		} else if res.Status == "ok" {
			res.Status = "degraded"
		}
	}
	res.Now = stamp(m.clock())
	return res, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (m *meta) version(_ *http.Request) (any, error) {
	return version.For(m.ServiceName), nil
}

// @Summary Supported languages in catalog order
// @Tags Meta
// @Produce json
// @Success 200 {array} langid.Candidate "ok"
// @Router /meta/languages [get]
func (m *meta) languages(_ *http.Request) (any, error) {
	return langid.Catalog(), nil
}
