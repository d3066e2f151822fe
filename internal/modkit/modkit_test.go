package modkit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"careerassist/internal/modkit/httpkit"
	phttp "careerassist/internal/platform/net/http"
)

// pingModule owns a single GET /ping
type pingModule struct{ b Built }

func (m pingModule) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		rr.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("pong")) })
	})
}
func (m pingModule) Ports() any   { return m.b.Ports }
func (m pingModule) Name() string { return m.b.Name }

var _ Module = pingModule{}

func tag(name string, trail *[]string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trail = append(*trail, name)
			next.ServeHTTP(w, r)
		})
	}
}

func serve(t *testing.T, m Module, path string) *httptest.ResponseRecorder {
	t.Helper()
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestBuild_Defaults(t *testing.T) {
	b := Build(WithName("ping"), WithPrefix("/p"))
	if b.Name != "ping" || b.Prefix != "/p" {
		t.Fatalf("Build() = %q %q, want ping /p", b.Name, b.Prefix)
	}
	if b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("Build() carried ports %v or %d middlewares", b.Ports, len(b.Mw))
	}

	rec := serve(t, pingModule{b}, "/p/ping")
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("GET /p/ping = %d %q, want 200 pong", rec.Code, rec.Body.String())
	}
}

func TestBuild_HooksRunInOrder(t *testing.T) {
	var trail []string
	b := Build(
		WithName("ping"),
		WithPrefix("/p"),
		WithMiddlewares(tag("a", &trail), tag("b", &trail)),
		WithSubrouter(func(r phttp.Router) phttp.Router {
			r.Use(tag("sub", &trail))
			return r
		}),
		WithRegister(func(r phttp.Router) {
			r.Get("/extra", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) })
		}),
		WithPorts(map[string]int{"n": 1}),
	)

	rec := serve(t, pingModule{b}, "/p/extra")
	if rec.Code != http.StatusAccepted {
		t.Fatalf("GET /p/extra = %d, want 202", rec.Code)
	}
	if got := strings.Join(trail, ","); got != "a,b,sub" {
		t.Fatalf("middleware order = %q, want a,b,sub", got)
	}
	if p, ok := b.Ports.(map[string]int); !ok || p["n"] != 1 {
		t.Fatalf("Ports = %#v", b.Ports)
	}
}

func TestBuild_CopiesMiddlewares(t *testing.T) {
	var trail []string
	mws := []func(http.Handler) http.Handler{tag("a", &trail)}
	b := Build(WithMiddlewares(mws...), WithPrefix("/p"))
	mws[0] = tag("changed", &trail)

	serve(t, pingModule{b}, "/p/ping")
	if len(trail) != 1 || trail[0] != "a" {
		t.Fatalf("trail = %v, want [a]", trail)
	}
}
