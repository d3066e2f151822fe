package httpkit

import (
	"net/http"
	"strings"

	"careerassist/internal/platform/net/middleware"
)

// MountAPI mounts a subrouter under /api/{version}, applies mw, then calls mount on it
// GET /api/{version}/ping answers 200 ahead of mw for load balancer probes
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	prefix := "/api/" + strings.Trim(version, "/")
	r.Route(prefix, func(api Router) {
		api.Use(middleware.Heartbeat(prefix + "/ping"))
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// MountAPIV1 is MountAPI for v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
