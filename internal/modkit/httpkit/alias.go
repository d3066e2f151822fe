// Package httpkit is what modules mount handlers with, so they never import
// internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "careerassist/internal/platform/net/http"
)

type (
	// Envelope is the response body every endpoint writes
	Envelope = phttp.Envelope

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// Call adapts a handler that reads no JSON body; a returned error becomes an error envelope
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		return phttp.OK(out)
	})
}
