package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"careerassist/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORS middleware.CORSOptions

	// Timeout bounds each request, default 60s so transcription and the model chain fit
	Timeout time.Duration

	// SlowRequest logs requests at least this slow at warn, default 2s
	SlowRequest time.Duration

	// MaxInFlight caps concurrent requests, 0 means no cap
	MaxInFlight int
}

// CommonStack returns the middleware every API module runs behind
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 60 * time.Second
	}
	if o.SlowRequest <= 0 {
		o.SlowRequest = 2 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.CORS(o.CORS),
		middleware.Throttle(o.MaxInFlight),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}
