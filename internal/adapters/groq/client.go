// Package groq is a resilient client for the Groq OpenAI-compatible chat and audio endpoints
package groq

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	perr "careerassist/internal/platform/errors"
	"careerassist/internal/platform/logger"

	"github.com/cenkalti/backoff/v4"
)

const (
	baseURLDefault         = "https://api.groq.com"
	defaultUA              = "careerassist"
	defaultTimeout         = 60 * time.Second
	defaultMaxRetry        = 3
	defaultRetryBase       = 500 * time.Millisecond
	retryCap               = 30 * time.Second
	defaultChatModel       = "llama-3.3-70b-versatile"
	defaultTranscribeModel = "whisper-large-v3"
	defaultTemperature     = 0.7
	defaultMaxTokens       = 5000

	chatPath       = "/openai/v1/chat/completions"
	transcribePath = "/openai/v1/audio/transcriptions"
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// APIKey comes from configuration; an empty key fails each call with ApiKeyMissing
	APIKey string

	ChatModel       string
	TranscribeModel string
	Temperature     float64
	MaxTokens       int

	// Retry config for transient and rate limited responses
	MaxRetries int
	RetryBase  time.Duration
}

// Retries maps an operator retry count onto Options.MaxRetries, where zero
// selects the default. A configured 0 or less disables retries.
func Retries(n int) int {
	if n <= 0 {
		return -1
	}
	return n
}

// Client talks to Groq
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time

	// nil uses the backoff package's real timer
	timer backoff.Timer
}

// NewClient creates a new Client with defaults filled in
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.ChatModel == "" {
		o.ChatModel = defaultChatModel
	}
	if o.TranscribeModel == "" {
		o.TranscribeModel = defaultTranscribeModel
	}
	if o.Temperature <= 0 {
		o.Temperature = defaultTemperature
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = defaultMaxTokens
	}
	switch {
	case o.MaxRetries < 0:
		o.MaxRetries = 0
	case o.MaxRetries == 0:
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("groq"),
		now:  time.Now,
	}
}

// Configured reports whether an API key is present
func (c *Client) Configured() bool { return strings.TrimSpace(c.opts.APIKey) != "" }

// schedule doubles from RetryBase without jitter and never waits longer than retryCap
func (c *Client) schedule() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.opts.RetryBase
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = retryCap
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// hinted lets a Retry-After header replace the next computed delay
type hinted struct {
	backoff.BackOff
	next time.Duration
}

func (h *hinted) NextBackOff() time.Duration {
	if d := h.next; d > 0 {
		h.next = 0
		return d
	}
	return h.BackOff.NextBackOff()
}

// do sends the request built by newReq, rebuilding it for each attempt.
// badRequest is the code reported for a 400.
func (c *Client) do(ctx context.Context, path string, badRequest perr.ErrorCode, newReq func(ctx context.Context, url string) (*http.Request, error)) (*http.Response, error) {
	if !c.Configured() {
		return nil, perr.APIKeyMissingf("groq api key is not configured")
	}
	url := c.opts.BaseURL + path
	sched := &hinted{BackOff: c.schedule()}
	attempt := 0

	send := func() (*http.Response, error) {
		attempt++
		if err := ctx.Err(); err != nil {
			return nil, backoff.Permanent(err)
		}
		req, err := newReq(ctx, url)
		if err != nil {
			return nil, backoff.Permanent(perr.Wrapf(err, perr.ErrorCodeUnknown, "groq new request failed"))
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)

		start := c.now()
		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(ctx.Err())
			}
			return nil, perr.Wrapf(err, perr.ErrorCodeNetwork, "groq request failed")
		}
		c.log.Debug().
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempt).
			Dur("latency", c.now().Sub(start)).
			Msg("groq http response")
		return resp, c.status(resp, badRequest, sched)
	}
	notify := func(err error, wait time.Duration) {
		c.log.Warn().Err(err).Str("path", path).Int("attempt", attempt).Dur("retry_in", wait).Msg("groq call failed, retrying")
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(sched, uint64(c.opts.MaxRetries)), ctx)
	resp, err := backoff.RetryNotifyWithTimerAndData(send, policy, notify, c.timer)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// status consumes the body of any non-2xx response. 429 and 5xx stay
// retryable; a 429 with Retry-After sets the next delay.
func (c *Client) status(resp *http.Response, badRequest perr.ErrorCode, sched *hinted) error {
	code := resp.StatusCode
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusBadRequest:
		return backoff.Permanent(perr.Newf(badRequest, "groq rejected request: %s", readTail(resp.Body)))
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		_ = drainAndClose(resp.Body)
		return backoff.Permanent(perr.Newf(perr.ErrorCodeUnauthorized, "groq rejected credentials (%d)", code))
	case code == http.StatusTooManyRequests:
		sched.next = retryAfter(resp.Header)
		_ = drainAndClose(resp.Body)
		return perr.Newf(perr.ErrorCodeTooManyRequests, "groq rate limited")
	case code >= 500:
		_ = drainAndClose(resp.Body)
		return perr.Newf(perr.ErrorCodeUnavailable, "groq server error %d", code)
	default:
		return backoff.Permanent(perr.Newf(perr.ErrorCodeUnknown, "groq unexpected status %d body %s", code, readTail(resp.Body)))
	}
}

func readTail(rc io.ReadCloser) string {
	b, _ := io.ReadAll(io.LimitReader(rc, 2048))
	_ = rc.Close()
	return strings.TrimSpace(string(b))
}
