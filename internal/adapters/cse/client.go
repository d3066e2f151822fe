// Package cse searches jobs, courses and communities through Google Custom Search
package cse

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	perr "careerassist/internal/platform/errors"
	"careerassist/internal/platform/logger"
)

const (
	baseURLDefault = "https://www.googleapis.com/customsearch/v1"
	defaultTimeout = 10 * time.Second
	defaultDelay   = 200 * time.Millisecond
	defaultUA      = "careerassist"
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// APIKey and CX (search engine id) come from configuration
	APIKey string
	CX     string

	// Delay is the pause between consecutive queries of one search
	Delay time.Duration
}

// Item is one search hit
type Item struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet"`
	DisplayLink string `json:"displayLink"`
}

type searchResponse struct {
	Items []Item `json:"items"`
}

// Client runs site-scoped searches sequentially
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
	wait func(ctx context.Context, d time.Duration) error
}

// NewClient creates a new Client with defaults filled in
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.Delay < 0 {
		o.Delay = 0
	} else if o.Delay == 0 {
		o.Delay = defaultDelay
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("cse"),
		now:  time.Now,
		wait: sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Configured reports whether both the key and the engine id are present
func (c *Client) Configured() bool {
	return strings.TrimSpace(c.opts.APIKey) != "" && strings.TrimSpace(c.opts.CX) != ""
}

type query struct {
	q            string
	num          int
	dateRestrict string
	label        string
}

// search performs one query
func (c *Client) search(ctx context.Context, q query) ([]Item, error) {
	v := url.Values{}
	v.Set("key", c.opts.APIKey)
	v.Set("cx", c.opts.CX)
	v.Set("q", q.q)
	v.Set("num", strconv.Itoa(q.num))
	if q.dateRestrict != "" {
		v.Set("dateRestrict", q.dateRestrict)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+"?"+v.Encode(), nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "cse new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeNetwork, "cse request failed")
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("query", q.label).
		Int("status", resp.StatusCode).
		Dur("latency", c.now().Sub(start)).
		Msg("cse http response")

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, perr.Newf(perr.ErrorCodeUnauthorized, "cse rejected credentials (%d)", resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, perr.Newf(perr.ErrorCodeTooManyRequests, "cse rate limited")
	case resp.StatusCode >= 500:
		return nil, perr.Newf(perr.ErrorCodeUnavailable, "cse server error %d", resp.StatusCode)
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, perr.Newf(perr.ErrorCodeUnknown, "cse unexpected status %d body %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "decode cse response")
	}
	return out.Items, nil
}

// runAll runs queries in order with the configured delay between them
// a failed query is logged and skipped; the search fails only when every query failed
func (c *Client) runAll(ctx context.Context, kind string, qs []query) ([][]Item, error) {
	if !c.Configured() {
		return nil, perr.APIKeyMissingf("google custom search key or engine id is not configured")
	}
	out := make([][]Item, len(qs))
	var lastErr error
	failed := 0
	for i, q := range qs {
		if i > 0 {
			if err := c.wait(ctx, c.opts.Delay); err != nil {
				return nil, perr.SearchFailed(err, kind)
			}
		}
		items, err := c.search(ctx, q)
		if err != nil {
			if ctx.Err() != nil {
				return nil, perr.SearchFailed(ctx.Err(), kind)
			}
			c.log.Warn().Err(err).Str("kind", kind).Str("query", q.label).Msg("cse query failed, continuing")
			lastErr = err
			failed++
			continue
		}
		out[i] = items
	}
	if failed == len(qs) && lastErr != nil {
		return nil, perr.SearchFailed(lastErr, kind)
	}
	return out, nil
}
