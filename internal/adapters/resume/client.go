// Package resume requests generated resume documents from an external renderer
package resume

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	perr "careerassist/internal/platform/errors"
	"careerassist/internal/platform/logger"
)

// SentinelGenerate tells the client to render the resume itself
const SentinelGenerate = "/generatepdf"

const (
	defaultTimeout = 30 * time.Second
	defaultUA      = "careerassist"
)

// Options configures the Client
type Options struct {
	// URL of the renderer; empty means client-side rendering
	URL       string
	UserAgent string
	Timeout   time.Duration
	Format    string
}

// Client posts generation requests to the renderer
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

type generateRequest struct {
	Format string `json:"format"`
}

type generateResponse struct {
	URL string `json:"url"`
}

// NewClient creates a new Client with defaults filled in
func NewClient(o Options) *Client {
	o.URL = strings.TrimSpace(o.URL)
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.Format == "" {
		o.Format = "pdf"
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("resume"),
	}
}

// GenerateResume returns the document URL, or the generate sentinel when no renderer is configured
func (c *Client) GenerateResume(ctx context.Context) (string, error) {
	if c.opts.URL == "" {
		return SentinelGenerate, nil
	}

	body, err := json.Marshal(generateRequest{Format: c.opts.Format})
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeJSON, "encode resume request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.URL, bytes.NewReader(body))
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "resume request for %q", c.opts.URL)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.opts.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", perr.Wrap(err, perr.ErrorCodeNetwork, "resume renderer unreachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", perr.Newf(perr.ErrorCodeUnauthorized, "resume renderer rejected request (%d)", resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", perr.Newf(perr.ErrorCodeTooManyRequests, "resume renderer rate limited")
	case resp.StatusCode >= 500:
		return "", perr.Newf(perr.ErrorCodeUnavailable, "resume renderer error %d", resp.StatusCode)
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", perr.Newf(perr.ErrorCodeUnknown, "resume renderer status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeJSON, "decode resume response")
	}
	c.log.Debug().Str("url", out.URL).Msg("resume generated")
	return strings.TrimSpace(out.URL), nil
}
