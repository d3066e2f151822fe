package resume

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "careerassist/internal/platform/errors"
)

func TestGenerateResume_Unconfigured(t *testing.T) {
	c := NewClient(Options{URL: "  "})
	got, err := c.GenerateResume(context.Background())
	if err != nil || got != SentinelGenerate {
		t.Fatalf("GenerateResume() = (%q, %v), want (%q, nil)", got, err, SentinelGenerate)
	}
}

func TestGenerateResume_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var body generateRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Format != "pdf" {
			t.Errorf("body = %+v, %v", body, err)
		}
		_, _ = w.Write([]byte(`{"url":" https://files.example.com/resume.pdf "}`))
	}))
	defer srv.Close()

	got, err := NewClient(Options{URL: srv.URL}).GenerateResume(context.Background())
	if err != nil || got != "https://files.example.com/resume.pdf" {
		t.Fatalf("GenerateResume() = (%q, %v)", got, err)
	}
}

func TestGenerateResume_StatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   perr.ErrorCode
	}{
		{http.StatusUnauthorized, perr.ErrorCodeUnauthorized},
		{http.StatusTooManyRequests, perr.ErrorCodeTooManyRequests},
		{http.StatusBadGateway, perr.ErrorCodeUnavailable},
		{http.StatusTeapot, perr.ErrorCodeUnknown},
	}
	for _, c := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(c.status)
		}))
		_, err := NewClient(Options{URL: srv.URL}).GenerateResume(context.Background())
		srv.Close()
		if got := perr.CodeOf(err); got != c.want {
			t.Fatalf("status %d: code = %s, want %s", c.status, got, c.want)
		}
	}
}

func TestGenerateResume_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()
	_, err := NewClient(Options{URL: srv.URL}).GenerateResume(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v, want json code", err)
	}
}
