package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"net"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Category
	}{
		{"nil", nil, CategoryOther},
		{"api key", APIKeyMissingf("GROQ_API_KEY not set"), CategoryAPIKey},
		{"permission", New(ErrorCodePermissionDenied, "mic"), CategoryPermission},
		{"unauthorized", New(ErrorCodeUnauthorized, "bad key"), CategoryAuth},
		{"rate limit", Newf(ErrorCodeTooManyRequests, "429"), CategoryRateLimit},
		{"server", Unavailablef("503"), CategoryServer},
		{"network code", New(ErrorCodeNetwork, "dial"), CategoryNetwork},
		{"wrapped in search failure", SearchFailed(Newf(ErrorCodeTooManyRequests, "429"), "jobs"), CategoryRateLimit},
		{"fmt wrapped", fmt.Errorf("outer: %w", New(ErrorCodeUnauthorized, "x")), CategoryAuth},
		{"deadline", context.DeadlineExceeded, CategoryNetwork},
		{"net error", &net.OpError{Op: "dial", Err: stderrs.New("refused")}, CategoryNetwork},
		{"foreign", stderrs.New("boom"), CategoryOther},
		{"unclassified code", InvalidArgf("x"), CategoryOther},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Classify(c.err); got != c.want {
				t.Fatalf("Classify(%v) = %q, want %q", c.err, got, c.want)
			}
		})
	}
}

func TestTerminal(t *testing.T) {
	if !Terminal(APIKeyMissingf("x")) || !Terminal(New(ErrorCodePermissionDenied, "x")) {
		t.Fatalf("api key and permission failures should be terminal")
	}
	if Terminal(Unavailablef("x")) {
		t.Fatalf("server failure should not be terminal")
	}
}
