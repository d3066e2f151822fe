package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestBuild_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := build(Options{Level: "INFO", Format: "json", Service: "careerassist-api", Writer: &buf})

	l.Debug().Msg("dropped")
	l.Info().Str("chat_id", "c1").Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["message"] != "kept" || got["service"] != "careerassist-api" || got["chat_id"] != "c1" {
		t.Fatalf("line = %v", got)
	}
}

func TestBuild_LevelFallback(t *testing.T) {
	for _, lvl := range []string{"", "loud", " Warn "} {
		l := build(Options{Level: lvl, Format: "json", Writer: &bytes.Buffer{}})
		want := zerolog.DebugLevel
		if lvl == " Warn " {
			want = zerolog.WarnLevel
		}
		if l.GetLevel() != want {
			t.Fatalf("build(%q) level = %v, want %v", lvl, l.GetLevel(), want)
		}
	}
}

func TestBuild_Console(t *testing.T) {
	var buf bytes.Buffer
	l := build(Options{Level: "debug", Writer: &buf})
	l.Info().Str("component", "groq").Msg("completion done")

	out := buf.String()
	if !strings.Contains(out, "completion done") || !strings.Contains(out, "component=groq") {
		t.Fatalf("console line = %q", out)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_SERVICE", "careerassist-mcp")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	got := FromEnv()
	want := Options{Level: "warn", Format: "json", Service: "careerassist-mcp", WithCaller: true, SampleEvery: 5}
	if got != want {
		t.Fatalf("FromEnv() = %+v, want %+v", got, want)
	}
}

func TestWithRequest(t *testing.T) {
	if ctx := WithRequest(context.Background(), "", ""); ctx != context.Background() {
		t.Fatal("empty ids should return ctx unchanged")
	}
	ctx := WithRequest(context.Background(), "rid-3", "u-9")
	if f, _ := ctx.Value(ctxKey{}).(reqFields); f.requestID != "rid-3" || f.userID != "u-9" {
		t.Fatalf("request fields = %+v", f)
	}
	if C(ctx) == Get() {
		t.Fatal("C should derive a child when a request id is set")
	}
	if C(context.Background()) != Get() {
		t.Fatal("C without a request id should return the root")
	}
	if Named("dispatch") == Get() || Named("") != Get() {
		t.Fatal("Named should derive a child only for a non-empty component")
	}
}
