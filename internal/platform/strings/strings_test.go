package strings

import (
	"testing"

	kit "careerassist/internal/platform/testkit"
)

func TestMustString(t *testing.T) {
	if got := MustString("chat", "module name"); got != "chat" {
		t.Fatalf("MustString(chat) = %q", got)
	}
	kit.MustPanic(t, func() { _ = MustString(" \t", "module name") })
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"chat":      "/chat",
		"/chat/":    "/chat",
		" //voice ": "/voice",
		"meta/info": "/meta/info",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	kit.MustPanic(t, func() { _ = MustPrefix(" / ") })
}

func TestSquashAndClip(t *testing.T) {
	if got := Squash("  SELECT id\n\tFROM   chats  "); got != "SELECT id FROM chats" {
		t.Fatalf("Squash = %q", got)
	}
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"Find jobs", 20, "Find jobs"},
		{"Find jobs in Chennai", 9, "Find jobs..."},
		{"வேலை தேடுகிறேன்", 4, "வேலை..."},
	}
	for _, c := range cases {
		if got := Clip(c.in, c.n); got != c.want {
			t.Fatalf("Clip(%q, %d) = %q, want %q", c.in, c.n, got, c.want)
		}
	}
}

func TestContainsAnyOf(t *testing.T) {
	hosts := []string{"discord.gg", "discord.com"}
	if !ContainsAnyOf("invite.discord.gg", hosts) || ContainsAnyOf("t.me", hosts) || ContainsAnyOf("x", nil) {
		t.Fatalf("ContainsAnyOf mismatch")
	}
}
