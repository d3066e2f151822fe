// Package strings holds the small string helpers shared across packages
package strings

import (
	std "strings"
	"unicode/utf8"
)

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a mount path like /chat to one leading slash and no trailing slash
// panics if nothing is left after trimming
func MustPrefix(s string) string {
	s = "/" + std.Trim(s, " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Squash collapses every whitespace run to a single space and trims the ends
func Squash(s string) string { return std.Join(std.Fields(s), " ") }

// Clip cuts s to n runes and marks the cut with an ellipsis
func Clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

// ContainsAnyOf reports whether s contains any of subs
func ContainsAnyOf(s string, subs []string) bool {
	for _, sub := range subs {
		if std.Contains(s, sub) {
			return true
		}
	}
	return false
}
