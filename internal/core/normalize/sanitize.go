package normalize

import (
	"strings"
	"unicode/utf8"
)

// unwanted reports C0 and C1 controls other than tab and line breaks, plus DEL
func unwanted(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return false
	case r < 0x20, r == 0x7f:
		return true
	default:
		return r >= 0x80 && r <= 0x9f
	}
}

// Sanitize drops invalid UTF-8 and control characters before text is stored or matched
// s comes back unchanged when it is already clean
func Sanitize(s string) string {
	if utf8.ValidString(s) && strings.IndexFunc(s, unwanted) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unwanted(r) {
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}
