// Package normalize folds text into the form keyword and gazetteer matching
// compares. Sanitize runs first, then NFC composition, case folding, removal
// of format characters (ZWJ, ZWNJ, BOM) and width folding; whitespace runs
// collapse last.
//
// Combining marks survive: Indic vowel signs and viramas carry meaning.
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// transform chains carry state, so each goroutine borrows its own
var folders = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFC, cases.Fold(), runes.Remove(runes.In(unicode.Cf)), width.Fold)
	},
}

// Fold returns the matching form of s. Fold(Fold(s)) == Fold(s).
func Fold(s string) string {
	s = Sanitize(s)
	if s == "" {
		return ""
	}
	t := folders.Get().(transform.Transformer)
	defer folders.Put(t)

	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return squeeze(out)
}

// Fields splits the folded form of s into words
func Fields(s string) []string { return strings.Fields(Fold(s)) }

func squeeze(s string) string { return strings.Join(strings.Fields(s), " ") }
