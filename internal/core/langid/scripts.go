package langid

// Family groups languages that share one writing system
type Family uint8

const (
	// FamilyNone marks scripts used by a single catalog language
	FamilyNone Family = iota
	// FamilyDevanagari covers Hindi, Marathi, Nepali and Sanskrit
	FamilyDevanagari
	// FamilyBengali covers Bengali and Assamese
	FamilyBengali
)

// String returns the family name
func (f Family) String() string {
	switch f {
	case FamilyDevanagari:
		return "devanagari"
	case FamilyBengali:
		return "bengali"
	default:
		return "none"
	}
}

// MarshalText encodes the family by name
func (f Family) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

type scriptRange struct {
	code   string
	script string
	lo, hi rune
	family Family
}

// scripts is evaluated in declared order, first match wins
var scripts = []scriptRange{
	{code: "hi", script: "Devanagari", lo: 0x0900, hi: 0x097F, family: FamilyDevanagari},
	{code: "pa", script: "Gurmukhi", lo: 0x0A00, hi: 0x0A7F},
	{code: "gu", script: "Gujarati", lo: 0x0A80, hi: 0x0AFF},
	{code: "bn", script: "Bengali", lo: 0x0980, hi: 0x09FF, family: FamilyBengali},
	{code: "or", script: "Oriya", lo: 0x0B00, hi: 0x0B7F},
	{code: "ta", script: "Tamil", lo: 0x0B80, hi: 0x0BFF},
	{code: "te", script: "Telugu", lo: 0x0C00, hi: 0x0C7F},
	{code: "kn", script: "Kannada", lo: 0x0C80, hi: 0x0CFF},
	{code: "ml", script: "Malayalam", lo: 0x0D00, hi: 0x0D7F},
	{code: "si", script: "Sinhala", lo: 0x0D80, hi: 0x0DFF},
	{code: "ur", script: "Arabic", lo: 0x0600, hi: 0x06FF},
}

func (s scriptRange) matches(text string) bool {
	for _, r := range text {
		if r >= s.lo && r <= s.hi {
			return true
		}
	}
	return false
}

// detectScript returns the first declared script with at least one rune in text
func detectScript(text string) (scriptRange, bool) {
	for _, s := range scripts {
		if s.matches(text) {
			return s, true
		}
	}
	return scriptRange{}, false
}

// familyOf reports whether text is written in the given family's script
func familyOf(text string, f Family) bool {
	for _, s := range scripts {
		if s.family == f && f != FamilyNone {
			return s.matches(text)
		}
	}
	return false
}
