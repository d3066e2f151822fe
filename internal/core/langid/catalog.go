// Package langid identifies the language of transcribed text among a fixed catalog of
// Indian languages plus English
//
// Identification is pure: script ranges pick a language family, keyword scoring separates
// languages that share a script, and a transcription engine's own hint is trusted only for
// languages the engine is known to handle well
package langid

import (
	"slices"
	"strings"
)

// FallbackCode is returned when nothing in the text or hint identifies a language
const FallbackCode = "en"

// Candidate is one catalog language
type Candidate struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	NativeName string   `json:"native_name"`
	Region     string   `json:"region"`
	Similar    []string `json:"similar,omitempty"`
	Family     Family   `json:"family"`

	// Trusted hints from the transcription engine are accepted at high confidence
	Trusted bool `json:"trusted"`
}

var catalog = []Candidate{
	{Code: "hi", Name: "Hindi", NativeName: "हिन्दी", Region: "North India", Similar: []string{"ur", "pa"}, Family: FamilyDevanagari, Trusted: true},
	{Code: "mr", Name: "Marathi", NativeName: "मराठी", Region: "West India", Similar: []string{"gu", "hi"}, Family: FamilyDevanagari, Trusted: true},
	{Code: "bn", Name: "Bengali", NativeName: "বাংলা", Region: "East India", Similar: []string{"as"}, Family: FamilyBengali, Trusted: true},
	{Code: "as", Name: "Assamese", NativeName: "অসমীয়া", Region: "Northeast India", Similar: []string{"bn"}, Family: FamilyBengali, Trusted: true},
	{Code: "or", Name: "Odia", NativeName: "ଓଡ଼ିଆ", Region: "East India", Similar: []string{"bn"}, Trusted: true},
	{Code: "ta", Name: "Tamil", NativeName: "தமிழ்", Region: "South India", Similar: []string{"ml", "kn"}, Trusted: true},
	{Code: "te", Name: "Telugu", NativeName: "తెలుగు", Region: "South India", Similar: []string{"kn", "ta"}, Trusted: true},
	{Code: "kn", Name: "Kannada", NativeName: "ಕನ್ನಡ", Region: "South India", Similar: []string{"te", "ta"}, Trusted: true},
	{Code: "ml", Name: "Malayalam", NativeName: "മലയാളം", Region: "South India", Similar: []string{"ta"}, Trusted: true},
	{Code: "ne", Name: "Nepali", NativeName: "नेपाली", Region: "North India", Similar: []string{"hi"}, Family: FamilyDevanagari, Trusted: true},
	{Code: "sa", Name: "Sanskrit", NativeName: "संस्कृतम्", Region: "Classical", Similar: []string{"hi"}, Family: FamilyDevanagari, Trusted: true},

	// detectable by script but not accepted blindly from a hint
	{Code: "pa", Name: "Punjabi", NativeName: "ਪੰਜਾਬੀ", Region: "North India"},
	{Code: "gu", Name: "Gujarati", NativeName: "ગુજરાતી", Region: "West India", Similar: []string{"mr"}},
	{Code: "si", Name: "Sinhala", NativeName: "සිංහල", Region: "Sri Lanka"},
	{Code: "ur", Name: "Urdu", NativeName: "اردو", Region: "North India", Similar: []string{"hi"}},
	{Code: FallbackCode, Name: "English", NativeName: "English", Region: "Global"},
}

var byCode = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, c := range catalog {
		if _, dup := m[c.Code]; dup {
			panic("langid: duplicate catalog code " + c.Code)
		}
		m[c.Code] = i
	}
	return m
}()

// Catalog returns a copy of the static catalog in declared order
func Catalog() []Candidate {
	out := make([]Candidate, len(catalog))
	for i, c := range catalog {
		c.Similar = slices.Clone(c.Similar)
		out[i] = c
	}
	return out
}

// Lookup returns the catalog entry for an exact code
func Lookup(code string) (Candidate, bool) {
	i, ok := byCode[code]
	if !ok {
		return Candidate{}, false
	}
	c := catalog[i]
	c.Similar = slices.Clone(c.Similar)
	return c, true
}

// Resolve maps a free-form hint onto a catalog code
// it accepts codes and English names in any case, and region tags like "hi-IN"
func Resolve(hint string) (string, bool) {
	h := strings.ToLower(strings.TrimSpace(hint))
	if h == "" {
		return "", false
	}
	if i := strings.IndexAny(h, "-_"); i > 0 {
		if _, ok := byCode[h[:i]]; ok {
			return h[:i], true
		}
	}
	if _, ok := byCode[h]; ok {
		return h, true
	}
	for _, c := range catalog {
		if strings.EqualFold(c.Name, h) {
			return c.Code, true
		}
	}
	return "", false
}
