package langid

import (
	"strings"

	"careerassist/internal/core/normalize"
)

// keywordSet scores one language by counting distinct keyword hits
type keywordSet struct {
	code     string
	keywords []string
}

// Candidates are listed from highest to lowest tie priority
var devanagariSets = foldSets([]keywordSet{
	{code: "hi", keywords: []string{"है", "हैं", "करना", "करता", "करते", "हिंदी", "भारत", "आप", "हम", "वह", "यह", "और", "का", "की", "के"}},
	{code: "sa", keywords: []string{"संस्कृत", "अस्ति", "भवति", "करोति", "गच्छति", "त्वम्", "अहम्", "सः", "तत्", "इति"}},
	{code: "ne", keywords: []string{"छ", "हुन्छ", "गर्छ", "भएको", "नेपाली", "तपाईं", "हामी", "उनीहरू", "गर्न"}},
	{code: "mr", keywords: []string{"आहे", "करत", "होत", "मराठी", "महाराष्ट्र", "आम्ही", "तुम्ही", "त्यांना", "म्हणून"}},
})

var bengaliSets = foldSets([]keywordSet{
	{code: "bn", keywords: []string{"বাংলা", "আছে", "করে", "হয়", "আমি", "তুমি", "বাংলাদেশ", "কলকাতা", "আমার", "তোমার"}},
	{code: "as", keywords: []string{"অসমীয়া", "আছে", "কৰে", "হয়", "আমি", "তুমি", "অসম", "গুৱাহাটী"}},
})

func foldSets(sets []keywordSet) []keywordSet {
	for i := range sets {
		for j, k := range sets[i].keywords {
			sets[i].keywords[j] = normalize.Fold(k)
		}
	}
	return sets
}

func (k keywordSet) score(text string) int {
	n := 0
	for _, kw := range k.keywords {
		if kw != "" && strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

// Disambiguate picks a language within a script family by keyword hits
// the first set in priority order wins ties; no hits yields the family default at 0.7
func Disambiguate(text string, f Family) Result {
	r, _ := disambiguate(text, f)
	return r
}

func disambiguate(text string, f Family) (Result, int) {
	var sets []keywordSet
	switch f {
	case FamilyDevanagari:
		sets = devanagariSets
	case FamilyBengali:
		sets = bengaliSets
	default:
		return fallback(), 0
	}

	folded := normalize.Fold(text)
	best, bestScore := sets[0].code, 0
	for _, s := range sets {
		if sc := s.score(folded); sc > bestScore {
			best, bestScore = s.code, sc
		}
	}
	if bestScore == 0 {
		return Result{Code: sets[0].code, Confidence: defaultFamilyConfidence}, 0
	}
	return Result{Code: best, Confidence: keywordConfidence(bestScore)}, bestScore
}

// scores exposes raw per-language hits for diagnostics
func scores(text string, f Family) map[string]int {
	var sets []keywordSet
	switch f {
	case FamilyDevanagari:
		sets = devanagariSets
	case FamilyBengali:
		sets = bengaliSets
	}
	folded := normalize.Fold(text)
	out := make(map[string]int, len(sets))
	for _, s := range sets {
		out[s.code] = s.score(folded)
	}
	return out
}

func keywordConfidence(score int) float64 {
	// tenths keep the values identical to their decimal literals
	c := float64(6+score) / 10
	if c > maxKeywordConfidence {
		return maxKeywordConfidence
	}
	return c
}
