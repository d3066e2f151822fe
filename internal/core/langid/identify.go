package langid

// Confidence levels used by the identifier
const (
	trustedHintConfidence   = 0.9
	scriptConfidence        = 0.95
	ambiguousHintConfidence = 0.6
	distinctHintConfidence  = 0.8
	fallbackConfidence      = 0.5
	defaultFamilyConfidence = 0.7
	maxKeywordConfidence    = 0.9
)

// Result is a language decision with a confidence in [0,1]
type Result struct {
	Code       string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

func fallback() Result { return Result{Code: FallbackCode, Confidence: fallbackConfidence} }

// Identify returns the most likely catalog language for text
// hint is the transcription engine's language tag and may be empty
//
// Order of evaluation
// 1 trusted hint, refined by keywords when the text is in the hint's ambiguous script
// 2 first matching script range, disambiguated for shared scripts
// 3 untrusted hint scored by how confusable it is
// 4 fallback
func Identify(text, hint string) Result {
	code, hinted := Resolve(hint)
	var cand Candidate
	if hinted {
		cand = catalog[byCode[code]]
	}

	if hinted && cand.Trusted {
		if cand.Family != FamilyNone && familyOf(text, cand.Family) {
			// keywords overrule the hint only when another language outscores it
			r, hits := disambiguate(text, cand.Family)
			if hits > 0 && r.Code != cand.Code && scores(text, cand.Family)[cand.Code] < hits {
				return r
			}
		}
		return Result{Code: cand.Code, Confidence: trustedHintConfidence}
	}

	if s, ok := detectScript(text); ok {
		if s.family != FamilyNone {
			return Disambiguate(text, s.family)
		}
		return Result{Code: s.code, Confidence: scriptConfidence}
	}

	if hinted {
		if len(cand.Similar) > 0 {
			return Result{Code: cand.Code, Confidence: ambiguousHintConfidence}
		}
		return Result{Code: cand.Code, Confidence: distinctHintConfidence}
	}

	return fallback()
}

// Explain reports the intermediate signals behind an identification
type Explain struct {
	Result Result         `json:"result"`
	Script string         `json:"script,omitempty"`
	Family Family         `json:"family"`
	Hint   string         `json:"hint,omitempty"`
	Scores map[string]int `json:"scores,omitempty"`
}

// IdentifyExplain runs Identify and returns its inputs alongside the decision
func IdentifyExplain(text, hint string) Explain {
	e := Explain{Result: Identify(text, hint)}
	if code, ok := Resolve(hint); ok {
		e.Hint = code
	}
	if s, ok := detectScript(text); ok {
		e.Script = s.script
		e.Family = s.family
		if s.family != FamilyNone {
			e.Scores = scores(text, s.family)
		}
	}
	return e
}
