// Package intent classifies raw assistant replies into directives or conversation
//
// The chat model is prompted to answer either with one of a handful of directive tokens or
// with a JSON record. Classify recognizes the directives; anything else goes through
// ParseReply, which never fails
package intent

import "strings"

// Directive tokens the chat model is prompted to emit
const (
	TokenResume      = "GENERATEPDF"
	TokenJobPortals  = "JOB_PORTALS"
	PrefixJobSearch  = "JOB_SEARCH:"
	PrefixCourse     = "COURSE:"
	PrefixCommunity  = "COMMUNITY:"
	DefaultLocation  = "India"
	anywhereLocation = "anywhere"
)

// Kind tags the Intent variant
type Kind uint8

const (
	KindPlain Kind = iota
	KindJobSearch
	KindCourseSearch
	KindCommunitySearch
	KindResume
	KindJobPortals
	KindUnclear
)

var kindNames = [...]string{
	KindPlain:           "plain",
	KindJobSearch:       "job_search",
	KindCourseSearch:    "course_search",
	KindCommunitySearch: "community_search",
	KindResume:          "resume",
	KindJobPortals:      "job_portals",
	KindUnclear:         "unclear",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// MarshalText encodes the kind by name
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Intent is the classified reply. Only the fields of its Kind are set
type Intent struct {
	Kind Kind `json:"kind"`

	// KindPlain
	Reply Reply `json:"reply,omitzero"`

	// KindJobSearch
	Title    string `json:"title,omitempty"`
	Location string `json:"location,omitempty"`

	// KindCourseSearch, KindCommunitySearch
	Keyword string `json:"keyword,omitempty"`

	// KindUnclear: the directive whose payload was missing
	Of     Kind   `json:"of,omitzero"`
	Reason string `json:"reason,omitempty"`
}

// Anywhere reports whether a job search has no location constraint
func (in Intent) Anywhere() bool { return strings.EqualFold(in.Location, anywhereLocation) }

// Classify maps a raw reply to an Intent, first matching rule wins
func Classify(raw string) Intent {
	s := strings.TrimSpace(raw)
	switch {
	case s == TokenResume:
		return Intent{Kind: KindResume}
	case strings.HasPrefix(s, PrefixJobSearch):
		return jobSearch(strings.TrimSpace(s[len(PrefixJobSearch):]))
	case strings.HasPrefix(s, PrefixCourse):
		return keyword(KindCourseSearch, s[len(PrefixCourse):])
	case strings.HasPrefix(s, PrefixCommunity):
		return keyword(KindCommunitySearch, s[len(PrefixCommunity):])
	case s == TokenJobPortals:
		return Intent{Kind: KindJobPortals}
	}
	return Intent{Kind: KindPlain, Reply: ParseReply(raw)}
}

func unclear(of Kind, reason string) Intent {
	return Intent{Kind: KindUnclear, Of: of, Reason: reason}
}

func keyword(k Kind, payload string) Intent {
	kw := strings.Join(strings.Fields(payload), " ")
	if kw == "" {
		return unclear(k, "empty "+k.String()+" keyword")
	}
	return Intent{Kind: k, Keyword: kw}
}

// jobSearch splits the payload into title and a trailing gazetteer location
// a two word tail is tried before a single word; the title is never left empty
func jobSearch(payload string) Intent {
	f := strings.Fields(payload)
	n := len(f)
	if n == 0 {
		return unclear(KindJobSearch, "empty job title")
	}
	if n >= 3 {
		if loc, ok := lookupPlace(f[n-2] + " " + f[n-1]); ok {
			return Intent{Kind: KindJobSearch, Title: strings.Join(f[:n-2], " "), Location: loc}
		}
	}
	if n >= 2 {
		if loc, ok := lookupPlace(f[n-1]); ok {
			return Intent{Kind: KindJobSearch, Title: strings.Join(f[:n-1], " "), Location: loc}
		}
	}
	return Intent{Kind: KindJobSearch, Title: strings.Join(f, " "), Location: DefaultLocation}
}
