package intent

import (
	"encoding/json"
	"regexp"
	"strings"

	perr "careerassist/internal/platform/errors"
)

// Stage records which parse stage recovered the reply fields
type Stage uint8

const (
	StageNone Stage = iota
	StageStrict
	StageRepaired
	StageFields
)

func (s Stage) String() string {
	switch s {
	case StageStrict:
		return "strict"
	case StageRepaired:
		return "repaired"
	case StageFields:
		return "fields"
	default:
		return "none"
	}
}

// MarshalText encodes the stage by name
func (s Stage) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Reply is the structured conversation record the chat model is asked to produce
type Reply struct {
	Response string `json:"response"`
	Context  string `json:"context,omitempty"`
	ChatName string `json:"chatName,omitempty"`
	Emoji    string `json:"emoji,omitempty"`

	// Recovered is false when no stage found a response and Response holds the raw reply
	Recovered bool  `json:"recovered"`
	Stage     Stage `json:"stage"`
}

type wireReply struct {
	Response string `json:"response"`
	Context  string `json:"context"`
	ChatName string `json:"chatName"`
	Emoji    string `json:"emoji"`
}

func (w wireReply) reply(s Stage) Reply {
	return Reply{
		Response:  w.Response,
		Context:   w.Context,
		ChatName:  w.ChatName,
		Emoji:     w.Emoji,
		Recovered: true,
		Stage:     s,
	}
}

// ParseReply extracts the structured record from a model reply
// stages run in order: strict JSON, JSON after repair, per-field extraction
// a stage counts only when it yields a non-empty response; otherwise raw comes back unrecovered
func ParseReply(raw string) Reply {
	body := trimFence(raw)
	for _, stage := range []func(string) (Reply, error){parseStrict, parseRepaired, parseFields} {
		if r, err := stage(body); err == nil {
			return r
		}
	}
	return Reply{Response: raw}
}

func parseStrict(body string) (Reply, error) {
	obj, ok := firstObject(body)
	if !ok {
		return Reply{}, perr.Newf(perr.ErrorCodeParseFailed, "no json object")
	}
	return decode(obj, StageStrict)
}

func parseRepaired(body string) (Reply, error) {
	start := strings.IndexByte(body, '{')
	if start < 0 {
		return Reply{}, perr.Newf(perr.ErrorCodeParseFailed, "no object start")
	}
	obj := body[start:]
	if end := strings.LastIndexByte(obj, '}'); end >= 0 {
		obj = obj[:end+1]
	}
	return decode(repair(obj), StageRepaired)
}

func decode(obj string, s Stage) (Reply, error) {
	var w wireReply
	if err := json.Unmarshal([]byte(obj), &w); err != nil {
		return Reply{}, perr.Wrap(err, perr.ErrorCodeParseFailed, "decode reply")
	}
	if strings.TrimSpace(w.Response) == "" {
		return Reply{}, perr.Newf(perr.ErrorCodeParseFailed, "empty response")
	}
	return w.reply(s), nil
}

// quoted matches a complete JSON string value, loose matches an unquoted value up to , or }
var fieldPatterns = func() map[string][2]*regexp.Regexp {
	m := make(map[string][2]*regexp.Regexp, 4)
	for _, k := range []string{"response", "context", "chatName", "emoji"} {
		m[k] = [2]*regexp.Regexp{
			regexp.MustCompile(`"` + k + `"\s*:\s*"((?:[^"\\]|\\.)*)"`),
			regexp.MustCompile(`["']` + k + `["']\s*:\s*([^,}\n]+)`),
		}
	}
	return m
}()

func parseFields(body string) (Reply, error) {
	if !strings.Contains(body, "{") {
		return Reply{}, perr.Newf(perr.ErrorCodeParseFailed, "not an object")
	}
	w := wireReply{
		Response: field(body, "response"),
		Context:  field(body, "context"),
		ChatName: field(body, "chatName"),
		Emoji:    field(body, "emoji"),
	}
	if strings.TrimSpace(w.Response) == "" {
		return Reply{}, perr.Newf(perr.ErrorCodeParseFailed, "response field not found")
	}
	return w.reply(StageFields), nil
}

func field(body, key string) string {
	p := fieldPatterns[key]
	if m := p[0].FindStringSubmatch(body); m != nil {
		return unescape(m[1])
	}
	if m := p[1].FindStringSubmatch(body); m != nil {
		return strings.Trim(strings.TrimSpace(m[1]), `"'`)
	}
	return ""
}

func unescape(s string) string {
	var out string
	if err := json.Unmarshal([]byte(`"`+s+`"`), &out); err == nil {
		return out
	}
	return strings.NewReplacer(`\"`, `"`, `\n`, "\n", `\t`, "\t", `\\`, `\`).Replace(s)
}
