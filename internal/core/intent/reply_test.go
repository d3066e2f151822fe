package intent

import (
	"strings"
	"testing"
)

func TestParseReply_Stages(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Reply
	}{
		{
			name: "strict",
			raw:  `{"response":"Hello","context":"ctx","chatName":"Resume tips","emoji":"📝"}`,
			want: Reply{Response: "Hello", Context: "ctx", ChatName: "Resume tips", Emoji: "📝", Recovered: true, Stage: StageStrict},
		},
		{
			name: "fenced",
			raw:  "```json\n{\"response\": \"Hi there\", \"emoji\": \"👋\"}\n```",
			want: Reply{Response: "Hi there", Emoji: "👋", Recovered: true, Stage: StageStrict},
		},
		{
			name: "preamble before object",
			raw:  "Sure! Here it is: {\"response\": \"Use {braces} freely\"} thanks",
			want: Reply{Response: "Use {braces} freely", Recovered: true, Stage: StageStrict},
		},
		{
			name: "raw newline and stray backslash",
			raw:  "{\"response\": \"line one\nline two\", \"context\": \"c:\\path\"}",
			want: Reply{Response: "line one\nline two", Context: `c:\path`, Recovered: true, Stage: StageRepaired},
		},
		{
			name: "unescaped inner quotes",
			raw:  `{"response": "He said "apply today" to me", "chatName": "Advice"}`,
			want: Reply{Response: `He said "apply today" to me`, ChatName: "Advice", Recovered: true, Stage: StageRepaired},
		},
		{
			name: "truncated",
			raw:  `{"response": "Hello world", "context": "abc", "chatN`,
			want: Reply{Response: "Hello world", Context: "abc", Recovered: true, Stage: StageFields},
		},
		{
			name: "unterminated response",
			raw:  `{"response": "Partial answer`,
			want: Reply{Response: "Partial answer", Recovered: true, Stage: StageFields},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ParseReply(c.raw)
			if got != c.want {
				t.Fatalf("ParseReply(%q) = %+v, want %+v", c.raw, got, c.want)
			}
		})
	}
}

func TestParseReply_Unrecovered(t *testing.T) {
	for _, raw := range []string{
		"",
		"plain prose answer",
		"garbled { not json",
		`{"response": ""}`,
		`{"answer": "wrong key"}`,
		"Use {name} as a placeholder",
	} {
		got := ParseReply(raw)
		if got.Recovered || got.Response != raw || got.Stage != StageNone {
			t.Fatalf("ParseReply(%q) = %+v, want unrecovered raw", raw, got)
		}
	}
}

func TestParseReply_NeverPanics(t *testing.T) {
	inputs := []string{`{`, `}`, `{"`, `{"response":`, `"\`, `{"response":"\u12`, "\x00{\x01}", strings.Repeat("{", 500)}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("ParseReply(%q) panicked: %v", in, r)
				}
			}()
			_ = ParseReply(in)
		}()
	}
}

func TestRepair(t *testing.T) {
	cases := []struct{ in, want string }{
		{in: "{\"a\": \"x\ty\"}", want: `{"a": "x\ty"}`},
		{in: `{"a": "\d"}`, want: `{"a": "\\d"}`},
		{in: `{"a": "ok \n \u00e9"}`, want: `{"a": "ok \n \u00e9"}`},
		{in: `{"a": "\uZZ"}`, want: `{"a": "\\uZZ"}`},
		{in: "{\"a\": \"\x01\"}", want: `{"a": "\u0001"}`},
	}
	for _, c := range cases {
		if got := repair(c.in); got != c.want {
			t.Fatalf("repair(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFirstObject(t *testing.T) {
	obj, ok := firstObject(`noise {"a": "}"} {"b": 1}`)
	if !ok || obj != `{"a": "}"}` {
		t.Fatalf("firstObject = %q, %v", obj, ok)
	}
	obj, ok = firstObject(`{bad} {"b": 1}`)
	if !ok || obj != `{"b": 1}` {
		t.Fatalf("firstObject skips invalid = %q, %v", obj, ok)
	}
}
