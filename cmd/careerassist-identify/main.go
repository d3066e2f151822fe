// Command careerassist-identify prints the detected language of each input line as JSON
//
//	echo "আমি চাকরি খুঁজছি" | careerassist-identify -hint bn
//	careerassist-identify -text "नमस्ते" -prompt
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"careerassist/internal/core/langid"
)

type line struct {
	Text string `json:"text"`
	langid.Result
	Prompt string `json:"prompt,omitempty"`
}

func main() {
	var (
		fText   = flag.String("text", "", "text to identify; stdin lines are read when empty")
		fHint   = flag.String("hint", "", "language hint, ISO code or English name")
		fPrompt = flag.Bool("prompt", false, "also print the system prompt for the detected language")
	)
	flag.Parse()

	var in io.Reader = os.Stdin
	if *fText != "" {
		in = strings.NewReader(*fText)
	}
	if err := run(in, os.Stdout, *fHint, *fPrompt); err != nil {
		fmt.Fprintf(os.Stderr, "careerassist-identify: %v\n", err)
		os.Exit(1)
	}
}

// run identifies every non-blank line of in and writes one JSON object per line to out
func run(in io.Reader, out io.Writer, hint string, withPrompt bool) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		res := langid.Identify(text, hint)
		l := line{Text: text, Result: res}
		if withPrompt {
			l.Prompt = langid.SystemPrompt(res.Code, "")
		}
		if err := enc.Encode(l); err != nil {
			return err
		}
	}
	return sc.Err()
}
