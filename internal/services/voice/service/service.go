// Package service turns recorded audio into text, a language and a system prompt
package service

import (
	"context"

	"careerassist/internal/adapters/groq"
	"careerassist/internal/core/langid"
	perr "careerassist/internal/platform/errors"
	"careerassist/internal/platform/logger"
	"careerassist/internal/services/voice/domain"
)

// Transcriber converts speech to text
type Transcriber interface {
	Transcribe(ctx context.Context, a groq.Audio) (groq.Transcript, error)
}

// Service defines the service contract for voice
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	stt    Transcriber
	prompt string
	log    logger.Logger
}

// New creates a new voice service; prompt replaces the base persona when set
func New(stt Transcriber, prompt string) *Svc {
	if stt == nil {
		panic("voice.Service requires a non nil Transcriber")
	}
	return &Svc{stt: stt, prompt: prompt, log: *logger.Named("voice")}
}

// Transcribe runs speech to text and identifies the language of the result
// the engine's reported language outranks the client hint
func (s *Svc) Transcribe(ctx context.Context, in domain.TranscribeInput) (domain.TranscribeOutput, error) {
	hint, _ := langid.Resolve(in.Language)

	t, err := s.stt.Transcribe(ctx, groq.Audio{Filename: in.Filename, Data: in.Audio, Language: hint})
	if err != nil {
		lang := hint
		if lang == "" {
			lang = langid.FallbackCode
		}
		return domain.TranscribeOutput{}, localize(lang, err)
	}

	engine := t.Language
	if _, ok := langid.Resolve(engine); !ok {
		engine = hint
	}
	res := langid.Identify(t.Text, engine)

	s.log.Debug().
		Str("engine_language", t.Language).
		Str("hint", hint).
		Str("language", res.Code).
		Float64("confidence", res.Confidence).
		Float64("duration", t.Duration).
		Msg("transcribed")

	return domain.TranscribeOutput{
		Text:       t.Text,
		Language:   res.Code,
		Confidence: res.Confidence,
		Prompt:     langid.SystemPrompt(res.Code, s.prompt),
	}, nil
}

// localize keeps the error code and swaps in a message in the user's language
func localize(lang string, err error) error {
	for _, c := range perr.Codes(err) {
		if langid.HasMessage(c) {
			return perr.Wrap(err, perr.CodeOf(err), langid.ErrorMessage(lang, c))
		}
	}
	return err
}
