package module

import (
	"time"

	"careerassist/internal/adapters/groq"
	"careerassist/internal/platform/config"
)

// Options controls the transcription client
type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	MaxRetries int

	// Prompt replaces the base persona in the returned system prompt
	Prompt string
}

// FromConfig reads GROQ_* and CHAT_PROMPT from process config/env
func FromConfig(cfg config.Conf) Options {
	gc := cfg.Prefix("GROQ_")
	return Options{
		APIKey:     gc.MayString("API_KEY", ""),
		BaseURL:    gc.MayString("BASE_URL", ""),
		Model:      gc.MayString("TRANSCRIBE_MODEL", ""),
		Timeout:    gc.MayDuration("TIMEOUT", 60*time.Second),
		MaxRetries: groq.Retries(gc.MayInt("MAX_RETRIES", 3)),
		Prompt:     cfg.Prefix("CHAT_").MayString("PROMPT", ""),
	}
}
