package module

import (
	"time"

	"careerassist/internal/adapters/groq"
	"careerassist/internal/platform/config"
)

// Options controls the chat cycle and its collaborators
type Options struct {
	// GROQ_*
	GroqAPIKey    string
	GroqBaseURL   string
	GroqModel     string
	GroqTimeout   time.Duration
	GroqRetries   int
	GroqMaxTokens int

	// GOOGLE_CSE_*
	CSEKey   string
	CSECX    string
	CSEDelay time.Duration

	// RESUME_*
	ResumeURL     string
	ResumeTimeout time.Duration

	// CHAT_*
	HistoryLimit int
	ListLimit    int
	Prompt       string
	Migrate      bool
}

// FromConfig reads GROQ_*, GOOGLE_CSE_*, RESUME_* and CHAT_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	gc := cfg.Prefix("GROQ_")
	sc := cfg.Prefix("GOOGLE_CSE_")
	rc := cfg.Prefix("RESUME_")
	cc := cfg.Prefix("CHAT_")
	return Options{
		GroqAPIKey:    gc.MayString("API_KEY", ""),
		GroqBaseURL:   gc.MayString("BASE_URL", ""),
		GroqModel:     gc.MayString("CHAT_MODEL", ""),
		GroqTimeout:   gc.MayDuration("TIMEOUT", 60*time.Second),
		GroqRetries:   groq.Retries(gc.MayInt("MAX_RETRIES", 3)),
		GroqMaxTokens: gc.MayInt("MAX_TOKENS", 5000),

		CSEKey:   sc.MayString("KEY", ""),
		CSECX:    sc.MayString("CX", ""),
		CSEDelay: sc.MayDuration("DELAY", 200*time.Millisecond),

		ResumeURL:     rc.MayString("URL", ""),
		ResumeTimeout: rc.MayDuration("TIMEOUT", 30*time.Second),

		HistoryLimit: cc.MayInt("HISTORY_LIMIT", 10),
		ListLimit:    cc.MayInt("LIST_LIMIT", 50),
		Prompt:       cc.MayString("PROMPT", ""),
		Migrate:      cc.MayBool("MIGRATE", true),
	}
}
