package dispatch

import (
	"strings"

	str "careerassist/internal/platform/strings"
)

// Memory is the persisted summary of one conversation
// an empty ChatID marks a conversation that has not been stored yet
type Memory struct {
	ChatID  string `json:"chat_id,omitempty"`
	Title   string `json:"title"`
	Emoji   string `json:"emoji"`
	Context string `json:"context"`
}

// IsNew reports whether the conversation has not been stored yet
func (m Memory) IsNew() bool { return m.ChatID == "" }

const (
	titleRunes   = 30
	defaultEmoji = "💬"
	defaultTitle = "Conversation"
	logRunes     = 120
)

// themed sets title and emoji on new conversations only, existing identities are kept
func (m Memory) themed(title, emoji string) Memory {
	if m.IsNew() {
		m.Title, m.Emoji = title, emoji
	}
	return m
}

func (m Memory) withDefaults(userMessage string) Memory {
	if strings.TrimSpace(m.Title) == "" {
		m.Title = TitleFrom(userMessage)
	}
	if strings.TrimSpace(m.Emoji) == "" {
		m.Emoji = defaultEmoji
	}
	return m
}

// TitleFrom derives a conversation title from the first user message
func TitleFrom(msg string) string {
	msg = str.Squash(msg)
	if msg == "" {
		return defaultTitle
	}
	return str.Clip(msg, titleRunes)
}

func appendLine(ctx, line string) string {
	if strings.TrimSpace(ctx) == "" {
		return line
	}
	return ctx + "\n\n" + line
}

func exchangeLine(user, reply string) string {
	return "User: " + str.Clip(str.Squash(user), logRunes) +
		"\nAssistant: " + str.Clip(str.Squash(reply), logRunes)
}
