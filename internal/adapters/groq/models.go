package groq

// Message is one chat turn
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is one completion call: a system prompt, prior turns and the new user message
type ChatRequest struct {
	System  string
	History []Message
	User    string
}

type chatBody struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Audio is a recorded clip to transcribe
type Audio struct {
	Filename string
	Data     []byte

	// Language is an optional ISO-639-1 hint, Prompt optional context for the model
	Language string
	Prompt   string
}

// Transcript is the verbose transcription result
type Transcript struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
}
