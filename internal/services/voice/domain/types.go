// Package domain holds voice DTOs and the service contract
package domain

import "context"

// TranscribeInput is one recorded clip
type TranscribeInput struct {
	Filename string
	Audio    []byte

	// Language is an optional hint from the client, a catalog code or English name
	Language string
}

// TranscribeOutput is the transcript with its identified language and the prompt to chat with
type TranscribeOutput struct {
	Text       string  `json:"text"       example:"मुझे नौकरी चाहिए"`
	Language   string  `json:"language"   example:"hi"`
	Confidence float64 `json:"confidence" example:"0.9"`
	Prompt     string  `json:"prompt"`
}

// ServicePort defines the voice workflow contract
type ServicePort interface {
	Transcribe(ctx context.Context, in TranscribeInput) (TranscribeOutput, error)
}
