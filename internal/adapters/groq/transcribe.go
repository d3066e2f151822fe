package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"

	perr "careerassist/internal/platform/errors"
)

// MaxAudioBytes is the provider's upload limit
const MaxAudioBytes = 25 << 20

// Transcribe converts speech to text with verbose output
// an empty transcript is reported as NoSpeechDetected
func (c *Client) Transcribe(ctx context.Context, a Audio) (Transcript, error) {
	switch {
	case len(a.Data) == 0:
		return Transcript{}, perr.Newf(perr.ErrorCodeInvalidAudio, "audio is empty")
	case len(a.Data) > MaxAudioBytes:
		return Transcript{}, perr.Newf(perr.ErrorCodeInvalidAudio, "audio exceeds %d bytes", MaxAudioBytes)
	}
	name := a.Filename
	if name == "" {
		name = "recording.m4a"
	}

	body, contentType, err := c.transcribeForm(a, name)
	if err != nil {
		return Transcript{}, perr.Wrap(err, perr.ErrorCodeTranscriptionFailed, "build transcription form")
	}

	resp, err := c.do(ctx, transcribePath, perr.ErrorCodeInvalidAudio, func(ctx context.Context, url string) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", contentType)
		return req, nil
	})
	if err != nil {
		return Transcript{}, wrapUnless(err, perr.ErrorCodeTranscriptionFailed, "transcription failed",
			perr.ErrorCodeAPIKeyMissing, perr.ErrorCodeInvalidAudio)
	}
	defer resp.Body.Close()

	var t Transcript
	if err := json.NewDecoder(resp.Body).Decode(&t); err != nil {
		return Transcript{}, perr.Wrap(err, perr.ErrorCodeTranscriptionFailed, "decode transcription")
	}
	t.Text = strings.TrimSpace(t.Text)
	if t.Text == "" {
		return Transcript{}, perr.Newf(perr.ErrorCodeNoSpeechDetected, "transcript is empty")
	}
	return t, nil
}

func (c *Client) transcribeForm(a Audio, name string) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	if err != nil {
		return nil, "", err
	}
	if _, err := fw.Write(a.Data); err != nil {
		return nil, "", err
	}
	fields := [][2]string{
		{"model", c.opts.TranscribeModel},
		{"response_format", "verbose_json"},
		{"temperature", "0"},
	}
	if a.Language != "" {
		fields = append(fields, [2]string{"language", a.Language})
	}
	if a.Prompt != "" {
		fields = append(fields, [2]string{"prompt", a.Prompt})
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
