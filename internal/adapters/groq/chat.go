package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	perr "careerassist/internal/platform/errors"
)

// Complete runs one chat completion and returns the first choice's content
// an empty choice list yields an empty reply
func (c *Client) Complete(ctx context.Context, r ChatRequest) (string, error) {
	msgs := make([]Message, 0, len(r.History)+2)
	if r.System != "" {
		msgs = append(msgs, Message{Role: "system", Content: r.System})
	}
	msgs = append(msgs, r.History...)
	msgs = append(msgs, Message{Role: "user", Content: r.User})

	payload, err := json.Marshal(chatBody{
		Model:       c.opts.ChatModel,
		Messages:    msgs,
		Temperature: c.opts.Temperature,
		MaxTokens:   c.opts.MaxTokens,
	})
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeJSON, "encode chat request")
	}

	resp, err := c.do(ctx, chatPath, perr.ErrorCodeInvalidArgument, func(ctx context.Context, url string) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return "", wrapUnless(err, perr.ErrorCodeChatFailed, "chat completion failed", perr.ErrorCodeAPIKeyMissing)
	}
	defer resp.Body.Close()

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeChatFailed, "decode chat response")
	}
	if len(out.Choices) == 0 {
		return "", nil
	}
	return out.Choices[0].Message.Content, nil
}

// wrapUnless wraps err with code unless it already carries one of keep, or is a context error
func wrapUnless(err error, code perr.ErrorCode, msg string, keep ...perr.ErrorCode) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	c := perr.CodeOf(err)
	for _, k := range keep {
		if c == k {
			return err
		}
	}
	return perr.Wrap(err, code, msg)
}
