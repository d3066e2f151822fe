// Package http exposes language identification over http
package http

import (
	stdhttp "net/http"

	"careerassist/internal/core/langid"
	"careerassist/internal/modkit/httpkit"
)

// IdentifyInput is text to identify with an optional engine hint
type IdentifyInput struct {
	Text string `json:"text"           validate:"required,max=8000" example:"আমি চাকরি খুঁজছি"`
	Hint string `json:"hint,omitempty" validate:"omitempty,max=32"  example:"bn"`
}

// Register mounts language endpoints on the given router
func Register(r httpkit.Router) {
	httpkit.PostJSON[IdentifyInput](r, "/identify", identify)
	httpkit.PostJSON[IdentifyInput](r, "/explain", explain)
}

// swagger:route POST /language/identify Language languageIdentify
// @Summary Identify the language of a text
// @Tags Language
// @Accept json
// @Produce json
// @Param payload body IdentifyInput true "Text"
// @Success 200 {object} langid.Result "ok"
// @Router /language/identify [post]
func identify(_ *stdhttp.Request, in IdentifyInput) (any, error) {
	return langid.Identify(in.Text, in.Hint), nil
}

// swagger:route POST /language/explain Language languageExplain
// @Summary Identify a text and show the signals behind the decision
// @Tags Language
// @Accept json
// @Produce json
// @Param payload body IdentifyInput true "Text"
// @Success 200 {object} langid.Explain "ok"
// @Router /language/explain [post]
func explain(_ *stdhttp.Request, in IdentifyInput) (any, error) {
	return langid.IdentifyExplain(in.Text, in.Hint), nil
}
