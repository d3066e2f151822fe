// Package http provides http transport for voice
package http

import (
	"errors"
	"io"
	stdhttp "net/http"

	"careerassist/internal/adapters/groq"
	"careerassist/internal/modkit/httpkit"
	perr "careerassist/internal/platform/errors"
	"careerassist/internal/platform/logger"
	"careerassist/internal/services/voice/domain"
	svc "careerassist/internal/services/voice/service"
)

const (
	formField = "audio"

	// parts above this size spill to temporary files
	memoryBytes = 1 << 20
	// room for the form envelope around the clip
	formOverhead = 1 << 20
)

// Register mounts voice endpoints on the given router
func Register(r httpkit.Router, s svc.Service, log logger.Logger) {
	h := &handlers{svc: s, log: log}
	httpkit.Post(r, "/transcribe", h.transcribe)
}

type handlers struct {
	svc svc.Service
	log logger.Logger
}

// swagger:route POST /voice/transcribe Voice voiceTranscribe
// @Summary Transcribe a recording and identify its language
// @Tags Voice
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Recorded clip, 25MB max"
// @Param language formData string false "Language hint, code or English name"
// @Success 200 {object} domain.TranscribeOutput "ok"
// @Failure 422 {object} httpkit.Envelope "invalid audio or no speech"
// @Failure 502 {object} httpkit.Envelope "transcription failed"
// @Router /voice/transcribe [post]
func (h *handlers) transcribe(r *stdhttp.Request) (any, error) {
	in, err := h.read(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Transcribe(r.Context(), in)
}

func (h *handlers) read(r *stdhttp.Request) (domain.TranscribeInput, error) {
	r.Body = stdhttp.MaxBytesReader(nil, r.Body, groq.MaxAudioBytes+formOverhead)
	if err := r.ParseMultipartForm(memoryBytes); err != nil {
		var tooBig *stdhttp.MaxBytesError
		if errors.As(err, &tooBig) {
			return domain.TranscribeInput{}, perr.Newf(perr.ErrorCodeInvalidAudio, "audio exceeds %d bytes", groq.MaxAudioBytes)
		}
		return domain.TranscribeInput{}, perr.WithField(perr.InvalidArgf("expected multipart form: %v", err), formField)
	}
	defer h.cleanup(r)

	f, hdr, err := r.FormFile(formField)
	if err != nil {
		return domain.TranscribeInput{}, perr.WithField(perr.InvalidArgf("missing %s file", formField), formField)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, groq.MaxAudioBytes+1))
	if err != nil {
		return domain.TranscribeInput{}, perr.Wrap(err, perr.ErrorCodeInvalidAudio, "read audio")
	}
	return domain.TranscribeInput{
		Filename: hdr.Filename,
		Audio:    data,
		Language: r.FormValue("language"),
	}, nil
}

// cleanup removes spilled form parts; failures are logged and swallowed
func (h *handlers) cleanup(r *stdhttp.Request) {
	if r.MultipartForm == nil {
		return
	}
	if err := r.MultipartForm.RemoveAll(); err != nil {
		h.log.Warn().Err(err).Msg("remove temporary audio files")
	}
}
