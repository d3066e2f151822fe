// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode defines supported error codes used across services
// Values are stable for wire compatibility; add sparingly
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic

	// ErrorCodeUnavailable is for transient errors where retry may succeed
	ErrorCodeUnavailable

	// ErrorCodeTooManyRequests is for rate limiting
	ErrorCodeTooManyRequests

	// ErrorCodeConflict is for generic editing conflicts beyond duplicate key
	ErrorCodeConflict

	// ErrorCodeUnauthorized is for auth failures
	ErrorCodeUnauthorized

	// ErrorCodeForbidden is for access control failures
	ErrorCodeForbidden

	// ErrorCodeInvalidArgument is for bad input parameters
	ErrorCodeInvalidArgument

	// ErrorCodeValidation is for validation failures (input data)
	ErrorCodeValidation

	// ErrorCodeJSON is for JSON parsing/validation errors
	ErrorCodeJSON

	// ErrorCodeNotFound is for missing resources
	ErrorCodeNotFound

	// ErrorCodeDuplicateKey is for unique constraint violations
	ErrorCodeDuplicateKey

	// ErrorCodeDB is for general database errors
	ErrorCodeDB

	// ErrorCodePermissionDenied is for device or account permissions the user must grant
	ErrorCodePermissionDenied

	// ErrorCodeRecordingFailed is for audio capture failures reported by a client
	ErrorCodeRecordingFailed

	// ErrorCodeTranscriptionFailed is for speech to text failures
	ErrorCodeTranscriptionFailed

	// ErrorCodeNoSpeechDetected is for transcripts that came back empty
	ErrorCodeNoSpeechDetected

	// ErrorCodeChatFailed is for chat completion failures
	ErrorCodeChatFailed

	// ErrorCodeNetwork is for transport failures before any response arrived
	ErrorCodeNetwork

	// ErrorCodeInvalidAudio is for audio the provider rejected or we refused to send
	ErrorCodeInvalidAudio

	// ErrorCodeAPIKeyMissing is for provider credentials absent from configuration
	ErrorCodeAPIKeyMissing

	// ErrorCodeLanguageDetectionFailed is for language identification failures
	ErrorCodeLanguageDetectionFailed

	// ErrorCodeSearchFailed is for search provider failures, the kind is carried in Op
	ErrorCodeSearchFailed

	// ErrorCodeParseFailed is for unparseable model output, always recovered internally
	ErrorCodeParseFailed
)

var codeNames = [...]string{
	ErrorCodeUnknown:                 "unknown",
	ErrorCodePanic:                   "panic",
	ErrorCodeUnavailable:             "unavailable",
	ErrorCodeTooManyRequests:         "too_many_requests",
	ErrorCodeConflict:                "conflict",
	ErrorCodeUnauthorized:            "unauthorized",
	ErrorCodeForbidden:               "forbidden",
	ErrorCodeInvalidArgument:         "invalid_argument",
	ErrorCodeValidation:              "validation",
	ErrorCodeJSON:                    "json",
	ErrorCodeNotFound:                "not_found",
	ErrorCodeDuplicateKey:            "duplicate_key",
	ErrorCodeDB:                      "db",
	ErrorCodePermissionDenied:        "permission_denied",
	ErrorCodeRecordingFailed:         "recording_failed",
	ErrorCodeTranscriptionFailed:     "transcription_failed",
	ErrorCodeNoSpeechDetected:        "no_speech_detected",
	ErrorCodeChatFailed:              "chat_failed",
	ErrorCodeNetwork:                 "network_error",
	ErrorCodeInvalidAudio:            "invalid_audio",
	ErrorCodeAPIKeyMissing:           "api_key_missing",
	ErrorCodeLanguageDetectionFailed: "language_detection_failed",
	ErrorCodeSearchFailed:            "search_failed",
	ErrorCodeParseFailed:             "parse_failed",
}

// String returns the snake case name of the code
func (c ErrorCode) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("code_%d", uint16(c))
}

// HTTPStatusCode turns an ErrorCode into an http status code
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case ErrorCodeDuplicateKey, ErrorCodeConflict:
		return http.StatusConflict
	case ErrorCodeValidation, ErrorCodeJSON:
		return http.StatusBadRequest
	case ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrorCodeForbidden:
		return http.StatusForbidden
	case ErrorCodeTooManyRequests:
		return http.StatusTooManyRequests
	case ErrorCodeUnavailable, ErrorCodeAPIKeyMissing, ErrorCodeNetwork:
		return http.StatusServiceUnavailable
	case ErrorCodePermissionDenied:
		return http.StatusForbidden
	case ErrorCodeInvalidAudio, ErrorCodeNoSpeechDetected, ErrorCodeRecordingFailed:
		return http.StatusUnprocessableEntity
	case ErrorCodeTranscriptionFailed, ErrorCodeChatFailed, ErrorCodeSearchFailed, ErrorCodeLanguageDetectionFailed:
		return http.StatusBadGateway
	case ErrorCodeDB, ErrorCodePanic, ErrorCodeUnknown, ErrorCodeParseFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a machine code next to a developer message.
// field names the offending input for validation failures and op tags
// the failing operation; both are optional.
type Error struct {
	code  ErrorCode
	msg   string
	field string
	op    string
	cause error
}

// Wire is the JSON body of every error response.
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.cause == nil:
		return e.msg
	default:
		return e.msg + ": " + e.cause.Error()
	}
}

func (e *Error) Unwrap() error   { return e.cause }
func (e *Error) Code() ErrorCode { return e.code }
func (e *Error) Field() string   { return e.field }
func (e *Error) Op() string      { return e.op }

func (e *Error) wire() Wire { return Wire{Code: e.code, Message: e.msg, Field: e.field} }

func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

func Newf(code ErrorCode, format string, a ...any) error {
	return New(code, fmt.Sprintf(format, a...))
}

// Wrap keeps cause reachable through errors.Is and errors.As; the cause
// text never reaches the wire.
func Wrap(cause error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, cause: cause}
}

func Wrapf(cause error, code ErrorCode, format string, a ...any) error {
	return Wrap(cause, code, fmt.Sprintf(format, a...))
}

// As finds the outermost *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// CodeOf is ErrorCodeUnknown for errors that are not ours.
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// WireFrom is the zero Wire for nil. Foreign errors go out as unknown
// with their own text.
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.wire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// Root follows Unwrap to the innermost error.
func Root(err error) error {
	for err != nil {
		next := stderrs.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return err
}

// amend returns a modified copy of the *Error in err. Errors that are not
// ours pass through untouched.
func amend(err error, edit func(*Error)) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	cp := *e
	edit(&cp)
	return &cp
}

func WithField(err error, field string) error {
	return amend(err, func(e *Error) { e.field = field })
}

func WithOp(err error, op string) error {
	return amend(err, func(e *Error) { e.op = op })
}

func InvalidArgf(format string, a ...any) error  { return Newf(ErrorCodeInvalidArgument, format, a...) }
func JSONErrf(format string, a ...any) error     { return Newf(ErrorCodeJSON, format, a...) }
func PanicErrf(format string, a ...any) error    { return Newf(ErrorCodePanic, format, a...) }
func Forbiddenf(format string, a ...any) error   { return Newf(ErrorCodeForbidden, format, a...) }
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

func APIKeyMissingf(format string, a ...any) error {
	return Newf(ErrorCodeAPIKeyMissing, format, a...)
}

// SearchFailed tags a provider failure with the search kind it served.
func SearchFailed(cause error, kind string) error {
	return WithOp(Wrapf(cause, ErrorCodeSearchFailed, "%s search failed", kind), kind)
}

// Retryable reports whether an operation that failed with err may succeed if repeated
// store contention counts, as do provider codes that mark a transient failure
func Retryable(err error) bool {
	switch CodeOf(err) {
	case ErrorCodeUnavailable, ErrorCodeTooManyRequests, ErrorCodeNetwork:
		return true
	}
	return IsRetryable(err)
}
