package errors

import (
	"context"
	stderrs "errors"
	"net"
)

// Category is the coarse failure class shown to end users
type Category string

// Categories in the order they are checked
const (
	CategoryAPIKey     Category = "api_key"
	CategoryPermission Category = "permission"
	CategoryAuth       Category = "auth"
	CategoryRateLimit  Category = "rate_limit"
	CategoryServer     Category = "server"
	CategoryNetwork    Category = "network"
	CategoryOther      Category = "other"
)

// Classify walks the wrap chain and returns the category of the first classifiable code
// transport errors without a project code map to network
func Classify(err error) Category {
	if err == nil {
		return CategoryOther
	}
	for e := err; e != nil; e = stderrs.Unwrap(e) {
		pe, ok := e.(*Error)
		if !ok {
			continue
		}
		if c, ok := categoryOf(pe.code); ok {
			return c
		}
	}
	if stderrs.Is(err, context.DeadlineExceeded) {
		return CategoryNetwork
	}
	var ne net.Error
	if stderrs.As(err, &ne) {
		return CategoryNetwork
	}
	return CategoryOther
}

func categoryOf(c ErrorCode) (Category, bool) {
	switch c {
	case ErrorCodeAPIKeyMissing:
		return CategoryAPIKey, true
	case ErrorCodePermissionDenied:
		return CategoryPermission, true
	case ErrorCodeUnauthorized, ErrorCodeForbidden:
		return CategoryAuth, true
	case ErrorCodeTooManyRequests:
		return CategoryRateLimit, true
	case ErrorCodeUnavailable, ErrorCodeDB:
		return CategoryServer, true
	case ErrorCodeNetwork:
		return CategoryNetwork, true
	}
	return "", false
}

// Terminal reports whether the failure needs user action outside the app
func Terminal(err error) bool {
	switch Classify(err) {
	case CategoryAPIKey, CategoryPermission:
		return true
	}
	return false
}

// Codes lists the project codes found along the wrap chain, outermost first
func Codes(err error) []ErrorCode {
	var out []ErrorCode
	for e := err; e != nil; e = stderrs.Unwrap(e) {
		if pe, ok := e.(*Error); ok {
			out = append(out, pe.code)
		}
	}
	return out
}
