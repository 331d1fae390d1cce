// Package errors maps application failures onto HTTP responses.
package errors

import (
	stderrors "errors"
	"net/http"

	apperrors "github.com/bfarth20/malexanderportfolio/internal/platform/errors"
)

// Kind classifies web failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown     Kind = "unknown"
	KindNotFound    Kind = "not_found"
	KindUnavailable Kind = "unavailable"
)

// Error is a typed web failure.
type Error struct {
	Kind    Kind
	Message string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// HTTPStatus maps an error to an HTTP status code. Content store failures,
// including configuration problems discovered at request time, are server
// errors.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var webErr Error
	if stderrors.As(err, &webErr) {
		switch webErr.Kind {
		case KindNotFound:
			return http.StatusNotFound
		case KindUnavailable:
			return http.StatusServiceUnavailable
		default:
			return http.StatusInternalServerError
		}
	}
	if apperrors.IsCode(err, apperrors.CodeNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the text shown to visitors for err's status.
func PublicMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "The page you were looking for could not be found."
	case http.StatusServiceUnavailable:
		return "The site is temporarily unavailable. Please try again shortly."
	default:
		return "Something went wrong while loading this page. Please try again later."
	}
}
