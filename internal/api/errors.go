package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed exchange the way the UI cares about it.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthentication
	KindNotFound
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not found"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is a failed request/response exchange. Message carries the
// server's error body when one was sent.
type Error struct {
	Kind      Kind
	Status    int
	Message   string
	RequestID string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: status %d", e.Kind, e.Status)
}

func kindFromStatus(code int) Kind {
	switch code {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuthentication
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindServer
	}
}

func hasKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

func HasValidation(err error) bool     { return hasKind(err, KindValidation) }
func HasAuthentication(err error) bool { return hasKind(err, KindAuthentication) }
func HasNotFound(err error) bool       { return hasKind(err, KindNotFound) }
func HasServer(err error) bool         { return hasKind(err, KindServer) }
