package serpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Kind classifies why a provider call failed.
type Kind string

const (
	KindTimeout     Kind = "timeout"
	KindRateLimited Kind = "rate_limited"
	KindAuthFailed  Kind = "auth_failed"
	KindMalformed   Kind = "malformed"
	KindUnknown     Kind = "unknown"
)

var ErrNotConfigured = errors.New("serpapi key not configured")

type Error struct {
	Kind   Kind
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("serpapi %s (status %d): %v", e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("serpapi %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) FailureKind() string {
	return string(e.Kind)
}

// KindOf returns KindUnknown for errors that did not come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func classifyTransport(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Err: err}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &Error{Kind: KindTimeout, Err: err}
	}
	return &Error{Kind: KindUnknown, Err: err}
}

func classifyStatus(status int, body string) *Error {
	err := fmt.Errorf("unexpected status: %s", strings.TrimSpace(body))
	switch {
	case status == http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimited, Status: status, Err: err}
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &Error{Kind: KindAuthFailed, Status: status, Err: err}
	default:
		return &Error{Kind: KindUnknown, Status: status, Err: err}
	}
}

// classifyBodyError handles a 2xx response whose JSON carries an "error" field.
func classifyBodyError(status int, msg string) *Error {
	lower := strings.ToLower(msg)
	err := errors.New(msg)
	switch {
	case strings.Contains(lower, "invalid api key"):
		return &Error{Kind: KindAuthFailed, Status: status, Err: err}
	default:
		return &Error{Kind: KindMalformed, Status: status, Err: err}
	}
}
