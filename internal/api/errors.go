// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API failure. The dispatcher renders every kind the
// same way (one "Error:" line), but callers and tests can distinguish
// them.
type Kind int

const (
	// KindTransport covers failures with no HTTP response at all.
	KindTransport Kind = iota

	// KindRemote is a non-2xx response that fits no narrower kind.
	KindRemote

	// KindUnauthorized is an HTTP 401 or 403.
	KindUnauthorized

	// KindRateLimited is an HTTP 429. The client never retries; the
	// error is reported as-is.
	KindRateLimited

	// KindRedirect is a 3xx that surfaced past the transport layer.
	// Redirects are not followed specially and not retried.
	KindRedirect

	// KindProcessing is an HTTP 202: the library exists but the remote
	// is still indexing it.
	KindProcessing

	// KindNoResults means a resolution search succeeded over HTTP but
	// returned zero candidates. Distinct from KindRemote: the call
	// itself worked.
	KindNoResults
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindRemote:
		return "remote"
	case KindUnauthorized:
		return "unauthorized"
	case KindRateLimited:
		return "rate_limited"
	case KindRedirect:
		return "redirect"
	case KindProcessing:
		return "processing"
	case KindNoResults:
		return "no_results"
	default:
		return "unknown"
	}
}

// Error is the single error type the API surface produces. Message is
// ready to render on one diagnostic line.
type Error struct {
	Kind    Kind
	Status  int // HTTP status, 0 when no response was received
	Message string
}

func (e *Error) Error() string { return e.Message }

// NoResults builds the zero-candidates resolution error for a name.
func NoResults(name string) *Error {
	return &Error{Kind: KindNoResults, Message: fmt.Sprintf("no libraries found for %q", name)}
}

// IsNoResults reports whether err is a zero-candidates resolution error.
func IsNoResults(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNoResults
}

// kindForStatus maps a non-success HTTP status to an error kind.
func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusAccepted:
		return KindProcessing
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status >= 300 && status < 400:
		return KindRedirect
	default:
		return KindRemote
	}
}
