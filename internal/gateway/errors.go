package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/google/go-github/v62/github"
)

// Sentinel kinds for FetchError classification. Callers distinguish them
// with errors.Is to decide between falling back and degrading.
var (
	// ErrTimeout marks a request that exceeded the bounded network timeout.
	ErrTimeout = errors.New("request timed out")
	// ErrAuth marks a request rejected with 401 or 403.
	ErrAuth = errors.New("authentication failed")
)

// FetchError is the recoverable error class for all network failures. The
// pipeline never aborts on one: it falls back to REST or degrades to the
// unavailable sentinel instead.
type FetchError struct {
	Op   string // e.g. "graphql stats", "list repos"
	Kind error  // ErrTimeout, ErrAuth, or nil for a generic failure
	Err  error
}

func (e *FetchError) Error() string {
	if e.Kind != nil {
		return fmt.Sprintf("fetch %s: %v: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports whether target matches the error's classified kind, so
// errors.Is(err, ErrTimeout) works through the wrapper.
func (e *FetchError) Is(target error) bool { return target == e.Kind }

// classify wraps err in a FetchError, tagging timeouts and auth rejections.
func classify(op string, err error) *FetchError {
	fe := &FetchError{Op: op, Err: err}

	if errors.Is(err, context.DeadlineExceeded) {
		fe.Kind = ErrTimeout
		return fe
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		fe.Kind = ErrTimeout
		return fe
	}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			fe.Kind = ErrAuth
		}
		return fe
	}
	// The GraphQL client surfaces auth rejections as bare "non-200 OK status
	// code: <status> ..." strings, so the status has to be sniffed from the
	// message.
	if msg := err.Error(); strings.Contains(msg, "non-200 OK status code") {
		if strings.Contains(msg, "401 ") || strings.Contains(msg, "403 ") {
			fe.Kind = ErrAuth
		}
	}
	return fe
}
