package providers

import (
	"errors"
	"fmt"
	"time"

	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
)

// ErrProviderUnavailable is returned when a decorator has no upstream to call.
var ErrProviderUnavailable = errors.New("provider unavailable")

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// FetchError reports a transport failure or a non-success HTTP status from an upstream.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Temporary reports whether retrying the request may succeed.
func (e *FetchError) Temporary() bool {
	return e.StatusCode == 0 || e.StatusCode >= 500
}

// DeserializationError reports an upstream body that is not a JSON object.
type DeserializationError struct {
	URL string
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// UnknownStatusError reports an upstream status code outside the known set.
// Statuses are never guessed, so the whole batch for the sport fails.
type UnknownStatusError struct {
	Provider string
	Code     string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("%s: unrecognized upstream status %q", e.Provider, e.Code)
}

// AsUnknownStatusError attempts to unwrap an error into an UnknownStatusError.
func AsUnknownStatusError(err error) (*UnknownStatusError, bool) {
	var statusErr *UnknownStatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// UnsupportedSportError is returned when no fetcher serves the requested sport.
type UnsupportedSportError struct {
	Sport sports.Sport
}

func (e *UnsupportedSportError) Error() string {
	return fmt.Sprintf("no provider serves sport %s", e.Sport)
}

// SportError attaches the sport to a normalization failure.
type SportError struct {
	Sport sports.Sport
	Err   error
}

func (e *SportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Sport, e.Err)
}

func (e *SportError) Unwrap() error { return e.Err }

// Retryable reports whether err is a transient upstream failure worth retrying.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := AsRateLimitError(err); ok {
		return true
	}
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Temporary()
	}
	return false
}
