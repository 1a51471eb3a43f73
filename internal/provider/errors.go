package provider

import (
	"errors"
	"fmt"
	"time"
)

// Error kind labels used in logs and metric attributes.
const (
	KindNetwork   = "network"
	KindAuth      = "auth"
	KindRateLimit = "rate_limit"
	KindMalformed = "malformed"
	KindOther     = "other"
)

// NetworkError captures transport-level failures: timeouts, connection
// failures, and unhealthy upstream responses.
type NetworkError struct {
	Provider string
	Message  string
	Err      error
}

func (e *NetworkError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider unreachable"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthError reports a rejected or exhausted API key. It requires operator
// intervention and is surfaced prominently by the scheduler.
type AuthError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rejected api key"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// RateLimitError captures rate limit responses from the upstream provider,
// whether signalled by HTTP 429 or by a quota message in the payload.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
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

// MalformedResponseError reports a response body that could not be decoded
// or is missing expected top-level fields.
type MalformedResponseError struct {
	Provider string
	Message  string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "malformed provider response"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var nErr *NetworkError
	if errors.As(err, &nErr) {
		return nErr, true
	}
	return nil, false
}

// AsAuthError attempts to unwrap an error into an AuthError.
func AsAuthError(err error) (*AuthError, bool) {
	var aErr *AuthError
	if errors.As(err, &aErr) {
		return aErr, true
	}
	return nil, false
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// AsMalformedResponseError attempts to unwrap an error into a MalformedResponseError.
func AsMalformedResponseError(err error) (*MalformedResponseError, bool) {
	var mErr *MalformedResponseError
	if errors.As(err, &mErr) {
		return mErr, true
	}
	return nil, false
}

// ErrorKind maps an error to its taxonomy label for logs and metrics.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	if _, ok := AsAuthError(err); ok {
		return KindAuth
	}
	if _, ok := AsRateLimitError(err); ok {
		return KindRateLimit
	}
	if _, ok := AsMalformedResponseError(err); ok {
		return KindMalformed
	}
	if _, ok := AsNetworkError(err); ok {
		return KindNetwork
	}
	return KindOther
}
