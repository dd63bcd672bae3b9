package wallhaven

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValidationError reports caller input that violates a field invariant.
// It is always raised before any network traffic happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("wallhaven: invalid %s: %s", e.Field, e.Reason)
}

// AuthenticationError corresponds to HTTP 401: the API key is missing,
// wrong, or revoked.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string {
	return "wallhaven: authentication failed: check the API key (manage keys at https://wallhaven.cc/settings/account)"
}

// RateLimitedError corresponds to HTTP 429. The client-side limiter keeps
// well under the published budget, but the server can still throttle when
// the same key is in use elsewhere. RetryAfter is zero when the server
// sent no hint.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("wallhaven: rate limited by server, retry after %s", e.RetryAfter)
	}
	return "wallhaven: rate limited by server"
}

// RequestError reports any non-2xx response other than 401 and 429.
// Body holds a bounded excerpt of the response for diagnostics.
type RequestError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *RequestError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("wallhaven: request failed: %s", e.Status)
	}
	return fmt.Sprintf("wallhaven: request failed: %s: %s", e.Status, e.Body)
}

// DecodeError reports a 200 response whose body is not the JSON the
// endpoint promises. It wraps the underlying decode failure.
type DecodeError struct {
	Body string
	err  error
}

func (e *DecodeError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("wallhaven: decode response: %v", e.err)
	}
	return fmt.Sprintf("wallhaven: decode response: %v (body: %s)", e.err, e.Body)
}

func (e *DecodeError) Unwrap() error { return e.err }

// parseRetryAfter reads the delay-seconds form of a Retry-After header.
// Anything else (HTTP dates, garbage) maps to zero.
func parseRetryAfter(value string) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// bodySnippet bounds response excerpts carried inside errors.
func bodySnippet(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
