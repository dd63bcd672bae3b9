package wallhaven

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "page", Reason: "must not be negative"}
	if got := err.Error(); got != "wallhaven: invalid page: must not be negative" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestRateLimitedErrorMessage(t *testing.T) {
	err := &RateLimitedError{}
	if got := err.Error(); got != "wallhaven: rate limited by server" {
		t.Fatalf("unexpected message: %q", got)
	}
	err = &RateLimitedError{RetryAfter: 30 * time.Second}
	if got := err.Error(); !strings.Contains(got, "retry after 30s") {
		t.Fatalf("expected retry hint, got %q", got)
	}
}

func TestRequestErrorMessage(t *testing.T) {
	err := &RequestError{StatusCode: 503, Status: "503 Service Unavailable"}
	if got := err.Error(); got != "wallhaven: request failed: 503 Service Unavailable" {
		t.Fatalf("unexpected message: %q", got)
	}
	err.Body = `{"error":"down"}`
	if got := err.Error(); !strings.Contains(got, `{"error":"down"}`) {
		t.Fatalf("expected body excerpt, got %q", got)
	}
}

func TestDecodeErrorUnwrap(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &DecodeError{Body: "<html>", err: cause}
	if !errors.Is(err, cause) {
		t.Fatal("expected DecodeError to wrap its cause")
	}
	if got := err.Error(); !strings.Contains(got, "<html>") {
		t.Fatalf("expected body excerpt, got %q", got)
	}
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"", 0},
		{"30", 30 * time.Second},
		{" 10 ", 10 * time.Second},
		{"0", 0},
		{"-5", 0},
		{"soon", 0},
		{"Wed, 21 Oct 2025 07:28:00 GMT", 0},
	}
	for _, tt := range tests {
		if got := parseRetryAfter(tt.input); got != tt.want {
			t.Fatalf("parseRetryAfter(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestBodySnippet(t *testing.T) {
	if got := bodySnippet([]byte("  short body\n")); got != "short body" {
		t.Fatalf("expected trimmed body, got %q", got)
	}
	long := strings.Repeat("x", 300)
	got := bodySnippet([]byte(long))
	if len(got) != 203 || !strings.HasSuffix(got, "...") {
		t.Fatalf("expected truncated snippet, got %d bytes", len(got))
	}
}
