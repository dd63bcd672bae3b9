package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"wallhaven/internal/config"
)

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	client := NewComponentLogger(logger, "client")
	client.Info("request sent", Args(String("endpoint", "search"), Int("page", 2))...)

	line := buf.String()
	if !strings.Contains(line, " INFO client: request sent") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, "endpoint=search") || !strings.Contains(line, "page=2") {
		t.Fatalf("expected flattened attrs, got %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component must render as prefix, got %q", line)
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hello", Args(String("key", "value"))...)

	line := buf.String()
	for _, want := range []string{`"msg":"hello"`, `"level":"info"`, `"key":"value"`, `"ts":"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %s in %q", want, line)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewFromConfig(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewFromConfig(nil, &buf)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("defaults apply")
	if !strings.Contains(buf.String(), "INFO defaults apply") {
		t.Fatalf("expected console output, got %q", buf.String())
	}

	buf.Reset()
	cfg := config.Default()
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "debug"
	logger, err = NewFromConfig(&cfg, &buf)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Debug("configured")
	if !strings.Contains(buf.String(), `"msg":"configured"`) {
		t.Fatalf("expected json output, got %q", buf.String())
	}
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug output suppressed, got %q", buf.String())
	}
	logger.Warn("shown")
	if !strings.Contains(buf.String(), "WARN shown") {
		t.Fatalf("expected warn output, got %q", buf.String())
	}
}

func TestFileSinkDuplicatesOutput(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "wallhaven.log")
	logger, err := New(Options{Format: "console", File: path, MaxSizeMB: 1, Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("persisted")

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(contents), "persisted") {
		t.Fatalf("expected log line in file, got %q", contents)
	}
	if !strings.Contains(buf.String(), "persisted") {
		t.Fatalf("expected log line on console, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestErrorAttr(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Error("request failed", Args(Error(errors.New("boom")), Duration("elapsed", 2*time.Second))...)
	line := buf.String()
	if !strings.Contains(line, "error=boom") || !strings.Contains(line, "elapsed=2s") {
		t.Fatalf("unexpected error line: %q", line)
	}
	if Error(nil).Value.String() != "<nil>" {
		t.Fatal("nil error must render as <nil>")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("expected no-op logger to be disabled")
	}
	logger.Info("ignored")
}
