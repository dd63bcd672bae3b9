package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// searchListingJSON is a trimmed two-entry search page as the API returns
// it, quoted per_page included.
const searchListingJSON = `{
	"data": [
		{
			"id": "94x38z",
			"url": "https://wallhaven.cc/w/94x38z",
			"short_url": "https://whvn.cc/94x38z",
			"views": 12729,
			"favorites": 772,
			"source": "",
			"purity": "sfw",
			"category": "anime",
			"dimension_x": 6742,
			"dimension_y": 3534,
			"resolution": "6742x3534",
			"ratio": "1.91",
			"file_size": 5070446,
			"file_type": "image/png",
			"created_at": "2018-10-31 01:23:10",
			"colors": ["#000000", "#abbcda"],
			"path": "https://w.wallhaven.cc/full/94/wallhaven-94x38z.png",
			"thumbs": {
				"large": "https://th.wallhaven.cc/lg/94/94x38z.jpg",
				"original": "https://th.wallhaven.cc/orig/94/94x38z.jpg",
				"small": "https://th.wallhaven.cc/small/94/94x38z.jpg"
			}
		},
		{
			"id": "j5rddw",
			"url": "https://wallhaven.cc/w/j5rddw",
			"short_url": "https://whvn.cc/j5rddw",
			"views": 4071,
			"favorites": 303,
			"source": "",
			"purity": "sfw",
			"category": "general",
			"dimension_x": 3840,
			"dimension_y": 2160,
			"resolution": "3840x2160",
			"ratio": "1.78",
			"file_size": 1310341,
			"file_type": "image/jpeg",
			"created_at": "2024-02-07 18:01:42",
			"colors": ["#336600", "#000000"],
			"path": "https://w.wallhaven.cc/full/j5/wallhaven-j5rddw.jpg",
			"thumbs": {
				"large": "https://th.wallhaven.cc/lg/j5/j5rddw.jpg",
				"original": "https://th.wallhaven.cc/orig/j5/j5rddw.jpg",
				"small": "https://th.wallhaven.cc/small/j5/j5rddw.jpg"
			}
		}
	],
	"meta": {
		"current_page": 1,
		"last_page": 43,
		"per_page": "24",
		"total": 1007,
		"query": "forest",
		"seed": null
	}
}`

const emptyListingJSON = `{
	"data": [],
	"meta": {
		"current_page": 1,
		"last_page": 1,
		"per_page": "24",
		"total": 0,
		"query": "zzzz-nothing",
		"seed": null
	}
}`

type cliTestEnv struct {
	mux        *http.ServeMux
	server     *httptest.Server
	configPath string
	homeDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	// Blank out any key from the host environment; the file key must win.
	t.Setenv("WALLHAVEN_API_KEY", "")

	configPath := filepath.Join(homeDir, ".config", "wallhaven", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, server.URL)

	return &cliTestEnv{
		mux:        mux,
		server:     server,
		configPath: configPath,
		homeDir:    homeDir,
	}
}

// writeTestConfig points the CLI at the test server with a rate budget
// generous enough that commands never throttle.
func writeTestConfig(t *testing.T, path, baseURL string) {
	t.Helper()
	content := fmt.Sprintf(
		"[wallhaven]\napi_key = %q\nbase_url = %q\n\n[ratelimit]\nrequests = 100\nwindow_seconds = 1\n",
		"test-key",
		baseURL,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
