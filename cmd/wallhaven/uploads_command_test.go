package main

import (
	"net/http"
	"testing"
)

func TestUploadsCommandDefaults(t *testing.T) {
	env := setupCLITestEnv(t)
	var gotQuery string
	env.mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchListingJSON))
	})

	out, _, err := runCLI(t, []string{"uploads", "somebody"}, env.configPath)
	if err != nil {
		t.Fatalf("uploads: %v", err)
	}
	if gotQuery != "q=%40somebody&purity=110&page=1" {
		t.Fatalf("unexpected query string: %q", gotQuery)
	}
	requireContains(t, out, "94x38z")
}

func TestUploadsCommandPurityAndPage(t *testing.T) {
	env := setupCLITestEnv(t)
	var gotQuery string
	env.mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchListingJSON))
	})

	_, _, err := runCLI(t, []string{
		"uploads", "somebody",
		"--purity", "nsfw",
		"--page", "3",
	}, env.configPath)
	if err != nil {
		t.Fatalf("uploads with flags: %v", err)
	}
	if gotQuery != "q=%40somebody&purity=001&page=3" {
		t.Fatalf("unexpected query string: %q", gotQuery)
	}
}

func TestUploadsCommandRequiresUsername(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"uploads"}, env.configPath)
	if err == nil {
		t.Fatal("expected error when username argument is missing")
	}
}
