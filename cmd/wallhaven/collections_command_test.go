package main

import (
	"net/http"
	"testing"
)

const collectionsListingJSON = `{
	"data": [
		{"id": 77, "label": "Favorites", "views": 520, "public": 1, "count": 42},
		{"id": 309, "label": "Drafts", "views": 0, "public": 0, "count": 3}
	]
}`

func TestCollectionsCommandListsCollections(t *testing.T) {
	env := setupCLITestEnv(t)
	var gotQuery string
	env.mux.HandleFunc("/collections/alice", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(collectionsListingJSON))
	})

	out, _, err := runCLI(t, []string{"collections", "alice"}, env.configPath)
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	if gotQuery != "page=1" {
		t.Fatalf("unexpected query string: %q", gotQuery)
	}
	requireContains(t, out, "Favorites")
	requireContains(t, out, "Drafts")
	requireContains(t, out, "yes")
	requireContains(t, out, "no")
}

func TestCollectionsCommandWallpaperPage(t *testing.T) {
	env := setupCLITestEnv(t)
	var gotQuery string
	env.mux.HandleFunc("/collections/alice/77", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchListingJSON))
	})

	out, _, err := runCLI(t, []string{
		"collections", "alice", "77",
		"--purity", "sfw,sketchy",
		"--page", "2",
	}, env.configPath)
	if err != nil {
		t.Fatalf("collections page: %v", err)
	}
	if gotQuery != "purity=110&page=2" {
		t.Fatalf("unexpected query string: %q", gotQuery)
	}
	requireContains(t, out, "94x38z")
	requireContains(t, out, "Page 1 of 43")
}

func TestCollectionsCommandRejectsBadID(t *testing.T) {
	env := setupCLITestEnv(t)

	for _, arg := range []string{"zero", "0"} {
		_, _, err := runCLI(t, []string{"collections", "alice", arg}, env.configPath)
		if err == nil {
			t.Fatalf("expected error for collection id %q", arg)
		}
		requireContains(t, err.Error(), "invalid collection id")
	}
}

func TestCollectionsCommandEmptyListing(t *testing.T) {
	env := setupCLITestEnv(t)
	env.mux.HandleFunc("/collections/bob", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	out, _, err := runCLI(t, []string{"collections", "bob"}, env.configPath)
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	requireContains(t, out, "No collections found")
}
