package wallhaven

import (
	"errors"
	"strings"
	"testing"
)

func mustResolution(t *testing.T, s string) Resolution {
	t.Helper()
	r, err := ParseResolution(s)
	if err != nil {
		t.Fatalf("ParseResolution(%q) returned error: %v", s, err)
	}
	return r
}

func mustRatio(t *testing.T, s string) Ratio {
	t.Helper()
	r, err := ParseRatio(s)
	if err != nil {
		t.Fatalf("ParseRatio(%q) returned error: %v", s, err)
	}
	return r
}

func TestSearchQueryValuesZero(t *testing.T) {
	params, err := SearchQuery{}.Values()
	if err != nil {
		t.Fatalf("Values returned error: %v", err)
	}
	if len(params) != 0 {
		t.Fatalf("expected no parameters, got %v", params)
	}
	if got := params.Encode(); got != "" {
		t.Fatalf("expected empty query string, got %q", got)
	}
}

func TestSearchQueryValuesFull(t *testing.T) {
	q := SearchQuery{
		Query:       "anime landscape",
		Categories:  Category{General: true, Anime: true},
		Purity:      Purity{SFW: true},
		Sorting:     SortToplist,
		Order:       OrderDesc,
		TopRange:    TopRangeOneMonth,
		AtLeast:     mustResolution(t, "1920x1080"),
		Resolutions: []Resolution{mustResolution(t, "1920x1080"), mustResolution(t, "2560x1440")},
		Ratios:      []Ratio{mustRatio(t, "16x9"), mustRatio(t, "21x9")},
		Color:       ColorFrenchRose,
		Page:        3,
		Seed:        "aXb3D9",
	}
	params, err := q.Values()
	if err != nil {
		t.Fatalf("Values returned error: %v", err)
	}
	want := "q=anime+landscape" +
		"&categories=110" +
		"&purity=100" +
		"&sorting=toplist" +
		"&order=desc" +
		"&toprange=1M" +
		"&atleast=1920x1080" +
		"&resolutions=1920x1080%2C2560x1440" +
		"&ratios=16x9%2C21x9" +
		"&colors=ea4c88" +
		"&page=3" +
		"&seed=aXb3D9"
	if got := params.Encode(); got != want {
		t.Fatalf("unexpected query string:\n got %s\nwant %s", got, want)
	}
}

func TestSearchQueryValuesEscapesFreeText(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"uploader search", "@somebody", "%40somebody"},
		{"tag id search", "id:123", "id%3A123"},
		{"exclusion", "-cars +nature", "-cars+%2Bnature"},
		{"trimmed", "  mountains  ", "mountains"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := SearchQuery{Query: tt.query}.Values()
			if err != nil {
				t.Fatalf("Values returned error: %v", err)
			}
			if got := params.Get("q"); got != tt.want {
				t.Fatalf("expected q=%s, got %q", tt.want, got)
			}
		})
	}
}

func TestSearchQueryValuesListSeparatorStaysEncoded(t *testing.T) {
	q := SearchQuery{
		Resolutions: []Resolution{mustResolution(t, "1920x1080"), mustResolution(t, "3840x2160")},
	}
	params, err := q.Values()
	if err != nil {
		t.Fatalf("Values returned error: %v", err)
	}
	encoded := params.Encode()
	if !strings.Contains(encoded, "resolutions=1920x1080%2C3840x2160") {
		t.Fatalf("expected pre-encoded separator, got %q", encoded)
	}
	if strings.Contains(encoded, "%252C") {
		t.Fatalf("separator was escaped twice: %q", encoded)
	}
}

func TestSearchQueryValuesOmitsUnsetFields(t *testing.T) {
	params, err := SearchQuery{Query: "cats", Page: 2}.Values()
	if err != nil {
		t.Fatalf("Values returned error: %v", err)
	}
	if got := params.Encode(); got != "q=cats&page=2" {
		t.Fatalf("expected only q and page, got %q", got)
	}
}

func TestSearchQueryValuesRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		query SearchQuery
		field string
	}{
		{"unknown sorting", SearchQuery{Sorting: "newest"}, "sorting"},
		{"unknown order", SearchQuery{Order: "sideways"}, "order"},
		{"unknown toprange", SearchQuery{TopRange: "2w"}, "toprange"},
		{"off-palette color", SearchQuery{Color: "bada55"}, "color"},
		{"negative page", SearchQuery{Page: -1}, "page"},
		{"zero resolution entry", SearchQuery{Resolutions: []Resolution{{}}}, "resolutions"},
		{"zero ratio entry", SearchQuery{Ratios: []Ratio{{}}}, "ratios"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.query.Values()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.field {
				t.Fatalf("expected field %q, got %q", tt.field, verr.Field)
			}
		})
	}
}

func TestParamsGet(t *testing.T) {
	params := Params{{"q", "cats"}, {"page", "2"}, {"page", "9"}}
	if got := params.Get("page"); got != "2" {
		t.Fatalf("expected first match, got %q", got)
	}
	if got := params.Get("seed"); got != "" {
		t.Fatalf("expected empty value for missing name, got %q", got)
	}
}

func TestParamsEncodeKeepsValuesVerbatim(t *testing.T) {
	params := Params{{"resolutions", "1x1%2C2x2"}, {"page", "1"}}
	if got := params.Encode(); got != "resolutions=1x1%2C2x2&page=1" {
		t.Fatalf("unexpected encoding: %q", got)
	}
}
