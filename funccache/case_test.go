package funccache

import "testing"

func TestToSnake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple lower", "fetch", "fetch"},
		{"camel case", "fetchDocument", "fetch_document"},
		{"pascal case", "FetchDocument", "fetch_document"},
		{"acronym", "HTTPClient", "http_client"},
		{"trailing acronym", "ParseURL", "parse_url"},
		{"dotted identity", "docs.Fetch", "docs_fetch"},
		{"qualified identity", "github.com/acme/feeds.FetchDocument", "github_com_acme_feeds_fetch_document"},
		{"method identity", "(*Client).Fetch", "client_fetch"},
		{"digits", "fetchV2", "fetch_v2"},
		{"already snake", "fetch_document", "fetch_document"},
		{"repeated separators", "docs..Fetch", "docs_fetch"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toSnake(tt.input); got != tt.want {
				t.Errorf("toSnake(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStoreName(t *testing.T) {
	tests := []struct {
		identity string
		want     string
	}{
		{"docs.Fetch", "docs_fetch.cache"},
		{"github.com/acme/feeds.FetchDocument", "github_com_acme_feeds_fetch_document.cache"},
		{"math.Square", "math_square.cache"},
	}
	for _, tt := range tests {
		if got := StoreName(tt.identity); got != tt.want {
			t.Errorf("StoreName(%q) = %q, want %q", tt.identity, got, tt.want)
		}
	}
}
