package wikiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chat-relay/config"
)

func searchServer(t *testing.T, pages map[string][]SearchResult) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/page" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("User-Agent") != userAgent {
			t.Errorf("unexpected user agent %q", r.Header.Get("User-Agent"))
		}
		q := r.URL.Query().Get("q")
		json.NewEncoder(w).Encode(searchResponse{Pages: pages[q]})
	}))
}

func TestSearchDecodesPages(t *testing.T) {
	srv := searchServer(t, map[string][]SearchResult{
		"ocaml": {
			{ID: 1, Key: "OCaml", Title: "OCaml", Description: "Programming language"},
		},
	})
	defer srv.Close()

	c := New(config.WikipediaConfig{BaseURL: srv.URL, SearchDelayMillis: 1})
	results, err := c.Search(context.Background(), "ocaml", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Key != "OCaml" {
		t.Fatalf("unexpected results: %+v", results)
	}
	if results[0].URL() != "https://en.wikipedia.org/wiki/OCaml" {
		t.Fatalf("unexpected article url %q", results[0].URL())
	}
}

func TestSearchKeywordsDeduplicatesAndTruncates(t *testing.T) {
	srv := searchServer(t, map[string][]SearchResult{
		"go": {
			{ID: 1, Key: "Go_(programming_language)", Title: "Go (programming language)"},
			{ID: 2, Key: "Go_(game)", Title: "Go (game)"},
		},
		"golang": {
			{ID: 1, Key: "Go_(programming_language)", Title: "Go (programming language)"},
			{ID: 3, Key: "Gopher", Title: "Gopher"},
		},
	})
	defer srv.Close()

	c := New(config.WikipediaConfig{BaseURL: srv.URL, SearchDelayMillis: 1})
	results := c.SearchKeywords(context.Background(), []string{"#go", "#golang"}, 2)
	if len(results) != 2 {
		t.Fatalf("expected 2 results after dedup+truncate, got %d", len(results))
	}
	if results[0].ID != 1 || results[1].ID != 2 {
		t.Fatalf("unexpected result order: %+v", results)
	}
}

func TestSearchKeywordsToleratesPartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "broken" {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(searchResponse{Pages: []SearchResult{
			{ID: 7, Key: "Jazz", Title: "Jazz"},
		}})
	}))
	defer srv.Close()

	c := New(config.WikipediaConfig{BaseURL: srv.URL, SearchDelayMillis: 1})
	results := c.SearchKeywords(context.Background(), []string{"#broken", "#jazz"}, 4)
	if len(results) != 1 || results[0].Key != "Jazz" {
		t.Fatalf("expected surviving keyword results, got %+v", results)
	}
}

func TestSearchKeywordsStopsOnCancelledContext(t *testing.T) {
	srv := searchServer(t, nil)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(config.WikipediaConfig{BaseURL: srv.URL, SearchDelayMillis: 50})
	results := c.SearchKeywords(ctx, []string{"#go"}, 4)
	if len(results) != 0 {
		t.Fatalf("expected no results for cancelled context, got %+v", results)
	}
}
