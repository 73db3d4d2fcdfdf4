package rss

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test AI News</title>
    <link>https://example.com</link>
    <item>
      <title>First article title</title>
      <link>https://example.com/first</link>
      <description>First article summary text.</description>
      <pubDate>Mon, 24 Aug 2026 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Second article title</title>
      <link>https://example.com/second</link>
      <description>Second article summary text.</description>
    </item>
  </channel>
</rss>`

func TestFetchAll_ParsesFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, 100)
	entries, err := f.FetchAll(context.Background(), []string{srv.URL})
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	first := entries[0]
	if first.Title != "First article title" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Link != "https://example.com/first" {
		t.Errorf("link = %q", first.Link)
	}
	if first.Source != "Test AI News" {
		t.Errorf("source = %q", first.Source)
	}
	if first.PublishedAt == nil {
		t.Error("published date not parsed")
	}
	if entries[1].PublishedAt != nil {
		t.Error("missing pubDate should leave PublishedAt nil")
	}
}

func TestFetchAll_SkipsBrokenFeed(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleFeed))
	}))
	defer good.Close()

	f := NewFetcher(5*time.Second, 100)
	entries, err := f.FetchAll(context.Background(), []string{broken.URL, good.URL})
	if err != nil {
		t.Fatalf("FetchAll with one good feed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries from the surviving feed, want 2", len(entries))
	}
}

func TestFetchAll_AllFeedsFailing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, 100)
	_, err := f.FetchAll(context.Background(), []string{srv.URL, srv.URL})
	if !errors.Is(err, ErrAllFeedsFailed) {
		t.Errorf("err = %v, want ErrAllFeedsFailed", err)
	}
}

func TestFetchAll_NoFeedsConfigured(t *testing.T) {
	f := NewFetcher(5*time.Second, 100)
	entries, err := f.FetchAll(context.Background(), nil)
	if err != nil {
		t.Errorf("FetchAll with no feeds: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestLoadFeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	content := "feeds:\n  - https://example.com/a.xml\n  - https://example.com/b.xml\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	feeds, err := LoadFeeds(path)
	if err != nil {
		t.Fatalf("LoadFeeds: %v", err)
	}
	if len(feeds) != 2 || feeds[0] != "https://example.com/a.xml" {
		t.Errorf("feeds = %v", feeds)
	}
}

func TestLoadFeeds_MissingFile(t *testing.T) {
	if _, err := LoadFeeds(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing feeds file")
	}
}
