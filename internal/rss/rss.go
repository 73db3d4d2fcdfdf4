// Package rss is the feed-source collaborator: it turns configured feed URLs
// into raw entries. A broken feed is logged and skipped; only all feeds
// failing at once is an error.
package rss

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

// ErrAllFeedsFailed means no configured feed produced entries this run.
var ErrAllFeedsFailed = errors.New("all feeds failed")

// Entry is one raw feed item, pre-normalization.
type Entry struct {
	Title       string
	Summary     string
	Link        string
	Source      string
	PublishedAt *time.Time
}

// FeedsConfig is the YAML feeds list:
//
//	feeds:
//	  - https://...
type FeedsConfig struct {
	Feeds []string `yaml:"feeds"`
}

// LoadFeeds reads the RSS feed URL list from a YAML file.
func LoadFeeds(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg FeedsConfig
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse feeds config: %w", err)
	}
	return cfg.Feeds, nil
}

// Fetcher downloads and parses feeds with a per-feed timeout and paced
// requests, so one slow host cannot stall the run and bursts stay polite.
type Fetcher struct {
	parser  *gofeed.Parser
	timeout time.Duration
	limiter *rate.Limiter
}

func NewFetcher(timeout time.Duration, requestsPerSecond float64) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = 2
	}
	return &Fetcher{
		parser:  gofeed.NewParser(),
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// FetchAll collects entries from every URL. Per-feed failures are warnings;
// ErrAllFeedsFailed is returned only when nothing was reachable.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) ([]Entry, error) {
	var entries []Entry
	succeeded := 0

	for _, url := range urls {
		if err := f.limiter.Wait(ctx); err != nil {
			return entries, err
		}

		feedEntries, err := f.fetchOne(ctx, url)
		if err != nil {
			slog.Warn("feed fetch failed, skipping", "feed", url, "error", err)
			continue
		}
		entries = append(entries, feedEntries...)
		succeeded++
		slog.Debug("feed fetched", "feed", url, "entries", len(feedEntries))
	}

	slog.Info("feeds processed", "ok", succeeded, "total", len(urls), "entries", len(entries))
	if succeeded == 0 && len(urls) > 0 {
		return nil, ErrAllFeedsFailed
	}
	return entries, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, url string) ([]Entry, error) {
	feedCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	feed, err := f.parser.ParseURLWithContext(url, feedCtx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		entries = append(entries, Entry{
			Title:       item.Title,
			Summary:     item.Description,
			Link:        item.Link,
			Source:      feed.Title,
			PublishedAt: item.PublishedParsed,
		})
	}
	return entries, nil
}
