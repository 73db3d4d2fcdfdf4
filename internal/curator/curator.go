// Package curator orchestrates one pipeline run: fetch, filter, select,
// translate, format, publish, record. All collaborators are injected; the
// curator owns the history window exclusively for the duration of a run.
package curator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/neurocrow/newscurator/internal/classify"
	"github.com/neurocrow/newscurator/internal/config"
	"github.com/neurocrow/newscurator/internal/dedupe"
	"github.com/neurocrow/newscurator/internal/history"
	"github.com/neurocrow/newscurator/internal/language"
	"github.com/neurocrow/newscurator/internal/metrics"
	"github.com/neurocrow/newscurator/internal/post"
	"github.com/neurocrow/newscurator/internal/publish"
	"github.com/neurocrow/newscurator/internal/ratelimit"
	"github.com/neurocrow/newscurator/internal/retry"
	"github.com/neurocrow/newscurator/internal/rss"
	"github.com/neurocrow/newscurator/internal/score"
	"github.com/neurocrow/newscurator/internal/templates"
	"github.com/neurocrow/newscurator/internal/textnorm"
	"github.com/neurocrow/newscurator/internal/translate"
)

// Outcome tells the invoking scheduler what the run achieved.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomePublished
	OutcomeNoContent
)

// stage names for log context.
type stage string

const (
	stageFetching    stage = "fetching"
	stageFiltering   stage = "filtering"
	stageSelecting   stage = "selecting"
	stageTranslating stage = "translating"
	stageFormatting  stage = "formatting"
	stagePublishing  stage = "publishing"
)

// Fetcher is what the curator needs from the feed source.
type Fetcher interface {
	FetchAll(ctx context.Context, urls []string) ([]rss.Entry, error)
}

// Deps wires the external collaborators into the pipeline.
type Deps struct {
	Fetcher    Fetcher
	Translator translate.Translator
	Publisher  publish.Publisher
	History    history.Store
	Filler     *templates.Generator // optional
	Now        func() time.Time     // nil means time.Now
}

// candidate is a feed entry that survived the rejection gates.
type candidate struct {
	Title       string // normalized, pre-translation
	Summary     string // normalized
	Link        string
	Source      string
	PublishedAt *time.Time
	IsSpanish   bool
	Score       int
}

// Curator runs the pipeline.
type Curator struct {
	cfg       *config.Config
	deps      Deps
	feeds     []string
	formatter *post.Formatter
	retry     retry.Policy
	budget    *ratelimit.Budget
	now       func() time.Time
}

func New(cfg *config.Config, feeds []string, rng *rand.Rand, deps Deps) *Curator {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Curator{
		cfg:       cfg,
		deps:      deps,
		feeds:     feeds,
		formatter: post.NewFormatter(rng, cfg.MaxSummaryLength, textnorm.DefaultAbbreviations),
		retry: retry.Policy{
			MaxAttempts: cfg.TranslateAttempts,
			Delay:       cfg.TranslateBackoff,
		},
		budget: ratelimit.NewBudget(cfg.TranslateBudget),
		now:    now,
	}
}

// Run executes one pipeline pass. OutcomeNoContent with ErrNoCandidates is
// the clean "nothing worth posting" terminal state, not a failure.
func (c *Curator) Run(ctx context.Context) (Outcome, error) {
	started := c.now()
	defer func() {
		metrics.Global.RecordRun(time.Since(started))
	}()

	slog.Info("run started", "stage", stageFetching, "feeds", len(c.feeds))
	entries, err := c.deps.Fetcher.FetchAll(ctx, c.feeds)
	if err != nil {
		metrics.Global.SetError(err.Error())
		return OutcomeFailed, fmt.Errorf("fetch feeds: %w", err)
	}

	entriesHist, err := c.deps.History.Load(ctx)
	if err != nil {
		// History trouble degrades to an empty window rather than killing
		// the run; worst case is a repeated post.
		slog.Warn("history load failed, using empty history", "error", err)
		entriesHist = nil
	}

	candidates := c.filter(entries, history.Titles(entriesHist))
	if len(candidates) == 0 {
		return c.finishEmpty(ctx)
	}

	slog.Info("candidates selected", "stage", stageSelecting, "count", len(candidates))

	// Highest score first; SliceStable keeps the earliest-encountered entry
	// ahead on ties, which makes selection deterministic.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	published := 0
	maxPosts := 1
	if c.cfg.PostMode == "multi" {
		maxPosts = c.cfg.MaxPosts
	}

	sessionTitles := history.Titles(entriesHist)
	for _, cand := range candidates {
		if published >= maxPosts {
			break
		}

		// Later picks must see earlier picks: cumulative dedup within the run.
		if dedupe.IsDuplicate(cand.Title, sessionTitles, c.cfg.SimilarityThreshold) {
			metrics.Global.IncrementDuplicatesFiltered()
			slog.Debug("duplicate within run, skipping", "title", cand.Title)
			continue
		}

		title, summary, err := c.translateIfNeeded(ctx, cand)
		if err != nil {
			metrics.Global.IncrementTranslationsFailed()
			slog.Warn("candidate discarded", "stage", stageTranslating,
				"title", cand.Title, "error", err)
			continue
		}

		slog.Debug("formatting post", "stage", stageFormatting, "title", title)
		p := c.formatter.Format(title, summary, cand.Link)

		slog.Info("publishing", "stage", stagePublishing, "link", cand.Link, "source", cand.Source)
		res, err := c.deps.Publisher.Publish(ctx, p.Content, p.Link)
		if err != nil {
			perr := &PublishError{Link: cand.Link, Err: err}
			metrics.Global.SetError(perr.Error())
			return OutcomeFailed, perr
		}
		slog.Info("post published", "remote_id", res.RemoteID, "link", cand.Link)
		metrics.Global.IncrementPostsPublished()

		entriesHist = append(entriesHist, history.Entry{
			OriginalTitle: cand.Title,
			Link:          cand.Link,
			CreatedAt:     c.now(),
			PostContent:   p.Content,
		})
		sessionTitles = append(sessionTitles, cand.Title)
		if err := c.deps.History.Save(ctx, entriesHist); err != nil {
			slog.Error("history save failed", "error", err)
		}
		published++
	}

	if published == 0 {
		return c.finishEmpty(ctx)
	}
	return OutcomePublished, nil
}

// filter applies normalization, both classifier gates, the history dedup
// check and the language flag to every raw entry.
func (c *Curator) filter(entries []rss.Entry, historyTitles []string) []candidate {
	var out []candidate
	for _, e := range entries {
		metrics.Global.IncrementEntriesProcessed()

		title := textnorm.Normalize(e.Title)
		summary := textnorm.Normalize(e.Summary)
		if title == "" || summary == "" {
			slog.Debug("empty after normalization, skipping",
				"stage", stageFiltering, "link", e.Link)
			continue
		}

		if promo, reason := classify.IsPromotional(title, summary); promo {
			metrics.Global.IncrementRejectedPromotional()
			slog.Debug("promotional, skipping", "stage", stageFiltering,
				"title", title, "reason", reason)
			continue
		}
		if classify.IsLowQuality(title, e.Summary) {
			metrics.Global.IncrementRejectedLowQuality()
			slog.Debug("low quality, skipping", "stage", stageFiltering, "title", title)
			continue
		}
		if dedupe.IsDuplicate(title, historyTitles, c.cfg.SimilarityThreshold) {
			metrics.Global.IncrementDuplicatesFiltered()
			slog.Debug("duplicate of recent post, skipping",
				"stage", stageFiltering, "title", title)
			continue
		}

		out = append(out, candidate{
			Title:       title,
			Summary:     summary,
			Link:        e.Link,
			Source:      e.Source,
			PublishedAt: e.PublishedAt,
			IsSpanish:   language.IsSpanish(title + " " + summary),
			Score:       score.Article(title, summary, e.PublishedAt, c.now()),
		})
	}
	return out
}

// translateIfNeeded returns the publishable title and summary, translating
// each independently with the bounded retry policy when the candidate is not
// already in the target language.
func (c *Curator) translateIfNeeded(ctx context.Context, cand candidate) (string, string, error) {
	if cand.IsSpanish {
		return cand.Title, cand.Summary, nil
	}
	if !c.budget.Allow() {
		return "", "", &TranslationError{Title: cand.Title, Err: fmt.Errorf("translation budget exhausted")}
	}

	title, err := c.translateWithRetry(ctx, cand.Title)
	if err != nil {
		return "", "", &TranslationError{Title: cand.Title, Err: err}
	}
	summary, err := c.translateWithRetry(ctx, cand.Summary)
	if err != nil {
		return "", "", &TranslationError{Title: cand.Title, Err: err}
	}
	metrics.Global.IncrementTranslationsOK()
	return title, summary, nil
}

func (c *Curator) translateWithRetry(ctx context.Context, text string) (string, error) {
	var result string
	err := c.retry.Do(ctx, func() error {
		var terr error
		result, terr = c.deps.Translator.Translate(ctx, text, c.cfg.SourceLang, c.cfg.TargetLang)
		return terr
	})
	return result, err
}

// finishEmpty closes a run that produced no article post: filler when
// enabled, otherwise the benign no-content outcome.
func (c *Curator) finishEmpty(ctx context.Context) (Outcome, error) {
	if c.deps.Filler == nil || !c.cfg.FillerEnabled {
		slog.Info("no suitable content this run")
		return OutcomeNoContent, ErrNoCandidates
	}

	content, err := c.deps.Filler.Generate("")
	if err != nil {
		return OutcomeNoContent, ErrNoCandidates
	}
	slog.Info("publishing filler post", "stage", stagePublishing)
	res, err := c.deps.Publisher.Publish(ctx, content, "")
	if err != nil {
		perr := &PublishError{Err: err}
		metrics.Global.SetError(perr.Error())
		return OutcomeFailed, perr
	}
	slog.Info("filler post published", "remote_id", res.RemoteID)
	metrics.Global.IncrementPostsPublished()
	return OutcomePublished, nil
}
