package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/neurocrow/newscurator/internal/config"
	"github.com/neurocrow/newscurator/internal/curator"
	"github.com/neurocrow/newscurator/internal/history"
	"github.com/neurocrow/newscurator/internal/logger"
	"github.com/neurocrow/newscurator/internal/metrics"
	"github.com/neurocrow/newscurator/internal/publish"
	"github.com/neurocrow/newscurator/internal/rss"
	"github.com/neurocrow/newscurator/internal/templates"
	"github.com/neurocrow/newscurator/internal/translate"
)

// Exit codes for the invoking scheduler.
const (
	exitPublished = 0
	exitFailed    = 1
	exitNoContent = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("config error: %v", err)
		return exitFailed
	}

	logger.Init(cfg.Debug)

	if cfg.EnableMonitoring {
		go startMonitoringServer(cfg.MonitoringPort)
	}

	feeds, err := rss.LoadFeeds(cfg.FeedsConfigPath)
	if err != nil {
		slog.Error("load feeds config", "path", cfg.FeedsConfigPath, "error", err)
		return exitFailed
	}

	store, cleanup, err := buildHistoryStore(cfg)
	if err != nil {
		slog.Error("history store", "error", err)
		return exitFailed
	}
	defer cleanup()

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	deps := curator.Deps{
		Fetcher:    rss.NewFetcher(cfg.FeedTimeout, cfg.FetchRPS),
		Translator: translate.NewService(cfg.OpenAIAPIKey),
		Publisher:  publish.NewFacebook(cfg.FacebookPageID, cfg.FacebookToken),
		History:    store,
	}
	if cfg.FillerEnabled {
		deps.Filler = templates.NewGenerator(rng)
	}

	c := curator.New(cfg, feeds, rng, deps)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	outcome, err := c.Run(ctx)
	switch {
	case errors.Is(err, curator.ErrNoCandidates) || outcome == curator.OutcomeNoContent:
		return exitNoContent
	case err != nil:
		slog.Error("run failed", "error", err)
		return exitFailed
	default:
		return exitPublished
	}
}

func buildHistoryStore(cfg *config.Config) (history.Store, func(), error) {
	if cfg.PostgresDSN != "" {
		store, err := history.NewPostgresStore(cfg.PostgresDSN, cfg.HistoryRetention())
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	}
	return history.NewFileStore(cfg.HistoryPath, cfg.HistoryRetention()), func() {}, nil
}

func startMonitoringServer(port int) {
	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/metrics", metricsHandler)

	addr := ":" + strconv.Itoa(port)
	slog.Info("starting monitoring server", "addr", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		slog.Error("monitoring server error", "error", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	if !stats["is_healthy"].(bool) {
		status = "error"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	response := map[string]interface{}{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
