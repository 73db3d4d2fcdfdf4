// Package config loads the runtime configuration from the environment
// (with optional .env file) and validates it.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Facebook page credentials
	FacebookPageID string `env:"FACEBOOK_PAGE_ID"`
	FacebookToken  string `env:"FACEBOOK_PAGE_TOKEN"`

	// Translation
	OpenAIAPIKey      string        `env:"OPENAI_API_KEY"`
	SourceLang        string        `env:"SOURCE_LANG" envDefault:"en"`
	TargetLang        string        `env:"TARGET_LANG" envDefault:"es"`
	TranslateAttempts int           `env:"TRANSLATE_ATTEMPTS" envDefault:"3"`
	TranslateBackoff  time.Duration `env:"TRANSLATE_BACKOFF" envDefault:"2s"`
	TranslateBudget   int           `env:"TRANSLATE_BUDGET" envDefault:"0"` // 0 = unlimited

	// Feeds
	FeedsConfigPath string        `env:"FEEDS_CONFIG_PATH" envDefault:"configs/feeds.yaml"`
	FeedTimeout     time.Duration `env:"FEED_TIMEOUT" envDefault:"10s"`
	FetchRPS        float64       `env:"FETCH_RPS" envDefault:"2"`

	// Selection and formatting policy
	PostMode            string  `env:"POST_MODE" envDefault:"single"` // single | multi
	MaxPosts            int     `env:"MAX_POSTS" envDefault:"3"`
	MaxSummaryLength    int     `env:"MAX_SUMMARY_LENGTH" envDefault:"800"`
	SimilarityThreshold float64 `env:"SIMILARITY_THRESHOLD" envDefault:"0.85"`
	RandomSeed          int64   `env:"RANDOM_SEED" envDefault:"0"` // 0 = time-seeded

	// History. 24 for the daily profile, 168 for the weekly one.
	HistoryPath           string `env:"HISTORY_PATH" envDefault:"posted_articles.json"`
	HistoryRetentionHours int    `env:"HISTORY_RETENTION_HOURS" envDefault:"24"`
	PostgresDSN           string `env:"POSTGRES_DSN"` // set to use the database store

	// Filler posts when no article survives filtering
	FillerEnabled bool `env:"FILLER_ENABLED" envDefault:"false"`

	// App
	Debug            bool `env:"DEBUG"`
	EnableMonitoring bool `env:"ENABLE_HTTP_MONITORING"`
	MonitoringPort   int  `env:"MONITORING_PORT" envDefault:"8080"`
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.FacebookPageID == "" {
		return fmt.Errorf("FACEBOOK_PAGE_ID is required")
	}
	if c.FacebookToken == "" {
		return fmt.Errorf("FACEBOOK_PAGE_TOKEN is required")
	}
	if c.PostMode != "single" && c.PostMode != "multi" {
		return fmt.Errorf("POST_MODE must be 'single' or 'multi'")
	}
	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("SIMILARITY_THRESHOLD must be in (0, 1]")
	}
	if c.HistoryRetentionHours <= 0 {
		return fmt.Errorf("HISTORY_RETENTION_HOURS must be positive")
	}
	return nil
}

// HistoryRetention returns the retention window as a duration.
func (c *Config) HistoryRetention() time.Duration {
	return time.Duration(c.HistoryRetentionHours) * time.Hour
}
