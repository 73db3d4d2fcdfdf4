package config

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		FacebookPageID:        "page",
		FacebookToken:         "token",
		PostMode:              "single",
		SimilarityThreshold:   0.85,
		HistoryRetentionHours: 24,
	}
}

func TestValidate_AcceptsCompleteConfig(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing page id", func(c *Config) { c.FacebookPageID = "" }},
		{"missing token", func(c *Config) { c.FacebookToken = "" }},
		{"bad post mode", func(c *Config) { c.PostMode = "broadcast" }},
		{"threshold too high", func(c *Config) { c.SimilarityThreshold = 1.5 }},
		{"threshold zero", func(c *Config) { c.SimilarityThreshold = 0 }},
		{"retention zero", func(c *Config) { c.HistoryRetentionHours = 0 }},
	}
	for _, c := range cases {
		cfg := validConfig()
		c.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate accepted invalid config", c.name)
		}
	}
}

func TestHistoryRetention(t *testing.T) {
	cfg := validConfig()
	cfg.HistoryRetentionHours = 168
	if got := cfg.HistoryRetention(); got != 168*time.Hour {
		t.Errorf("HistoryRetention = %v", got)
	}
}
