package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("ANALYSIS_MAX_CHUNK_WORDS", "600")
	t.Setenv("ANALYSIS_CHUNK_OVERLAP", "40")
	t.Setenv("ANALYSIS_TRIGGER_PHRASES", "will, must ,todo")
	t.Setenv("ANALYSIS_CACHE_TTL", "30m")
	t.Setenv("HF_MODELS", "facebook/bart-large-cnn")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("AUTH_SECRET", "sekret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, 600, cfg.Analysis.MaxChunkWords)
	require.Equal(t, 40, cfg.Analysis.ChunkOverlap)
	require.Equal(t, []string{"will", "must", "todo"}, cfg.Analysis.TriggerPhrases)
	require.Equal(t, 30*time.Minute, cfg.Analysis.CacheTTL)
	require.Equal(t, []string{"facebook/bart-large-cnn"}, cfg.Summarizer.HuggingFace.Models)
	require.True(t, cfg.Auth.Enabled)
	require.Equal(t, "sekret", cfg.Auth.Secret)
}

func TestLoadUsesDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, 800, cfg.Analysis.MaxChunkWords)
	require.Equal(t, 50, cfg.Analysis.ChunkOverlap)
	require.Equal(t, 130, cfg.Analysis.ChunkSummaryMax)
	require.Equal(t, 160, cfg.Analysis.FinalSummaryMax)
	require.False(t, cfg.Auth.Enabled)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{"empty address", func(cfg *Config) { cfg.HTTP.Address = "" }},
		{"zero max chunk words", func(cfg *Config) { cfg.Analysis.MaxChunkWords = 0 }},
		{"overlap equals max chunk words", func(cfg *Config) { cfg.Analysis.ChunkOverlap = cfg.Analysis.MaxChunkWords }},
		{"negative overlap", func(cfg *Config) { cfg.Analysis.ChunkOverlap = -1 }},
		{"inverted chunk summary range", func(cfg *Config) { cfg.Analysis.ChunkSummaryMax = cfg.Analysis.ChunkSummaryMin }},
		{"inverted final summary range", func(cfg *Config) { cfg.Analysis.FinalSummaryMax = cfg.Analysis.FinalSummaryMin }},
		{"no summarizer backend", func(cfg *Config) {
			cfg.Summarizer.HuggingFace.Models = nil
			cfg.Summarizer.OpenAI.APIKey = ""
		}},
		{"auth without secret", func(cfg *Config) {
			cfg.Auth.Enabled = true
			cfg.Auth.Secret = " "
		}},
		{"cache without addr", func(cfg *Config) {
			cfg.Cache.Enabled = true
			cfg.Cache.Addr = ""
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	require.NoError(t, defaultConfig().Validate())
}
