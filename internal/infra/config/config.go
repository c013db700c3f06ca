package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Extractor  ExtractorConfig  `yaml:"extractor"`
	Cache      CacheConfig      `yaml:"cache"`
	Auth       AuthConfig       `yaml:"auth"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// AnalysisConfig defines the chunking and summary length policy.
type AnalysisConfig struct {
	MaxChunkWords   int           `yaml:"maxChunkWords"`
	ChunkOverlap    int           `yaml:"chunkOverlap"`
	ChunkSummaryMin int           `yaml:"chunkSummaryMin"`
	ChunkSummaryMax int           `yaml:"chunkSummaryMax"`
	FinalSummaryMin int           `yaml:"finalSummaryMin"`
	FinalSummaryMax int           `yaml:"finalSummaryMax"`
	TriggerPhrases  []string      `yaml:"triggerPhrases"`
	TokenEncoding   string        `yaml:"tokenEncoding"`
	CacheTTL        time.Duration `yaml:"cacheTtl"`
}

// SummarizerConfig lists the candidate summarization backends in the order
// they are attempted at startup.
type SummarizerConfig struct {
	HuggingFace HuggingFaceConfig `yaml:"huggingface"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
}

// HuggingFaceConfig contains hosted inference API settings.
type HuggingFaceConfig struct {
	BaseURL string   `yaml:"baseUrl"`
	Token   string   `yaml:"token"`
	Models  []string `yaml:"models"`
}

// OpenAIConfig contains ChatGPT settings for the last-resort backend.
type OpenAIConfig struct {
	APIKey  string `yaml:"apiKey"`
	BaseURL string `yaml:"baseUrl"`
	Model   string `yaml:"model"`
}

// ExtractorConfig points at the spaCy REST server used for entity extraction.
type ExtractorConfig struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"baseUrl"`
}

// CacheConfig contains connection information for the optional result cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// AuthConfig enables bearer token verification on the API.
type AuthConfig struct {
	Enabled bool   `yaml:"enabled"`
	Secret  string `yaml:"secret"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = isTruthy(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("ANALYSIS_MAX_CHUNK_WORDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.MaxChunkWords = parsed
		}
	}
	if v := os.Getenv("ANALYSIS_CHUNK_OVERLAP"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.ChunkOverlap = parsed
		}
	}
	if v := os.Getenv("ANALYSIS_TRIGGER_PHRASES"); v != "" {
		cfg.Analysis.TriggerPhrases = splitList(v)
	}
	if v := os.Getenv("ANALYSIS_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Analysis.CacheTTL = parsed
		}
	}
	if v := os.Getenv("HF_BASE_URL"); v != "" {
		cfg.Summarizer.HuggingFace.BaseURL = v
	}
	if v := os.Getenv("HF_API_TOKEN"); v != "" {
		cfg.Summarizer.HuggingFace.Token = v
	}
	if v := os.Getenv("HF_MODELS"); v != "" {
		cfg.Summarizer.HuggingFace.Models = splitList(v)
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Summarizer.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.Summarizer.OpenAI.BaseURL = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.Summarizer.OpenAI.Model = v
	}
	if v := os.Getenv("EXTRACTOR_ENABLED"); v != "" {
		cfg.Extractor.Enabled = isTruthy(v)
	}
	if v := os.Getenv("EXTRACTOR_BASE_URL"); v != "" {
		cfg.Extractor.BaseURL = v
	}
	if v := os.Getenv("CACHE_ENABLED"); v != "" {
		cfg.Cache.Enabled = isTruthy(v)
	}
	if v := os.Getenv("CACHE_ADDR"); v != "" {
		cfg.Cache.Addr = v
	}
	if v := os.Getenv("AUTH_ENABLED"); v != "" {
		cfg.Auth.Enabled = isTruthy(v)
	}
	if v := os.Getenv("AUTH_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 5 * time.Minute,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 30,
				Burst:             10,
			},
		},
		Analysis: AnalysisConfig{
			MaxChunkWords:   800,
			ChunkOverlap:    50,
			ChunkSummaryMin: 50,
			ChunkSummaryMax: 130,
			FinalSummaryMin: 60,
			FinalSummaryMax: 160,
			TokenEncoding:   "cl100k_base",
			CacheTTL:        6 * time.Hour,
		},
		Summarizer: SummarizerConfig{
			HuggingFace: HuggingFaceConfig{
				BaseURL: "https://api-inference.huggingface.co",
				Models: []string{
					"facebook/bart-large-cnn",
					"sshleifer/distilbart-cnn-12-6",
				},
			},
			OpenAI: OpenAIConfig{
				Model: "gpt-4o-mini",
			},
		},
		Extractor: ExtractorConfig{
			Enabled: false,
			BaseURL: "http://localhost:8081",
		},
		Cache: CacheConfig{
			Enabled: false,
		},
		Auth: AuthConfig{
			Enabled: false,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.Analysis.MaxChunkWords <= 0 {
		return errors.New("analysis.maxChunkWords must be positive")
	}
	if c.Analysis.ChunkOverlap < 0 || c.Analysis.ChunkOverlap >= c.Analysis.MaxChunkWords {
		return errors.New("analysis.chunkOverlap must be in [0, maxChunkWords)")
	}
	if c.Analysis.ChunkSummaryMin <= 0 || c.Analysis.ChunkSummaryMax <= c.Analysis.ChunkSummaryMin {
		return errors.New("analysis chunk summary range must satisfy 0 < min < max")
	}
	if c.Analysis.FinalSummaryMin <= 0 || c.Analysis.FinalSummaryMax <= c.Analysis.FinalSummaryMin {
		return errors.New("analysis final summary range must satisfy 0 < min < max")
	}
	if c.Analysis.CacheTTL < 0 {
		return errors.New("analysis.cacheTtl cannot be negative")
	}
	if len(c.Summarizer.HuggingFace.Models) == 0 && strings.TrimSpace(c.Summarizer.OpenAI.APIKey) == "" {
		return errors.New("summarizer requires at least one huggingface model or an openai api key")
	}
	if strings.TrimSpace(c.Summarizer.OpenAI.APIKey) != "" && strings.TrimSpace(c.Summarizer.OpenAI.Model) == "" {
		return errors.New("summarizer.openai.model cannot be empty when an api key is set")
	}
	if c.Extractor.Enabled && strings.TrimSpace(c.Extractor.BaseURL) == "" {
		return errors.New("extractor.baseUrl cannot be empty when the extractor is enabled")
	}
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Addr) == "" {
		return errors.New("cache.addr cannot be empty when the cache is enabled")
	}
	if c.Auth.Enabled && strings.TrimSpace(c.Auth.Secret) == "" {
		return errors.New("auth.secret cannot be empty when auth is enabled")
	}
	return nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if clean := strings.TrimSpace(part); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

func isTruthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}
