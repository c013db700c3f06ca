package main

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/syedmuhib/meeting-assistant/internal/domain/notes"
	"github.com/syedmuhib/meeting-assistant/internal/infra/analysiscache"
	"github.com/syedmuhib/meeting-assistant/internal/infra/config"
	"github.com/syedmuhib/meeting-assistant/internal/infra/llm/chatgpt"
	"github.com/syedmuhib/meeting-assistant/internal/infra/nlp"
	"github.com/syedmuhib/meeting-assistant/internal/infra/nlp/spacyapi"
	"github.com/syedmuhib/meeting-assistant/internal/infra/summary"
	"github.com/syedmuhib/meeting-assistant/internal/infra/tokens"
)

func provideNotesConfig(cfg *config.Config) notes.Config {
	out := notes.DefaultConfig()
	out.MaxChunkWords = cfg.Analysis.MaxChunkWords
	out.ChunkOverlap = cfg.Analysis.ChunkOverlap
	out.ChunkSummaryMin = cfg.Analysis.ChunkSummaryMin
	out.ChunkSummaryMax = cfg.Analysis.ChunkSummaryMax
	out.FinalSummaryMin = cfg.Analysis.FinalSummaryMin
	out.FinalSummaryMax = cfg.Analysis.FinalSummaryMax
	out.CacheTTL = cfg.Analysis.CacheTTL
	if len(cfg.Analysis.TriggerPhrases) > 0 {
		out.TriggerPhrases = cfg.Analysis.TriggerPhrases
	}
	return out
}

type summarizerCandidate struct {
	name  string
	build func() (notes.Summarizer, error)
}

// provideSummarizer walks an explicit ordered list of constructor attempts
// and hands out the first capability that can be built. The summarizer is
// required; with no usable candidate, startup fails.
func provideSummarizer(cfg *config.Config, logger *slog.Logger) (notes.Summarizer, error) {
	hf := cfg.Summarizer.HuggingFace
	candidates := make([]summarizerCandidate, 0, len(hf.Models)+1)
	for _, model := range hf.Models {
		model := model
		candidates = append(candidates, summarizerCandidate{
			name: "huggingface/" + model,
			build: func() (notes.Summarizer, error) {
				return summary.NewHuggingFace(hf.BaseURL, hf.Token, model)
			},
		})
	}
	if strings.TrimSpace(cfg.Summarizer.OpenAI.APIKey) != "" {
		candidates = append(candidates, summarizerCandidate{
			name: "openai/" + cfg.Summarizer.OpenAI.Model,
			build: func() (notes.Summarizer, error) {
				client, err := chatgpt.NewClient(cfg.Summarizer.OpenAI.APIKey, cfg.Summarizer.OpenAI.BaseURL)
				if err != nil {
					return nil, err
				}
				return summary.NewChatGPT(client, cfg.Summarizer.OpenAI.Model), nil
			},
		})
	}

	for _, candidate := range candidates {
		model, err := candidate.build()
		if err != nil {
			logger.Warn("summarizer candidate rejected", "candidate", candidate.name, "error", err)
			continue
		}
		logger.Info("summarizer selected", "candidate", candidate.name)
		return model, nil
	}
	return nil, errors.New("no summarizer capability could be constructed")
}

// provideExtractor returns the spaCy backed extractor when one is configured
// and reachable, and the no-op degraded extractor otherwise.
func provideExtractor(cfg *config.Config, logger *slog.Logger) notes.EntityExtractor {
	if !cfg.Extractor.Enabled {
		logger.Info("entity extraction disabled, running degraded")
		return nlp.NewDisabled()
	}
	client, err := spacyapi.NewClient(cfg.Extractor.BaseURL)
	if err != nil {
		logger.Warn("extractor misconfigured, running degraded", "error", err)
		return nlp.NewDisabled()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		logger.Warn("extractor ping failed, running degraded", "error", err)
		return nlp.NewDisabled()
	}
	logger.Info("entity extractor enabled", "baseUrl", cfg.Extractor.BaseURL)
	return client
}

func provideStore(cfg *config.Config, logger *slog.Logger) notes.Store {
	if cfg.Cache.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return analysiscache.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return analysiscache.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("valkey analysis cache enabled", "addr", cfg.Cache.Addr)
			return analysiscache.NewValkeyStore(client, "analysis")
		}
	}
	return analysiscache.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Cache.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Cache.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Cache.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideTokenCounter(cfg *config.Config, logger *slog.Logger) notes.TokenCounter {
	counter, err := tokens.NewTiktoken(cfg.Analysis.TokenEncoding)
	if err != nil {
		logger.Warn("token encoding unavailable, counting words instead", "error", err)
		return tokens.Words{}
	}
	return counter
}
