package notes

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/syedmuhib/meeting-assistant/pkg/errors"
	"github.com/syedmuhib/meeting-assistant/pkg/metrics"
)

// Service exposes meeting notes analysis.
type Service interface {
	Analyze(ctx context.Context, req Request) (Analysis, error)
	AnalyzeStream(ctx context.Context, req Request) (<-chan Event, error)
	Summarize(ctx context.Context, text string, progress Progress) (string, error)
}

type service struct {
	cfg       Config
	model     Summarizer
	extractor EntityExtractor
	tokens    TokenCounter
	store     Store
	logger    *slog.Logger
}

// NewService is a wire provider for the notes domain.
func NewService(cfg Config, model Summarizer, extractor EntityExtractor, tokens TokenCounter, store Store, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg,
		model:     model,
		extractor: extractor,
		tokens:    tokens,
		store:     store,
		logger:    logger.With("component", "notes.service"),
	}
}

// Analyze runs the full pipeline: chunked summarization, entity extraction,
// and action item detection. Progress is reported to the log only.
func (s *service) Analyze(ctx context.Context, req Request) (Analysis, error) {
	return s.analyze(ctx, req, nil)
}

// AnalyzeStream performs the same work while emitting a progress event after
// each summarized chunk, then a terminal event carrying the analysis.
func (s *service) AnalyzeStream(ctx context.Context, req Request) (<-chan Event, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperrors.Wrap("invalid_input", "text cannot be empty", nil)
	}

	out := make(chan Event, 1)
	go func() {
		defer close(out)

		progress := func(completed, total int) {
			select {
			case out <- Event{ChunksDone: completed, ChunkTotal: total}:
			case <-ctx.Done():
			}
		}

		analysis, err := s.analyze(ctx, req, progress)
		if err != nil {
			s.logger.Error("streamed analysis failed", "error", err)
			select {
			case out <- Event{Done: true, Error: err.Error()}:
			case <-ctx.Done():
			}
			return
		}

		select {
		case out <- Event{ChunksDone: analysis.ChunkCount, ChunkTotal: analysis.ChunkCount, Done: true, Analysis: &analysis}:
		case <-ctx.Done():
		}
	}()
	return out, nil
}

func (s *service) analyze(ctx context.Context, req Request, progress Progress) (Analysis, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Analysis{}, apperrors.Wrap("invalid_input", "text cannot be empty", nil)
	}

	started := time.Now()
	key := cacheKey(text)
	if s.store != nil {
		cached, found, err := s.store.Get(ctx, key)
		if err != nil {
			s.logger.Warn("analysis cache lookup failed", "error", err)
		} else if found {
			s.logger.Debug("analysis cache hit", "key", key)
			return cached, nil
		}
	}

	summary, chunkCount, err := s.summarizeLong(ctx, text, progress)
	if err != nil {
		return Analysis{}, err
	}

	extraction := s.extract(ctx, text)

	analysis := Analysis{
		ID:          uuid.New(),
		Summary:     summary,
		Deadlines:   deadlinesFrom(extraction.Spans),
		People:      peopleFrom(extraction.Spans),
		ActionItems: actionItemsFrom(extraction.Sentences, s.triggerPhrases()),
		ChunkCount:  chunkCount,
		LatencyMs:   time.Since(started).Milliseconds(),
		CreatedAt:   time.Now().UTC(),
	}
	if s.tokens != nil {
		input := s.tokens.Count(text)
		output := s.tokens.Count(summary)
		analysis.TokenUsage = metrics.TokenUsage{
			InputTokens:  input,
			OutputTokens: output,
			TotalTokens:  input + output,
		}
	}

	if s.store != nil {
		if err := s.store.Save(ctx, key, analysis, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("analysis cache save failed", "error", err)
		}
	}
	return analysis, nil
}

// Summarize produces the final summary for a text of any length. Empty or
// whitespace-only input yields an empty summary without touching the model.
func (s *service) Summarize(ctx context.Context, text string, progress Progress) (string, error) {
	summary, _, err := s.summarizeLong(ctx, text, progress)
	return summary, err
}

func (s *service) summarizeLong(ctx context.Context, text string, progress Progress) (string, int, error) {
	chunks, err := ChunkByWords(text, s.cfg.MaxChunkWords, s.cfg.ChunkOverlap)
	if err != nil {
		return "", 0, err
	}
	if len(chunks) == 0 {
		return "", 0, nil
	}

	if len(chunks) == 1 {
		summary, err := s.summarizeOne(ctx, chunks[0], s.cfg.ChunkSummaryMax, s.cfg.ChunkSummaryMin, "chunk 1/1")
		if err != nil {
			return "", 0, err
		}
		return summary, 1, nil
	}

	partials := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		label := fmt.Sprintf("chunk %d/%d", i+1, len(chunks))
		partial, err := s.summarizeOne(ctx, chunk, s.cfg.ChunkSummaryMax, s.cfg.ChunkSummaryMin, label)
		if err != nil {
			return "", 0, err
		}
		partials = append(partials, partial)
		if s.tokens != nil {
			s.logger.Debug("chunk summarized", "chunk", i+1, "total", len(chunks), "chunkTokens", s.tokens.Count(chunk))
		}
		if progress != nil {
			progress(i+1, len(chunks))
		}
	}

	combined := strings.Join(partials, " ")
	final, err := s.summarizeOne(ctx, combined, s.cfg.FinalSummaryMax, s.cfg.FinalSummaryMin, "final pass")
	if err != nil {
		return "", 0, err
	}
	return final, len(chunks), nil
}

func (s *service) summarizeOne(ctx context.Context, text string, maxLen, minLen int, label string) (string, error) {
	summary, err := s.model.SummarizeOne(ctx, text, maxLen, minLen)
	if err != nil {
		if apperrors.IsCode(err, "model_unavailable") {
			return "", err
		}
		return "", apperrors.Wrap("inference_error", label+" summarization failed", err)
	}
	return summary, nil
}

func (s *service) extract(ctx context.Context, text string) Extraction {
	if s.extractor == nil {
		return Extraction{}
	}
	extraction, err := s.extractor.Extract(ctx, text)
	if err != nil {
		s.logger.Warn("entity extraction degraded to empty results", "error", err)
		return Extraction{}
	}
	return extraction
}

func (s *service) triggerPhrases() []string {
	if len(s.cfg.TriggerPhrases) > 0 {
		return s.cfg.TriggerPhrases
	}
	return DefaultTriggerPhrases()
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
