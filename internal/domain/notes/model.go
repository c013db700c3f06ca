package notes

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/syedmuhib/meeting-assistant/pkg/metrics"
)

// Config drives chunking and summary length policy.
type Config struct {
	MaxChunkWords   int
	ChunkOverlap    int
	ChunkSummaryMin int
	ChunkSummaryMax int
	FinalSummaryMin int
	FinalSummaryMax int
	TriggerPhrases  []string
	CacheTTL        time.Duration
}

// DefaultConfig returns the policy tuned for bart-sized summarization models.
func DefaultConfig() Config {
	return Config{
		MaxChunkWords:   800,
		ChunkOverlap:    50,
		ChunkSummaryMin: 50,
		ChunkSummaryMax: 130,
		FinalSummaryMin: 60,
		FinalSummaryMax: 160,
		TriggerPhrases:  DefaultTriggerPhrases(),
	}
}

// Summarizer is the abstractive summarization capability. Implementations must
// decode greedily so repeated calls on identical input are reproducible.
type Summarizer interface {
	SummarizeOne(ctx context.Context, text string, maxLen, minLen int) (string, error)
}

// EntityExtractor yields labeled spans and sentence boundaries for a text.
type EntityExtractor interface {
	Extract(ctx context.Context, text string) (Extraction, error)
}

// Span is a labeled substring identified by the extractor.
type Span struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Extraction is the raw extractor output prior to filtering.
type Extraction struct {
	Spans     []Span   `json:"spans"`
	Sentences []string `json:"sentences"`
}

// TokenCounter estimates model token counts for observability.
type TokenCounter interface {
	Count(text string) int
}

// Progress receives (completed, total) after each chunk summary. Purely
// informational; omitting it never changes the returned value.
type Progress func(completed, total int)

// Store caches finished analyses keyed by input hash.
type Store interface {
	Get(ctx context.Context, key string) (Analysis, bool, error)
	Save(ctx context.Context, key string, analysis Analysis, ttl time.Duration) error
}

// Request carries the raw meeting notes.
type Request struct {
	Text string `json:"text"`
}

// Analysis is the full result for one submission. List fields keep duplicates
// in document order; de-duplication happens at the presentation boundary.
type Analysis struct {
	ID          uuid.UUID          `json:"id"`
	Summary     string             `json:"summary"`
	Deadlines   []string           `json:"deadlines"`
	People      []string           `json:"people"`
	ActionItems []string           `json:"actionItems"`
	ChunkCount  int                `json:"chunkCount"`
	TokenUsage  metrics.TokenUsage `json:"tokenUsage"`
	LatencyMs   int64              `json:"latencyMs"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// Event is emitted on the streaming path after each summarized chunk and once
// at the end with the finished analysis or the failure.
type Event struct {
	ChunksDone int       `json:"chunksDone"`
	ChunkTotal int       `json:"chunkTotal"`
	Done       bool      `json:"done"`
	Analysis   *Analysis `json:"analysis,omitempty"`
	Error      string    `json:"error,omitempty"`
}
