package nlp

import (
	"context"

	"github.com/syedmuhib/meeting-assistant/internal/domain/notes"
)

// Disabled is the degraded extractor used when no NLP backend is configured
// or reachable. It always yields empty results, never an error.
type Disabled struct{}

// NewDisabled constructs the no-op extractor.
func NewDisabled() *Disabled {
	return &Disabled{}
}

// Extract implements notes.EntityExtractor.
func (d *Disabled) Extract(context.Context, string) (notes.Extraction, error) {
	return notes.Extraction{}, nil
}

var _ notes.EntityExtractor = (*Disabled)(nil)
