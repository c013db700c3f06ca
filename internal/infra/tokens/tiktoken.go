package tokens

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"

	"github.com/syedmuhib/meeting-assistant/internal/domain/notes"
)

const defaultEncoding = "cl100k_base"

// Tiktoken estimates token counts with a BPE encoding.
type Tiktoken struct {
	enc *tiktoken.Tiktoken
}

// NewTiktoken loads the named encoding, defaulting to cl100k_base.
func NewTiktoken(encoding string) (*Tiktoken, error) {
	if strings.TrimSpace(encoding) == "" {
		encoding = defaultEncoding
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("load encoding %s: %w", encoding, err)
	}
	return &Tiktoken{enc: enc}, nil
}

// Count implements notes.TokenCounter.
func (t *Tiktoken) Count(text string) int {
	if text == "" {
		return 0
	}
	return len(t.enc.Encode(text, nil, nil))
}

// Words counts whitespace delimited words, the fallback when no encoding can
// be loaded.
type Words struct{}

// Count implements notes.TokenCounter.
func (Words) Count(text string) int {
	return len(strings.Fields(text))
}

var (
	_ notes.TokenCounter = (*Tiktoken)(nil)
	_ notes.TokenCounter = Words{}
)
