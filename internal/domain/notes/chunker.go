package notes

import (
	"fmt"
	"strings"

	apperrors "github.com/syedmuhib/meeting-assistant/pkg/errors"
)

// ChunkByWords splits text into overlapping word-bounded chunks. Words are
// whitespace delimited and each chunk is its word range rejoined with single
// spaces, so consecutive whitespace never produces empty words or chunks.
// overlap must stay below maxWords so the cursor always advances; the chunk
// count is then bounded by ceil(N/(maxWords-overlap)) for N input words.
func ChunkByWords(text string, maxWords, overlap int) ([]string, error) {
	if maxWords <= 0 {
		return nil, apperrors.Wrap("invalid_argument", fmt.Sprintf("maxWords must be positive, got %d", maxWords), nil)
	}
	if overlap < 0 || overlap >= maxWords {
		return nil, apperrors.Wrap("invalid_argument", fmt.Sprintf("overlap must be in [0, maxWords), got %d", overlap), nil)
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	var chunks []string
	start := 0
	for start < len(words) {
		end := start + maxWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
		if end == len(words) {
			break
		}
		start = end - overlap
	}
	return chunks, nil
}
