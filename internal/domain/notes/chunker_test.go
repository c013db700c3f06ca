package notes

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/syedmuhib/meeting-assistant/pkg/errors"
)

func TestChunkByWordsCoversEveryWordInOrder(t *testing.T) {
	const (
		wordCount = 137
		maxWords  = 10
		overlap   = 3
	)
	text := numberedText(wordCount)

	chunks, err := ChunkByWords(text, maxWords, overlap)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	prevEnd := 0
	for i, chunk := range chunks {
		indices := wordIndices(t, chunk)
		require.LessOrEqual(t, len(indices), maxWords, "chunk %d exceeds word budget", i)

		// Words inside a chunk are consecutive input indices.
		for j := 1; j < len(indices); j++ {
			require.Equal(t, indices[j-1]+1, indices[j], "chunk %d is not contiguous", i)
		}

		if i == 0 {
			require.Equal(t, 0, indices[0], "first chunk must start at the first word")
		} else {
			require.Equal(t, prevEnd-overlap, indices[0], "chunk %d must rewind by the overlap", i)
		}
		prevEnd = indices[len(indices)-1] + 1
	}
	require.Equal(t, wordCount, prevEnd, "last chunk must end at the last word")
}

func TestChunkByWordsConsecutiveChunksShareOverlapWords(t *testing.T) {
	chunks, err := ChunkByWords(numberedText(25), 10, 4)
	require.NoError(t, err)
	require.True(t, len(chunks) > 1)

	for i := 1; i < len(chunks); i++ {
		prev := strings.Fields(chunks[i-1])
		next := strings.Fields(chunks[i])
		require.Equal(t, prev[len(prev)-4:], next[:4], "chunks %d and %d must share the overlap", i-1, i)
	}
}

func TestChunkByWordsChunkCountStaysBounded(t *testing.T) {
	const (
		wordCount = 2000
		maxWords  = 800
		overlap   = 50
	)

	chunks, err := ChunkByWords(numberedText(wordCount), maxWords, overlap)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	// ceil(N/(maxWords-overlap)) is the termination bound.
	bound := (wordCount + maxWords - overlap - 1) / (maxWords - overlap)
	require.LessOrEqual(t, len(chunks), bound)
}

func TestChunkByWordsShortTextYieldsSingleChunk(t *testing.T) {
	text := "the team agreed to ship the beta by Friday morning latest"

	chunks, err := ChunkByWords(text, 800, 50)
	require.NoError(t, err)
	require.Equal(t, []string{text}, chunks)
}

func TestChunkByWordsCollapsesWhitespace(t *testing.T) {
	chunks, err := ChunkByWords("  alpha \t beta\n\ngamma  ", 800, 50)
	require.NoError(t, err)
	require.Equal(t, []string{"alpha beta gamma"}, chunks)
}

func TestChunkByWordsEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		chunks, err := ChunkByWords(text, 800, 50)
		require.NoError(t, err)
		require.Empty(t, chunks)
	}
}

func TestChunkByWordsRejectsInvalidArguments(t *testing.T) {
	cases := []struct {
		name     string
		maxWords int
		overlap  int
	}{
		{name: "zero max words", maxWords: 0, overlap: 0},
		{name: "negative max words", maxWords: -5, overlap: 0},
		{name: "negative overlap", maxWords: 10, overlap: -1},
		{name: "overlap equals max words", maxWords: 10, overlap: 10},
		{name: "overlap beyond max words", maxWords: 10, overlap: 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ChunkByWords("some words here", tc.maxWords, tc.overlap)
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, "invalid_argument"))
		})
	}
}

func numberedText(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "w%d", i)
	}
	return b.String()
}

func wordIndices(t *testing.T, chunk string) []int {
	t.Helper()
	words := strings.Fields(chunk)
	indices := make([]int, 0, len(words))
	for _, word := range words {
		idx, err := strconv.Atoi(strings.TrimPrefix(word, "w"))
		require.NoError(t, err)
		indices = append(indices, idx)
	}
	return indices
}
