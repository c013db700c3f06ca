package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndIsCode(t *testing.T) {
	base := fmt.Errorf("connection reset")
	err := Wrap("inference_error", "chunk summarization failed", base)

	require.EqualError(t, err, "chunk summarization failed: connection reset")
	require.True(t, IsCode(err, "inference_error"))
	require.False(t, IsCode(err, "invalid_input"))
}

func TestIsCodeSeesThroughWrapping(t *testing.T) {
	inner := Wrap("model_unavailable", "model is loading", nil)
	outer := fmt.Errorf("analyze: %w", inner)

	require.True(t, IsCode(outer, "model_unavailable"))
	require.Equal(t, "model_unavailable", CodeOf(outer))
}

func TestCodeOfPlainError(t *testing.T) {
	require.Empty(t, CodeOf(fmt.Errorf("plain")))
	require.Empty(t, CodeOf(nil))
}
