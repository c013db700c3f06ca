package notes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeadlinesFromKeepsDateAndTimeSpansInOrder(t *testing.T) {
	spans := []Span{
		{Text: "Monday", Label: "DATE"},
		{Text: "Sara", Label: "PERSON"},
		{Text: "3pm", Label: "TIME"},
		{Text: "Acme", Label: "ORG"},
		{Text: "Monday", Label: "DATE"},
	}

	require.Equal(t, []string{"Monday", "3pm", "Monday"}, deadlinesFrom(spans))
}

func TestPeopleFromKeepsPersonSpansOnly(t *testing.T) {
	spans := []Span{
		{Text: "Sara", Label: "PERSON"},
		{Text: "Friday", Label: "DATE"},
		{Text: "Omar", Label: "PERSON"},
	}

	require.Equal(t, []string{"Sara", "Omar"}, peopleFrom(spans))
}

func TestActionItemsFromMatchesTriggerPhrases(t *testing.T) {
	sentences := []string{
		"Sara will send the updated deck.",
		"The weather was lovely during the offsite.",
		"We need to follow up with legal. ",
		"TODO: finalize the budget.",
		"Everyone enjoyed lunch.",
	}

	got := actionItemsFrom(sentences, DefaultTriggerPhrases())
	require.Equal(t, []string{
		"Sara will send the updated deck.",
		"We need to follow up with legal.",
		"TODO: finalize the budget.",
	}, got)
}

func TestActionItemsFromMatchesCaseInsensitively(t *testing.T) {
	got := actionItemsFrom([]string{"OMAR MUST REVIEW THE CONTRACT."}, DefaultTriggerPhrases())
	require.Equal(t, []string{"OMAR MUST REVIEW THE CONTRACT."}, got)
}

func TestActionItemsFromEmptySentences(t *testing.T) {
	require.Empty(t, actionItemsFrom(nil, DefaultTriggerPhrases()))
}
