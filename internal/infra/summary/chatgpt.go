package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/syedmuhib/meeting-assistant/internal/domain/notes"
	"github.com/syedmuhib/meeting-assistant/internal/infra/llm/chatgpt"
)

// ChatGPT adapts the chat completions client to the Summarizer capability.
// Temperature is pinned to zero so identical input yields identical output.
type ChatGPT struct {
	client *chatgpt.Client
	model  string
}

// NewChatGPT wraps an existing client.
func NewChatGPT(client *chatgpt.Client, model string) *ChatGPT {
	return &ChatGPT{client: client, model: model}
}

// SummarizeOne performs one summarization call.
func (c *ChatGPT) SummarizeOne(ctx context.Context, text string, maxLen, minLen int) (string, error) {
	system := fmt.Sprintf("You are an abstractive summarizer. Summarize the user text in %d to %d tokens. Return only the summary, with no preamble.", minLen, maxLen)
	resp, err := c.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model: c.model,
		Messages: []chatgpt.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: text},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chatgpt returned no choices")
	}
	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", errors.New("chatgpt returned an empty summary")
	}
	return summary, nil
}

var _ notes.Summarizer = (*ChatGPT)(nil)
