package spacyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/syedmuhib/meeting-assistant/internal/domain/notes"
)

// Client talks to a spaCy REST server that exposes named entity spans and
// sentence boundaries for a submitted text.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL string) (*Client, error) {
	url := strings.TrimSpace(baseURL)
	if url == "" {
		return nil, errors.New("extractor base url cannot be empty")
	}
	return &Client{
		baseURL: strings.TrimRight(url, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	Ents  []entSpan `json:"ents"`
	Sents []string  `json:"sents"`
}

type entSpan struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Extract retrieves labeled spans and sentences in document order.
func (c *Client) Extract(ctx context.Context, text string) (notes.Extraction, error) {
	payload, err := json.Marshal(analyzeRequest{Text: text})
	if err != nil {
		return notes.Extraction{}, fmt.Errorf("encode extract request: %w", err)
	}

	endpoint := c.baseURL + "/analyze"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return notes.Extraction{}, fmt.Errorf("build extract request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return notes.Extraction{}, fmt.Errorf("extract request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return notes.Extraction{}, fmt.Errorf("extract error: status=%d body=%s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return notes.Extraction{}, fmt.Errorf("read extract response: %w", err)
	}

	var raw analyzeResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return notes.Extraction{}, fmt.Errorf("decode extract response: %w", err)
	}

	extraction := notes.Extraction{
		Spans:     make([]notes.Span, 0, len(raw.Ents)),
		Sentences: raw.Sents,
	}
	for _, ent := range raw.Ents {
		extraction.Spans = append(extraction.Spans, notes.Span{Text: ent.Text, Label: ent.Label})
	}
	return extraction, nil
}

// Ping verifies the server is reachable before the client is handed out.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("health check error: status=%d", resp.StatusCode)
	}
	return nil
}

var _ notes.EntityExtractor = (*Client)(nil)
