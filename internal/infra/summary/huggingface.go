package summary

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
	apperrors "github.com/syedmuhib/meeting-assistant/pkg/errors"
)

const defaultHFBaseURL = "https://api-inference.huggingface.co"

// HuggingFace runs the hosted inference API summarization pipeline for a
// single pretrained model.
type HuggingFace struct {
	baseURL    string
	token      string
	model      string
	httpClient *http.Client
}

// NewHuggingFace builds a summarizer bound to one model. The token is
// optional; anonymous calls are accepted with tighter rate limits.
func NewHuggingFace(baseURL, token, model string) (*HuggingFace, error) {
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("huggingface model cannot be empty")
	}
	url := strings.TrimSpace(baseURL)
	if url == "" {
		url = defaultHFBaseURL
	}
	return &HuggingFace{
		baseURL: strings.TrimRight(url, "/"),
		token:   strings.TrimSpace(token),
		model:   model,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    hfOptions    `json:"options"`
}

type hfParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfSummary struct {
	SummaryText string `json:"summary_text"`
}

// SummarizeOne submits one summarization call with greedy decoding.
func (c *HuggingFace) SummarizeOne(ctx context.Context, text string, maxLen, minLen int) (string, error) {
	payload, err := json.Marshal(hfRequest{
		Inputs: text,
		Parameters: hfParameters{
			MaxLength: maxLen,
			MinLength: minLen,
			DoSample:  false,
		},
		Options: hfOptions{WaitForModel: true},
	})
	if err != nil {
		return "", fmt.Errorf("encode summarization request: %w", err)
	}

	endpoint := c.baseURL + "/models/" + c.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build summarization request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("summarization request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusServiceUnavailable {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", apperrors.Wrap("model_unavailable", fmt.Sprintf("model %s is not ready: %s", c.model, string(body)), nil)
	}
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("summarization error: status=%d body=%s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read summarization response: %w", err)
	}

	var out []hfSummary
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode summarization response: %w", err)
	}
	if len(out) == 0 || strings.TrimSpace(out[0].SummaryText) == "" {
		return "", fmt.Errorf("model %s returned no summary", c.model)
	}
	return strings.TrimSpace(out[0].SummaryText), nil
}

var _ notes.Summarizer = (*HuggingFace)(nil)
