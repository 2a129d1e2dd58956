package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mkovacevic/tube-hunter/internal/apperr"
	"github.com/mkovacevic/tube-hunter/internal/domain"
)

const (
	defaultBaseURL = "https://api.anthropic.com"
	defaultModel   = "claude-3-7-sonnet-20250219"
	defaultTimeout = 60 * time.Second

	apiVersion   = "2023-06-01"
	maxTokens    = 500
	providerName = "anthropic"
)

type ClientConfig func(client *Client)

// Client scores videos through the Anthropic Messages API.
type Client struct {
	base   url.URL
	apiKey string
	model  string
	http   *http.Client
}

func NewClient(apiKey string, opts ...ClientConfig) (*Client, error) {
	if apiKey == "" {
		return nil, apperr.NewConfig("anthropic api key is required")
	}

	base, err := url.Parse(defaultBaseURL)
	if err != nil {
		return nil, err
	}

	client := &Client{
		base:   *base,
		apiKey: apiKey,
		model:  defaultModel,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, cfg := range opts {
		cfg(client)
	}

	return client, nil
}

func WithHttpClient(httpClient *http.Client) ClientConfig {
	return func(client *Client) {
		client.http = httpClient
	}
}

func WithBaseURL(baseURL string) ClientConfig {
	return func(client *Client) {
		if base, err := url.Parse(baseURL); err == nil {
			client.base = *base
		}
	}
}

func WithModel(model string) ClientConfig {
	return func(client *Client) {
		if model != "" {
			client.model = model
		}
	}
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type scorePayload struct {
	TopicRelevance int     `json:"topic_relevance"`
	ContentQuality int     `json:"content_quality"`
	Recency        int     `json:"recency"`
	TotalScore     float64 `json:"total_score"`
	Reasoning      string  `json:"reasoning"`
}

// Score grades one video against a topic. Temperature is pinned to zero so
// identical inputs tend toward identical scores.
func (c *Client) Score(ctx context.Context, video domain.Video, topic string) (*domain.ScoreResult, error) {
	req := messagesRequest{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: 0,
		Messages: []message{
			{Role: "user", Content: buildPrompt(video, topic)},
		},
	}

	slog.Debug("Scoring video", "title", video.Title, "topic", topic)

	var resp messagesResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, apperr.NewProvider(providerName, fmt.Sprintf("scoring failed for video %q", video.ID), err)
	}

	if len(resp.Content) == 0 {
		return nil, apperr.NewDecode("empty completion", nil)
	}

	result, err := parseScoreResponse(resp.Content[0].Text)
	if err != nil {
		return nil, err
	}

	slog.Debug("Video scored", "score", result.Score, "title", video.Title)
	return result, nil
}

// parseScoreResponse decodes the model's JSON verdict. The total is taken as
// the provider reported it, not recomputed from the breakdown.
func parseScoreResponse(text string) (*domain.ScoreResult, error) {
	payload := ExtractPayload(text)

	var parsed scorePayload
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, apperr.NewDecode("invalid score response", err)
	}

	reasoning := parsed.Reasoning
	if reasoning == "" {
		reasoning = "No reasoning provided"
	}

	return &domain.ScoreResult{
		Score:     parsed.TotalScore,
		Reasoning: reasoning,
		Breakdown: domain.ScoreBreakdown{
			TopicRelevance: parsed.TopicRelevance,
			ContentQuality: parsed.ContentQuality,
			Recency:        parsed.Recency,
		},
	}, nil
}

func (c *Client) do(ctx context.Context, reqData messagesRequest, respData *messagesResponse) error {
	reqDataBytes, err := json.Marshal(reqData)
	if err != nil {
		return err
	}

	reqURL := c.base.JoinPath("/v1/messages")
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(reqDataBytes))
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Header.Set("x-api-key", c.apiKey)
	request.Header.Set("anthropic-version", apiVersion)

	resp, err := c.http.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, respData); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
