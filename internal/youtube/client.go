package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mkovacevic/tube-hunter/internal/apperr"
	"github.com/mkovacevic/tube-hunter/internal/domain"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"
	defaultTimeout = 60 * time.Second

	providerName = "youtube"
)

type ClientConfig func(client *Client)

// Client wraps the YouTube Data API v3 search and video-list endpoints.
type Client struct {
	base   url.URL
	apiKey string
	http   *http.Client
}

func NewClient(apiKey string, opts ...ClientConfig) (*Client, error) {
	if apiKey == "" {
		return nil, apperr.NewConfig("youtube api key is required")
	}

	base, err := url.Parse(defaultBaseURL)
	if err != nil {
		return nil, err
	}

	client := &Client{
		base:   *base,
		apiKey: apiKey,
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

// Search finds videos for a topic, newest first within the provider's
// relevance cut. An empty result set is not an error: the caller decides
// whether a topic without hits is worth reporting.
func (c *Client) Search(ctx context.Context, topic string, maxResults int) ([]domain.Video, error) {
	if topic == "" {
		return nil, apperr.NewConfig("search topic is required")
	}
	if maxResults <= 0 {
		return nil, apperr.NewConfig("maxResults must be positive")
	}

	query := url.Values{}
	query.Set("q", topic)
	query.Set("part", "id,snippet")
	query.Set("maxResults", strconv.Itoa(maxResults))
	query.Set("type", "video")
	query.Set("order", "relevance")
	query.Set("relevanceLanguage", "en")

	var searchResp searchResponse
	if err := c.do(ctx, "/search", query, &searchResp); err != nil {
		return nil, apperr.NewProvider(providerName, fmt.Sprintf("search failed for topic %q", topic), err)
	}

	ids := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}

	if len(ids) == 0 {
		return []domain.Video{}, nil
	}

	detailQuery := url.Values{}
	detailQuery.Set("part", "snippet,statistics")
	detailQuery.Set("id", strings.Join(ids, ","))

	var listResp videoListResponse
	if err := c.do(ctx, "/videos", detailQuery, &listResp); err != nil {
		return nil, apperr.NewProvider(providerName, fmt.Sprintf("video detail lookup failed for topic %q", topic), err)
	}

	videos := make([]domain.Video, 0, len(listResp.Items))
	for _, item := range listResp.Items {
		videos = append(videos, mapVideo(item))
	}

	// Secondary sort: the relevance cut already happened provider-side,
	// recency orders the final set.
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].PublishedAt > videos[j].PublishedAt
	})

	return videos, nil
}

func mapVideo(item videoItem) domain.Video {
	viewCount, err := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)
	if err != nil || viewCount < 0 {
		viewCount = 0
	}

	return domain.Video{
		ID:          item.ID,
		Title:       item.Snippet.Title,
		URL:         "https://www.youtube.com/watch?v=" + item.ID,
		ChannelName: item.Snippet.ChannelTitle,
		PublishedAt: item.Snippet.PublishedAt,
		Description: truncateDescription(item.Snippet.Description),
		ViewCount:   viewCount,
	}
}

func truncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= domain.DescriptionMaxLength {
		return description
	}
	return string(runes[:domain.DescriptionMaxLength]) + "..."
}

func (c *Client) do(ctx context.Context, path string, query url.Values, respData any) error {
	reqURL := c.base.JoinPath(path)

	query.Set("key", c.apiKey)
	reqURL.RawQuery = query.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return err
	}

	request.Header.Set("Accept", "application/json")

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
