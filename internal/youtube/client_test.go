package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkovacevic/tube-hunter/internal/apperr"
)

func TestNewClient_RequiresApiKey(t *testing.T) {
	_, err := NewClient("")

	var ce *apperr.ConfigError
	require.True(t, errors.As(err, &ce))
}

func TestSearch_MapsAndSortsByPublishedAtDesc(t *testing.T) {
	var videoListCalls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/search"):
			assert.Equal(t, "docker tutorials", r.URL.Query().Get("q"))
			assert.Equal(t, "video", r.URL.Query().Get("type"))
			assert.Equal(t, "relevance", r.URL.Query().Get("order"))
			assert.Equal(t, "en", r.URL.Query().Get("relevanceLanguage"))
			assert.Equal(t, "5", r.URL.Query().Get("maxResults"))
			assert.NotEmpty(t, r.URL.Query().Get("key"))
			w.Write([]byte(`{"items":[
				{"id":{"kind":"youtube#video","videoId":"old1"}},
				{"id":{"kind":"youtube#video","videoId":"new1"}}
			]}`))
		case strings.HasSuffix(r.URL.Path, "/videos"):
			videoListCalls++
			assert.Equal(t, "old1,new1", r.URL.Query().Get("id"))
			assert.Equal(t, "snippet,statistics", r.URL.Query().Get("part"))
			w.Write([]byte(`{"items":[
				{"id":"old1","snippet":{"title":"Older","channelTitle":"ChanA","publishedAt":"2023-01-01T00:00:00Z","description":"first"},"statistics":{"viewCount":"150"}},
				{"id":"new1","snippet":{"title":"Newer","channelTitle":"ChanB","publishedAt":"2024-06-01T00:00:00Z","description":"second"},"statistics":{"viewCount":"42"}}
			]}`))
		default:
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client, err := NewClient("test-key", WithBaseURL(server.URL), WithHttpClient(server.Client()))
	require.NoError(t, err)

	videos, err := client.Search(context.Background(), "docker tutorials", 5)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, 1, videoListCalls)

	assert.Equal(t, "new1", videos[0].ID)
	assert.Equal(t, "Newer", videos[0].Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=new1", videos[0].URL)
	assert.Equal(t, "ChanB", videos[0].ChannelName)
	assert.Equal(t, int64(42), videos[0].ViewCount)

	assert.Equal(t, "old1", videos[1].ID)
	assert.Equal(t, int64(150), videos[1].ViewCount)
}

func TestSearch_NoResultsReturnsEmptyWithoutDetailCall(t *testing.T) {
	var videoListCalls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/videos") {
			videoListCalls++
		}
		w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	client, err := NewClient("test-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	videos, err := client.Search(context.Background(), "nothing here", 10)
	require.NoError(t, err)
	assert.Empty(t, videos)
	assert.Equal(t, 0, videoListCalls)
}

func TestSearch_ProviderErrorOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"quotaExceeded"}}`, http.StatusForbidden)
	}))
	defer server.Close()

	client, err := NewClient("test-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "docker tutorials", 10)
	require.Error(t, err)

	var pe *apperr.ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "youtube", pe.Provider)
	assert.Contains(t, err.Error(), "quotaExceeded")
}

func TestSearch_MissingViewCountDefaultsToZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/search") {
			w.Write([]byte(`{"items":[{"id":{"videoId":"v1"}}]}`))
			return
		}
		w.Write([]byte(`{"items":[{"id":"v1","snippet":{"title":"T"},"statistics":{}}]}`))
	}))
	defer server.Close()

	client, err := NewClient("test-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	videos, err := client.Search(context.Background(), "anything", 10)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, int64(0), videos[0].ViewCount)
}

func TestTruncateDescription(t *testing.T) {
	long := strings.Repeat("a", 250)
	exact := strings.Repeat("b", 200)

	assert.Equal(t, strings.Repeat("a", 200)+"...", truncateDescription(long))
	assert.Equal(t, exact, truncateDescription(exact))
	assert.Equal(t, "short", truncateDescription("short"))
}
