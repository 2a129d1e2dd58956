package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkovacevic/tube-hunter/internal/apperr"
	"github.com/mkovacevic/tube-hunter/internal/domain"
)

type fakeSearcher struct {
	results map[string][]domain.Video
	errs    map[string]error
	calls   []string
}

func (f *fakeSearcher) Search(_ context.Context, topic string, _ int) ([]domain.Video, error) {
	f.calls = append(f.calls, topic)
	if err := f.errs[topic]; err != nil {
		return nil, err
	}
	return f.results[topic], nil
}

type fakeFilter struct {
	keep  int // how many videos to keep from the front of the batch
	calls int
}

func (f *fakeFilter) FilterBatch(_ context.Context, videos []domain.Video, _ string, threshold float64) ([]domain.Video, domain.FilterStats) {
	f.calls++
	kept := videos
	if f.keep < len(videos) {
		kept = videos[:f.keep]
	}
	return kept, domain.FilterStats{
		Total:     len(videos),
		Kept:      len(kept),
		Filtered:  len(videos) - len(kept),
		Threshold: threshold,
	}
}

type fakeRenderer struct {
	saved map[string][]domain.Video // path -> videos
	errs  map[string]error          // topic -> error
}

func (f *fakeRenderer) Save(path, topic string, videos []domain.Video) error {
	if err := f.errs[topic]; err != nil {
		return err
	}
	if f.saved == nil {
		f.saved = map[string][]domain.Video{}
	}
	f.saved[path] = videos
	return nil
}

func someVideos(n int) []domain.Video {
	videos := make([]domain.Video, n)
	for i := range videos {
		videos[i] = domain.Video{ID: "v", Title: "t"}
	}
	return videos
}

func testConfig() Config {
	return Config{MaxResults: 10, OutputDir: "outputs", FilterThreshold: 7}
}

func TestRun_AccumulatesAcrossTopics(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]domain.Video{
		"Go tutorials":     someVideos(3),
		"Docker tutorials": someVideos(2),
	}}
	renderer := &fakeRenderer{}

	p := New(searcher, renderer, testConfig())
	summary := p.Run(context.Background(), []string{"Go tutorials", "Docker tutorials"})

	assert.Equal(t, 2, summary.Topics)
	assert.Equal(t, 5, summary.VideosSaved)
	assert.Equal(t, 0, summary.VideosFiltered)
	assert.Equal(t, []string{"Go tutorials", "Docker tutorials"}, searcher.calls)

	require.Contains(t, renderer.saved, "outputs/go_tutorials.md")
	require.Contains(t, renderer.saved, "outputs/docker_tutorials.md")
}

func TestRun_SearchFailureIsolatedToTopic(t *testing.T) {
	searcher := &fakeSearcher{
		results: map[string][]domain.Video{"good": someVideos(2)},
		errs:    map[string]error{"bad": apperr.NewProvider("youtube", "quota exceeded", nil)},
	}
	renderer := &fakeRenderer{}

	p := New(searcher, renderer, testConfig())
	summary := p.Run(context.Background(), []string{"bad", "good"})

	assert.Equal(t, 2, summary.Topics)
	assert.Equal(t, 2, summary.VideosSaved)
	assert.Len(t, renderer.saved, 1)
}

func TestRun_NoResultsSkipsTopicWithoutError(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]domain.Video{"empty": {}}}
	renderer := &fakeRenderer{}

	p := New(searcher, renderer, testConfig())
	summary := p.Run(context.Background(), []string{"empty"})

	assert.Equal(t, 0, summary.VideosSaved)
	assert.Empty(t, renderer.saved)
}

func TestRun_FilterDropsCountTowardSummary(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]domain.Video{"topic": someVideos(5)}}
	renderer := &fakeRenderer{}
	filter := &fakeFilter{keep: 3}

	p := New(searcher, renderer, testConfig(), WithFilter(filter))
	summary := p.Run(context.Background(), []string{"topic"})

	assert.Equal(t, 1, filter.calls)
	assert.Equal(t, 3, summary.VideosSaved)
	assert.Equal(t, 2, summary.VideosFiltered)
}

func TestRun_AllFilteredOutSkipsReportButCountsDrops(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]domain.Video{"topic": someVideos(4)}}
	renderer := &fakeRenderer{}
	filter := &fakeFilter{keep: 0}

	p := New(searcher, renderer, testConfig(), WithFilter(filter))
	summary := p.Run(context.Background(), []string{"topic"})

	assert.Equal(t, 0, summary.VideosSaved)
	assert.Equal(t, 4, summary.VideosFiltered)
	assert.Empty(t, renderer.saved)
}

func TestRun_SaveFailureContributesNothing(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]domain.Video{
		"broken": someVideos(3),
		"fine":   someVideos(1),
	}}
	renderer := &fakeRenderer{errs: map[string]error{"broken": errors.New("disk full")}}

	p := New(searcher, renderer, testConfig())
	summary := p.Run(context.Background(), []string{"broken", "fine"})

	assert.Equal(t, 1, summary.VideosSaved)
	assert.Len(t, renderer.saved, 1)
}
