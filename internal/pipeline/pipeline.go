package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mkovacevic/tube-hunter/internal/domain"
	"github.com/mkovacevic/tube-hunter/internal/report"
	"github.com/mkovacevic/tube-hunter/pkg/utils"
)

// Searcher finds videos for a topic.
type Searcher interface {
	Search(ctx context.Context, topic string, maxResults int) ([]domain.Video, error)
}

// Filter scores a topic's videos and keeps the ones above a threshold.
type Filter interface {
	FilterBatch(ctx context.Context, videos []domain.Video, topic string, threshold float64) ([]domain.Video, domain.FilterStats)
}

// Renderer persists a topic report.
type Renderer interface {
	Save(path, topic string, videos []domain.Video) error
}

// Config carries the per-run knobs the orchestrator needs.
type Config struct {
	MaxResults      int
	OutputDir       string
	FilterThreshold float64
}

// Summary accumulates across topics. VideosFiltered is only meaningful when
// a filter is attached.
type Summary struct {
	Topics         int
	VideosSaved    int
	VideosFiltered int
}

// TopicPipeline processes topics strictly one after another: search, an
// optional filter pass, then a markdown report. A failure inside one topic
// is logged and the loop moves on; it never aborts the run.
type TopicPipeline struct {
	searcher Searcher
	filter   Filter
	renderer Renderer
	config   Config
}

type Option func(p *TopicPipeline)

// WithFilter attaches the scoring filter stage.
func WithFilter(f Filter) Option {
	return func(p *TopicPipeline) {
		p.filter = f
	}
}

func New(searcher Searcher, renderer Renderer, config Config, opts ...Option) *TopicPipeline {
	p := &TopicPipeline{
		searcher: searcher,
		renderer: renderer,
		config:   config,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run processes every topic and returns the accumulated totals.
func (p *TopicPipeline) Run(ctx context.Context, topics []string) Summary {
	runID := uuid.New()
	start := time.Now()
	log := slog.With("run_id", runID)

	log.Info("🛫 Starting scout run",
		"topics", len(topics),
		"max_results", p.config.MaxResults,
		"output_dir", p.config.OutputDir,
		"filter_enabled", p.filter != nil,
	)
	if p.filter != nil {
		log.Info("🔍 Filtering enabled", "threshold", p.config.FilterThreshold)
	}

	summary := Summary{Topics: len(topics)}

	for _, topic := range topics {
		saved, filtered, err := p.processTopic(ctx, log, topic)
		if err != nil {
			log.Error("❌ Failed to process topic", "topic", topic, "error", err)
			continue
		}
		summary.VideosSaved += saved
		summary.VideosFiltered += filtered
	}

	log.Info("🎉 Scout run complete",
		"topics", summary.Topics,
		"videos_saved", summary.VideosSaved,
		"videos_filtered", summary.VideosFiltered,
		"duration", time.Since(start),
	)

	return summary
}

// processTopic runs one topic end to end and reports how many videos were
// saved and how many the filter dropped. Empty search results and an empty
// post-filter set are skips, not errors.
func (p *TopicPipeline) processTopic(ctx context.Context, log *slog.Logger, topic string) (int, int, error) {
	log.Info("⏳ Processing topic", "topic", topic)

	videos, err := p.searcher.Search(ctx, topic, p.config.MaxResults)
	if err != nil {
		return 0, 0, err
	}

	if len(videos) == 0 {
		log.Warn("⚠️ No videos found for topic", "topic", topic)
		return 0, 0, nil
	}

	var filtered int
	if p.filter != nil {
		var stats domain.FilterStats
		videos, stats = p.filter.FilterBatch(ctx, videos, topic, p.config.FilterThreshold)
		filtered = stats.Filtered

		log.Info("📊 Filter pass",
			"topic", topic,
			"kept", stats.Kept,
			"total", stats.Total,
			"filtered", stats.Filtered,
			"avg_score", utils.RoundDecimal(stats.AvgScore, 1),
		)

		if len(videos) == 0 {
			log.Warn("⚠️ No videos passed filter threshold", "topic", topic)
			return 0, filtered, nil
		}
	}

	path := filepath.Join(p.config.OutputDir, report.SanitizeFilename(topic))
	if err := p.renderer.Save(path, topic, videos); err != nil {
		return 0, 0, err
	}

	log.Info("✅ Saved topic report", "topic", topic, "videos", len(videos), "path", path)
	return len(videos), filtered, nil
}
