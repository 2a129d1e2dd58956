package filter

import (
	"context"
	"log/slog"

	"github.com/mkovacevic/tube-hunter/internal/domain"
)

// Scorer grades one video against a topic.
type Scorer interface {
	Score(ctx context.Context, video domain.Video, topic string) (*domain.ScoreResult, error)
}

// Stage drops videos whose relevance score falls below a threshold.
type Stage struct {
	scorer Scorer
}

func NewStage(scorer Scorer) *Stage {
	return &Stage{scorer: scorer}
}

// FilterBatch scores every video independently and keeps the ones at or
// above the threshold, in their incoming order. A video whose scoring call
// fails is dropped and excluded from the average; the rest of the batch
// still runs. AvgScore covers every successfully scored video, kept or not.
func (s *Stage) FilterBatch(ctx context.Context, videos []domain.Video, topic string, threshold float64) ([]domain.Video, domain.FilterStats) {
	if len(videos) == 0 {
		return []domain.Video{}, domain.FilterStats{Threshold: threshold}
	}

	slog.Info("🔍 Filtering videos", "count", len(videos), "topic", topic, "threshold", threshold)

	kept := make([]domain.Video, 0, len(videos))
	var scores []float64

	for _, video := range videos {
		result, err := s.scorer.Score(ctx, video, topic)
		if err != nil {
			slog.Warn("⚠️ Skipping video due to scoring error", "video", video.ID, "error", err)
			continue
		}

		scores = append(scores, result.Score)

		if result.Score >= threshold {
			score := result.Score
			video.FilterScore = &score
			video.FilterReasoning = result.Reasoning
			breakdown := result.Breakdown
			video.FilterBreakdown = &breakdown
			kept = append(kept, video)
		}
	}

	stats := domain.FilterStats{
		Total:     len(videos),
		Kept:      len(kept),
		Filtered:  len(videos) - len(kept),
		Threshold: threshold,
		AvgScore:  average(scores),
	}

	slog.Info("✅ Filtering complete",
		"kept", stats.Kept,
		"filtered", stats.Filtered,
		"threshold", stats.Threshold,
	)

	return kept, stats
}

func average(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
