package domain

// DescriptionMaxLength is the number of characters a video description is
// truncated to before it enters a report.
const DescriptionMaxLength = 200

// Video is a single YouTube search hit enriched with statistics.
//
// ID and the descriptive fields are fixed once the video is built from the
// API response. The Filter* fields stay nil until a filter pass scores the
// video and are set at most once.
type Video struct {
	ID          string `json:"videoId"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	ChannelName string `json:"channelName"`
	PublishedAt string `json:"publishedAt"`
	Description string `json:"description"`
	ViewCount   int64  `json:"viewCount"`

	FilterScore     *float64        `json:"filterScore,omitempty"`
	FilterReasoning string          `json:"filterReasoning,omitempty"`
	FilterBreakdown *ScoreBreakdown `json:"filterBreakdown,omitempty"`
}

// ScoreBreakdown is the per-category split of a relevance score.
type ScoreBreakdown struct {
	TopicRelevance int `json:"topic_relevance"`
	ContentQuality int `json:"content_quality"`
	Recency        int `json:"recency"`
}

// ScoreResult is the outcome of scoring one video against a topic.
// Score is the provider's own total, not recomputed locally.
type ScoreResult struct {
	Score     float64
	Reasoning string
	Breakdown ScoreBreakdown
}

// FilterStats summarizes one filter pass over a topic's videos.
// Filtered is always Total - Kept. AvgScore averages every video that was
// scored successfully, whether or not it cleared the threshold.
type FilterStats struct {
	Total     int
	Kept      int
	Filtered  int
	Threshold float64
	AvgScore  float64
}
