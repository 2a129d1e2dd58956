package scorer

import (
	"fmt"

	"github.com/mkovacevic/tube-hunter/internal/domain"
	"github.com/mkovacevic/tube-hunter/pkg/utils"
)

// scoringPromptTemplate asks the model to grade one video against a search
// topic. The point bands (relevance 0-4, quality 0-3, recency 0-3) are the
// scoring contract; the response must be a bare JSON object.
const scoringPromptTemplate = `You are a video quality and relevance evaluator.
Score this YouTube video for a search about "%s".

Video Details:
- Title: %s
- Channel: %s
- Published: %s
- Views: %s
- Description: %s

Scoring Criteria:
1. Topic Relevance (0-4 points):
- 4: Highly relevant, directly addresses the topic
- 3: Very relevant, covers most aspects of the topic
- 2: Moderately relevant, tangentially related
- 1: Slightly relevant, barely related
- 0: Not relevant at all

2. Content Quality (0-3 points):
- 3: High quality - professional, credible source, comprehensive
- 2: Good quality - decent production, reliable information
- 1: Fair quality - basic content, some value
- 0: Poor quality - low value, questionable credibility

3. Recency (0-3 points):
- 3: Very recent (< 3 months old)
- 2: Recent (3-12 months old)
- 1: Somewhat recent (1-2 years old)
- 0: Old (> 2 years old)

Respond ONLY with a JSON object in this exact format:
{
    "topic_relevance": <0-4>,
    "content_quality": <0-3>,
    "recency": <0-3>,
    "total_score": <sum of above>,
    "reasoning": "<brief explanation of the scoring>"
}`

func buildPrompt(video domain.Video, topic string) string {
	return fmt.Sprintf(scoringPromptTemplate,
		topic,
		orNA(video.Title),
		orNA(video.ChannelName),
		orNA(video.PublishedAt),
		utils.FormatThousands(video.ViewCount),
		orNA(video.Description),
	)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
