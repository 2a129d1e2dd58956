package report

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/mkovacevic/tube-hunter/internal/domain"
	"github.com/mkovacevic/tube-hunter/pkg/utils"
)

const (
	noDescriptionPlaceholder = "No description available."
	untitledPlaceholder      = "Untitled"
	unknownChannel           = "Unknown"

	publishedLayout = "January 2, 2006"
	generatedLayout = "January 2, 2006 at 3:04 PM"
)

type RendererOption func(r *Renderer)

// Renderer turns a topic's video list into a markdown report suitable for
// NotebookLM-style document import.
type Renderer struct {
	now func() time.Time
}

func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{now: time.Now}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithClock overrides the generation timestamp source.
func WithClock(now func() time.Time) RendererOption {
	return func(r *Renderer) {
		r.now = now
	}
}

// Render produces the full markdown document for one topic.
func (r *Renderer) Render(topic string, videos []domain.Video) string {
	slog.Debug("Generating markdown", "topic", topic, "videos", len(videos))

	var b strings.Builder

	b.WriteString(fmt.Sprintf("# %s\n\n", topic))
	b.WriteString(fmt.Sprintf("*Generated on %s*\n\n", r.now().Format(generatedLayout)))
	b.WriteString(fmt.Sprintf("Total videos: %d\n\n", len(videos)))
	b.WriteString("---\n\n")

	for i, video := range videos {
		writeVideoSection(&b, i+1, video)
	}

	return b.String()
}

func writeVideoSection(b *strings.Builder, index int, video domain.Video) {
	title := video.Title
	if title == "" {
		title = untitledPlaceholder
	}
	channel := video.ChannelName
	if channel == "" {
		channel = unknownChannel
	}
	description := video.Description
	if description == "" {
		description = noDescriptionPlaceholder
	}

	b.WriteString(fmt.Sprintf("## %d. %s\n\n", index, title))
	b.WriteString(fmt.Sprintf("**URL:** [%s](%s)\n\n", video.URL, video.URL))
	b.WriteString(fmt.Sprintf("**Channel:** %s\n\n", channel))
	b.WriteString(fmt.Sprintf("**Published:** %s\n\n", FormatDate(video.PublishedAt)))
	b.WriteString(fmt.Sprintf("**Views:** %s\n\n", utils.FormatThousands(video.ViewCount)))
	b.WriteString("**Description:**\n\n")
	b.WriteString(fmt.Sprintf("> %s\n\n", description))
	b.WriteString("---\n\n")
}

// Save renders the report and writes it to path as UTF-8.
func (r *Renderer) Save(path, topic string, videos []domain.Video) error {
	content := r.Render(topic, videos)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("save report to %s: %w", path, err)
	}

	slog.Info("💾 Saved markdown report", "path", path, "videos", len(videos))
	return nil
}

// FormatDate renders an ISO-8601 timestamp as "January 2, 2006". Strings
// that do not parse come back unchanged.
func FormatDate(value string) string {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return parsed.Format(publishedLayout)
}

// SanitizeFilename derives a report filename from a topic: lowercased,
// spaces joined with underscores, everything that is not a letter, digit,
// underscore or hyphen dropped, ".md" appended. Distinct topics can
// normalize to the same name; the later report silently overwrites the
// earlier one.
func SanitizeFilename(topic string) string {
	return normalizeTopic(topic) + ".md"
}

func normalizeTopic(topic string) string {
	name := strings.ToLower(topic)
	name = strings.ReplaceAll(name, " ", "_")

	var b strings.Builder
	for _, c := range name {
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '-' {
			b.WriteRune(c)
		}
	}

	return b.String()
}
