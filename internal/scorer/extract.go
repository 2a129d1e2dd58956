package scorer

import "strings"

// ExtractPayload pulls the structured payload out of a model reply. Models
// often wrap JSON in a markdown code fence; the fence and any surrounding
// prose are stripped before decoding. Replies without a fence pass through
// trimmed.
func ExtractPayload(text string) string {
	text = strings.TrimSpace(text)

	if start := strings.Index(text, "```json"); start >= 0 {
		if end := strings.LastIndex(text, "```"); end > start {
			return strings.TrimSpace(text[start+len("```json") : end])
		}
	}

	if start := strings.Index(text, "```"); start >= 0 {
		if end := strings.LastIndex(text, "```"); end > start {
			return strings.TrimSpace(text[start+len("```") : end])
		}
	}

	return text
}
