package agent

import (
	"regexp"
	"strings"
)

var (
	fenceOpen  = regexp.MustCompile("```(?:json)?\\s*")
	fenceClose = regexp.MustCompile("\\s*```$")
)

// ExtractJSON isolates a JSON-shaped substring from free-form model output.
// It strips Markdown code fences, takes the whole text when it already looks
// like a JSON object, and otherwise falls back to the span between the first
// '{' and the last '}'. The greedy first/last-brace match does no brace-depth
// balancing, so multiple JSON blocks or stray braces in prose can widen the
// span; that behavior is intentional and kept stable for existing callers.
// Returns ok=false when no candidate is found.
func ExtractJSON(text string) (string, bool) {
	if text == "" {
		return "", false
	}

	cleaned := strings.TrimSpace(fenceOpen.ReplaceAllString(text, ""))
	cleaned = strings.TrimSpace(fenceClose.ReplaceAllString(cleaned, ""))

	if strings.HasPrefix(cleaned, "{") && strings.HasSuffix(cleaned, "}") {
		return cleaned, true
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start != -1 && end != -1 && end > start {
		return strings.TrimSpace(cleaned[start : end+1]), true
	}

	return "", false
}
