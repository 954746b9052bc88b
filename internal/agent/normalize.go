package agent

import (
	"strings"

	"consciousday/internal/model"
)

// Normalize coerces a decoded JSON payload into the fixed four-field result.
// String values are trimmed; missing or non-string values (numbers, arrays,
// objects, null) become "". Normalization is total: it never fails, whatever
// the payload looks like.
func Normalize(data map[string]any) model.Reflection {
	return model.Reflection{
		Reflection:   stringField(data, "reflection"),
		DreamSummary: stringField(data, "dream_summary"),
		Mindset:      stringField(data, "mindset"),
		Strategy:     stringField(data, "strategy"),
	}
}

func stringField(data map[string]any, key string) string {
	if s, ok := data[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
