package agent

import "testing"

func TestNormalizeTrimsAndCoerces(t *testing.T) {
	got := Normalize(map[string]any{
		"reflection": "  hi  ",
		"strategy":   5, // non-string values degrade to ""
	})

	if got.Reflection != "hi" {
		t.Errorf("expected trimmed 'hi', got %q", got.Reflection)
	}
	if got.DreamSummary != "" || got.Mindset != "" || got.Strategy != "" {
		t.Errorf("expected empty fallbacks, got %+v", got)
	}
}

func TestNormalizeMistypedValues(t *testing.T) {
	got := Normalize(map[string]any{
		"reflection":    nil,
		"dream_summary": []any{"a"},
		"mindset":       map[string]any{"x": 1},
		"strategy":      3.14,
	})
	if got != (Normalize(map[string]any{})) {
		t.Errorf("mistyped values should all degrade to empty, got %+v", got)
	}
}

func TestNormalizeNilMap(t *testing.T) {
	got := Normalize(nil)
	if got.Reflection != "" || got.DreamSummary != "" || got.Mindset != "" || got.Strategy != "" {
		t.Errorf("expected all-empty result, got %+v", got)
	}
}

// Re-normalizing an already-normalized, all-string payload is a no-op.
func TestNormalizeIdempotent(t *testing.T) {
	first := Normalize(map[string]any{
		"reflection":    " r ",
		"dream_summary": "d",
		"mindset":       "m",
		"strategy":      "s",
	})
	second := Normalize(map[string]any{
		"reflection":    first.Reflection,
		"dream_summary": first.DreamSummary,
		"mindset":       first.Mindset,
		"strategy":      first.Strategy,
	})
	if first != second {
		t.Errorf("expected stable result, got %+v then %+v", first, second)
	}
}
