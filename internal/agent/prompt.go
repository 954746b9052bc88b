package agent

import "fmt"

// promptTemplate has four slots: journal, intention, dream, priorities. The
// inputs are interpolated verbatim; the trailing example anchors the model to
// a bare JSON object.
const promptTemplate = `You are a daily reflection and planning assistant.
Your goals:
1) Reflect on the user's morning journal and dream input.
2) Interpret the user's emotional and mental state.
3) Understand their intention and top 3 priorities.
4) Generate a practical, energy-aligned, time-aware strategy for the day.

INPUT:
Morning Journal: %s
Intention: %s
Dream: %s
Top 3 Priorities: %s

OUTPUT (in JSON):
Return a JSON object exactly with these keys:
- reflection (short paragraph)
- dream_summary (short paragraph)
- mindset (short paragraph)
- strategy (short paragraph, include time-aligned suggestions if possible)

Example:
{"reflection":"...","dream_summary":"...","mindset":"...","strategy":"..."}`

// BuildPrompt renders the fixed instruction string for the provider.
// Deterministic given identical inputs; no escaping is applied.
func BuildPrompt(journal, intention, dream, priorities string) string {
	return fmt.Sprintf(promptTemplate, journal, intention, dream, priorities)
}
