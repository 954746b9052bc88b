package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"consciousday/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	dateStyle  = lipgloss.NewStyle().Faint(true)
	ruleStyle  = lipgloss.NewStyle().Faint(true)
)

func renderReflection(r model.Reflection) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("AI Reflection") + "\n\n")
	writeField(&b, "Reflection", r.Reflection)
	writeField(&b, "Dream Summary", r.DreamSummary)
	writeField(&b, "Mindset Insight", r.Mindset)
	writeField(&b, "Day Strategy", r.Strategy)
	return b.String()
}

func renderEntry(e model.Entry) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(e.Date) + " " + dateStyle.Render(e.ID) + "\n\n")
	writeField(&b, "Journal", e.Journal)
	writeField(&b, "Intention", e.Intention)
	writeField(&b, "Dream", e.Dream)
	writeField(&b, "Priorities", e.Priorities)
	writeField(&b, "Reflection", e.Reflection)
	writeField(&b, "Strategy", e.Strategy)
	writeField(&b, "Dream Summary", e.DreamSummary)
	writeField(&b, "Mindset Insight", e.Mindset)
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(labelStyle.Render(label+":") + " " + value + "\n")
}

// printEntries writes entries in the selected output format.
func printEntries(entries []model.Entry) {
	if formatFlag == "json" {
		b, _ := json.MarshalIndent(entries, "", "  ")
		fmt.Println(string(b))
		return
	}
	for i, e := range entries {
		if i > 0 {
			fmt.Println(ruleStyle.Render(strings.Repeat("─", 40)))
		}
		fmt.Println(renderEntry(e))
	}
}
