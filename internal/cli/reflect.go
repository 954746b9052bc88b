package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"consciousday/internal/agent"
	"consciousday/internal/llm"
	"consciousday/internal/model"
	"consciousday/internal/store"
	"consciousday/internal/tui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "reflect",
		Short: "Generate and save a morning reflection",
		Long: "Send your morning journal, intention, dream, and top 3 priorities to the " +
			"model, save the resulting entry, and print the reflection. The journal can " +
			"be a flag or piped via stdin; --form opens an interactive form instead.",
		Run: runReflect,
	}

	cmd.Flags().StringP("journal", "j", "", "Morning journal text (or pipe via stdin)")
	cmd.Flags().StringP("intention", "i", "", "Intention of the day")
	cmd.Flags().String("dream", "", "Dream")
	cmd.Flags().StringP("priorities", "p", "", "Top 3 priorities")
	cmd.Flags().String("date", "", "Entry date, ISO-8601 (default: today)")
	cmd.Flags().Bool("form", false, "Fill in the inputs with an interactive form")

	RootCmd.AddCommand(cmd)
}

func runReflect(cmd *cobra.Command, args []string) {
	useForm, _ := cmd.Flags().GetBool("form")
	date, _ := cmd.Flags().GetString("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var req model.ReflectionRequest
	if useForm {
		r, ok, err := tui.RunForm()
		if err != nil {
			exitErr("form", err)
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "cancelled")
			return
		}
		req = r
	} else {
		req.Journal, _ = cmd.Flags().GetString("journal")
		req.Intention, _ = cmd.Flags().GetString("intention")
		req.Dream, _ = cmd.Flags().GetString("dream")
		req.Priorities, _ = cmd.Flags().GetString("priorities")

		// Journal falls back to stdin when piped
		if req.Journal == "" {
			stat, _ := os.Stdin.Stat()
			if (stat.Mode() & os.ModeCharDevice) == 0 {
				b, err := io.ReadAll(os.Stdin)
				if err != nil {
					exitErr("read stdin", err)
				}
				req.Journal = string(b)
			}
		}
	}

	a := agent.New(cfg, llm.NewOpenAI(cfg), logger)
	result, err := a.Generate(cmd.Context(), req)
	if err != nil {
		var aerr *agent.Error
		if errors.As(err, &aerr) {
			fmt.Fprintf(os.Stderr, "error: %s\n", aerr.Kind)
			if aerr.Raw != "" {
				fmt.Fprintf(os.Stderr, "raw: %s\n", aerr.Raw)
			}
			os.Exit(1)
		}
		exitErr("reflect", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entry, err := s.Save(cmd.Context(), store.SaveParams{
		Date:         date,
		Journal:      req.Journal,
		Intention:    req.Intention,
		Dream:        req.Dream,
		Priorities:   req.Priorities,
		Reflection:   result.Reflection,
		Strategy:     result.Strategy,
		DreamSummary: result.DreamSummary,
		Mindset:      result.Mindset,
	})
	if err != nil {
		exitErr("save entry", err)
	}
	logger.Debug("entry saved", zap.String("id", entry.ID), zap.String("date", entry.Date))

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(entry, "", "  ")
		fmt.Println(string(b))
		return
	}
	fmt.Println(renderReflection(result))
	fmt.Println(dateStyle.Render("saved " + entry.Date + " " + entry.ID))
}
