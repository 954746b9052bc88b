package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show entries for a date",
		Long:  "Show all journal entries for an exact date, oldest first.",
		Run:   runShow,
	}

	cmd.Flags().String("date", "", "Entry date, ISO-8601 (default: today)")

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	date, _ := cmd.Flags().GetString("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entries, err := s.ByDate(cmd.Context(), date)
	if err != nil {
		exitErr("show", err)
	}

	if len(entries) == 0 {
		if formatFlag == "json" {
			fmt.Println("[]")
		} else {
			fmt.Println("No entries found for " + date + ".")
		}
		return
	}

	printEntries(entries)
}
