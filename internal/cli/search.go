package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"consciousday/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search entries by keyword",
		Long:  "Search journal, dream, reflection, and strategy text for matching entries.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entries, err := s.Search(cmd.Context(), store.SearchParams{
		Query: query,
		Limit: limit,
	})
	if err != nil {
		exitErr("search", err)
	}

	if len(entries) == 0 {
		if formatFlag == "json" {
			fmt.Println("[]")
		} else {
			fmt.Println("No matching entries.")
		}
		return
	}

	printEntries(entries)
}
