package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent entries",
		Run:   runList,
	}

	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entries, err := s.Recent(cmd.Context(), limit)
	if err != nil {
		exitErr("list", err)
	}

	if len(entries) == 0 {
		if formatFlag == "json" {
			fmt.Println("[]")
		} else {
			fmt.Println("No entries yet.")
		}
		return
	}

	printEntries(entries)
}
