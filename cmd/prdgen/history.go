// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/prdgen/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent generation runs",
	Long: `History lists past PDF generation runs recorded in the history store,
newest first, with section extraction statistics for each run.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyCmd.Flags().String("history-dir", "history", "directory for the generation history database")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	dir, _ := cmd.Flags().GetString("history-dir")
	if !cmd.Flags().Changed("history-dir") {
		if v := viper.GetString("history_dir"); v != "" {
			dir = v
		}
	}

	store, err := history.Open(dir)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "no generation runs recorded")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-40q  %s  (%d matched, %d placeholders, %d bytes)\n",
			e.GeneratedAt.Format("2006-01-02 15:04"), e.Title, e.Output,
			e.Matched, e.Placeholders, e.Bytes)
	}
	return nil
}
