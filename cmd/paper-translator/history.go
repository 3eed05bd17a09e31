// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-translator/internal/config"
	"github.com/pdiddy/paper-translator/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent translation runs",
	Long: `History lists runs recorded in the local SQLite history database:
when they ran, what was searched, and how many abstracts were
translated or failed.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("db", "", "history database path (default from config)")
	historyCmd.Flags().Int("limit", 0, "maximum runs to list (0 = default)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = cfg.Report.HistoryDB
	}
	if dbPath == "" {
		return fmt.Errorf("history recording is disabled: set report.history_db or pass --db")
	}
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-17s  %-30s  %-6s  %-6s  %s\n",
		"When", "Query", "Papers", "Failed", "Output")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for _, r := range records {
		query := r.Query
		if len(query) > 30 {
			query = query[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-17s  %-30s  %-6d  %-6d  %s\n",
			r.Timestamp.Local().Format("2006-01-02 15:04"), query, r.Total, r.Failed, r.OutputFile)
	}

	fmt.Fprintf(os.Stdout, "\n%d runs\n", len(records))
	return nil
}
