package cmd

import (
	"fmt"
	"time"

	units "github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/storagemon/powerstore-prtg/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded probe runs",
	Long: `List the most recent probe runs from a database written with --record,
newest first. Requires that at least one probe run recorded into it.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().String("db", "", "SQLite database path (required)")
	historyCmd.Flags().Int("limit", 20, "Maximum number of runs to list")
	historyCmd.MarkFlagRequired("db")
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.Open(cmd.Context(), dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	for _, run := range runs {
		status := "ok"
		if !run.OK {
			status = "FAILED"
		}
		age := units.HumanDuration(time.Since(run.RecordedAt))
		fmt.Printf("%-16s %-12s %-6s %s ago", run.Host, run.Category, status, age)
		if run.Message != "" {
			fmt.Printf("  %s", run.Message)
		}
		fmt.Println()
	}
	return nil
}
