package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/asreorder/internal/wire"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past reorder runs from the audit store",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		limit, _ := cmd.Flags().GetInt("limit")

		runs, err := wire.HistoryService().ListRuns(ctx, limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded")
			return nil
		}

		fmt.Printf("%-5s %-20s %-10s %-12s %-8s %-8s %s\n",
			"ID", "PARENT", "STRATEGY", "RECORDS", "OK", "FAILED", "FINISHED")
		for _, run := range runs {
			parent := fmt.Sprintf("%s %d", run.ParentType, run.ParentID)
			fmt.Printf("%-5d %-20s %-10s %-12d %-8d %-8d %s\n",
				run.ID, parent, run.Strategy, run.RecordCount, run.Succeeded, run.Failed, run.FinishedAt)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of runs to show")
}

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	return historyCmd
}
