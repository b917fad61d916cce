package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/asreorder/internal/app"
	"github.com/example/asreorder/internal/models"
	"github.com/example/asreorder/internal/wire"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Reorder archival objects to match spreadsheet row order",
	Long: `Reads the spreadsheet, validates the parent record and a sample of the
listed objects against ArchivesSpace, and - after confirmation - issues
position updates so the parent's children match the spreadsheet's row order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		file, _ := cmd.Flags().GetString("file")
		position, _ := cmd.Flags().GetInt("position")
		yes, _ := cmd.Flags().GetBool("yes")

		// 1. Ingest. Fatal errors surface here, before any network call.
		m, err := wire.IngestService().Ingest(file)
		if err != nil {
			return err
		}
		fmt.Printf("Loaded %d record(s) from %s (id column %q)\n", m.Len(), file, m.IDColumn)
		if m.SkippedRows > 0 {
			fmt.Printf("%s %d row(s) skipped for empty or non-numeric ids\n", warnMark, m.SkippedRows)
		}
		if len(m.DuplicateIDs) > 0 {
			fmt.Printf("%s duplicate ids in spreadsheet: %v\n", warnMark, m.DuplicateIDs)
		}

		parent, err := resolveParent(cmd)
		if err != nil {
			return err
		}

		// 2. Authenticate and validate.
		fmt.Println("\nAuthenticating with ArchivesSpace...")
		if err := wire.Client().Authenticate(ctx); err != nil {
			return err
		}

		fmt.Printf("Validating parent record %s and up to 10 sample children...\n", parent)
		report := wire.ValidationService().Validate(ctx, parent, m)
		printValidationReport(report)
		if !report.CanProceed() {
			return fmt.Errorf("parent record validation failed: %s", report.ParentReason)
		}

		// 3. The human gate between validation and execution.
		if !yes && !confirm(fmt.Sprintf("\nReorder %d record(s) under %s?", m.Len(), parent)) {
			fmt.Println("Operation cancelled.")
			return nil
		}

		strategy, err := resolveStrategy(cmd)
		if err != nil {
			return err
		}

		// 4. Execute and report.
		fmt.Println("\nExecuting reorder operation...")
		started := time.Now().UTC()
		result := wire.ReorderService().Execute(ctx, parent, m, strategy, position)
		finished := time.Now().UTC()

		printExecutionFailures(result)
		summary := app.Summarize(result)
		printSummary(summary)

		if err := wire.HistoryService().RecordRun(ctx, &models.Run{
			ParentType:  parent.RecordType,
			ParentID:    parent.ID,
			Strategy:    string(strategy),
			RecordCount: m.Len(),
			Succeeded:   result.Succeeded,
			Failed:      result.Failed,
			StartedAt:   started.Format(time.RFC3339),
			FinishedAt:  finished.Format(time.RFC3339),
		}); err != nil {
			fmt.Printf("%s %v\n", warnMark, err)
		}

		if result.BulkErr != "" {
			return fmt.Errorf("bulk move failed: %s", result.BulkErr)
		}
		return nil
	},
}

// resolveParent takes the parent from flags when both are set, otherwise
// prompts for it.
func resolveParent(cmd *cobra.Command) (models.ParentRef, error) {
	parentType, _ := cmd.Flags().GetString("parent-type")
	parentID, _ := cmd.Flags().GetInt("parent-id")

	if parentType == "" && parentID == 0 {
		return promptParentRef()
	}

	parentType = strings.ToLower(parentType)
	if !models.ValidParentType(parentType) {
		return models.ParentRef{}, fmt.Errorf("invalid parent type %q (want archival_objects or resources)", parentType)
	}
	if parentID <= 0 {
		return models.ParentRef{}, fmt.Errorf("invalid parent id %d", parentID)
	}
	return models.ParentRef{RecordType: parentType, ID: parentID}, nil
}

// resolveStrategy takes the strategy from the flag when set, otherwise
// prompts for it.
func resolveStrategy(cmd *cobra.Command) (models.Strategy, error) {
	raw, _ := cmd.Flags().GetString("strategy")
	if raw == "" {
		return promptStrategy()
	}
	raw = strings.ToLower(raw)
	if !models.ValidStrategy(raw) {
		return "", fmt.Errorf("invalid strategy %q (want individual or bulk)", raw)
	}
	return models.Strategy(raw), nil
}

func init() {
	runCmd.Flags().StringP("file", "f", "input/input.xlsx", "Spreadsheet with the desired order")
	runCmd.Flags().String("parent-type", "", "Parent record type (archival_objects or resources)")
	runCmd.Flags().Int("parent-id", 0, "Parent record id")
	runCmd.Flags().StringP("strategy", "s", "", "Reorder strategy (individual or bulk)")
	runCmd.Flags().Int("position", 0, "Bulk insertion position (0 = insert as first children)")
	runCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation gate")
}

// RunCmd returns the run command
func RunCmd() *cobra.Command {
	return runCmd
}
