package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/asreorder/internal/wire"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the pre-flight checks without reordering anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		file, _ := cmd.Flags().GetString("file")

		m, err := wire.IngestService().Ingest(file)
		if err != nil {
			return err
		}
		fmt.Printf("Loaded %d record(s) from %s (id column %q)\n", m.Len(), file, m.IDColumn)

		parent, err := resolveParent(cmd)
		if err != nil {
			return err
		}

		if err := wire.Client().Authenticate(ctx); err != nil {
			return err
		}

		report := wire.ValidationService().Validate(ctx, parent, m)
		printValidationReport(report)
		if !report.CanProceed() {
			return fmt.Errorf("parent record validation failed: %s", report.ParentReason)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringP("file", "f", "input/input.xlsx", "Spreadsheet with the desired order")
	validateCmd.Flags().String("parent-type", "", "Parent record type (archival_objects or resources)")
	validateCmd.Flags().Int("parent-id", 0, "Parent record id")
}

// ValidateCmd returns the validate command
func ValidateCmd() *cobra.Command {
	return validateCmd
}
