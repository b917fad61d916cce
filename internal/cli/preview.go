package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/asreorder/internal/wire"
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Preview a spreadsheet's structure without processing it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := "input/input.xlsx"
		if len(args) == 1 {
			file = args[0]
		}

		p, err := wire.IngestService().Preview(file)
		if err != nil {
			return err
		}

		fmt.Printf("File: %s\n", p.Path)
		fmt.Printf("Data rows: %d  Columns: %d\n", p.TotalRows, p.TotalCols)
		fmt.Printf("Headers: %s\n", strings.Join(p.Headers, ", "))
		if p.IDColumn == "" {
			fmt.Printf("%s No ID column detected\n", failMark)
			return nil
		}
		fmt.Printf("%s ID column: %q\n", okMark, p.IDColumn)
		fmt.Printf("Usable rows after cleanup: %d", p.UsableRows)
		if p.SkippedRows > 0 {
			fmt.Printf(" (%d skipped)", p.SkippedRows)
		}
		fmt.Println()
		if len(p.SampleIDs) > 0 {
			fmt.Printf("First ids: %v\n", p.SampleIDs)
		}
		return nil
	},
}

// PreviewCmd returns the preview command
func PreviewCmd() *cobra.Command {
	return previewCmd
}
