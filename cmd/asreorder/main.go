package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/asreorder/internal/cli"
	"github.com/example/asreorder/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "asreorder",
		Short:   "Reorder ArchivesSpace archival objects from a spreadsheet",
		Version: version.String(),
		Long: `asreorder rearranges the children of an ArchivesSpace resource or
archival object so they match the row order of a spreadsheet. It validates
the parent and a sample of the listed objects before touching anything, and
keeps an append-only audit of every run.`,
	}

	rootCmd.AddCommand(cli.RunCmd())
	rootCmd.AddCommand(cli.PreviewCmd())
	rootCmd.AddCommand(cli.ValidateCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
