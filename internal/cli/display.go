package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/example/asreorder/internal/models"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
	warnMark = color.New(color.FgYellow).Sprint("!")
)

func printValidationReport(report *models.ValidationReport) {
	fmt.Println("\nValidation results")
	fmt.Println("------------------")

	if report.ParentStatus == models.ParentValid {
		fmt.Printf("%s Parent %s: %s\n", okMark, report.Parent, report.ParentTitle)
		if report.ResourceID > 0 && report.Parent.RecordType == models.RecordTypeArchivalObject {
			fmt.Printf("  Resource ID extracted from parent: %d\n", report.ResourceID)
		}
	} else {
		fmt.Printf("%s Parent %s: %s (%s)\n", failMark, report.Parent, report.ParentReason, report.ParentStatus)
		fmt.Println("  Execution must not proceed.")
		return
	}

	fmt.Printf("Sampled %d of %d record(s):\n", report.Sampled, report.Sampled+report.Unsampled)
	for _, child := range report.Children {
		switch child.Status {
		case models.ChildValid:
			title := child.Title
			if title == "" {
				title = "(no title)"
			}
			fmt.Printf("  %s %d: %s\n", okMark, child.ID, title)
			if child.OutsideParent {
				fmt.Printf("    %s not currently under this parent (reordering would reparent it)\n", warnMark)
			}
			if child.ResourceMismatch {
				fmt.Printf("    %s belongs to a different resource\n", warnMark)
			}
		case models.ChildMissing:
			fmt.Printf("  %s %d: missing\n", failMark, child.ID)
		case models.ChildInaccessible:
			fmt.Printf("  %s %d: inaccessible\n", failMark, child.ID)
		}
	}
	fmt.Printf("Valid: %d  Missing: %d  Inaccessible: %d\n",
		report.ValidChildren, report.MissingChildren, report.InaccessibleChildren)

	if report.ReparentingDetected {
		fmt.Printf("%s Reparenting detected: this run will MOVE objects, not just reorder them\n", warnMark)
	}
	for _, w := range report.Warnings {
		fmt.Printf("%s %s\n", warnMark, w)
	}
}

func printExecutionFailures(result *models.ExecutionResult) {
	if result.BulkErr != "" {
		fmt.Printf("%s Bulk move failed: %s\n", failMark, result.BulkErr)
		fmt.Println("  You may want to try the individual move method instead.")
		return
	}
	for _, outcome := range result.Outcomes {
		if outcome.Err != "" {
			fmt.Printf("%s Object %d (position %d): %s\n", failMark, outcome.ID, outcome.Position, outcome.Err)
		}
	}
}

func printSummary(summary models.RunSummary) {
	fmt.Println("\nOperation completed")
	fmt.Printf("  Strategy:  %s\n", summary.Strategy)
	fmt.Printf("  Succeeded: %d\n", summary.Succeeded)
	fmt.Printf("  Failed:    %d\n", summary.Failed)
	if len(summary.FirstErrors) > 0 {
		fmt.Println("  First errors:")
		for _, e := range summary.FirstErrors {
			fmt.Printf("    - %s\n", e)
		}
	}
}
