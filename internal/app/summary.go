package app

import (
	"fmt"

	"github.com/example/asreorder/internal/models"
)

// maxSummaryErrors caps how many error messages the summary carries.
const maxSummaryErrors = 5

// Summarize aggregates an execution result into a run summary. Pure: no
// side effects, no I/O, the caller decides how to display or log it.
func Summarize(result *models.ExecutionResult) models.RunSummary {
	summary := models.RunSummary{
		Parent:    result.Parent,
		Strategy:  result.Strategy,
		Total:     result.Succeeded + result.Failed,
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
	}

	if result.BulkErr != "" {
		summary.FirstErrors = append(summary.FirstErrors, result.BulkErr)
		return summary
	}

	for _, outcome := range result.Outcomes {
		if outcome.Err == "" {
			continue
		}
		if len(summary.FirstErrors) == maxSummaryErrors {
			break
		}
		summary.FirstErrors = append(summary.FirstErrors,
			fmt.Sprintf("object %d (position %d): %s", outcome.ID, outcome.Position, outcome.Err))
	}

	return summary
}
