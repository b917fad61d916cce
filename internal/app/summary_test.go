package app

import (
	"strings"
	"testing"

	"github.com/example/asreorder/internal/models"
)

func TestSummarizeCountsAndCapsErrors(t *testing.T) {
	result := &models.ExecutionResult{
		Parent:   testParent,
		Strategy: models.StrategyIndividual,
	}
	for i := 0; i < 8; i++ {
		outcome := models.MoveOutcome{ID: 100 + i, Position: i}
		if i%2 == 0 {
			outcome.Err = "boom"
			result.Failed++
		} else {
			result.Succeeded++
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	summary := Summarize(result)

	if summary.Total != 8 || summary.Succeeded != 4 || summary.Failed != 4 {
		t.Errorf("total/ok/fail = %d/%d/%d", summary.Total, summary.Succeeded, summary.Failed)
	}
	// Only the first few errors are carried; 4 failed < cap of 5.
	if len(summary.FirstErrors) != 4 {
		t.Fatalf("errors = %d, want 4", len(summary.FirstErrors))
	}
	if !strings.Contains(summary.FirstErrors[0], "object 100") {
		t.Errorf("error message must name the offending id: %q", summary.FirstErrors[0])
	}
}

func TestSummarizeCapsAtFiveErrors(t *testing.T) {
	result := &models.ExecutionResult{Strategy: models.StrategyIndividual}
	for i := 0; i < 9; i++ {
		result.Outcomes = append(result.Outcomes, models.MoveOutcome{ID: i, Err: "x"})
		result.Failed++
	}

	summary := Summarize(result)
	if len(summary.FirstErrors) != 5 {
		t.Errorf("errors = %d, want 5", len(summary.FirstErrors))
	}
}

func TestSummarizeBulkFailure(t *testing.T) {
	result := &models.ExecutionResult{
		Strategy: models.StrategyBulk,
		Failed:   42,
		BulkErr:  "server rejected",
	}

	summary := Summarize(result)
	if len(summary.FirstErrors) != 1 || summary.FirstErrors[0] != "server rejected" {
		t.Errorf("FirstErrors = %v", summary.FirstErrors)
	}
	if summary.Total != 42 {
		t.Errorf("Total = %d, want 42", summary.Total)
	}
}
