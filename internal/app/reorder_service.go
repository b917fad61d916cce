package app

import (
	"context"

	"github.com/example/asreorder/internal/core/reorder"
	"github.com/example/asreorder/internal/models"
	"github.com/example/asreorder/internal/ports/primary"
	"github.com/example/asreorder/internal/ports/secondary"
)

// ReorderServiceImpl implements the ReorderService interface.
type ReorderServiceImpl struct {
	client secondary.RecordClient
}

// NewReorderService creates a new ReorderService with injected dependencies.
func NewReorderService(client secondary.RecordClient) *ReorderServiceImpl {
	return &ReorderServiceImpl{client: client}
}

// Execute issues the position updates for the manifest. Calls are strictly
// sequential in manifest order; the call sequence is part of the contract.
// There are no retries and no rollback.
func (s *ReorderServiceImpl) Execute(ctx context.Context, parent models.ParentRef, m *models.OrderedManifest, strategy models.Strategy, position int) *models.ExecutionResult {
	result := &models.ExecutionResult{
		Parent:   parent,
		Strategy: strategy,
		Position: position,
	}

	switch strategy {
	case models.StrategyBulk:
		s.executeBulk(ctx, parent, reorder.PlanBulk(m, position), result)
	default:
		s.executeIndividual(ctx, parent, reorder.PlanIndividual(m), result)
	}

	return result
}

// executeIndividual issues one position-set call per record. A failed call
// is recorded and the loop continues: partial completion is still useful,
// and the spreadsheet order stays recoverable for the remaining items.
func (s *ReorderServiceImpl) executeIndividual(ctx context.Context, parent models.ParentRef, plan reorder.IndividualPlan, result *models.ExecutionResult) {
	for _, move := range plan.Moves {
		outcome := models.MoveOutcome{ID: move.ID, Position: move.Position}
		err := s.client.SetPosition(ctx, parent.RecordType, parent.ID, move.ID, move.Position)
		if err != nil {
			outcome.Err = err.Error()
			result.Failed++
		} else {
			result.Succeeded++
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}
}

// executeBulk issues exactly one call carrying every id in manifest order.
// A failure fails the whole operation; there is no partial outcome.
func (s *ReorderServiceImpl) executeBulk(ctx context.Context, parent models.ParentRef, plan reorder.BulkPlan, result *models.ExecutionResult) {
	if err := s.client.BulkInsert(ctx, parent.RecordType, parent.ID, plan.IDs, plan.Position); err != nil {
		result.BulkErr = err.Error()
		result.Failed = len(plan.IDs)
		return
	}
	result.Succeeded = len(plan.IDs)
}

// Ensure ReorderServiceImpl implements the interface.
var _ primary.ReorderService = (*ReorderServiceImpl)(nil)
