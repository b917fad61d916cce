package app

import (
	"context"
	"fmt"

	"github.com/example/asreorder/internal/models"
	"github.com/example/asreorder/internal/ports/primary"
	"github.com/example/asreorder/internal/ports/secondary"
)

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	runs secondary.RunRepository
}

// NewHistoryService creates a new HistoryService with injected dependencies.
func NewHistoryService(runs secondary.RunRepository) *HistoryServiceImpl {
	return &HistoryServiceImpl{runs: runs}
}

// RecordRun appends one finished run to the audit store.
func (s *HistoryServiceImpl) RecordRun(ctx context.Context, run *models.Run) error {
	if _, err := s.runs.Record(ctx, run); err != nil {
		return fmt.Errorf("audit store: %w", err)
	}
	return nil
}

// ListRuns returns past runs, newest first.
func (s *HistoryServiceImpl) ListRuns(ctx context.Context, limit int) ([]*models.Run, error) {
	runs, err := s.runs.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("audit store: %w", err)
	}
	return runs, nil
}

// Ensure HistoryServiceImpl implements the interface.
var _ primary.HistoryService = (*HistoryServiceImpl)(nil)
