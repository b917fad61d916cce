package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/asreorder/internal/models"
)

func TestRecordAndListRuns(t *testing.T) {
	repo := &mockRunRepository{}
	svc := NewHistoryService(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := svc.RecordRun(ctx, &models.Run{
			ParentType:  models.RecordTypeResource,
			ParentID:    9290,
			Strategy:    string(models.StrategyIndividual),
			RecordCount: 10 + i,
		})
		if err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}

	runs, err := svc.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(runs))
	}
	// Newest first.
	if runs[0].RecordCount != 12 {
		t.Errorf("first run count = %d, want 12", runs[0].RecordCount)
	}
}

func TestRecordRunWrapsRepositoryError(t *testing.T) {
	repo := &mockRunRepository{recordErr: errors.New("disk full")}
	svc := NewHistoryService(repo)

	if err := svc.RecordRun(context.Background(), &models.Run{}); err == nil {
		t.Fatal("expected error")
	}
}
