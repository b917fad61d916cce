package primary

import (
	"context"

	"github.com/example/asreorder/internal/models"
)

// ReorderService executes a validated manifest against the parent.
type ReorderService interface {
	// Execute issues the position updates using the chosen strategy.
	// position is the bulk insertion position and is ignored for the
	// individual strategy. Per-call failures never abort the individual
	// loop; a bulk failure fails the whole operation.
	Execute(ctx context.Context, parent models.ParentRef, m *models.OrderedManifest, strategy models.Strategy, position int) *models.ExecutionResult
}

// HistoryService records executed runs in the append-only audit store and
// reads them back.
type HistoryService interface {
	// RecordRun appends a finished run. Audit failures never undo an
	// execution; the caller reports them and moves on.
	RecordRun(ctx context.Context, run *models.Run) error

	ListRuns(ctx context.Context, limit int) ([]*models.Run, error)
}
