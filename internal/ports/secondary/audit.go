package secondary

import (
	"context"

	"github.com/example/asreorder/internal/models"
)

// RunRepository is the append-only audit store for executed runs.
type RunRepository interface {
	// Record appends one finished run and returns its id.
	Record(ctx context.Context, run *models.Run) (int64, error)

	// List returns past runs, newest first, up to limit.
	List(ctx context.Context, limit int) ([]*models.Run, error)
}
