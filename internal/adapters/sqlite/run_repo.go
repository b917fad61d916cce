// Package sqlite contains the SQLite implementation of the run-audit
// repository.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/asreorder/internal/models"
	"github.com/example/asreorder/internal/ports/secondary"
)

// RunRepository implements secondary.RunRepository with SQLite.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new SQLite run repository.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Record appends one finished run.
func (r *RunRepository) Record(ctx context.Context, run *models.Run) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO runs (parent_type, parent_id, strategy, record_count, succeeded, failed, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ParentType, run.ParentID, run.Strategy, run.RecordCount,
		run.Succeeded, run.Failed, run.StartedAt, run.FinishedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}
	return id, nil
}

// List returns past runs, newest first, up to limit.
func (r *RunRepository) List(ctx context.Context, limit int) ([]*models.Run, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, parent_type, parent_id, strategy, record_count, succeeded, failed, started_at, finished_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.Run
	for rows.Next() {
		run := &models.Run{}
		if err := rows.Scan(&run.ID, &run.ParentType, &run.ParentID, &run.Strategy,
			&run.RecordCount, &run.Succeeded, &run.Failed, &run.StartedAt, &run.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Ensure RunRepository implements the interface.
var _ secondary.RunRepository = (*RunRepository)(nil)
