// Package reorder contains the pure position-planning logic for both
// execution strategies. Planners take a manifest and produce the calls the
// executor will issue; all I/O stays in the app layer.
package reorder

import "github.com/example/asreorder/internal/models"

// Move is one planned position-set call.
type Move struct {
	ID       int
	Position int
}

// IndividualPlan lists one move per manifest record, in manifest order.
type IndividualPlan struct {
	Moves []Move
}

// BulkPlan carries all ids for the single composite call.
type BulkPlan struct {
	IDs []int

	// Position is where the batch is inserted. 0 means the batch becomes
	// the first children of the parent; it does not preserve existing
	// children before it.
	Position int
}

// PlanIndividual assigns each record its 0-based manifest index as the
// target position. Call order equals manifest order; the server applies
// calls one at a time, so the sequence itself is part of the contract.
func PlanIndividual(m *models.OrderedManifest) IndividualPlan {
	plan := IndividualPlan{Moves: make([]Move, 0, m.Len())}
	for i, rec := range m.Records {
		plan.Moves = append(plan.Moves, Move{ID: rec.ID, Position: i})
	}
	return plan
}

// PlanBulk concatenates all manifest ids, in order, for one call inserted
// at the given position.
func PlanBulk(m *models.OrderedManifest, position int) BulkPlan {
	return BulkPlan{IDs: m.IDs(), Position: position}
}
