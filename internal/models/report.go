package models

// ParentStatus classifies the parent record after validation.
type ParentStatus string

const (
	ParentValid        ParentStatus = "valid"
	ParentNotFound     ParentStatus = "not_found"
	ParentInaccessible ParentStatus = "inaccessible"
	ParentError        ParentStatus = "error"
)

// ValidationReport is produced once per run and drives the go/no-go
// decision before execution. It is advisory: the caller gates on it, the
// validator only classifies and counts.
type ValidationReport struct {
	Parent       ParentRef
	ParentStatus ParentStatus
	ParentTitle  string
	ParentReason string

	// ResourceID is the resource the parent belongs to (the parent's own
	// id when the parent is a resource). Zero when it could not be derived.
	ResourceID int

	// Children holds the sampled records with their classifications.
	// Records beyond the sample are not validated; Unsampled says how many.
	Children  []ChildRecord
	Sampled   int
	Unsampled int

	ValidChildren        int
	MissingChildren      int
	InaccessibleChildren int

	// ReparentingDetected is set when any sampled child sits outside the
	// parent today, meaning execution would move it, not just reorder it.
	ReparentingDetected bool

	// Warnings carries soft findings (duplicate ids, skipped rows).
	Warnings []string
}

// CanProceed reports whether execution is safe to offer to the operator.
// A failed parent is a hard gate; child findings are advisory.
func (r *ValidationReport) CanProceed() bool {
	return r.ParentStatus == ParentValid
}

// Strategy selects how the executor issues position updates.
type Strategy string

const (
	StrategyIndividual Strategy = "individual"
	StrategyBulk       Strategy = "bulk"
)

// ValidStrategy reports whether s names a known execution strategy.
func ValidStrategy(s string) bool {
	return Strategy(s) == StrategyIndividual || Strategy(s) == StrategyBulk
}

// MoveOutcome records one position-set call.
type MoveOutcome struct {
	ID       int
	Position int
	Err      string // empty on success
}

// ExecutionResult aggregates per-operation outcomes. Never retried
// automatically.
type ExecutionResult struct {
	Parent    ParentRef
	Strategy  Strategy
	Position  int // bulk insertion position; unused for individual
	Outcomes  []MoveOutcome
	Succeeded int
	Failed    int

	// BulkErr is the single error of a failed bulk call. A bulk failure
	// fails the whole operation; there is no partial outcome.
	BulkErr string
}

// RunSummary is the reporter's pure aggregation of an ExecutionResult.
type RunSummary struct {
	Parent      ParentRef
	Strategy    Strategy
	Total       int
	Succeeded   int
	Failed      int
	FirstErrors []string
}

// Run is one audited execution, as persisted in the run store.
type Run struct {
	ID          int64
	ParentType  string
	ParentID    int
	Strategy    string
	RecordCount int
	Succeeded   int
	Failed      int
	StartedAt   string
	FinishedAt  string
}
