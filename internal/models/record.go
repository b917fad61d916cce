// Package models contains domain types for the reorder pipeline.
// Persistence lives in internal/adapters/sqlite, transport in
// internal/adapters/aspace.
package models

import "fmt"

// Parent record types accepted by the ArchivesSpace API.
const (
	RecordTypeResource       = "resources"
	RecordTypeArchivalObject = "archival_objects"
)

// ValidParentType reports whether t names a reorderable container type.
func ValidParentType(t string) bool {
	return t == RecordTypeResource || t == RecordTypeArchivalObject
}

// ParentRef identifies the container whose child list is being reordered.
// Immutable once validation starts.
type ParentRef struct {
	RecordType string
	ID         int
}

func (p ParentRef) String() string {
	return fmt.Sprintf("%s %d", p.RecordType, p.ID)
}

// ChildStatus classifies a child record after validation.
type ChildStatus string

const (
	ChildUnchecked    ChildStatus = "unchecked"
	ChildValid        ChildStatus = "valid"
	ChildMissing      ChildStatus = "missing"
	ChildInaccessible ChildStatus = "inaccessible"
)

// ChildRecord is one spreadsheet row mapped onto a real or candidate
// archival object. Created during ingestion, annotated during validation,
// never mutated during execution.
type ChildRecord struct {
	ID     int
	Title  string
	Status ChildStatus

	// OutsideParent is set when the sampled record's ancestors do not
	// include the parent being reordered into (reparenting, not reordering).
	OutsideParent bool

	// ResourceMismatch is set when the sampled record belongs to a
	// different resource than the parent.
	ResourceMismatch bool
}

// Record is the client-side view of an ArchivesSpace record.
type Record struct {
	ID           int
	Title        string
	Suppressed   bool
	ResourceRef  string
	AncestorRefs []string
}
