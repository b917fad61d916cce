package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/asreorder/internal/models"
	"github.com/example/asreorder/internal/ports/primary"
	"github.com/example/asreorder/internal/ports/secondary"
)

// maxSampledChildren bounds the per-run lookup volume. Sampling, not
// exhaustive checking, is the tradeoff between safety and API call count.
const maxSampledChildren = 10

// ValidationServiceImpl implements the ValidationService interface.
type ValidationServiceImpl struct {
	client secondary.RecordClient
}

// NewValidationService creates a new ValidationService with injected dependencies.
func NewValidationService(client secondary.RecordClient) *ValidationServiceImpl {
	return &ValidationServiceImpl{client: client}
}

// Validate checks the parent and a sample of children. It classifies and
// counts; a failed parent makes CanProceed false, but the service never
// aborts on its own.
func (s *ValidationServiceImpl) Validate(ctx context.Context, parent models.ParentRef, m *models.OrderedManifest) *models.ValidationReport {
	report := &models.ValidationReport{Parent: parent}

	s.validateParent(ctx, parent, report)
	if report.ParentStatus != models.ParentValid {
		// Hard gate: no point sampling children under a bad parent.
		report.Unsampled = m.Len()
		return report
	}

	s.sampleChildren(ctx, parent, m, report)

	if len(m.DuplicateIDs) > 0 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%d duplicate id(s) in spreadsheet: %v", len(m.DuplicateIDs), m.DuplicateIDs))
	}
	if m.SkippedRows > 0 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%d row(s) skipped during ingestion for empty or non-numeric ids", m.SkippedRows))
	}
	if report.Unsampled > 0 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%d record(s) beyond the sample were not validated", report.Unsampled))
	}

	return report
}

func (s *ValidationServiceImpl) validateParent(ctx context.Context, parent models.ParentRef, report *models.ValidationReport) {
	rec, err := s.client.Lookup(ctx, parent.RecordType, parent.ID)
	switch {
	case err == nil && rec.Suppressed:
		report.ParentStatus = models.ParentInaccessible
		report.ParentReason = "record is suppressed"
	case err == nil:
		report.ParentStatus = models.ParentValid
		report.ParentTitle = rec.Title
		report.ResourceID = resolveResourceID(parent, rec)
	case secondary.IsNotFound(err):
		report.ParentStatus = models.ParentNotFound
		report.ParentReason = err.Error()
	case secondary.IsAccessDenied(err):
		report.ParentStatus = models.ParentInaccessible
		report.ParentReason = err.Error()
	default:
		report.ParentStatus = models.ParentError
		report.ParentReason = err.Error()
	}
}

func (s *ValidationServiceImpl) sampleChildren(ctx context.Context, parent models.ParentRef, m *models.OrderedManifest, report *models.ValidationReport) {
	k := maxSampledChildren
	if m.Len() < k {
		k = m.Len()
	}
	report.Sampled = k
	report.Unsampled = m.Len() - k

	for _, rec := range m.Records[:k] {
		child := rec
		found, err := s.client.Lookup(ctx, models.RecordTypeArchivalObject, child.ID)
		switch {
		case err == nil && found.Suppressed:
			// Same rule as the parent: suppressed means found but unusable.
			child.Status = models.ChildInaccessible
			report.InaccessibleChildren++
		case err == nil:
			child.Status = models.ChildValid
			child.Title = found.Title
			child.OutsideParent = !hasAncestor(found.AncestorRefs, parent.ID)
			if report.ResourceID > 0 && found.ResourceRef != "" {
				child.ResourceMismatch = refID(found.ResourceRef) != report.ResourceID
			}
			report.ValidChildren++
			if child.OutsideParent {
				report.ReparentingDetected = true
			}
		case secondary.IsNotFound(err):
			child.Status = models.ChildMissing
			report.MissingChildren++
		default:
			child.Status = models.ChildInaccessible
			report.InaccessibleChildren++
		}
		report.Children = append(report.Children, child)
	}
}

// resolveResourceID derives the resource a parent belongs to: the parent's
// own id for resources, otherwise the trailing id of its resource ref.
func resolveResourceID(parent models.ParentRef, rec *models.Record) int {
	if parent.RecordType == models.RecordTypeResource {
		return parent.ID
	}
	return refID(rec.ResourceRef)
}

// refID extracts the trailing numeric id of a record URI like
// "/repositories/2/resources/9290". Returns 0 when there is none.
func refID(ref string) int {
	idx := strings.LastIndex(ref, "/")
	if idx < 0 || idx == len(ref)-1 {
		return 0
	}
	id, err := strconv.Atoi(ref[idx+1:])
	if err != nil {
		return 0
	}
	return id
}

// hasAncestor reports whether any ancestor ref ends in the parent id.
func hasAncestor(refs []string, parentID int) bool {
	suffix := fmt.Sprintf("/%d", parentID)
	for _, ref := range refs {
		if strings.HasSuffix(ref, suffix) {
			return true
		}
	}
	return false
}

// Ensure ValidationServiceImpl implements the interface.
var _ primary.ValidationService = (*ValidationServiceImpl)(nil)
