package models

// OrderedManifest is the desired final order of children: spreadsheet row
// order after the validation-row strip and skip-filtering.
//
// Invariants: at least one entry, all ids positive. Duplicate ids are
// permitted through ingestion (the spreadsheet is the source of truth for
// order) and surface as a soft warning during validation.
type OrderedManifest struct {
	Records []ChildRecord

	// SkippedRows counts data rows dropped for an empty or non-numeric
	// ID cell. Skipped rows are reported, never silently lost.
	SkippedRows int

	// DuplicateIDs lists ids that appear more than once, in first-seen order.
	DuplicateIDs []int

	// IDColumn is the detected header name, kept for display.
	IDColumn string
}

// Len returns the number of records in the manifest.
func (m *OrderedManifest) Len() int {
	return len(m.Records)
}

// IDs returns all record ids in manifest order.
func (m *OrderedManifest) IDs() []int {
	ids := make([]int, len(m.Records))
	for i, r := range m.Records {
		ids[i] = r.ID
	}
	return ids
}
