package manifest

import "errors"

// Ingestion errors are fatal to the run and surface before any network
// call is made.
var (
	// ErrNoIDColumn means none of the detection tiers found an ID column.
	ErrNoIDColumn = errors.New("no ID column found")

	// ErrEmptyManifest means no usable data rows remained after cleanup
	// and skip-filtering.
	ErrEmptyManifest = errors.New("no usable rows in spreadsheet")

	// ErrMalformedTable means the input is not a rectangular table with a
	// header row.
	ErrMalformedTable = errors.New("malformed table")
)
