// Package primary defines the driving-side ports consumed by the CLI.
package primary

import "github.com/example/asreorder/internal/models"

// IngestService loads a spreadsheet and produces the ordered manifest.
type IngestService interface {
	// Ingest reads the file and derives the manifest. Ingestion errors are
	// classified (no id column, empty manifest, malformed table) and fatal
	// to the run; they surface before any network call.
	Ingest(path string) (*models.OrderedManifest, error)

	// Preview describes the file's structure without deriving a manifest.
	Preview(path string) (*Preview, error)
}

// Preview summarizes a spreadsheet before processing.
type Preview struct {
	Path        string
	TotalRows   int
	TotalCols   int
	Headers     []string
	IDColumn    string // empty when no tier matched
	SampleIDs   []int  // up to 5, post-cleanup order
	UsableRows  int
	SkippedRows int
}
