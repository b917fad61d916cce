package app

import (
	"fmt"

	"github.com/example/asreorder/internal/core/manifest"
	"github.com/example/asreorder/internal/models"
	"github.com/example/asreorder/internal/ports/primary"
	"github.com/example/asreorder/internal/ports/secondary"
)

// IngestServiceImpl implements the IngestService interface.
type IngestServiceImpl struct {
	reader secondary.SpreadsheetReader
}

// NewIngestService creates a new IngestService with injected dependencies.
func NewIngestService(reader secondary.SpreadsheetReader) *IngestServiceImpl {
	return &IngestServiceImpl{reader: reader}
}

// Ingest reads the spreadsheet and derives the ordered manifest.
func (s *IngestServiceImpl) Ingest(path string) (*models.OrderedManifest, error) {
	table, err := s.reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet %s: %w", path, err)
	}
	return manifest.Ingest(table)
}

// Preview describes the spreadsheet's structure without processing it.
func (s *IngestServiceImpl) Preview(path string) (*primary.Preview, error) {
	table, err := s.reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet %s: %w", path, err)
	}
	if len(table) == 0 {
		return nil, manifest.ErrMalformedTable
	}

	p := &primary.Preview{
		Path:      path,
		TotalRows: len(table) - 1,
		TotalCols: len(table[0]),
		Headers:   table[0],
	}

	if _, header := manifest.DetectIDColumn(table); header != "" {
		p.IDColumn = header
	}

	m, err := manifest.Ingest(table)
	if err != nil {
		// Preview stays informative even when ingestion would fail.
		return p, nil
	}
	p.UsableRows = m.Len()
	p.SkippedRows = m.SkippedRows
	for _, id := range m.IDs() {
		if len(p.SampleIDs) == 5 {
			break
		}
		p.SampleIDs = append(p.SampleIDs, id)
	}
	return p, nil
}

// Ensure IngestServiceImpl implements the interface.
var _ primary.IngestService = (*IngestServiceImpl)(nil)
