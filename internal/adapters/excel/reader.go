// Package excel loads xlsx files into the rectangular cell matrix the
// ingestion core works on.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/example/asreorder/internal/ports/secondary"
)

// Reader implements secondary.SpreadsheetReader with excelize.
type Reader struct{}

// NewReader creates a new xlsx reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read loads the first sheet of the workbook. Rows are padded to the
// header width so downstream column indexing never runs off a short row.
func (r *Reader) Read(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return rows, nil
	}

	width := len(rows[0])
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}
	return rows, nil
}

// Ensure Reader implements the interface.
var _ secondary.SpreadsheetReader = (*Reader)(nil)
