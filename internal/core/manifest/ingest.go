package manifest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/asreorder/internal/models"
)

// Ingest turns a rectangular cell table (first row = header) into an
// ordered manifest. Row order after cleanup is the desired final order of
// children, so the validation-row strip happens before order is captured.
func Ingest(table [][]string) (*models.OrderedManifest, error) {
	if len(table) == 0 || len(table[0]) == 0 {
		return nil, fmt.Errorf("%w: table has no header row", ErrMalformedTable)
	}

	col, header := DetectIDColumn(table)
	if col < 0 {
		return nil, fmt.Errorf("%w (headers: %s)", ErrNoIDColumn, strings.Join(table[0], ", "))
	}

	rows := table[1:]
	rows = stripValidationRow(rows, col)

	m := &models.OrderedManifest{IDColumn: header}
	seen := make(map[int]bool)
	dup := make(map[int]bool)

	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		cell := ""
		if col < len(row) {
			cell = strings.TrimSpace(row[col])
		}
		id, err := parsePositiveInt(cell)
		if err != nil {
			m.SkippedRows++
			continue
		}
		if seen[id] && !dup[id] {
			dup[id] = true
			m.DuplicateIDs = append(m.DuplicateIDs, id)
		}
		seen[id] = true
		m.Records = append(m.Records, models.ChildRecord{ID: id, Status: models.ChildUnchecked})
	}

	if len(m.Records) == 0 {
		return nil, fmt.Errorf("%w (column %q, %d rows skipped)", ErrEmptyManifest, header, m.SkippedRows)
	}
	return m, nil
}

// stripValidationRow removes the spreadsheet's data-validation row: the
// first data row, when its ID cell is absent or does not parse as a
// positive integer (typically it repeats a header-like token such as
// "id"). Exactly one row is ever removed.
func stripValidationRow(rows [][]string, col int) [][]string {
	if len(rows) == 0 {
		return rows
	}
	first := rows[0]
	cell := ""
	if col < len(first) {
		cell = strings.TrimSpace(first[col])
	}
	if _, err := parsePositiveInt(cell); err != nil {
		return rows[1:]
	}
	return rows
}

// parsePositiveInt parses a cell as a positive integer id. Numeric cells
// exported from spreadsheets may carry a float rendering ("101.0").
func parsePositiveInt(cell string) (int, error) {
	if cell == "" {
		return 0, fmt.Errorf("empty cell")
	}
	cell = strings.TrimSuffix(cell, ".0")
	id, err := strconv.Atoi(cell)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}
	return id, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
