// Package manifest contains the pure spreadsheet-ingestion logic:
// ID-column detection, validation-row stripping, and extraction of the
// ordered record manifest. No I/O happens here; callers hand in a cell
// matrix and get a manifest or a classified error back.
package manifest

import "strings"

// idColumnNames are the recognized ID-column headers, compared
// case-insensitively with spaces removed.
var idColumnNames = []string{
	"Id", "ID", "id", "Object ID", "ObjectID", "Archival Object ID",
	"ArchivalObjectID", "Record ID", "RecordID", "Identifier",
	"ASpace ID", "ASpaceID", "Aspace ID", "AspaceID",
}

// partialTokens are the substrings accepted by the second detection tier.
var partialTokens = []string{"id", "identifier", "object"}

// detector evaluates one detection tier against the table and returns the
// matched column index, or -1. Tiers are tried in order; the first match
// wins, so an exact header match always beats the content heuristic.
type detector func(table [][]string) int

var detectors = []detector{
	detectExactHeader,
	detectPartialHeader,
	detectNumericColumn,
}

// DetectIDColumn locates the ID column. Returns the column index and the
// header name, or -1 and "" when no tier matches.
func DetectIDColumn(table [][]string) (int, string) {
	if len(table) == 0 {
		return -1, ""
	}
	for _, detect := range detectors {
		if col := detect(table); col >= 0 {
			return col, table[0][col]
		}
	}
	return -1, ""
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(h), " ", ""))
}

func detectExactHeader(table [][]string) int {
	for i, header := range table[0] {
		for _, name := range idColumnNames {
			if normalizeHeader(header) == normalizeHeader(name) {
				return i
			}
		}
	}
	return -1
}

func detectPartialHeader(table [][]string) int {
	for i, header := range table[0] {
		h := strings.ToLower(header)
		for _, token := range partialTokens {
			if strings.Contains(h, token) {
				return i
			}
		}
	}
	return -1
}

// detectNumericColumn is the content-based fallback: the first column whose
// non-empty data cells are entirely numeric.
func detectNumericColumn(table [][]string) int {
	if len(table) < 2 {
		return -1
	}
	for col := range table[0] {
		numeric := 0
		ok := true
		for _, row := range table[1:] {
			if col >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[col])
			if cell == "" {
				continue
			}
			if _, err := parsePositiveInt(cell); err != nil {
				ok = false
				break
			}
			numeric++
		}
		if ok && numeric > 0 {
			return col
		}
	}
	return -1
}
