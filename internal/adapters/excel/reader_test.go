package excel

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "input.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadReturnsCellMatrix(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Id", "Title"},
		{101, "A"},
		{102, "B"},
	})

	table, err := NewReader().Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("rows = %d, want 3", len(table))
	}
	if table[0][0] != "Id" || table[1][0] != "101" || table[2][1] != "B" {
		t.Errorf("table = %v", table)
	}
}

func TestReadPadsShortRows(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Id", "Title", "Notes"},
		{101}, // row shorter than header
	})

	table, err := NewReader().Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(table[1]) != 3 {
		t.Errorf("row width = %d, want 3", len(table[1]))
	}
	if table[1][1] != "" || table[1][2] != "" {
		t.Errorf("padded cells = %q, %q", table[1][1], table[1][2])
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := NewReader().Read("does-not-exist.xlsx"); err == nil {
		t.Fatal("expected error")
	}
}
