package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// reopen saves and closes f, then opens the saved copy so that tests read
// what a real workbook on disk contains. The copy is closed on cleanup.
func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Failed to close test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func setLink(t *testing.T, f *excelize.File, sheet, cell, text, url string) {
	t.Helper()
	if err := f.SetCellValue(sheet, cell, text); err != nil {
		t.Fatalf("SetCellValue(%s) failed: %v", cell, err)
	}
	if err := f.SetCellHyperLink(sheet, cell, url, "External"); err != nil {
		t.Fatalf("SetCellHyperLink(%s) failed: %v", cell, err)
	}
}
