package diffx

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExcelReport(t *testing.T) {
	results := []FileComparison{
		{
			Path:  "conf/app.conf",
			Class: ClassDiffed,
			Lines: []AlignedLine{
				{Old: "timeout=30", New: "timeout=30", Status: LineUnchanged},
				{Old: "debug=false", New: "debug=true", Status: LineModified},
			},
		},
		{Path: "legacy.txt", Class: ClassOldOnly},
		{Path: "data.bin", Class: ClassIgnored},
		{Path: "broken.txt", Class: ClassUnreadable},
	}

	cellValue := func(t *testing.T, report []byte, cell string) string {
		t.Helper()
		f, err := excelize.OpenReader(bytes.NewReader(report))
		if err != nil {
			t.Fatalf("Failed to reopen report: %v", err)
		}
		defer f.Close()

		value, err := f.GetCellValue("Sheet1", cell)
		if err != nil {
			t.Fatalf("Failed to read cell %s: %v", cell, err)
		}
		return value
	}

	t.Run("OnlyDifferencesByDefault", func(t *testing.T) {
		report, err := ExcelReport(results, WithLabels("v1", "v2"))
		if err != nil {
			t.Fatalf("Failed to generate report: %v", err)
		}

		if got := cellValue(t, report, "A3"); got != "File" {
			t.Errorf("Header cell mismatch: %q", got)
		}
		if got := cellValue(t, report, "B3"); got != "v1" {
			t.Errorf("Old label mismatch: %q", got)
		}

		// First data row is the modified line; the unchanged one is
		// filtered out
		if got := cellValue(t, report, "A4"); got != "app.conf" {
			t.Errorf("File column should hold the base name: %q", got)
		}
		if got := cellValue(t, report, "B4"); got != "debug=false" {
			t.Errorf("Old line mismatch: %q", got)
		}
		if got := cellValue(t, report, "C4"); got != "debug=true" {
			t.Errorf("New line mismatch: %q", got)
		}
		if got := cellValue(t, report, "D4"); got != "Modified" {
			t.Errorf("Status mismatch: %q", got)
		}

		// Next row is the one-sided file; ignored and unreadable
		// records are left out entirely
		if got := cellValue(t, report, "D5"); got != string(OutcomeOnlyInOld) {
			t.Errorf("One-sided status mismatch: %q", got)
		}
		if got := cellValue(t, report, "A6"); got != "" {
			t.Errorf("Ignored and unreadable records should not be exported: %q", got)
		}
	})

	t.Run("AllLines", func(t *testing.T) {
		report, err := ExcelReport(results, WithAllLines())
		if err != nil {
			t.Fatalf("Failed to generate report: %v", err)
		}

		if got := cellValue(t, report, "D4"); got != "Unchanged" {
			t.Errorf("Unchanged line should be included: %q", got)
		}
		if got := cellValue(t, report, "D5"); got != "Modified" {
			t.Errorf("Modified line should follow: %q", got)
		}
	})

	t.Run("DefaultLabels", func(t *testing.T) {
		report, err := ExcelReport(nil)
		if err != nil {
			t.Fatalf("Failed to generate report: %v", err)
		}

		if got := cellValue(t, report, "B3"); got != "Old Line" {
			t.Errorf("Default old header mismatch: %q", got)
		}
		if got := cellValue(t, report, "C3"); got != "New Line" {
			t.Errorf("Default new header mismatch: %q", got)
		}
	})
}
