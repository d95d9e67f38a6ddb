package diffx

import (
	"fmt"
	"path"

	"github.com/xuri/excelize/v2"
)

// ReportOption represents optional parameters for report generation
type ReportOption func(*reportOptions)

type reportOptions struct {
	oldLabel        string
	newLabel        string
	onlyDifferences bool
}

// defaultReportOptions returns default report options
func defaultReportOptions() *reportOptions {
	return &reportOptions{
		onlyDifferences: true,
	}
}

// WithLabels sets the version labels shown in the title and headers
func WithLabels(oldLabel, newLabel string) ReportOption {
	return func(opts *reportOptions) {
		opts.oldLabel = oldLabel
		opts.newLabel = newLabel
	}
}

// WithAllLines includes unchanged lines in the report instead of only
// differences
func WithAllLines() ReportOption {
	return func(opts *reportOptions) {
		opts.onlyDifferences = false
	}
}

var fillColors = map[LineStatus]string{
	LineAdded:    "C6EFCE",
	LineRemoved:  "FFC7CE",
	LineModified: "FFEB9C",
}

// ExcelReport renders the comparison results into a color-coded
// workbook and returns the serialized file. Unreadable and ignored
// records are left out; one-sided files get a single status row.
func ExcelReport(results []FileComparison, options ...ReportOption) ([]byte, error) {
	opts := defaultReportOptions()
	for _, opt := range options {
		opt(opts)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"

	title := fmt.Sprintf("Version Comparison - Old: %s | New: %s",
		labelOr(opts.oldLabel, "N/A"), labelOr(opts.newLabel, "N/A"))
	_ = f.SetCellValue(sheet, "A1", title)
	_ = f.MergeCell(sheet, "A1", "D1")

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, ErrExcelReport.SetError(err)
	}
	_ = f.SetCellStyle(sheet, "A1", "D1", titleStyle)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, ErrExcelReport.SetError(err)
	}
	_ = f.SetSheetRow(sheet, "A3", &[]any{
		"File",
		labelOr(opts.oldLabel, "Old Line"),
		labelOr(opts.newLabel, "New Line"),
		"Status",
	})
	_ = f.SetCellStyle(sheet, "A3", "D3", headerStyle)

	fills := make(map[LineStatus]int, len(fillColors))
	for status, color := range fillColors {
		styleID, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return nil, ErrExcelReport.SetError(err)
		}
		fills[status] = styleID
	}

	row := 4
	for _, fc := range results {
		switch fc.Class {
		case ClassUnreadable, ClassIgnored:
			continue
		case ClassDiffed:
			for _, line := range fc.Lines {
				if opts.onlyDifferences && line.Status == LineUnchanged {
					continue
				}
				_ = f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &[]any{
					path.Base(fc.Path), line.Old, line.New, line.Status.Label(),
				})
				if styleID, ok := fills[line.Status]; ok {
					_ = f.SetCellStyle(sheet,
						fmt.Sprintf("B%d", row), fmt.Sprintf("C%d", row), styleID)
				}
				row++
			}
		default:
			_ = f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &[]any{
				path.Base(fc.Path), "", "", string(fc.Outcome()),
			})
			row++
		}
	}

	_ = f.SetColWidth(sheet, "A", "D", 50)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, ErrExcelReport.SetError(err)
	}

	return buf.Bytes(), nil
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
