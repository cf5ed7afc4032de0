package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXExtractor pulls rows from XLSX test matrices and traceability sheets.
type XLSXExtractor struct {
	maxSheets int
	maxRows   int
}

// NewXLSXExtractor creates an XLSX extractor reading at most the first
// 3 sheets and 20 rows per sheet.
func NewXLSXExtractor() *XLSXExtractor {
	return &XLSXExtractor{maxSheets: 3, maxRows: 20}
}

// Extract returns up to maxChars of normalized sheet text: each sheet block is
// prefixed with its name, rows are comma-joined cells separated by " | ".
func (e *XLSXExtractor) Extract(ctx context.Context, path string, maxChars int) (string, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("opening xlsx: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) > e.maxSheets {
		sheets = sheets[:e.maxSheets]
	}

	var parts []string
	total := 0
	for _, name := range sheets {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		rows, err := wb.GetRows(name)
		if err != nil {
			continue // skip unreadable sheets, keep the rest
		}
		if len(rows) > e.maxRows {
			rows = rows[:e.maxRows]
		}

		var rendered []string
		rowTotal := 0
		for _, row := range rows {
			line := strings.Join(row, ", ")
			rendered = append(rendered, line)
			rowTotal += len(line)
			if rowTotal > maxChars/2 {
				break
			}
		}
		if len(rendered) == 0 {
			continue
		}

		part := fmt.Sprintf("[%s] %s", name, strings.Join(rendered, " | "))
		parts = append(parts, part)
		total += len(part)
		if total > maxChars {
			break
		}
	}

	return Truncate(CleanText(strings.Join(parts, "\n")), maxChars), nil
}

// Kind returns the format tag.
func (e *XLSXExtractor) Kind() string {
	return "xlsx"
}

// Extensions returns the file extensions this extractor handles.
func (e *XLSXExtractor) Extensions() []string {
	return []string{".xlsx"}
}
