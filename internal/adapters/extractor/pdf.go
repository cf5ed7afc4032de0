package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor pulls page text from PDF documentation (plans, reports).
type PDFExtractor struct {
	maxPages int
}

// NewPDFExtractor creates a PDF extractor reading at most the first 10 pages.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{maxPages: 10}
}

// Extract returns up to maxChars of normalized page text, each page prefixed
// with its number so findings can cite it.
func (e *PDFExtractor) Extract(ctx context.Context, path string, maxChars int) (text string, err error) {
	// The pdf library panics on malformed xref tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parsing pdf: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	pages := reader.NumPage()
	if pages > e.maxPages {
		pages = e.maxPages
	}

	var parts []string
	total := 0
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue // skip unreadable pages, keep the rest
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		part := fmt.Sprintf("[p%d] %s", i, pageText)
		parts = append(parts, part)
		total += len(part)
		if total > maxChars {
			break
		}
	}

	return Truncate(CleanText(strings.Join(parts, "\n")), maxChars), nil
}

// Kind returns the format tag.
func (e *PDFExtractor) Kind() string {
	return "pdf"
}

// Extensions returns the file extensions this extractor handles.
func (e *PDFExtractor) Extensions() []string {
	return []string{".pdf"}
}
