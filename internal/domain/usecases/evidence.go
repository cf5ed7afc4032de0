// Package usecases - evidence.go turns queued files into budgeted excerpts.
package usecases

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/domain/entities"
	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/domain/ports"
)

// DefaultPerFileChars bounds each file's excerpt.
const DefaultPerFileChars = 1600

// DefaultContextChars bounds the assembled evidence context.
const DefaultContextChars = 10000

// EvidenceUseCase extracts bounded excerpts from queued files.
// A failed extraction becomes an inline placeholder, never an aborted run.
type EvidenceUseCase struct {
	extractors   map[string]ports.EvidenceExtractor // keyed by extension (with dot)
	perFileChars int
}

// NewEvidenceUseCase creates an EvidenceUseCase with injected extractors.
// Dependency Injection: Adapters are passed in, not created here.
func NewEvidenceUseCase(extractors []ports.EvidenceExtractor, perFileChars int) *EvidenceUseCase {
	if perFileChars <= 0 {
		perFileChars = DefaultPerFileChars
	}
	byExt := make(map[string]ports.EvidenceExtractor)
	for _, ex := range extractors {
		for _, ext := range ex.Extensions() {
			byExt[strings.ToLower(ext)] = ex
		}
	}
	return &EvidenceUseCase{extractors: byExt, perFileChars: perFileChars}
}

// SupportedExtensions returns every extension an injected extractor handles.
func (uc *EvidenceUseCase) SupportedExtensions() []string {
	exts := make([]string, 0, len(uc.extractors))
	for ext := range uc.extractors {
		exts = append(exts, ext)
	}
	return exts
}

// Load extracts one EvidenceItem per path. Paths without a matching extractor
// are skipped; extraction errors yield a placeholder excerpt.
func (uc *EvidenceUseCase) Load(ctx context.Context, paths []string) []entities.EvidenceItem {
	items := make([]entities.EvidenceItem, 0, len(paths))
	for _, path := range paths {
		ext := strings.ToLower(filepath.Ext(path))
		extractor, ok := uc.extractors[ext]
		if !ok {
			continue
		}
		excerpt, err := extractor.Extract(ctx, path, uc.perFileChars)
		if err != nil {
			excerpt = fmt.Sprintf("(%s error: %v)", extractor.Kind(), err)
		}
		items = append(items, entities.EvidenceItem{
			Path:    path,
			Kind:    extractor.Kind(),
			Title:   filepath.Base(path),
			Excerpt: excerpt,
		})
	}
	return items
}

// BuildContext concatenates excerpts into a single evidence block that never
// exceeds maxChars. Returns the block and the titles that made it in.
func BuildContext(items []entities.EvidenceItem, maxChars int) (string, []string) {
	if maxChars <= 0 {
		maxChars = DefaultContextChars
	}

	header := "Evidence:"
	var sb strings.Builder
	sb.WriteString(header)

	var titles []string
	remaining := maxChars - len(header)
	for _, it := range items {
		if remaining <= 0 {
			break
		}
		chunk := fmt.Sprintf("\n## %s (%s)\n%s\n", it.Title, it.Kind, it.Excerpt)
		if len(chunk) > remaining {
			chunk = chunk[:remaining]
		}
		sb.WriteString(chunk)
		titles = append(titles, it.Title)
		remaining -= len(chunk)
	}
	return sb.String(), titles
}
