// Package extractor provides per-format evidence extraction adapters.
// Clean Architecture: Adapters implementing ports.EvidenceExtractor.
// Each extractor is best-effort and bounded: a fixed page/sheet/row cap and a
// character budget keep any single document from dominating the audit context.
package extractor

import (
	"regexp"
	"strings"
)

var (
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
	newlineRuns = regexp.MustCompile(`\r?\n+`)
)

// CleanText collapses runs of spaces/tabs to one space and runs of newlines to
// one newline, then trims. Minimizes tokens while preserving meaning.
func CleanText(text string) string {
	text = spaceRuns.ReplaceAllString(text, " ")
	text = newlineRuns.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

// Truncate caps text at maxChars. Non-positive budgets yield the empty string.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	if len(text) <= maxChars {
		return text
	}
	return text[:maxChars]
}
