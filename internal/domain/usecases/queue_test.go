package usecases

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func newTestQueue() *QueueUseCase {
	return NewQueueUseCase([]string{".pdf", ".docx", ".xlsx"})
}

func TestQueueUseCase_AddFiltersUnsupported(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "plan.pdf")
	writeTempFile(t, dir, "notes.txt")
	writeTempFile(t, dir, "readme.md")

	q := newTestQueue()
	added := q.Add([]string{filepath.Join(dir, "*")})

	if added != 1 {
		t.Fatalf("expected 1 added, got %d", added)
	}
	if paths := q.List(); len(paths) != 1 || filepath.Base(paths[0]) != "plan.pdf" {
		t.Errorf("unexpected queue: %v", paths)
	}
}

func TestQueueUseCase_DedupePreservesOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeTempFile(t, dir, "a.pdf")
	b := writeTempFile(t, dir, "b.docx")

	q := newTestQueue()
	q.Add([]string{b})
	q.Add([]string{a})
	q.Add([]string{b}) // duplicate
	q.Add([]string{filepath.Join(dir, "*")})

	paths := q.List()
	if len(paths) != 2 {
		t.Fatalf("expected 2 queued, got %d: %v", len(paths), paths)
	}
	if filepath.Base(paths[0]) != "b.docx" || filepath.Base(paths[1]) != "a.pdf" {
		t.Errorf("first-seen order not preserved: %v", paths)
	}
}

func TestQueueUseCase_CaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "REPORT.PDF")

	q := newTestQueue()
	if q.Add([]string{path}) != 1 {
		t.Error("uppercase extension should be accepted")
	}
}

func TestQueueUseCase_SkipsMissingAndDirectories(t *testing.T) {
	dir := t.TempDir()

	q := newTestQueue()
	if q.Add([]string{filepath.Join(dir, "nope.pdf")}) != 0 {
		t.Error("missing file should not be queued")
	}

	sub := filepath.Join(dir, "docs.pdf")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if q.Add([]string{sub}) != 0 {
		t.Error("directory should not be queued")
	}
}

func TestQueueUseCase_Clear(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "a.pdf")

	q := newTestQueue()
	q.Add([]string{filepath.Join(dir, "a.pdf")})
	q.Clear()

	if q.Len() != 0 {
		t.Errorf("expected empty queue after clear, got %d", q.Len())
	}

	// Cleared paths can be queued again.
	if q.Add([]string{filepath.Join(dir, "a.pdf")}) != 1 {
		t.Error("re-adding after clear should work")
	}
}

func TestQueueUseCase_ListReturnsSnapshot(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "a.pdf")

	q := newTestQueue()
	q.Add([]string{filepath.Join(dir, "a.pdf")})

	paths := q.List()
	paths[0] = "mutated"

	if q.List()[0] == "mutated" {
		t.Error("List must return a copy, not internal state")
	}
}
