// Package usecases contains application business rules.
// Clean Architecture: Usecases orchestrate entities and depend on port interfaces.
// They contain NO framework code, NO external dependencies - just pure business logic.
package usecases

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// QueueUseCase holds the ordered, deduplicated set of files staged for audit.
// Single Responsibility: Only queue bookkeeping; extraction happens elsewhere.
// The queue lives in memory for one session and is never persisted.
type QueueUseCase struct {
	mu        sync.Mutex
	supported map[string]bool
	paths     []string
	queued    map[string]bool
}

// NewQueueUseCase creates a queue that accepts the given file extensions (with dot).
func NewQueueUseCase(supportedExts []string) *QueueUseCase {
	supported := make(map[string]bool, len(supportedExts))
	for _, ext := range supportedExts {
		supported[strings.ToLower(ext)] = true
	}
	return &QueueUseCase{
		supported: supported,
		queued:    make(map[string]bool),
	}
}

// Add expands each glob pattern, keeps existing regular files with supported
// extensions, and appends them preserving first-seen order. Already-queued
// paths are skipped. Returns how many files were newly queued.
func (uc *QueueUseCase) Add(patterns []string) int {
	added := 0
	for _, pat := range patterns {
		for _, path := range expandPattern(pat) {
			if uc.AddPath(path) {
				added++
			}
		}
	}
	return added
}

// AddPath queues a single path if it is a supported, existing regular file
// not already queued. Used by both Add and the directory watcher.
func (uc *QueueUseCase) AddPath(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if !uc.supported[strings.ToLower(filepath.Ext(abs))] {
		return false
	}
	info, err := os.Stat(abs)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.queued[abs] {
		return false
	}
	uc.queued[abs] = true
	uc.paths = append(uc.paths, abs)
	return true
}

// List returns a snapshot of the queue in insertion order.
func (uc *QueueUseCase) List() []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]string, len(uc.paths))
	copy(out, uc.paths)
	return out
}

// Clear empties the queue.
func (uc *QueueUseCase) Clear() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.paths = nil
	uc.queued = make(map[string]bool)
}

// Len returns the number of queued files.
func (uc *QueueUseCase) Len() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return len(uc.paths)
}

// expandPattern resolves one glob pattern (with ~ expansion) to matching paths.
// A pattern with no matches and no glob metacharacters is tried as a literal path.
func expandPattern(pat string) []string {
	if strings.HasPrefix(pat, "~"+string(filepath.Separator)) || pat == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			pat = filepath.Join(home, strings.TrimPrefix(pat, "~"))
		}
	}
	matches, err := filepath.Glob(pat)
	if err != nil || matches == nil {
		// Glob returns nil for no matches; keep the literal so Stat decides.
		return []string{pat}
	}
	return matches
}
