// Package ports defines interfaces for external dependencies.
// Clean Architecture: These are the boundaries - usecases depend on these abstractions,
// not concrete implementations. Adapters implement these interfaces.
// This follows Dependency Inversion Principle (DIP) strictly.
package ports

import (
	"context"

	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/domain/entities"
)

// ChatTurn is one prior message handed to the model.
type ChatTurn struct {
	Role    string // "user" or "assistant"
	Content string
}

// Completion is a single model reply with its token accounting.
type Completion struct {
	Text  string
	Usage entities.TokenUsage
}

// CompletionService produces one model completion per call.
// Single Responsibility: Only chat completion, no orchestration logic.
type CompletionService interface {
	// Complete sends a system prompt plus conversation turns and returns the reply.
	Complete(ctx context.Context, systemPrompt string, turns []ChatTurn) (*Completion, error)
}

// EvidenceExtractor pulls a bounded text excerpt from one document format.
// Interface Segregation: One extractor per format; a registry dispatches by extension.
type EvidenceExtractor interface {
	// Extract reads the file and returns at most maxChars of normalized text.
	Extract(ctx context.Context, path string, maxChars int) (string, error)

	// Kind returns the format tag (e.g. "pdf") used on EvidenceItem.
	Kind() string

	// Extensions returns the file extensions this extractor handles (with dot).
	Extensions() []string
}

// FileWatcher monitors a directory for changes.
type FileWatcher interface {
	// Watch starts monitoring the directory and emits events.
	Watch(ctx context.Context, dir string) (<-chan FileEvent, error)

	// Stop stops the watcher.
	Stop() error
}

// FileEvent represents a file system change.
type FileEvent struct {
	Path      string
	Operation FileOperation
}

// FileOperation is the type of file change.
type FileOperation int

const (
	FileCreated FileOperation = iota
	FileModified
	FileDeleted
)
