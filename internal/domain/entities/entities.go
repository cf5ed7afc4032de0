// Package entities contains core business entities.
// These are the enterprise business rules - pure domain objects with no external dependencies.
package entities

// EvidenceItem is one extracted excerpt of regulatory documentation.
// Created once per discovered file at extraction time; immutable thereafter.
type EvidenceItem struct {
	Path    string
	Kind    string // "pdf", "docx", "xlsx"
	Title   string
	Excerpt string
}

// Agent describes one auditor role in the team.
// Clean Architecture: Entity knows nothing about which model backs it.
type Agent struct {
	Name         string
	SystemPrompt string
}

// AgentMessage is one turn in the audit transcript.
type AgentMessage struct {
	Source  string // agent name
	Content string
	Usage   TokenUsage
}

// TokenUsage tracks model token consumption for cost reporting.
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
}

// Add accumulates usage from another call.
func (u *TokenUsage) Add(other TokenUsage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
}

// Total returns combined input and output tokens.
func (u TokenUsage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// Transcript is the ordered record of an audit run.
type Transcript struct {
	Messages []AgentMessage
	Usage    TokenUsage
	Stop     StopCause
}

// Append records a message and folds its usage into the running total.
func (t *Transcript) Append(msg AgentMessage) {
	t.Messages = append(t.Messages, msg)
	t.Usage.Add(msg.Usage)
}

// Last returns the final message, or nil when the transcript is empty.
func (t *Transcript) Last() *AgentMessage {
	if len(t.Messages) == 0 {
		return nil
	}
	return &t.Messages[len(t.Messages)-1]
}

// StopCause says why a round-robin run ended.
type StopCause int

const (
	// StopMarker means an agent emitted the completion marker.
	StopMarker StopCause = iota
	// StopMaxMessages means the message cap was reached.
	StopMaxMessages
	// StopTimeout means the run deadline expired.
	StopTimeout
	// StopError means a model call failed and the run was cut short.
	StopError
)

// String returns a human-readable cause for transcript footers.
func (c StopCause) String() string {
	switch c {
	case StopMarker:
		return "marker"
	case StopMaxMessages:
		return "max-messages"
	case StopTimeout:
		return "timeout"
	case StopError:
		return "error"
	default:
		return "unknown"
	}
}
