// Package usecases - audit.go runs the auditor team over the evidence context.
//
// Orchestration here is deliberately thin: a fixed speaking order over a fixed
// team, stopping on the completion marker, a message cap, or the run deadline.
// The analytical work happens inside the hosted model, not in this code.
package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/domain/entities"
	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/domain/ports"
)

// Round-robin termination defaults, matching the audit pipeline configuration.
const (
	DefaultMaxMessages = 16
	DefaultRunTimeout  = 90 * time.Second
)

// ErrNoEvidence is returned when an audit is requested with an empty queue.
var ErrNoEvidence = errors.New("no evidence loaded")

// AuditUseCase drives the two-phase compliance audit:
// phase 1 is the specialist round-robin, phase 2 the Thai translation pass.
type AuditUseCase struct {
	llm         ports.CompletionService
	team        []entities.Agent
	translator  entities.Agent
	marker      string
	maxMessages int
	timeout     time.Duration
	ctxChars    int
}

// NewAuditUseCase creates an AuditUseCase with injected dependencies.
func NewAuditUseCase(
	llm ports.CompletionService,
	team []entities.Agent,
	translator entities.Agent,
	marker string,
	maxMessages int,
	timeout time.Duration,
	contextChars int,
) *AuditUseCase {
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessages
	}
	if timeout <= 0 {
		timeout = DefaultRunTimeout
	}
	if contextChars <= 0 {
		contextChars = DefaultContextChars
	}
	return &AuditUseCase{
		llm:         llm,
		team:        team,
		translator:  translator,
		marker:      marker,
		maxMessages: maxMessages,
		timeout:     timeout,
		ctxChars:    contextChars,
	}
}

// ContextChars returns the overall evidence budget this usecase was built with.
func (uc *AuditUseCase) ContextChars() int {
	return uc.ctxChars
}

// Run executes the audit over the given evidence and returns the transcript.
// A partial transcript is returned alongside any error so callers can print
// whatever the team produced before the failure.
func (uc *AuditUseCase) Run(ctx context.Context, items []entities.EvidenceItem) (*entities.Transcript, error) {
	if len(items) == 0 {
		return nil, ErrNoEvidence
	}

	evidence, titles := BuildContext(items, uc.ctxChars)
	task := buildTask(evidence, titles)

	transcript := &entities.Transcript{}
	runCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.roundRobin(runCtx, task, transcript); err != nil {
		return transcript, err
	}

	// Phase 2: translation runs outside the phase-1 deadline, single turn.
	if err := uc.translate(ctx, transcript); err != nil {
		return transcript, err
	}
	return transcript, nil
}

// roundRobin cycles through the team until the marker, the cap, or the deadline.
func (uc *AuditUseCase) roundRobin(ctx context.Context, task string, transcript *entities.Transcript) error {
	for {
		for _, agent := range uc.team {
			if len(transcript.Messages) >= uc.maxMessages {
				transcript.Stop = entities.StopMaxMessages
				return nil
			}
			if ctx.Err() != nil {
				transcript.Stop = entities.StopTimeout
				return nil
			}

			reply, err := uc.llm.Complete(ctx, agent.SystemPrompt, conversation(task, transcript))
			if err != nil {
				if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
					transcript.Stop = entities.StopTimeout
					return nil
				}
				transcript.Stop = entities.StopError
				return fmt.Errorf("agent %s: %w", agent.Name, err)
			}

			transcript.Append(entities.AgentMessage{
				Source:  agent.Name,
				Content: reply.Text,
				Usage:   reply.Usage,
			})
			if strings.Contains(reply.Text, uc.marker) {
				transcript.Stop = entities.StopMarker
				return nil
			}
		}
	}
}

// translate appends the translator's rendering of the final phase-1 message.
func (uc *AuditUseCase) translate(ctx context.Context, transcript *entities.Transcript) error {
	last := transcript.Last()
	if last == nil {
		return nil
	}
	reply, err := uc.llm.Complete(ctx, uc.translator.SystemPrompt, []ports.ChatTurn{
		{Role: "user", Content: last.Content},
	})
	if err != nil {
		return fmt.Errorf("agent %s: %w", uc.translator.Name, err)
	}
	transcript.Append(entities.AgentMessage{
		Source:  uc.translator.Name,
		Content: reply.Text,
		Usage:   reply.Usage,
	})
	return nil
}

// conversation renders the task plus every prior turn as user messages, each
// attributed to its speaker, so the next agent sees the whole group chat.
func conversation(task string, transcript *entities.Transcript) []ports.ChatTurn {
	turns := make([]ports.ChatTurn, 0, len(transcript.Messages)+1)
	turns = append(turns, ports.ChatTurn{Role: "user", Content: task})
	for _, msg := range transcript.Messages {
		turns = append(turns, ports.ChatTurn{
			Role:    "user",
			Content: fmt.Sprintf("[%s]: %s", msg.Source, msg.Content),
		})
	}
	return turns
}

// buildTask renders the audit instructions plus the evidence block.
func buildTask(evidence string, titles []string) string {
	var sb strings.Builder
	sb.WriteString("IEC 62304 Compliance Audit:\n")
	sb.WriteString("1. Classify software per IEC 62304:4.3 (A/B/C)\n")
	sb.WriteString("2. Verify lifecycle processes (§5.1-5.8)\n")
	sb.WriteString("3. Check SOUP management (§8)\n")
	sb.WriteString("4. Validate risk management per ISO 14971\n")
	sb.WriteString("5. Output ONE JSON per schema\n")
	sb.WriteString("6. End with AUDIT_COMPLETE\n\n")
	sb.WriteString(evidence)
	sb.WriteString("\nFiles: ")
	sb.WriteString(strings.Join(titles, ", "))
	return sb.String()
}
