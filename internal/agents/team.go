// Package agents defines the fixed IEC 62304 auditor team: role names, system
// prompts, and the shared report schema. This is configuration, not orchestration;
// the audit usecase decides turn order and termination.
package agents

import (
	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/domain/entities"
)

// CompletionMarker is the text an agent emits to signal the audit is done.
const CompletionMarker = "AUDIT_COMPLETE"

// Role prompts aligned to IEC 62304 audit responsibilities.
const (
	leadPrompt = "Lead IEC 62304 Auditor: Ensure lifecycle coverage, set Safety Class, " +
		"compile ONE JSON per schema, end with " + CompletionMarker + ". Schema: " + auditSchema

	classifierPrompt = "Safety Classification Auditor: Determine A/B/C per IEC 62304:4.3 " +
		"(A=no injury/damage, B=non-serious injury, C=death/serious injury). " +
		"List missing hazard analysis if unclear."

	lifecyclePrompt = "Lifecycle Auditor (§5.1-5.7): Verify planning, requirements, architecture, " +
		"detailed design, unit/integration/system testing per Safety Class."

	rcpPrompt = "Risk/Config/Problem Auditor: Verify ISO 14971 integration (§4), " +
		"configuration management (§5.8), problem resolution (§9)."

	soupPrompt = "SOUP Auditor (§8): Check identification, evaluation criteria, " +
		"known anomalies, change monitoring. Flag undeclared dependencies."

	tracePrompt = "Traceability Auditor: Verify bi-directional links per IEC 62304:5.1.1 " +
		"(Requirements↔Design↔Code↔Tests↔Risks), coverage for Class B/C."

	translatorPrompt = "แปลเฉพาะ summary และ nonconformity_register เป็นภาษาไทยแบบเป็นทางการ " +
		"คง JSON structure เดิม"
)

// AuditTeam returns the phase-1 auditors in their round-robin speaking order.
// The lead speaks last each round so it can compile what the specialists found.
func AuditTeam() []entities.Agent {
	return []entities.Agent{
		{Name: "classifier_auditor", SystemPrompt: classifierPrompt},
		{Name: "lifecycle_auditor", SystemPrompt: lifecyclePrompt},
		{Name: "rcp_auditor", SystemPrompt: rcpPrompt},
		{Name: "soup_auditor", SystemPrompt: soupPrompt},
		{Name: "trace_auditor", SystemPrompt: tracePrompt},
		{Name: "lead_auditor", SystemPrompt: leadPrompt},
	}
}

// Translator returns the phase-2 agent that renders the final report's summary
// and nonconformity register in formal Thai for regulatory submission.
func Translator() entities.Agent {
	return entities.Agent{Name: "translator_th", SystemPrompt: translatorPrompt}
}
