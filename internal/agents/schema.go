package agents

// auditSchema is the shared report shape every auditor is instructed to fill.
// It maps to IEC 62304:2006+A1:2015 clause references and ISO 14971 risk levels,
// and is embedded verbatim (compact JSON) into the lead auditor's prompt.
const auditSchema = `{"standard":"IEC 62304:2006+A1:2015",` +
	`"software_safety_class":"A|B|C",` +
	`"summary":"<=120 words",` +
	`"overall_risk_statement":"paragraph",` +
	`"findings":[{"clause":"5.x.x",` +
	`"area":"Development planning|Requirements|Architecture|Unit impl|Integration|Verification|Risk mgmt|Config mgmt|Problem resolution|SOUP",` +
	`"requirement":"short",` +
	`"evidence_seen":["..."],` +
	`"status":"CONFORMING|MINOR_NC|MAJOR_NC|OBSERVATION",` +
	`"severity":"LOW|MEDIUM|HIGH",` +
	`"gap":"if any",` +
	`"impact":"safety/quality/regulatory",` +
	`"recommendation":"actionable",` +
	`"priority":"P1|P2|P3",` +
	`"owner":"role/team",` +
	`"due_date":"YYYY-MM-DD"}],` +
	`"nonconformity_register":[{"id":"NC-###",` +
	`"clause":"x.x.x",` +
	`"title":"short",` +
	`"category":"MINOR|MAJOR",` +
	`"root_cause_hypothesis":"",` +
	`"containment":"",` +
	`"correction":"",` +
	`"corrective_action":"",` +
	`"verification_of_effectiveness":"",` +
	`"target_close_date":"YYYY-MM-DD"}],` +
	`"appendix":{"assumptions":["..."],"open_questions":["..."]},` +
	`"signal":"AUDIT_COMPLETE"}`

// Schema returns the compact JSON audit schema.
func Schema() string {
	return auditSchema
}
