package entities

import "testing"

func TestTokenUsage_AddAndTotal(t *testing.T) {
	var usage TokenUsage
	usage.Add(TokenUsage{InputTokens: 100, OutputTokens: 40})
	usage.Add(TokenUsage{InputTokens: 50, OutputTokens: 10})

	if usage.InputTokens != 150 || usage.OutputTokens != 50 {
		t.Errorf("unexpected usage: %+v", usage)
	}
	if usage.Total() != 200 {
		t.Errorf("expected total 200, got %d", usage.Total())
	}
}

func TestTranscript_AppendFoldsUsage(t *testing.T) {
	var tr Transcript
	tr.Append(AgentMessage{Source: "classifier_auditor", Content: "class B", Usage: TokenUsage{InputTokens: 5, OutputTokens: 2}})
	tr.Append(AgentMessage{Source: "lead_auditor", Content: "report", Usage: TokenUsage{InputTokens: 7, OutputTokens: 3}})

	if len(tr.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(tr.Messages))
	}
	if tr.Usage.InputTokens != 12 || tr.Usage.OutputTokens != 5 {
		t.Errorf("usage not accumulated: %+v", tr.Usage)
	}
}

func TestTranscript_Last(t *testing.T) {
	var tr Transcript
	if tr.Last() != nil {
		t.Error("empty transcript should have no last message")
	}

	tr.Append(AgentMessage{Source: "a", Content: "first"})
	tr.Append(AgentMessage{Source: "b", Content: "second"})

	if last := tr.Last(); last == nil || last.Content != "second" {
		t.Errorf("unexpected last message: %+v", last)
	}
}

func TestStopCause_String(t *testing.T) {
	cases := map[StopCause]string{
		StopMarker:      "marker",
		StopMaxMessages: "max-messages",
		StopTimeout:     "timeout",
		StopError:       "error",
		StopCause(99):   "unknown",
	}
	for cause, want := range cases {
		if got := cause.String(); got != want {
			t.Errorf("StopCause(%d).String() = %q, want %q", cause, got, want)
		}
	}
}
