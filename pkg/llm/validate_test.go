package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONPlain(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON(`{"a":1}`))
	assert.Equal(t, `[1,2]`, extractJSON(`  [1,2]  `))
}

func TestExtractJSONFenced(t *testing.T) {
	raw := "Here is the result:\n```json\n{\"consider\": true, \"tag\": \"new_question\"}\n```\nHope that helps."
	var out GateResult
	require.NoError(t, json.Unmarshal([]byte(extractJSON(raw)), &out))
	assert.True(t, out.Consider)
	assert.Equal(t, TagNewQuestion, out.Tag)
}

func TestExtractJSONFencedNoLanguageTag(t *testing.T) {
	raw := "```\n{\"spans\": []}\n```"
	var out struct {
		Spans []json.RawMessage `json:"spans"`
	}
	require.NoError(t, json.Unmarshal([]byte(extractJSON(raw)), &out))
	assert.Empty(t, out.Spans)
}

func TestExtractJSONLeadingProse(t *testing.T) {
	raw := `Sure! {"resolved": false, "solution_summary": ""} done`
	var out ResolutionResult
	require.NoError(t, json.Unmarshal([]byte(extractJSON(raw)), &out))
	assert.False(t, out.Resolved)
}

func TestValidateGateResult(t *testing.T) {
	r := &GateResult{Consider: true, Tag: TagNewQuestion}
	require.NoError(t, ValidateGateResult(r))
	assert.True(t, r.Consider)

	// consider=true is forced off for non-question tags
	r = &GateResult{Consider: true, Tag: TagNoise}
	require.NoError(t, ValidateGateResult(r))
	assert.False(t, r.Consider)

	r = &GateResult{Consider: true, Tag: TagStatement}
	require.NoError(t, ValidateGateResult(r))
	assert.False(t, r.Consider)

	assert.Error(t, ValidateGateResult(&GateResult{Tag: "banana"}))
}

func TestValidateStructuredCase(t *testing.T) {
	// discarded cases need no fields at all
	require.NoError(t, ValidateStructuredCase(&StructuredCase{Keep: false}))

	sc := &StructuredCase{
		Keep:            true,
		Status:          "solved",
		ProblemTitle:    "  VPN drops  ",
		ProblemSummary:  "connection drops every hour",
		SolutionSummary: "update the client to 2.4",
	}
	require.NoError(t, ValidateStructuredCase(sc))
	assert.Equal(t, "VPN drops", sc.ProblemTitle)
	assert.Equal(t, "solved", sc.Status)

	// solved without a solution is demoted, not rejected
	sc = &StructuredCase{Keep: true, Status: "solved", ProblemTitle: "t", ProblemSummary: "p"}
	require.NoError(t, ValidateStructuredCase(sc))
	assert.Equal(t, "open", sc.Status)

	assert.Error(t, ValidateStructuredCase(&StructuredCase{Keep: true, Status: "closed", ProblemTitle: "t", ProblemSummary: "p"}))
	assert.Error(t, ValidateStructuredCase(&StructuredCase{Keep: true, Status: "open", ProblemSummary: "p"}))
}

func TestNormalizeResolution(t *testing.T) {
	r := &ResolutionResult{Resolved: true, SolutionSummary: "   "}
	NormalizeResolution(r)
	assert.False(t, r.Resolved)

	r = &ResolutionResult{Resolved: true, SolutionSummary: " fix the flag "}
	NormalizeResolution(r)
	assert.True(t, r.Resolved)
	assert.Equal(t, "fix the flag", r.SolutionSummary)
}

func TestParseErrorMatchesSentinel(t *testing.T) {
	var err error = &ParseError{Call: "gate_classify", Raw: "garbage"}
	assert.ErrorIs(t, err, ErrParse)
}
