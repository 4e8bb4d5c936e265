package llm

import (
	"errors"
	"strings"
)

// extractJSON strips markdown code fences and leading prose so that a
// response of the form "Here you go:\n```json\n{...}\n```" still decodes.
// It returns the substring from the first '{' or '[' to the matching end
// of the text; the decoder reports the actual syntax errors.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		// drop an optional language tag on the fence line
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			first := strings.TrimSpace(s[:nl])
			if first == "json" || first == "" {
				s = s[nl+1:]
			}
		}
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
		s = strings.TrimSpace(s)
	}

	obj := strings.IndexByte(s, '{')
	arr := strings.IndexByte(s, '[')
	start := obj
	if start < 0 || (arr >= 0 && arr < start) {
		start = arr
	}
	if start > 0 {
		s = s[start:]
	}

	if end := strings.LastIndexAny(s, "}]"); end >= 0 {
		s = s[:end+1]
	}
	return s
}

// ValidateGateResult enforces the gate contract: the tag must be known,
// and consider may be true only for question-like tags.
func ValidateGateResult(r *GateResult) error {
	switch r.Tag {
	case TagNewQuestion, TagOngoingDiscussion, TagStatement, TagNoise:
	default:
		return errors.New("unknown gate tag: " + string(r.Tag))
	}
	if r.Tag != TagNewQuestion && r.Tag != TagOngoingDiscussion {
		r.Consider = false
	}
	return nil
}

// ValidateStructuredCase enforces the structuring contract. A kept case
// needs a title and problem summary; a solved verdict without a concrete
// solution is demoted to open rather than rejected.
func ValidateStructuredCase(sc *StructuredCase) error {
	if !sc.Keep {
		return nil
	}
	switch sc.Status {
	case "open", "solved":
	default:
		return errors.New("unknown case status: " + sc.Status)
	}
	sc.ProblemTitle = strings.TrimSpace(sc.ProblemTitle)
	sc.ProblemSummary = strings.TrimSpace(sc.ProblemSummary)
	sc.SolutionSummary = strings.TrimSpace(sc.SolutionSummary)
	if sc.ProblemTitle == "" || sc.ProblemSummary == "" {
		return errors.New("kept case is missing title or problem summary")
	}
	if sc.Status == "solved" && sc.SolutionSummary == "" {
		sc.Status = "open"
	}
	return nil
}

// NormalizeResolution treats resolved-without-solution as not resolved.
func NormalizeResolution(r *ResolutionResult) {
	r.SolutionSummary = strings.TrimSpace(r.SolutionSummary)
	if r.Resolved && r.SolutionSummary == "" {
		r.Resolved = false
	}
}
