package models

// CaseDetail is the web-viewer representation of a support case.
type CaseDetail struct {
	CaseID          string           `json:"case_id"`
	ProblemTitle    string           `json:"problem_title"`
	ProblemSummary  string           `json:"problem_summary"`
	SolutionSummary string           `json:"solution_summary"`
	Status          string           `json:"status"`
	CreatedAt       int64            `json:"created_at"` // milliseconds
	ClosedEmoji     string           `json:"closed_emoji,omitempty"`
	Tags            []string         `json:"tags"`
	Evidence        []EvidenceDetail `json:"evidence"`
}

// EvidenceDetail is one evidence message in a CaseDetail.
type EvidenceDetail struct {
	MessageID   string   `json:"message_id"`
	TS          int64    `json:"ts"`
	SenderHash  string   `json:"sender_hash"`
	SenderName  string   `json:"sender_name,omitempty"`
	ContentText string   `json:"content_text"`
	Images      []string `json:"images"`
}

// CaseFields are the structured fields of a new or merged case.
type CaseFields struct {
	ProblemTitle    string
	ProblemSummary  string
	SolutionSummary string
	Tags            []string
}

// EvidenceRef links a case to one source message.
type EvidenceRef struct {
	MessageID string
	TS        int64 // milliseconds
}
