// Code generated by ent, DO NOT EDIT.

package supportcase

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the supportcase type in the database.
	Label = "support_case"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "case_id"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProblemTitle holds the string denoting the problem_title field in the database.
	FieldProblemTitle = "problem_title"
	// FieldProblemSummary holds the string denoting the problem_summary field in the database.
	FieldProblemSummary = "problem_summary"
	// FieldSolutionSummary holds the string denoting the solution_summary field in the database.
	FieldSolutionSummary = "solution_summary"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldDedupEmbedding holds the string denoting the dedup_embedding field in the database.
	FieldDedupEmbedding = "dedup_embedding"
	// FieldInIndex holds the string denoting the in_index field in the database.
	FieldInIndex = "in_index"
	// FieldClosedEmoji holds the string denoting the closed_emoji field in the database.
	FieldClosedEmoji = "closed_emoji"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeEvidence holds the string denoting the evidence edge name in mutations.
	EdgeEvidence = "evidence"
	// CaseEvidenceFieldID holds the string denoting the ID field of the CaseEvidence.
	CaseEvidenceFieldID = "id"
	// Table holds the table name of the supportcase in the database.
	Table = "support_cases"
	// EvidenceTable is the table that holds the evidence relation/edge.
	EvidenceTable = "case_evidences"
	// EvidenceInverseTable is the table name for the CaseEvidence entity.
	// It exists in this package in order to avoid circular dependency with the "caseevidence" package.
	EvidenceInverseTable = "case_evidences"
	// EvidenceColumn is the table column denoting the evidence relation/edge.
	EvidenceColumn = "case_id"
)

// Columns holds all SQL columns for supportcase fields.
var Columns = []string{
	FieldID,
	FieldGroupID,
	FieldStatus,
	FieldProblemTitle,
	FieldProblemSummary,
	FieldSolutionSummary,
	FieldTags,
	FieldDedupEmbedding,
	FieldInIndex,
	FieldClosedEmoji,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSolutionSummary holds the default value on creation for the "solution_summary" field.
	DefaultSolutionSummary string
	// DefaultInIndex holds the default value on creation for the "in_index" field.
	DefaultInIndex bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusOpen is the default value of the Status enum.
const DefaultStatus = StatusOpen

// Status values.
const (
	StatusOpen     Status = "open"
	StatusSolved   Status = "solved"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOpen, StatusSolved, StatusArchived:
		return nil
	default:
		return fmt.Errorf("supportcase: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SupportCase queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProblemTitle orders the results by the problem_title field.
func ByProblemTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemTitle, opts...).ToFunc()
}

// ByProblemSummary orders the results by the problem_summary field.
func ByProblemSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemSummary, opts...).ToFunc()
}

// BySolutionSummary orders the results by the solution_summary field.
func BySolutionSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolutionSummary, opts...).ToFunc()
}

// ByInIndex orders the results by the in_index field.
func ByInIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInIndex, opts...).ToFunc()
}

// ByClosedEmoji orders the results by the closed_emoji field.
func ByClosedEmoji(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClosedEmoji, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEvidenceCount orders the results by evidence count.
func ByEvidenceCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEvidenceStep(), opts...)
	}
}

// ByEvidence orders the results by evidence terms.
func ByEvidence(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvidenceStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEvidenceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvidenceInverseTable, CaseEvidenceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EvidenceTable, EvidenceColumn),
	)
}
