// Code generated by ent, DO NOT EDIT.

package caseevidence

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the caseevidence type in the database.
	Label = "case_evidence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldMessageTs holds the string denoting the message_ts field in the database.
	FieldMessageTs = "message_ts"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// EdgeSupportCase holds the string denoting the support_case edge name in mutations.
	EdgeSupportCase = "support_case"
	// SupportCaseFieldID holds the string denoting the ID field of the SupportCase.
	SupportCaseFieldID = "case_id"
	// Table holds the table name of the caseevidence in the database.
	Table = "case_evidences"
	// SupportCaseTable is the table that holds the support_case relation/edge.
	SupportCaseTable = "case_evidences"
	// SupportCaseInverseTable is the table name for the SupportCase entity.
	// It exists in this package in order to avoid circular dependency with the "supportcase" package.
	SupportCaseInverseTable = "support_cases"
	// SupportCaseColumn is the table column denoting the support_case relation/edge.
	SupportCaseColumn = "case_id"
)

// Columns holds all SQL columns for caseevidence fields.
var Columns = []string{
	FieldID,
	FieldCaseID,
	FieldMessageID,
	FieldMessageTs,
	FieldPosition,
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

// OrderOption defines the ordering options for the CaseEvidence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByMessageTs orders the results by the message_ts field.
func ByMessageTs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageTs, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// BySupportCaseField orders the results by support_case field.
func BySupportCaseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSupportCaseStep(), sql.OrderByField(field, opts...))
	}
}
func newSupportCaseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SupportCaseInverseTable, SupportCaseFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SupportCaseTable, SupportCaseColumn),
	)
}
