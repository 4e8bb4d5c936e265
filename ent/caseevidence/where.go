// Code generated by ent, DO NOT EDIT.

package caseevidence

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/casemine/casemine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldLTE(FieldID, id))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldEQ(FieldCaseID, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldEQ(FieldMessageID, v))
}

// MessageTs applies equality check predicate on the "message_ts" field. It's identical to MessageTsEQ.
func MessageTs(v int64) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldEQ(FieldMessageTs, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldEQ(FieldPosition, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldContainsFold(FieldCaseID, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldContainsFold(FieldMessageID, v))
}

// MessageTsEQ applies the EQ predicate on the "message_ts" field.
func MessageTsEQ(v int64) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldEQ(FieldMessageTs, v))
}

// MessageTsNEQ applies the NEQ predicate on the "message_ts" field.
func MessageTsNEQ(v int64) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldNEQ(FieldMessageTs, v))
}

// MessageTsIn applies the In predicate on the "message_ts" field.
func MessageTsIn(vs ...int64) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldIn(FieldMessageTs, vs...))
}

// MessageTsNotIn applies the NotIn predicate on the "message_ts" field.
func MessageTsNotIn(vs ...int64) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldNotIn(FieldMessageTs, vs...))
}

// MessageTsGT applies the GT predicate on the "message_ts" field.
func MessageTsGT(v int64) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldGT(FieldMessageTs, v))
}

// MessageTsGTE applies the GTE predicate on the "message_ts" field.
func MessageTsGTE(v int64) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldGTE(FieldMessageTs, v))
}

// MessageTsLT applies the LT predicate on the "message_ts" field.
func MessageTsLT(v int64) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldLT(FieldMessageTs, v))
}

// MessageTsLTE applies the LTE predicate on the "message_ts" field.
func MessageTsLTE(v int64) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldLTE(FieldMessageTs, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.FieldLTE(FieldPosition, v))
}

// HasSupportCase applies the HasEdge predicate on the "support_case" edge.
func HasSupportCase() predicate.CaseEvidence {
	return predicate.CaseEvidence(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SupportCaseTable, SupportCaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSupportCaseWith applies the HasEdge predicate on the "support_case" edge with a given conditions (other predicates).
func HasSupportCaseWith(preds ...predicate.SupportCase) predicate.CaseEvidence {
	return predicate.CaseEvidence(func(s *sql.Selector) {
		step := newSupportCaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CaseEvidence) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CaseEvidence) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CaseEvidence) predicate.CaseEvidence {
	return predicate.CaseEvidence(sql.NotPredicates(p))
}
