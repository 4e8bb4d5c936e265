// Code generated by ent, DO NOT EDIT.

package supportcase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/casemine/casemine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldContainsFold(FieldID, id))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldGroupID, v))
}

// ProblemTitle applies equality check predicate on the "problem_title" field. It's identical to ProblemTitleEQ.
func ProblemTitle(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldProblemTitle, v))
}

// ProblemSummary applies equality check predicate on the "problem_summary" field. It's identical to ProblemSummaryEQ.
func ProblemSummary(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldProblemSummary, v))
}

// SolutionSummary applies equality check predicate on the "solution_summary" field. It's identical to SolutionSummaryEQ.
func SolutionSummary(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldSolutionSummary, v))
}

// InIndex applies equality check predicate on the "in_index" field. It's identical to InIndexEQ.
func InIndex(v bool) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldInIndex, v))
}

// ClosedEmoji applies equality check predicate on the "closed_emoji" field. It's identical to ClosedEmojiEQ.
func ClosedEmoji(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldClosedEmoji, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldUpdatedAt, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldContainsFold(FieldGroupID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNotIn(FieldStatus, vs...))
}

// ProblemTitleEQ applies the EQ predicate on the "problem_title" field.
func ProblemTitleEQ(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldProblemTitle, v))
}

// ProblemTitleNEQ applies the NEQ predicate on the "problem_title" field.
func ProblemTitleNEQ(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNEQ(FieldProblemTitle, v))
}

// ProblemTitleIn applies the In predicate on the "problem_title" field.
func ProblemTitleIn(vs ...string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldIn(FieldProblemTitle, vs...))
}

// ProblemTitleNotIn applies the NotIn predicate on the "problem_title" field.
func ProblemTitleNotIn(vs ...string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNotIn(FieldProblemTitle, vs...))
}

// ProblemTitleGT applies the GT predicate on the "problem_title" field.
func ProblemTitleGT(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldGT(FieldProblemTitle, v))
}

// ProblemTitleGTE applies the GTE predicate on the "problem_title" field.
func ProblemTitleGTE(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldGTE(FieldProblemTitle, v))
}

// ProblemTitleLT applies the LT predicate on the "problem_title" field.
func ProblemTitleLT(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldLT(FieldProblemTitle, v))
}

// ProblemTitleLTE applies the LTE predicate on the "problem_title" field.
func ProblemTitleLTE(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldLTE(FieldProblemTitle, v))
}

// ProblemTitleContains applies the Contains predicate on the "problem_title" field.
func ProblemTitleContains(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldContains(FieldProblemTitle, v))
}

// ProblemTitleHasPrefix applies the HasPrefix predicate on the "problem_title" field.
func ProblemTitleHasPrefix(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldHasPrefix(FieldProblemTitle, v))
}

// ProblemTitleHasSuffix applies the HasSuffix predicate on the "problem_title" field.
func ProblemTitleHasSuffix(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldHasSuffix(FieldProblemTitle, v))
}

// ProblemTitleEqualFold applies the EqualFold predicate on the "problem_title" field.
func ProblemTitleEqualFold(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEqualFold(FieldProblemTitle, v))
}

// ProblemTitleContainsFold applies the ContainsFold predicate on the "problem_title" field.
func ProblemTitleContainsFold(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldContainsFold(FieldProblemTitle, v))
}

// ProblemSummaryEQ applies the EQ predicate on the "problem_summary" field.
func ProblemSummaryEQ(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldProblemSummary, v))
}

// ProblemSummaryNEQ applies the NEQ predicate on the "problem_summary" field.
func ProblemSummaryNEQ(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNEQ(FieldProblemSummary, v))
}

// ProblemSummaryIn applies the In predicate on the "problem_summary" field.
func ProblemSummaryIn(vs ...string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldIn(FieldProblemSummary, vs...))
}

// ProblemSummaryNotIn applies the NotIn predicate on the "problem_summary" field.
func ProblemSummaryNotIn(vs ...string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNotIn(FieldProblemSummary, vs...))
}

// ProblemSummaryGT applies the GT predicate on the "problem_summary" field.
func ProblemSummaryGT(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldGT(FieldProblemSummary, v))
}

// ProblemSummaryGTE applies the GTE predicate on the "problem_summary" field.
func ProblemSummaryGTE(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldGTE(FieldProblemSummary, v))
}

// ProblemSummaryLT applies the LT predicate on the "problem_summary" field.
func ProblemSummaryLT(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldLT(FieldProblemSummary, v))
}

// ProblemSummaryLTE applies the LTE predicate on the "problem_summary" field.
func ProblemSummaryLTE(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldLTE(FieldProblemSummary, v))
}

// ProblemSummaryContains applies the Contains predicate on the "problem_summary" field.
func ProblemSummaryContains(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldContains(FieldProblemSummary, v))
}

// ProblemSummaryHasPrefix applies the HasPrefix predicate on the "problem_summary" field.
func ProblemSummaryHasPrefix(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldHasPrefix(FieldProblemSummary, v))
}

// ProblemSummaryHasSuffix applies the HasSuffix predicate on the "problem_summary" field.
func ProblemSummaryHasSuffix(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldHasSuffix(FieldProblemSummary, v))
}

// ProblemSummaryEqualFold applies the EqualFold predicate on the "problem_summary" field.
func ProblemSummaryEqualFold(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEqualFold(FieldProblemSummary, v))
}

// ProblemSummaryContainsFold applies the ContainsFold predicate on the "problem_summary" field.
func ProblemSummaryContainsFold(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldContainsFold(FieldProblemSummary, v))
}

// SolutionSummaryEQ applies the EQ predicate on the "solution_summary" field.
func SolutionSummaryEQ(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldSolutionSummary, v))
}

// SolutionSummaryNEQ applies the NEQ predicate on the "solution_summary" field.
func SolutionSummaryNEQ(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNEQ(FieldSolutionSummary, v))
}

// SolutionSummaryIn applies the In predicate on the "solution_summary" field.
func SolutionSummaryIn(vs ...string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldIn(FieldSolutionSummary, vs...))
}

// SolutionSummaryNotIn applies the NotIn predicate on the "solution_summary" field.
func SolutionSummaryNotIn(vs ...string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNotIn(FieldSolutionSummary, vs...))
}

// SolutionSummaryGT applies the GT predicate on the "solution_summary" field.
func SolutionSummaryGT(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldGT(FieldSolutionSummary, v))
}

// SolutionSummaryGTE applies the GTE predicate on the "solution_summary" field.
func SolutionSummaryGTE(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldGTE(FieldSolutionSummary, v))
}

// SolutionSummaryLT applies the LT predicate on the "solution_summary" field.
func SolutionSummaryLT(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldLT(FieldSolutionSummary, v))
}

// SolutionSummaryLTE applies the LTE predicate on the "solution_summary" field.
func SolutionSummaryLTE(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldLTE(FieldSolutionSummary, v))
}

// SolutionSummaryContains applies the Contains predicate on the "solution_summary" field.
func SolutionSummaryContains(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldContains(FieldSolutionSummary, v))
}

// SolutionSummaryHasPrefix applies the HasPrefix predicate on the "solution_summary" field.
func SolutionSummaryHasPrefix(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldHasPrefix(FieldSolutionSummary, v))
}

// SolutionSummaryHasSuffix applies the HasSuffix predicate on the "solution_summary" field.
func SolutionSummaryHasSuffix(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldHasSuffix(FieldSolutionSummary, v))
}

// SolutionSummaryEqualFold applies the EqualFold predicate on the "solution_summary" field.
func SolutionSummaryEqualFold(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEqualFold(FieldSolutionSummary, v))
}

// SolutionSummaryContainsFold applies the ContainsFold predicate on the "solution_summary" field.
func SolutionSummaryContainsFold(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldContainsFold(FieldSolutionSummary, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.SupportCase {
	return predicate.SupportCase(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNotNull(FieldTags))
}

// DedupEmbeddingIsNil applies the IsNil predicate on the "dedup_embedding" field.
func DedupEmbeddingIsNil() predicate.SupportCase {
	return predicate.SupportCase(sql.FieldIsNull(FieldDedupEmbedding))
}

// DedupEmbeddingNotNil applies the NotNil predicate on the "dedup_embedding" field.
func DedupEmbeddingNotNil() predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNotNull(FieldDedupEmbedding))
}

// InIndexEQ applies the EQ predicate on the "in_index" field.
func InIndexEQ(v bool) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldInIndex, v))
}

// InIndexNEQ applies the NEQ predicate on the "in_index" field.
func InIndexNEQ(v bool) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNEQ(FieldInIndex, v))
}

// ClosedEmojiEQ applies the EQ predicate on the "closed_emoji" field.
func ClosedEmojiEQ(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldClosedEmoji, v))
}

// ClosedEmojiNEQ applies the NEQ predicate on the "closed_emoji" field.
func ClosedEmojiNEQ(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNEQ(FieldClosedEmoji, v))
}

// ClosedEmojiIn applies the In predicate on the "closed_emoji" field.
func ClosedEmojiIn(vs ...string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldIn(FieldClosedEmoji, vs...))
}

// ClosedEmojiNotIn applies the NotIn predicate on the "closed_emoji" field.
func ClosedEmojiNotIn(vs ...string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNotIn(FieldClosedEmoji, vs...))
}

// ClosedEmojiGT applies the GT predicate on the "closed_emoji" field.
func ClosedEmojiGT(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldGT(FieldClosedEmoji, v))
}

// ClosedEmojiGTE applies the GTE predicate on the "closed_emoji" field.
func ClosedEmojiGTE(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldGTE(FieldClosedEmoji, v))
}

// ClosedEmojiLT applies the LT predicate on the "closed_emoji" field.
func ClosedEmojiLT(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldLT(FieldClosedEmoji, v))
}

// ClosedEmojiLTE applies the LTE predicate on the "closed_emoji" field.
func ClosedEmojiLTE(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldLTE(FieldClosedEmoji, v))
}

// ClosedEmojiContains applies the Contains predicate on the "closed_emoji" field.
func ClosedEmojiContains(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldContains(FieldClosedEmoji, v))
}

// ClosedEmojiHasPrefix applies the HasPrefix predicate on the "closed_emoji" field.
func ClosedEmojiHasPrefix(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldHasPrefix(FieldClosedEmoji, v))
}

// ClosedEmojiHasSuffix applies the HasSuffix predicate on the "closed_emoji" field.
func ClosedEmojiHasSuffix(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldHasSuffix(FieldClosedEmoji, v))
}

// ClosedEmojiIsNil applies the IsNil predicate on the "closed_emoji" field.
func ClosedEmojiIsNil() predicate.SupportCase {
	return predicate.SupportCase(sql.FieldIsNull(FieldClosedEmoji))
}

// ClosedEmojiNotNil applies the NotNil predicate on the "closed_emoji" field.
func ClosedEmojiNotNil() predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNotNull(FieldClosedEmoji))
}

// ClosedEmojiEqualFold applies the EqualFold predicate on the "closed_emoji" field.
func ClosedEmojiEqualFold(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEqualFold(FieldClosedEmoji, v))
}

// ClosedEmojiContainsFold applies the ContainsFold predicate on the "closed_emoji" field.
func ClosedEmojiContainsFold(v string) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldContainsFold(FieldClosedEmoji, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SupportCase {
	return predicate.SupportCase(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasEvidence applies the HasEdge predicate on the "evidence" edge.
func HasEvidence() predicate.SupportCase {
	return predicate.SupportCase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvidenceTable, EvidenceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvidenceWith applies the HasEdge predicate on the "evidence" edge with a given conditions (other predicates).
func HasEvidenceWith(preds ...predicate.CaseEvidence) predicate.SupportCase {
	return predicate.SupportCase(func(s *sql.Selector) {
		step := newEvidenceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SupportCase) predicate.SupportCase {
	return predicate.SupportCase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SupportCase) predicate.SupportCase {
	return predicate.SupportCase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SupportCase) predicate.SupportCase {
	return predicate.SupportCase(sql.NotPredicates(p))
}
