// Code generated by ent, DO NOT EDIT.

package adminsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/casemine/casemine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldContainsFold(FieldID, id))
}

// PendingGroupID applies equality check predicate on the "pending_group_id" field. It's identical to PendingGroupIDEQ.
func PendingGroupID(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldEQ(FieldPendingGroupID, v))
}

// PendingGroupName applies equality check predicate on the "pending_group_name" field. It's identical to PendingGroupNameEQ.
func PendingGroupName(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldEQ(FieldPendingGroupName, v))
}

// PendingToken applies equality check predicate on the "pending_token" field. It's identical to PendingTokenEQ.
func PendingToken(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldEQ(FieldPendingToken, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNotIn(FieldState, vs...))
}

// PendingGroupIDEQ applies the EQ predicate on the "pending_group_id" field.
func PendingGroupIDEQ(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldEQ(FieldPendingGroupID, v))
}

// PendingGroupIDNEQ applies the NEQ predicate on the "pending_group_id" field.
func PendingGroupIDNEQ(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNEQ(FieldPendingGroupID, v))
}

// PendingGroupIDIn applies the In predicate on the "pending_group_id" field.
func PendingGroupIDIn(vs ...string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldIn(FieldPendingGroupID, vs...))
}

// PendingGroupIDNotIn applies the NotIn predicate on the "pending_group_id" field.
func PendingGroupIDNotIn(vs ...string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNotIn(FieldPendingGroupID, vs...))
}

// PendingGroupIDGT applies the GT predicate on the "pending_group_id" field.
func PendingGroupIDGT(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldGT(FieldPendingGroupID, v))
}

// PendingGroupIDGTE applies the GTE predicate on the "pending_group_id" field.
func PendingGroupIDGTE(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldGTE(FieldPendingGroupID, v))
}

// PendingGroupIDLT applies the LT predicate on the "pending_group_id" field.
func PendingGroupIDLT(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldLT(FieldPendingGroupID, v))
}

// PendingGroupIDLTE applies the LTE predicate on the "pending_group_id" field.
func PendingGroupIDLTE(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldLTE(FieldPendingGroupID, v))
}

// PendingGroupIDContains applies the Contains predicate on the "pending_group_id" field.
func PendingGroupIDContains(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldContains(FieldPendingGroupID, v))
}

// PendingGroupIDHasPrefix applies the HasPrefix predicate on the "pending_group_id" field.
func PendingGroupIDHasPrefix(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldHasPrefix(FieldPendingGroupID, v))
}

// PendingGroupIDHasSuffix applies the HasSuffix predicate on the "pending_group_id" field.
func PendingGroupIDHasSuffix(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldHasSuffix(FieldPendingGroupID, v))
}

// PendingGroupIDIsNil applies the IsNil predicate on the "pending_group_id" field.
func PendingGroupIDIsNil() predicate.AdminSession {
	return predicate.AdminSession(sql.FieldIsNull(FieldPendingGroupID))
}

// PendingGroupIDNotNil applies the NotNil predicate on the "pending_group_id" field.
func PendingGroupIDNotNil() predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNotNull(FieldPendingGroupID))
}

// PendingGroupIDEqualFold applies the EqualFold predicate on the "pending_group_id" field.
func PendingGroupIDEqualFold(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldEqualFold(FieldPendingGroupID, v))
}

// PendingGroupIDContainsFold applies the ContainsFold predicate on the "pending_group_id" field.
func PendingGroupIDContainsFold(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldContainsFold(FieldPendingGroupID, v))
}

// PendingGroupNameEQ applies the EQ predicate on the "pending_group_name" field.
func PendingGroupNameEQ(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldEQ(FieldPendingGroupName, v))
}

// PendingGroupNameNEQ applies the NEQ predicate on the "pending_group_name" field.
func PendingGroupNameNEQ(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNEQ(FieldPendingGroupName, v))
}

// PendingGroupNameIn applies the In predicate on the "pending_group_name" field.
func PendingGroupNameIn(vs ...string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldIn(FieldPendingGroupName, vs...))
}

// PendingGroupNameNotIn applies the NotIn predicate on the "pending_group_name" field.
func PendingGroupNameNotIn(vs ...string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNotIn(FieldPendingGroupName, vs...))
}

// PendingGroupNameGT applies the GT predicate on the "pending_group_name" field.
func PendingGroupNameGT(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldGT(FieldPendingGroupName, v))
}

// PendingGroupNameGTE applies the GTE predicate on the "pending_group_name" field.
func PendingGroupNameGTE(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldGTE(FieldPendingGroupName, v))
}

// PendingGroupNameLT applies the LT predicate on the "pending_group_name" field.
func PendingGroupNameLT(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldLT(FieldPendingGroupName, v))
}

// PendingGroupNameLTE applies the LTE predicate on the "pending_group_name" field.
func PendingGroupNameLTE(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldLTE(FieldPendingGroupName, v))
}

// PendingGroupNameContains applies the Contains predicate on the "pending_group_name" field.
func PendingGroupNameContains(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldContains(FieldPendingGroupName, v))
}

// PendingGroupNameHasPrefix applies the HasPrefix predicate on the "pending_group_name" field.
func PendingGroupNameHasPrefix(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldHasPrefix(FieldPendingGroupName, v))
}

// PendingGroupNameHasSuffix applies the HasSuffix predicate on the "pending_group_name" field.
func PendingGroupNameHasSuffix(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldHasSuffix(FieldPendingGroupName, v))
}

// PendingGroupNameIsNil applies the IsNil predicate on the "pending_group_name" field.
func PendingGroupNameIsNil() predicate.AdminSession {
	return predicate.AdminSession(sql.FieldIsNull(FieldPendingGroupName))
}

// PendingGroupNameNotNil applies the NotNil predicate on the "pending_group_name" field.
func PendingGroupNameNotNil() predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNotNull(FieldPendingGroupName))
}

// PendingGroupNameEqualFold applies the EqualFold predicate on the "pending_group_name" field.
func PendingGroupNameEqualFold(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldEqualFold(FieldPendingGroupName, v))
}

// PendingGroupNameContainsFold applies the ContainsFold predicate on the "pending_group_name" field.
func PendingGroupNameContainsFold(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldContainsFold(FieldPendingGroupName, v))
}

// PendingTokenEQ applies the EQ predicate on the "pending_token" field.
func PendingTokenEQ(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldEQ(FieldPendingToken, v))
}

// PendingTokenNEQ applies the NEQ predicate on the "pending_token" field.
func PendingTokenNEQ(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNEQ(FieldPendingToken, v))
}

// PendingTokenIn applies the In predicate on the "pending_token" field.
func PendingTokenIn(vs ...string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldIn(FieldPendingToken, vs...))
}

// PendingTokenNotIn applies the NotIn predicate on the "pending_token" field.
func PendingTokenNotIn(vs ...string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNotIn(FieldPendingToken, vs...))
}

// PendingTokenGT applies the GT predicate on the "pending_token" field.
func PendingTokenGT(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldGT(FieldPendingToken, v))
}

// PendingTokenGTE applies the GTE predicate on the "pending_token" field.
func PendingTokenGTE(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldGTE(FieldPendingToken, v))
}

// PendingTokenLT applies the LT predicate on the "pending_token" field.
func PendingTokenLT(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldLT(FieldPendingToken, v))
}

// PendingTokenLTE applies the LTE predicate on the "pending_token" field.
func PendingTokenLTE(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldLTE(FieldPendingToken, v))
}

// PendingTokenContains applies the Contains predicate on the "pending_token" field.
func PendingTokenContains(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldContains(FieldPendingToken, v))
}

// PendingTokenHasPrefix applies the HasPrefix predicate on the "pending_token" field.
func PendingTokenHasPrefix(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldHasPrefix(FieldPendingToken, v))
}

// PendingTokenHasSuffix applies the HasSuffix predicate on the "pending_token" field.
func PendingTokenHasSuffix(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldHasSuffix(FieldPendingToken, v))
}

// PendingTokenIsNil applies the IsNil predicate on the "pending_token" field.
func PendingTokenIsNil() predicate.AdminSession {
	return predicate.AdminSession(sql.FieldIsNull(FieldPendingToken))
}

// PendingTokenNotNil applies the NotNil predicate on the "pending_token" field.
func PendingTokenNotNil() predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNotNull(FieldPendingToken))
}

// PendingTokenEqualFold applies the EqualFold predicate on the "pending_token" field.
func PendingTokenEqualFold(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldEqualFold(FieldPendingToken, v))
}

// PendingTokenContainsFold applies the ContainsFold predicate on the "pending_token" field.
func PendingTokenContainsFold(v string) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldContainsFold(FieldPendingToken, v))
}

// LangEQ applies the EQ predicate on the "lang" field.
func LangEQ(v Lang) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldEQ(FieldLang, v))
}

// LangNEQ applies the NEQ predicate on the "lang" field.
func LangNEQ(v Lang) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNEQ(FieldLang, v))
}

// LangIn applies the In predicate on the "lang" field.
func LangIn(vs ...Lang) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldIn(FieldLang, vs...))
}

// LangNotIn applies the NotIn predicate on the "lang" field.
func LangNotIn(vs ...Lang) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNotIn(FieldLang, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AdminSession {
	return predicate.AdminSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdminSession) predicate.AdminSession {
	return predicate.AdminSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdminSession) predicate.AdminSession {
	return predicate.AdminSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdminSession) predicate.AdminSession {
	return predicate.AdminSession(sql.NotPredicates(p))
}
