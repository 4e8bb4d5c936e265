// Code generated by ent, DO NOT EDIT.

package historytoken

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/casemine/casemine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldContainsFold(FieldID, id))
}

// AdminID applies equality check predicate on the "admin_id" field. It's identical to AdminIDEQ.
func AdminID(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldEQ(FieldAdminID, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldEQ(FieldGroupID, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldEQ(FieldExpiresAt, v))
}

// Consumed applies equality check predicate on the "consumed" field. It's identical to ConsumedEQ.
func Consumed(v bool) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldEQ(FieldConsumed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldEQ(FieldCreatedAt, v))
}

// AdminIDEQ applies the EQ predicate on the "admin_id" field.
func AdminIDEQ(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldEQ(FieldAdminID, v))
}

// AdminIDNEQ applies the NEQ predicate on the "admin_id" field.
func AdminIDNEQ(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldNEQ(FieldAdminID, v))
}

// AdminIDIn applies the In predicate on the "admin_id" field.
func AdminIDIn(vs ...string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldIn(FieldAdminID, vs...))
}

// AdminIDNotIn applies the NotIn predicate on the "admin_id" field.
func AdminIDNotIn(vs ...string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldNotIn(FieldAdminID, vs...))
}

// AdminIDGT applies the GT predicate on the "admin_id" field.
func AdminIDGT(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldGT(FieldAdminID, v))
}

// AdminIDGTE applies the GTE predicate on the "admin_id" field.
func AdminIDGTE(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldGTE(FieldAdminID, v))
}

// AdminIDLT applies the LT predicate on the "admin_id" field.
func AdminIDLT(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldLT(FieldAdminID, v))
}

// AdminIDLTE applies the LTE predicate on the "admin_id" field.
func AdminIDLTE(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldLTE(FieldAdminID, v))
}

// AdminIDContains applies the Contains predicate on the "admin_id" field.
func AdminIDContains(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldContains(FieldAdminID, v))
}

// AdminIDHasPrefix applies the HasPrefix predicate on the "admin_id" field.
func AdminIDHasPrefix(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldHasPrefix(FieldAdminID, v))
}

// AdminIDHasSuffix applies the HasSuffix predicate on the "admin_id" field.
func AdminIDHasSuffix(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldHasSuffix(FieldAdminID, v))
}

// AdminIDEqualFold applies the EqualFold predicate on the "admin_id" field.
func AdminIDEqualFold(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldEqualFold(FieldAdminID, v))
}

// AdminIDContainsFold applies the ContainsFold predicate on the "admin_id" field.
func AdminIDContainsFold(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldContainsFold(FieldAdminID, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldContainsFold(FieldGroupID, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldLTE(FieldExpiresAt, v))
}

// ConsumedEQ applies the EQ predicate on the "consumed" field.
func ConsumedEQ(v bool) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldEQ(FieldConsumed, v))
}

// ConsumedNEQ applies the NEQ predicate on the "consumed" field.
func ConsumedNEQ(v bool) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldNEQ(FieldConsumed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HistoryToken {
	return predicate.HistoryToken(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HistoryToken) predicate.HistoryToken {
	return predicate.HistoryToken(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HistoryToken) predicate.HistoryToken {
	return predicate.HistoryToken(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HistoryToken) predicate.HistoryToken {
	return predicate.HistoryToken(sql.NotPredicates(p))
}
