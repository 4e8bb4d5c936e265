// Code generated by ent, DO NOT EDIT.

package admingrouplink

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/casemine/casemine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldLTE(FieldID, id))
}

// AdminID applies equality check predicate on the "admin_id" field. It's identical to AdminIDEQ.
func AdminID(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldEQ(FieldAdminID, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldEQ(FieldGroupID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldEQ(FieldCreatedAt, v))
}

// AdminIDEQ applies the EQ predicate on the "admin_id" field.
func AdminIDEQ(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldEQ(FieldAdminID, v))
}

// AdminIDNEQ applies the NEQ predicate on the "admin_id" field.
func AdminIDNEQ(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldNEQ(FieldAdminID, v))
}

// AdminIDIn applies the In predicate on the "admin_id" field.
func AdminIDIn(vs ...string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldIn(FieldAdminID, vs...))
}

// AdminIDNotIn applies the NotIn predicate on the "admin_id" field.
func AdminIDNotIn(vs ...string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldNotIn(FieldAdminID, vs...))
}

// AdminIDGT applies the GT predicate on the "admin_id" field.
func AdminIDGT(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldGT(FieldAdminID, v))
}

// AdminIDGTE applies the GTE predicate on the "admin_id" field.
func AdminIDGTE(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldGTE(FieldAdminID, v))
}

// AdminIDLT applies the LT predicate on the "admin_id" field.
func AdminIDLT(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldLT(FieldAdminID, v))
}

// AdminIDLTE applies the LTE predicate on the "admin_id" field.
func AdminIDLTE(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldLTE(FieldAdminID, v))
}

// AdminIDContains applies the Contains predicate on the "admin_id" field.
func AdminIDContains(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldContains(FieldAdminID, v))
}

// AdminIDHasPrefix applies the HasPrefix predicate on the "admin_id" field.
func AdminIDHasPrefix(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldHasPrefix(FieldAdminID, v))
}

// AdminIDHasSuffix applies the HasSuffix predicate on the "admin_id" field.
func AdminIDHasSuffix(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldHasSuffix(FieldAdminID, v))
}

// AdminIDEqualFold applies the EqualFold predicate on the "admin_id" field.
func AdminIDEqualFold(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldEqualFold(FieldAdminID, v))
}

// AdminIDContainsFold applies the ContainsFold predicate on the "admin_id" field.
func AdminIDContainsFold(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldContainsFold(FieldAdminID, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldContainsFold(FieldGroupID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdminGroupLink) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdminGroupLink) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdminGroupLink) predicate.AdminGroupLink {
	return predicate.AdminGroupLink(sql.NotPredicates(p))
}
