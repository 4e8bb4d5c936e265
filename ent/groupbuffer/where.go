// Code generated by ent, DO NOT EDIT.

package groupbuffer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/casemine/casemine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldContainsFold(FieldID, id))
}

// BufferText applies equality check predicate on the "buffer_text" field. It's identical to BufferTextEQ.
func BufferText(v string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldEQ(FieldBufferText, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldEQ(FieldUpdatedAt, v))
}

// BufferTextEQ applies the EQ predicate on the "buffer_text" field.
func BufferTextEQ(v string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldEQ(FieldBufferText, v))
}

// BufferTextNEQ applies the NEQ predicate on the "buffer_text" field.
func BufferTextNEQ(v string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldNEQ(FieldBufferText, v))
}

// BufferTextIn applies the In predicate on the "buffer_text" field.
func BufferTextIn(vs ...string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldIn(FieldBufferText, vs...))
}

// BufferTextNotIn applies the NotIn predicate on the "buffer_text" field.
func BufferTextNotIn(vs ...string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldNotIn(FieldBufferText, vs...))
}

// BufferTextGT applies the GT predicate on the "buffer_text" field.
func BufferTextGT(v string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldGT(FieldBufferText, v))
}

// BufferTextGTE applies the GTE predicate on the "buffer_text" field.
func BufferTextGTE(v string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldGTE(FieldBufferText, v))
}

// BufferTextLT applies the LT predicate on the "buffer_text" field.
func BufferTextLT(v string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldLT(FieldBufferText, v))
}

// BufferTextLTE applies the LTE predicate on the "buffer_text" field.
func BufferTextLTE(v string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldLTE(FieldBufferText, v))
}

// BufferTextContains applies the Contains predicate on the "buffer_text" field.
func BufferTextContains(v string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldContains(FieldBufferText, v))
}

// BufferTextHasPrefix applies the HasPrefix predicate on the "buffer_text" field.
func BufferTextHasPrefix(v string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldHasPrefix(FieldBufferText, v))
}

// BufferTextHasSuffix applies the HasSuffix predicate on the "buffer_text" field.
func BufferTextHasSuffix(v string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldHasSuffix(FieldBufferText, v))
}

// BufferTextEqualFold applies the EqualFold predicate on the "buffer_text" field.
func BufferTextEqualFold(v string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldEqualFold(FieldBufferText, v))
}

// BufferTextContainsFold applies the ContainsFold predicate on the "buffer_text" field.
func BufferTextContainsFold(v string) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldContainsFold(FieldBufferText, v))
}

// DocUrlsIsNil applies the IsNil predicate on the "doc_urls" field.
func DocUrlsIsNil() predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldIsNull(FieldDocUrls))
}

// DocUrlsNotNil applies the NotNil predicate on the "doc_urls" field.
func DocUrlsNotNil() predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldNotNull(FieldDocUrls))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GroupBuffer) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GroupBuffer) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GroupBuffer) predicate.GroupBuffer {
	return predicate.GroupBuffer(sql.NotPredicates(p))
}
