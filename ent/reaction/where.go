// Code generated by ent, DO NOT EDIT.

package reaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/casemine/casemine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Reaction {
	return predicate.Reaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Reaction {
	return predicate.Reaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Reaction {
	return predicate.Reaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Reaction {
	return predicate.Reaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Reaction {
	return predicate.Reaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Reaction {
	return predicate.Reaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Reaction {
	return predicate.Reaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Reaction {
	return predicate.Reaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Reaction {
	return predicate.Reaction(sql.FieldLTE(FieldID, id))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldEQ(FieldGroupID, v))
}

// TargetTs applies equality check predicate on the "target_ts" field. It's identical to TargetTsEQ.
func TargetTs(v int64) predicate.Reaction {
	return predicate.Reaction(sql.FieldEQ(FieldTargetTs, v))
}

// TargetAuthor applies equality check predicate on the "target_author" field. It's identical to TargetAuthorEQ.
func TargetAuthor(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldEQ(FieldTargetAuthor, v))
}

// SenderHash applies equality check predicate on the "sender_hash" field. It's identical to SenderHashEQ.
func SenderHash(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldEQ(FieldSenderHash, v))
}

// Emoji applies equality check predicate on the "emoji" field. It's identical to EmojiEQ.
func Emoji(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldEQ(FieldEmoji, v))
}

// IsPositive applies equality check predicate on the "is_positive" field. It's identical to IsPositiveEQ.
func IsPositive(v bool) predicate.Reaction {
	return predicate.Reaction(sql.FieldEQ(FieldIsPositive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Reaction {
	return predicate.Reaction(sql.FieldEQ(FieldCreatedAt, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.Reaction {
	return predicate.Reaction(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.Reaction {
	return predicate.Reaction(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldContainsFold(FieldGroupID, v))
}

// TargetTsEQ applies the EQ predicate on the "target_ts" field.
func TargetTsEQ(v int64) predicate.Reaction {
	return predicate.Reaction(sql.FieldEQ(FieldTargetTs, v))
}

// TargetTsNEQ applies the NEQ predicate on the "target_ts" field.
func TargetTsNEQ(v int64) predicate.Reaction {
	return predicate.Reaction(sql.FieldNEQ(FieldTargetTs, v))
}

// TargetTsIn applies the In predicate on the "target_ts" field.
func TargetTsIn(vs ...int64) predicate.Reaction {
	return predicate.Reaction(sql.FieldIn(FieldTargetTs, vs...))
}

// TargetTsNotIn applies the NotIn predicate on the "target_ts" field.
func TargetTsNotIn(vs ...int64) predicate.Reaction {
	return predicate.Reaction(sql.FieldNotIn(FieldTargetTs, vs...))
}

// TargetTsGT applies the GT predicate on the "target_ts" field.
func TargetTsGT(v int64) predicate.Reaction {
	return predicate.Reaction(sql.FieldGT(FieldTargetTs, v))
}

// TargetTsGTE applies the GTE predicate on the "target_ts" field.
func TargetTsGTE(v int64) predicate.Reaction {
	return predicate.Reaction(sql.FieldGTE(FieldTargetTs, v))
}

// TargetTsLT applies the LT predicate on the "target_ts" field.
func TargetTsLT(v int64) predicate.Reaction {
	return predicate.Reaction(sql.FieldLT(FieldTargetTs, v))
}

// TargetTsLTE applies the LTE predicate on the "target_ts" field.
func TargetTsLTE(v int64) predicate.Reaction {
	return predicate.Reaction(sql.FieldLTE(FieldTargetTs, v))
}

// TargetAuthorEQ applies the EQ predicate on the "target_author" field.
func TargetAuthorEQ(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldEQ(FieldTargetAuthor, v))
}

// TargetAuthorNEQ applies the NEQ predicate on the "target_author" field.
func TargetAuthorNEQ(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldNEQ(FieldTargetAuthor, v))
}

// TargetAuthorIn applies the In predicate on the "target_author" field.
func TargetAuthorIn(vs ...string) predicate.Reaction {
	return predicate.Reaction(sql.FieldIn(FieldTargetAuthor, vs...))
}

// TargetAuthorNotIn applies the NotIn predicate on the "target_author" field.
func TargetAuthorNotIn(vs ...string) predicate.Reaction {
	return predicate.Reaction(sql.FieldNotIn(FieldTargetAuthor, vs...))
}

// TargetAuthorGT applies the GT predicate on the "target_author" field.
func TargetAuthorGT(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldGT(FieldTargetAuthor, v))
}

// TargetAuthorGTE applies the GTE predicate on the "target_author" field.
func TargetAuthorGTE(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldGTE(FieldTargetAuthor, v))
}

// TargetAuthorLT applies the LT predicate on the "target_author" field.
func TargetAuthorLT(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldLT(FieldTargetAuthor, v))
}

// TargetAuthorLTE applies the LTE predicate on the "target_author" field.
func TargetAuthorLTE(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldLTE(FieldTargetAuthor, v))
}

// TargetAuthorContains applies the Contains predicate on the "target_author" field.
func TargetAuthorContains(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldContains(FieldTargetAuthor, v))
}

// TargetAuthorHasPrefix applies the HasPrefix predicate on the "target_author" field.
func TargetAuthorHasPrefix(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldHasPrefix(FieldTargetAuthor, v))
}

// TargetAuthorHasSuffix applies the HasSuffix predicate on the "target_author" field.
func TargetAuthorHasSuffix(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldHasSuffix(FieldTargetAuthor, v))
}

// TargetAuthorEqualFold applies the EqualFold predicate on the "target_author" field.
func TargetAuthorEqualFold(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldEqualFold(FieldTargetAuthor, v))
}

// TargetAuthorContainsFold applies the ContainsFold predicate on the "target_author" field.
func TargetAuthorContainsFold(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldContainsFold(FieldTargetAuthor, v))
}

// SenderHashEQ applies the EQ predicate on the "sender_hash" field.
func SenderHashEQ(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldEQ(FieldSenderHash, v))
}

// SenderHashNEQ applies the NEQ predicate on the "sender_hash" field.
func SenderHashNEQ(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldNEQ(FieldSenderHash, v))
}

// SenderHashIn applies the In predicate on the "sender_hash" field.
func SenderHashIn(vs ...string) predicate.Reaction {
	return predicate.Reaction(sql.FieldIn(FieldSenderHash, vs...))
}

// SenderHashNotIn applies the NotIn predicate on the "sender_hash" field.
func SenderHashNotIn(vs ...string) predicate.Reaction {
	return predicate.Reaction(sql.FieldNotIn(FieldSenderHash, vs...))
}

// SenderHashGT applies the GT predicate on the "sender_hash" field.
func SenderHashGT(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldGT(FieldSenderHash, v))
}

// SenderHashGTE applies the GTE predicate on the "sender_hash" field.
func SenderHashGTE(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldGTE(FieldSenderHash, v))
}

// SenderHashLT applies the LT predicate on the "sender_hash" field.
func SenderHashLT(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldLT(FieldSenderHash, v))
}

// SenderHashLTE applies the LTE predicate on the "sender_hash" field.
func SenderHashLTE(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldLTE(FieldSenderHash, v))
}

// SenderHashContains applies the Contains predicate on the "sender_hash" field.
func SenderHashContains(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldContains(FieldSenderHash, v))
}

// SenderHashHasPrefix applies the HasPrefix predicate on the "sender_hash" field.
func SenderHashHasPrefix(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldHasPrefix(FieldSenderHash, v))
}

// SenderHashHasSuffix applies the HasSuffix predicate on the "sender_hash" field.
func SenderHashHasSuffix(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldHasSuffix(FieldSenderHash, v))
}

// SenderHashEqualFold applies the EqualFold predicate on the "sender_hash" field.
func SenderHashEqualFold(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldEqualFold(FieldSenderHash, v))
}

// SenderHashContainsFold applies the ContainsFold predicate on the "sender_hash" field.
func SenderHashContainsFold(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldContainsFold(FieldSenderHash, v))
}

// EmojiEQ applies the EQ predicate on the "emoji" field.
func EmojiEQ(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldEQ(FieldEmoji, v))
}

// EmojiNEQ applies the NEQ predicate on the "emoji" field.
func EmojiNEQ(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldNEQ(FieldEmoji, v))
}

// EmojiIn applies the In predicate on the "emoji" field.
func EmojiIn(vs ...string) predicate.Reaction {
	return predicate.Reaction(sql.FieldIn(FieldEmoji, vs...))
}

// EmojiNotIn applies the NotIn predicate on the "emoji" field.
func EmojiNotIn(vs ...string) predicate.Reaction {
	return predicate.Reaction(sql.FieldNotIn(FieldEmoji, vs...))
}

// EmojiGT applies the GT predicate on the "emoji" field.
func EmojiGT(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldGT(FieldEmoji, v))
}

// EmojiGTE applies the GTE predicate on the "emoji" field.
func EmojiGTE(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldGTE(FieldEmoji, v))
}

// EmojiLT applies the LT predicate on the "emoji" field.
func EmojiLT(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldLT(FieldEmoji, v))
}

// EmojiLTE applies the LTE predicate on the "emoji" field.
func EmojiLTE(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldLTE(FieldEmoji, v))
}

// EmojiContains applies the Contains predicate on the "emoji" field.
func EmojiContains(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldContains(FieldEmoji, v))
}

// EmojiHasPrefix applies the HasPrefix predicate on the "emoji" field.
func EmojiHasPrefix(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldHasPrefix(FieldEmoji, v))
}

// EmojiHasSuffix applies the HasSuffix predicate on the "emoji" field.
func EmojiHasSuffix(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldHasSuffix(FieldEmoji, v))
}

// EmojiEqualFold applies the EqualFold predicate on the "emoji" field.
func EmojiEqualFold(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldEqualFold(FieldEmoji, v))
}

// EmojiContainsFold applies the ContainsFold predicate on the "emoji" field.
func EmojiContainsFold(v string) predicate.Reaction {
	return predicate.Reaction(sql.FieldContainsFold(FieldEmoji, v))
}

// IsPositiveEQ applies the EQ predicate on the "is_positive" field.
func IsPositiveEQ(v bool) predicate.Reaction {
	return predicate.Reaction(sql.FieldEQ(FieldIsPositive, v))
}

// IsPositiveNEQ applies the NEQ predicate on the "is_positive" field.
func IsPositiveNEQ(v bool) predicate.Reaction {
	return predicate.Reaction(sql.FieldNEQ(FieldIsPositive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Reaction {
	return predicate.Reaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Reaction {
	return predicate.Reaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Reaction {
	return predicate.Reaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Reaction {
	return predicate.Reaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Reaction {
	return predicate.Reaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Reaction {
	return predicate.Reaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Reaction {
	return predicate.Reaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Reaction {
	return predicate.Reaction(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Reaction) predicate.Reaction {
	return predicate.Reaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Reaction) predicate.Reaction {
	return predicate.Reaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Reaction) predicate.Reaction {
	return predicate.Reaction(sql.NotPredicates(p))
}
