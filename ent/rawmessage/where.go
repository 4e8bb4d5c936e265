// Code generated by ent, DO NOT EDIT.

package rawmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/casemine/casemine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContainsFold(FieldID, id))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldGroupID, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldMessageID, v))
}

// Ts applies equality check predicate on the "ts" field. It's identical to TsEQ.
func Ts(v int64) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldTs, v))
}

// SenderHash applies equality check predicate on the "sender_hash" field. It's identical to SenderHashEQ.
func SenderHash(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldSenderHash, v))
}

// SenderName applies equality check predicate on the "sender_name" field. It's identical to SenderNameEQ.
func SenderName(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldSenderName, v))
}

// ContentText applies equality check predicate on the "content_text" field. It's identical to ContentTextEQ.
func ContentText(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldContentText, v))
}

// ReplyToID applies equality check predicate on the "reply_to_id" field. It's identical to ReplyToIDEQ.
func ReplyToID(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldReplyToID, v))
}

// ReactionCount applies equality check predicate on the "reaction_count" field. It's identical to ReactionCountEQ.
func ReactionCount(v int) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldReactionCount, v))
}

// FromBot applies equality check predicate on the "from_bot" field. It's identical to FromBotEQ.
func FromBot(v bool) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldFromBot, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContainsFold(FieldGroupID, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContainsFold(FieldMessageID, v))
}

// TsEQ applies the EQ predicate on the "ts" field.
func TsEQ(v int64) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldTs, v))
}

// TsNEQ applies the NEQ predicate on the "ts" field.
func TsNEQ(v int64) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldTs, v))
}

// TsIn applies the In predicate on the "ts" field.
func TsIn(vs ...int64) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldTs, vs...))
}

// TsNotIn applies the NotIn predicate on the "ts" field.
func TsNotIn(vs ...int64) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldTs, vs...))
}

// TsGT applies the GT predicate on the "ts" field.
func TsGT(v int64) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldTs, v))
}

// TsGTE applies the GTE predicate on the "ts" field.
func TsGTE(v int64) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldTs, v))
}

// TsLT applies the LT predicate on the "ts" field.
func TsLT(v int64) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldTs, v))
}

// TsLTE applies the LTE predicate on the "ts" field.
func TsLTE(v int64) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldTs, v))
}

// SenderHashEQ applies the EQ predicate on the "sender_hash" field.
func SenderHashEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldSenderHash, v))
}

// SenderHashNEQ applies the NEQ predicate on the "sender_hash" field.
func SenderHashNEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldSenderHash, v))
}

// SenderHashIn applies the In predicate on the "sender_hash" field.
func SenderHashIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldSenderHash, vs...))
}

// SenderHashNotIn applies the NotIn predicate on the "sender_hash" field.
func SenderHashNotIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldSenderHash, vs...))
}

// SenderHashGT applies the GT predicate on the "sender_hash" field.
func SenderHashGT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldSenderHash, v))
}

// SenderHashGTE applies the GTE predicate on the "sender_hash" field.
func SenderHashGTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldSenderHash, v))
}

// SenderHashLT applies the LT predicate on the "sender_hash" field.
func SenderHashLT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldSenderHash, v))
}

// SenderHashLTE applies the LTE predicate on the "sender_hash" field.
func SenderHashLTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldSenderHash, v))
}

// SenderHashContains applies the Contains predicate on the "sender_hash" field.
func SenderHashContains(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContains(FieldSenderHash, v))
}

// SenderHashHasPrefix applies the HasPrefix predicate on the "sender_hash" field.
func SenderHashHasPrefix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasPrefix(FieldSenderHash, v))
}

// SenderHashHasSuffix applies the HasSuffix predicate on the "sender_hash" field.
func SenderHashHasSuffix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasSuffix(FieldSenderHash, v))
}

// SenderHashEqualFold applies the EqualFold predicate on the "sender_hash" field.
func SenderHashEqualFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEqualFold(FieldSenderHash, v))
}

// SenderHashContainsFold applies the ContainsFold predicate on the "sender_hash" field.
func SenderHashContainsFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContainsFold(FieldSenderHash, v))
}

// SenderNameEQ applies the EQ predicate on the "sender_name" field.
func SenderNameEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldSenderName, v))
}

// SenderNameNEQ applies the NEQ predicate on the "sender_name" field.
func SenderNameNEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldSenderName, v))
}

// SenderNameIn applies the In predicate on the "sender_name" field.
func SenderNameIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldSenderName, vs...))
}

// SenderNameNotIn applies the NotIn predicate on the "sender_name" field.
func SenderNameNotIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldSenderName, vs...))
}

// SenderNameGT applies the GT predicate on the "sender_name" field.
func SenderNameGT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldSenderName, v))
}

// SenderNameGTE applies the GTE predicate on the "sender_name" field.
func SenderNameGTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldSenderName, v))
}

// SenderNameLT applies the LT predicate on the "sender_name" field.
func SenderNameLT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldSenderName, v))
}

// SenderNameLTE applies the LTE predicate on the "sender_name" field.
func SenderNameLTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldSenderName, v))
}

// SenderNameContains applies the Contains predicate on the "sender_name" field.
func SenderNameContains(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContains(FieldSenderName, v))
}

// SenderNameHasPrefix applies the HasPrefix predicate on the "sender_name" field.
func SenderNameHasPrefix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasPrefix(FieldSenderName, v))
}

// SenderNameHasSuffix applies the HasSuffix predicate on the "sender_name" field.
func SenderNameHasSuffix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasSuffix(FieldSenderName, v))
}

// SenderNameIsNil applies the IsNil predicate on the "sender_name" field.
func SenderNameIsNil() predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIsNull(FieldSenderName))
}

// SenderNameNotNil applies the NotNil predicate on the "sender_name" field.
func SenderNameNotNil() predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotNull(FieldSenderName))
}

// SenderNameEqualFold applies the EqualFold predicate on the "sender_name" field.
func SenderNameEqualFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEqualFold(FieldSenderName, v))
}

// SenderNameContainsFold applies the ContainsFold predicate on the "sender_name" field.
func SenderNameContainsFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContainsFold(FieldSenderName, v))
}

// ContentTextEQ applies the EQ predicate on the "content_text" field.
func ContentTextEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldContentText, v))
}

// ContentTextNEQ applies the NEQ predicate on the "content_text" field.
func ContentTextNEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldContentText, v))
}

// ContentTextIn applies the In predicate on the "content_text" field.
func ContentTextIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldContentText, vs...))
}

// ContentTextNotIn applies the NotIn predicate on the "content_text" field.
func ContentTextNotIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldContentText, vs...))
}

// ContentTextGT applies the GT predicate on the "content_text" field.
func ContentTextGT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldContentText, v))
}

// ContentTextGTE applies the GTE predicate on the "content_text" field.
func ContentTextGTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldContentText, v))
}

// ContentTextLT applies the LT predicate on the "content_text" field.
func ContentTextLT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldContentText, v))
}

// ContentTextLTE applies the LTE predicate on the "content_text" field.
func ContentTextLTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldContentText, v))
}

// ContentTextContains applies the Contains predicate on the "content_text" field.
func ContentTextContains(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContains(FieldContentText, v))
}

// ContentTextHasPrefix applies the HasPrefix predicate on the "content_text" field.
func ContentTextHasPrefix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasPrefix(FieldContentText, v))
}

// ContentTextHasSuffix applies the HasSuffix predicate on the "content_text" field.
func ContentTextHasSuffix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasSuffix(FieldContentText, v))
}

// ContentTextEqualFold applies the EqualFold predicate on the "content_text" field.
func ContentTextEqualFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEqualFold(FieldContentText, v))
}

// ContentTextContainsFold applies the ContainsFold predicate on the "content_text" field.
func ContentTextContainsFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContainsFold(FieldContentText, v))
}

// ImagePathsIsNil applies the IsNil predicate on the "image_paths" field.
func ImagePathsIsNil() predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIsNull(FieldImagePaths))
}

// ImagePathsNotNil applies the NotNil predicate on the "image_paths" field.
func ImagePathsNotNil() predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotNull(FieldImagePaths))
}

// ReplyToIDEQ applies the EQ predicate on the "reply_to_id" field.
func ReplyToIDEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldReplyToID, v))
}

// ReplyToIDNEQ applies the NEQ predicate on the "reply_to_id" field.
func ReplyToIDNEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldReplyToID, v))
}

// ReplyToIDIn applies the In predicate on the "reply_to_id" field.
func ReplyToIDIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldReplyToID, vs...))
}

// ReplyToIDNotIn applies the NotIn predicate on the "reply_to_id" field.
func ReplyToIDNotIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldReplyToID, vs...))
}

// ReplyToIDGT applies the GT predicate on the "reply_to_id" field.
func ReplyToIDGT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldReplyToID, v))
}

// ReplyToIDGTE applies the GTE predicate on the "reply_to_id" field.
func ReplyToIDGTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldReplyToID, v))
}

// ReplyToIDLT applies the LT predicate on the "reply_to_id" field.
func ReplyToIDLT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldReplyToID, v))
}

// ReplyToIDLTE applies the LTE predicate on the "reply_to_id" field.
func ReplyToIDLTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldReplyToID, v))
}

// ReplyToIDContains applies the Contains predicate on the "reply_to_id" field.
func ReplyToIDContains(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContains(FieldReplyToID, v))
}

// ReplyToIDHasPrefix applies the HasPrefix predicate on the "reply_to_id" field.
func ReplyToIDHasPrefix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasPrefix(FieldReplyToID, v))
}

// ReplyToIDHasSuffix applies the HasSuffix predicate on the "reply_to_id" field.
func ReplyToIDHasSuffix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasSuffix(FieldReplyToID, v))
}

// ReplyToIDIsNil applies the IsNil predicate on the "reply_to_id" field.
func ReplyToIDIsNil() predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIsNull(FieldReplyToID))
}

// ReplyToIDNotNil applies the NotNil predicate on the "reply_to_id" field.
func ReplyToIDNotNil() predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotNull(FieldReplyToID))
}

// ReplyToIDEqualFold applies the EqualFold predicate on the "reply_to_id" field.
func ReplyToIDEqualFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEqualFold(FieldReplyToID, v))
}

// ReplyToIDContainsFold applies the ContainsFold predicate on the "reply_to_id" field.
func ReplyToIDContainsFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContainsFold(FieldReplyToID, v))
}

// ReactionCountEQ applies the EQ predicate on the "reaction_count" field.
func ReactionCountEQ(v int) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldReactionCount, v))
}

// ReactionCountNEQ applies the NEQ predicate on the "reaction_count" field.
func ReactionCountNEQ(v int) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldReactionCount, v))
}

// ReactionCountIn applies the In predicate on the "reaction_count" field.
func ReactionCountIn(vs ...int) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldReactionCount, vs...))
}

// ReactionCountNotIn applies the NotIn predicate on the "reaction_count" field.
func ReactionCountNotIn(vs ...int) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldReactionCount, vs...))
}

// ReactionCountGT applies the GT predicate on the "reaction_count" field.
func ReactionCountGT(v int) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldReactionCount, v))
}

// ReactionCountGTE applies the GTE predicate on the "reaction_count" field.
func ReactionCountGTE(v int) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldReactionCount, v))
}

// ReactionCountLT applies the LT predicate on the "reaction_count" field.
func ReactionCountLT(v int) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldReactionCount, v))
}

// ReactionCountLTE applies the LTE predicate on the "reaction_count" field.
func ReactionCountLTE(v int) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldReactionCount, v))
}

// FromBotEQ applies the EQ predicate on the "from_bot" field.
func FromBotEQ(v bool) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldFromBot, v))
}

// FromBotNEQ applies the NEQ predicate on the "from_bot" field.
func FromBotNEQ(v bool) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldFromBot, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RawMessage) predicate.RawMessage {
	return predicate.RawMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RawMessage) predicate.RawMessage {
	return predicate.RawMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RawMessage) predicate.RawMessage {
	return predicate.RawMessage(sql.NotPredicates(p))
}
