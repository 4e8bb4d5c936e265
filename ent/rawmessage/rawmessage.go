// Code generated by ent, DO NOT EDIT.

package rawmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the rawmessage type in the database.
	Label = "raw_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldTs holds the string denoting the ts field in the database.
	FieldTs = "ts"
	// FieldSenderHash holds the string denoting the sender_hash field in the database.
	FieldSenderHash = "sender_hash"
	// FieldSenderName holds the string denoting the sender_name field in the database.
	FieldSenderName = "sender_name"
	// FieldContentText holds the string denoting the content_text field in the database.
	FieldContentText = "content_text"
	// FieldImagePaths holds the string denoting the image_paths field in the database.
	FieldImagePaths = "image_paths"
	// FieldReplyToID holds the string denoting the reply_to_id field in the database.
	FieldReplyToID = "reply_to_id"
	// FieldReactionCount holds the string denoting the reaction_count field in the database.
	FieldReactionCount = "reaction_count"
	// FieldFromBot holds the string denoting the from_bot field in the database.
	FieldFromBot = "from_bot"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the rawmessage in the database.
	Table = "raw_messages"
)

// Columns holds all SQL columns for rawmessage fields.
var Columns = []string{
	FieldID,
	FieldGroupID,
	FieldMessageID,
	FieldTs,
	FieldSenderHash,
	FieldSenderName,
	FieldContentText,
	FieldImagePaths,
	FieldReplyToID,
	FieldReactionCount,
	FieldFromBot,
	FieldCreatedAt,
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
	// DefaultReactionCount holds the default value on creation for the "reaction_count" field.
	DefaultReactionCount int
	// DefaultFromBot holds the default value on creation for the "from_bot" field.
	DefaultFromBot bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the RawMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByTs orders the results by the ts field.
func ByTs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTs, opts...).ToFunc()
}

// BySenderHash orders the results by the sender_hash field.
func BySenderHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSenderHash, opts...).ToFunc()
}

// BySenderName orders the results by the sender_name field.
func BySenderName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSenderName, opts...).ToFunc()
}

// ByContentText orders the results by the content_text field.
func ByContentText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentText, opts...).ToFunc()
}

// ByReplyToID orders the results by the reply_to_id field.
func ByReplyToID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplyToID, opts...).ToFunc()
}

// ByReactionCount orders the results by the reaction_count field.
func ByReactionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReactionCount, opts...).ToFunc()
}

// ByFromBot orders the results by the from_bot field.
func ByFromBot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromBot, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
