// Code generated by ent, DO NOT EDIT.

package reaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reaction type in the database.
	Label = "reaction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldTargetTs holds the string denoting the target_ts field in the database.
	FieldTargetTs = "target_ts"
	// FieldTargetAuthor holds the string denoting the target_author field in the database.
	FieldTargetAuthor = "target_author"
	// FieldSenderHash holds the string denoting the sender_hash field in the database.
	FieldSenderHash = "sender_hash"
	// FieldEmoji holds the string denoting the emoji field in the database.
	FieldEmoji = "emoji"
	// FieldIsPositive holds the string denoting the is_positive field in the database.
	FieldIsPositive = "is_positive"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the reaction in the database.
	Table = "reactions"
)

// Columns holds all SQL columns for reaction fields.
var Columns = []string{
	FieldID,
	FieldGroupID,
	FieldTargetTs,
	FieldTargetAuthor,
	FieldSenderHash,
	FieldEmoji,
	FieldIsPositive,
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
	// DefaultIsPositive holds the default value on creation for the "is_positive" field.
	DefaultIsPositive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Reaction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByTargetTs orders the results by the target_ts field.
func ByTargetTs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetTs, opts...).ToFunc()
}

// ByTargetAuthor orders the results by the target_author field.
func ByTargetAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetAuthor, opts...).ToFunc()
}

// BySenderHash orders the results by the sender_hash field.
func BySenderHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSenderHash, opts...).ToFunc()
}

// ByEmoji orders the results by the emoji field.
func ByEmoji(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmoji, opts...).ToFunc()
}

// ByIsPositive orders the results by the is_positive field.
func ByIsPositive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPositive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
