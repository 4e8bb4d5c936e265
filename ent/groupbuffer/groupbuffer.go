// Code generated by ent, DO NOT EDIT.

package groupbuffer

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the groupbuffer type in the database.
	Label = "group_buffer"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "group_id"
	// FieldBufferText holds the string denoting the buffer_text field in the database.
	FieldBufferText = "buffer_text"
	// FieldDocUrls holds the string denoting the doc_urls field in the database.
	FieldDocUrls = "doc_urls"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the groupbuffer in the database.
	Table = "group_buffers"
)

// Columns holds all SQL columns for groupbuffer fields.
var Columns = []string{
	FieldID,
	FieldBufferText,
	FieldDocUrls,
	FieldUpdatedAt,
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
	// DefaultBufferText holds the default value on creation for the "buffer_text" field.
	DefaultBufferText string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the GroupBuffer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBufferText orders the results by the buffer_text field.
func ByBufferText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBufferText, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
