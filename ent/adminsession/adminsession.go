// Code generated by ent, DO NOT EDIT.

package adminsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the adminsession type in the database.
	Label = "admin_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "admin_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldPendingGroupID holds the string denoting the pending_group_id field in the database.
	FieldPendingGroupID = "pending_group_id"
	// FieldPendingGroupName holds the string denoting the pending_group_name field in the database.
	FieldPendingGroupName = "pending_group_name"
	// FieldPendingToken holds the string denoting the pending_token field in the database.
	FieldPendingToken = "pending_token"
	// FieldLang holds the string denoting the lang field in the database.
	FieldLang = "lang"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the adminsession in the database.
	Table = "admin_sessions"
)

// Columns holds all SQL columns for adminsession fields.
var Columns = []string{
	FieldID,
	FieldState,
	FieldPendingGroupID,
	FieldPendingGroupName,
	FieldPendingToken,
	FieldLang,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateAwaitingGroupName is the default value of the State enum.
const DefaultState = StateAwaitingGroupName

// State values.
const (
	StateAwaitingGroupName State = "awaiting_group_name"
	StateAwaitingQrScan    State = "awaiting_qr_scan"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateAwaitingGroupName, StateAwaitingQrScan:
		return nil
	default:
		return fmt.Errorf("adminsession: invalid enum value for state field: %q", s)
	}
}

// Lang defines the type for the "lang" enum field.
type Lang string

// LangEn is the default value of the Lang enum.
const DefaultLang = LangEn

// Lang values.
const (
	LangUk Lang = "uk"
	LangEn Lang = "en"
)

func (l Lang) String() string {
	return string(l)
}

// LangValidator is a validator for the "lang" field enum values. It is called by the builders before save.
func LangValidator(l Lang) error {
	switch l {
	case LangUk, LangEn:
		return nil
	default:
		return fmt.Errorf("adminsession: invalid enum value for lang field: %q", l)
	}
}

// OrderOption defines the ordering options for the AdminSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByPendingGroupID orders the results by the pending_group_id field.
func ByPendingGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPendingGroupID, opts...).ToFunc()
}

// ByPendingGroupName orders the results by the pending_group_name field.
func ByPendingGroupName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPendingGroupName, opts...).ToFunc()
}

// ByPendingToken orders the results by the pending_token field.
func ByPendingToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPendingToken, opts...).ToFunc()
}

// ByLang orders the results by the lang field.
func ByLang(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLang, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
