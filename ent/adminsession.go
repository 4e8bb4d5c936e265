// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/casemine/casemine/ent/adminsession"
)

// AdminSession is the model entity for the AdminSession schema.
type AdminSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// State holds the value of the "state" field.
	State adminsession.State `json:"state,omitempty"`
	// PendingGroupID holds the value of the "pending_group_id" field.
	PendingGroupID *string `json:"pending_group_id,omitempty"`
	// PendingGroupName holds the value of the "pending_group_name" field.
	PendingGroupName *string `json:"pending_group_name,omitempty"`
	// Single-use history token awaiting QR scan
	PendingToken *string `json:"pending_token,omitempty"`
	// Lang holds the value of the "lang" field.
	Lang adminsession.Lang `json:"lang,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdminSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case adminsession.FieldID, adminsession.FieldState, adminsession.FieldPendingGroupID, adminsession.FieldPendingGroupName, adminsession.FieldPendingToken, adminsession.FieldLang:
			values[i] = new(sql.NullString)
		case adminsession.FieldCreatedAt, adminsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdminSession fields.
func (_m *AdminSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case adminsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case adminsession.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = adminsession.State(value.String)
			}
		case adminsession.FieldPendingGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pending_group_id", values[i])
			} else if value.Valid {
				_m.PendingGroupID = new(string)
				*_m.PendingGroupID = value.String
			}
		case adminsession.FieldPendingGroupName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pending_group_name", values[i])
			} else if value.Valid {
				_m.PendingGroupName = new(string)
				*_m.PendingGroupName = value.String
			}
		case adminsession.FieldPendingToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pending_token", values[i])
			} else if value.Valid {
				_m.PendingToken = new(string)
				*_m.PendingToken = value.String
			}
		case adminsession.FieldLang:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lang", values[i])
			} else if value.Valid {
				_m.Lang = adminsession.Lang(value.String)
			}
		case adminsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case adminsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdminSession.
// This includes values selected through modifiers, order, etc.
func (_m *AdminSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AdminSession.
// Note that you need to call AdminSession.Unwrap() before calling this method if this AdminSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdminSession) Update() *AdminSessionUpdateOne {
	return NewAdminSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdminSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdminSession) Unwrap() *AdminSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdminSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdminSession) String() string {
	var builder strings.Builder
	builder.WriteString("AdminSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	if v := _m.PendingGroupID; v != nil {
		builder.WriteString("pending_group_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PendingGroupName; v != nil {
		builder.WriteString("pending_group_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PendingToken; v != nil {
		builder.WriteString("pending_token=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("lang=")
	builder.WriteString(fmt.Sprintf("%v", _m.Lang))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AdminSessions is a parsable slice of AdminSession.
type AdminSessions []*AdminSession
