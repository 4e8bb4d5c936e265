// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/casemine/casemine/ent/admingrouplink"
)

// AdminGroupLink is the model entity for the AdminGroupLink schema.
type AdminGroupLink struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AdminID holds the value of the "admin_id" field.
	AdminID string `json:"admin_id,omitempty"`
	// GroupID holds the value of the "group_id" field.
	GroupID string `json:"group_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdminGroupLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case admingrouplink.FieldID:
			values[i] = new(sql.NullInt64)
		case admingrouplink.FieldAdminID, admingrouplink.FieldGroupID:
			values[i] = new(sql.NullString)
		case admingrouplink.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdminGroupLink fields.
func (_m *AdminGroupLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case admingrouplink.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case admingrouplink.FieldAdminID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field admin_id", values[i])
			} else if value.Valid {
				_m.AdminID = value.String
			}
		case admingrouplink.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case admingrouplink.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdminGroupLink.
// This includes values selected through modifiers, order, etc.
func (_m *AdminGroupLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AdminGroupLink.
// Note that you need to call AdminGroupLink.Unwrap() before calling this method if this AdminGroupLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdminGroupLink) Update() *AdminGroupLinkUpdateOne {
	return NewAdminGroupLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdminGroupLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdminGroupLink) Unwrap() *AdminGroupLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdminGroupLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdminGroupLink) String() string {
	var builder strings.Builder
	builder.WriteString("AdminGroupLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("admin_id=")
	builder.WriteString(_m.AdminID)
	builder.WriteString(", ")
	builder.WriteString("group_id=")
	builder.WriteString(_m.GroupID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AdminGroupLinks is a parsable slice of AdminGroupLink.
type AdminGroupLinks []*AdminGroupLink
