// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/casemine/casemine/ent/groupbuffer"
)

// GroupBuffer is the model entity for the GroupBuffer schema.
type GroupBuffer struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BufferText holds the value of the "buffer_text" field.
	BufferText string `json:"buffer_text,omitempty"`
	// DocUrls holds the value of the "doc_urls" field.
	DocUrls []string `json:"doc_urls,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GroupBuffer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case groupbuffer.FieldDocUrls:
			values[i] = new([]byte)
		case groupbuffer.FieldID, groupbuffer.FieldBufferText:
			values[i] = new(sql.NullString)
		case groupbuffer.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GroupBuffer fields.
func (_m *GroupBuffer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case groupbuffer.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case groupbuffer.FieldBufferText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buffer_text", values[i])
			} else if value.Valid {
				_m.BufferText = value.String
			}
		case groupbuffer.FieldDocUrls:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field doc_urls", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DocUrls); err != nil {
					return fmt.Errorf("unmarshal field doc_urls: %w", err)
				}
			}
		case groupbuffer.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the GroupBuffer.
// This includes values selected through modifiers, order, etc.
func (_m *GroupBuffer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GroupBuffer.
// Note that you need to call GroupBuffer.Unwrap() before calling this method if this GroupBuffer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GroupBuffer) Update() *GroupBufferUpdateOne {
	return NewGroupBufferClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GroupBuffer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GroupBuffer) Unwrap() *GroupBuffer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GroupBuffer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GroupBuffer) String() string {
	var builder strings.Builder
	builder.WriteString("GroupBuffer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("buffer_text=")
	builder.WriteString(_m.BufferText)
	builder.WriteString(", ")
	builder.WriteString("doc_urls=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocUrls))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GroupBuffers is a parsable slice of GroupBuffer.
type GroupBuffers []*GroupBuffer
