// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/casemine/casemine/ent/rawmessage"
)

// RawMessage is the model entity for the RawMessage schema.
type RawMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// GroupID holds the value of the "group_id" field.
	GroupID string `json:"group_id,omitempty"`
	// Transport message id, unique within a group
	MessageID string `json:"message_id,omitempty"`
	// Message timestamp in milliseconds
	Ts int64 `json:"ts,omitempty"`
	// SenderHash holds the value of the "sender_hash" field.
	SenderHash string `json:"sender_hash,omitempty"`
	// SenderName holds the value of the "sender_name" field.
	SenderName *string `json:"sender_name,omitempty"`
	// Message text, including appended image OCR markers
	ContentText string `json:"content_text,omitempty"`
	// Relative paths under the image root, in attachment order
	ImagePaths []string `json:"image_paths,omitempty"`
	// ReplyToID holds the value of the "reply_to_id" field.
	ReplyToID *string `json:"reply_to_id,omitempty"`
	// ReactionCount holds the value of the "reaction_count" field.
	ReactionCount int `json:"reaction_count,omitempty"`
	// Sender matches the configured bot sender hash
	FromBot bool `json:"from_bot,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RawMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rawmessage.FieldImagePaths:
			values[i] = new([]byte)
		case rawmessage.FieldFromBot:
			values[i] = new(sql.NullBool)
		case rawmessage.FieldTs, rawmessage.FieldReactionCount:
			values[i] = new(sql.NullInt64)
		case rawmessage.FieldID, rawmessage.FieldGroupID, rawmessage.FieldMessageID, rawmessage.FieldSenderHash, rawmessage.FieldSenderName, rawmessage.FieldContentText, rawmessage.FieldReplyToID:
			values[i] = new(sql.NullString)
		case rawmessage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RawMessage fields.
func (_m *RawMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rawmessage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case rawmessage.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case rawmessage.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case rawmessage.FieldTs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ts", values[i])
			} else if value.Valid {
				_m.Ts = value.Int64
			}
		case rawmessage.FieldSenderHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_hash", values[i])
			} else if value.Valid {
				_m.SenderHash = value.String
			}
		case rawmessage.FieldSenderName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_name", values[i])
			} else if value.Valid {
				_m.SenderName = new(string)
				*_m.SenderName = value.String
			}
		case rawmessage.FieldContentText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_text", values[i])
			} else if value.Valid {
				_m.ContentText = value.String
			}
		case rawmessage.FieldImagePaths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field image_paths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ImagePaths); err != nil {
					return fmt.Errorf("unmarshal field image_paths: %w", err)
				}
			}
		case rawmessage.FieldReplyToID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reply_to_id", values[i])
			} else if value.Valid {
				_m.ReplyToID = new(string)
				*_m.ReplyToID = value.String
			}
		case rawmessage.FieldReactionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reaction_count", values[i])
			} else if value.Valid {
				_m.ReactionCount = int(value.Int64)
			}
		case rawmessage.FieldFromBot:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field from_bot", values[i])
			} else if value.Valid {
				_m.FromBot = value.Bool
			}
		case rawmessage.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RawMessage.
// This includes values selected through modifiers, order, etc.
func (_m *RawMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RawMessage.
// Note that you need to call RawMessage.Unwrap() before calling this method if this RawMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RawMessage) Update() *RawMessageUpdateOne {
	return NewRawMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RawMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RawMessage) Unwrap() *RawMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RawMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RawMessage) String() string {
	var builder strings.Builder
	builder.WriteString("RawMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("group_id=")
	builder.WriteString(_m.GroupID)
	builder.WriteString(", ")
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	builder.WriteString("ts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ts))
	builder.WriteString(", ")
	builder.WriteString("sender_hash=")
	builder.WriteString(_m.SenderHash)
	builder.WriteString(", ")
	if v := _m.SenderName; v != nil {
		builder.WriteString("sender_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("content_text=")
	builder.WriteString(_m.ContentText)
	builder.WriteString(", ")
	builder.WriteString("image_paths=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImagePaths))
	builder.WriteString(", ")
	if v := _m.ReplyToID; v != nil {
		builder.WriteString("reply_to_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("reaction_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReactionCount))
	builder.WriteString(", ")
	builder.WriteString("from_bot=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromBot))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RawMessages is a parsable slice of RawMessage.
type RawMessages []*RawMessage
