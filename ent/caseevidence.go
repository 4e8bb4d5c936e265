// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/casemine/casemine/ent/caseevidence"
	"github.com/casemine/casemine/ent/supportcase"
)

// CaseEvidence is the model entity for the CaseEvidence schema.
type CaseEvidence struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID string `json:"case_id,omitempty"`
	// MessageID holds the value of the "message_id" field.
	MessageID string `json:"message_id,omitempty"`
	// Denormalized from RawMessage for reaction-based confirmation
	MessageTs int64 `json:"message_ts,omitempty"`
	// Stable evidence order within the case
	Position int `json:"position,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CaseEvidenceQuery when eager-loading is set.
	Edges        CaseEvidenceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CaseEvidenceEdges holds the relations/edges for other nodes in the graph.
type CaseEvidenceEdges struct {
	// SupportCase holds the value of the support_case edge.
	SupportCase *SupportCase `json:"support_case,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SupportCaseOrErr returns the SupportCase value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CaseEvidenceEdges) SupportCaseOrErr() (*SupportCase, error) {
	if e.SupportCase != nil {
		return e.SupportCase, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: supportcase.Label}
	}
	return nil, &NotLoadedError{edge: "support_case"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CaseEvidence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case caseevidence.FieldID, caseevidence.FieldMessageTs, caseevidence.FieldPosition:
			values[i] = new(sql.NullInt64)
		case caseevidence.FieldCaseID, caseevidence.FieldMessageID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CaseEvidence fields.
func (_m *CaseEvidence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case caseevidence.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case caseevidence.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = value.String
			}
		case caseevidence.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case caseevidence.FieldMessageTs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field message_ts", values[i])
			} else if value.Valid {
				_m.MessageTs = value.Int64
			}
		case caseevidence.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CaseEvidence.
// This includes values selected through modifiers, order, etc.
func (_m *CaseEvidence) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySupportCase queries the "support_case" edge of the CaseEvidence entity.
func (_m *CaseEvidence) QuerySupportCase() *SupportCaseQuery {
	return NewCaseEvidenceClient(_m.config).QuerySupportCase(_m)
}

// Update returns a builder for updating this CaseEvidence.
// Note that you need to call CaseEvidence.Unwrap() before calling this method if this CaseEvidence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CaseEvidence) Update() *CaseEvidenceUpdateOne {
	return NewCaseEvidenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CaseEvidence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CaseEvidence) Unwrap() *CaseEvidence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CaseEvidence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CaseEvidence) String() string {
	var builder strings.Builder
	builder.WriteString("CaseEvidence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("case_id=")
	builder.WriteString(_m.CaseID)
	builder.WriteString(", ")
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	builder.WriteString("message_ts=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageTs))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteByte(')')
	return builder.String()
}

// CaseEvidences is a parsable slice of CaseEvidence.
type CaseEvidences []*CaseEvidence
