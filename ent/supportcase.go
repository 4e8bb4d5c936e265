// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/casemine/casemine/ent/supportcase"
)

// SupportCase is the model entity for the SupportCase schema.
type SupportCase struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// GroupID holds the value of the "group_id" field.
	GroupID string `json:"group_id,omitempty"`
	// Status holds the value of the "status" field.
	Status supportcase.Status `json:"status,omitempty"`
	// ProblemTitle holds the value of the "problem_title" field.
	ProblemTitle string `json:"problem_title,omitempty"`
	// ProblemSummary holds the value of the "problem_summary" field.
	ProblemSummary string `json:"problem_summary,omitempty"`
	// Non-empty whenever status=solved via extraction or resolution; may be blank for reaction-confirmed cases until derived
	SolutionSummary string `json:"solution_summary,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// Embedding of title+problem, used only for near-duplicate detection
	DedupEmbedding []float32 `json:"dedup_embedding,omitempty"`
	// InIndex holds the value of the "in_index" field.
	InIndex bool `json:"in_index,omitempty"`
	// ClosedEmoji holds the value of the "closed_emoji" field.
	ClosedEmoji *string `json:"closed_emoji,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SupportCaseQuery when eager-loading is set.
	Edges        SupportCaseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SupportCaseEdges holds the relations/edges for other nodes in the graph.
type SupportCaseEdges struct {
	// Evidence holds the value of the evidence edge.
	Evidence []*CaseEvidence `json:"evidence,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EvidenceOrErr returns the Evidence value or an error if the edge
// was not loaded in eager-loading.
func (e SupportCaseEdges) EvidenceOrErr() ([]*CaseEvidence, error) {
	if e.loadedTypes[0] {
		return e.Evidence, nil
	}
	return nil, &NotLoadedError{edge: "evidence"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SupportCase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case supportcase.FieldTags, supportcase.FieldDedupEmbedding:
			values[i] = new([]byte)
		case supportcase.FieldInIndex:
			values[i] = new(sql.NullBool)
		case supportcase.FieldID, supportcase.FieldGroupID, supportcase.FieldStatus, supportcase.FieldProblemTitle, supportcase.FieldProblemSummary, supportcase.FieldSolutionSummary, supportcase.FieldClosedEmoji:
			values[i] = new(sql.NullString)
		case supportcase.FieldCreatedAt, supportcase.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SupportCase fields.
func (_m *SupportCase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case supportcase.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case supportcase.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case supportcase.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = supportcase.Status(value.String)
			}
		case supportcase.FieldProblemTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem_title", values[i])
			} else if value.Valid {
				_m.ProblemTitle = value.String
			}
		case supportcase.FieldProblemSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem_summary", values[i])
			} else if value.Valid {
				_m.ProblemSummary = value.String
			}
		case supportcase.FieldSolutionSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field solution_summary", values[i])
			} else if value.Valid {
				_m.SolutionSummary = value.String
			}
		case supportcase.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case supportcase.FieldDedupEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dedup_embedding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DedupEmbedding); err != nil {
					return fmt.Errorf("unmarshal field dedup_embedding: %w", err)
				}
			}
		case supportcase.FieldInIndex:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field in_index", values[i])
			} else if value.Valid {
				_m.InIndex = value.Bool
			}
		case supportcase.FieldClosedEmoji:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field closed_emoji", values[i])
			} else if value.Valid {
				_m.ClosedEmoji = new(string)
				*_m.ClosedEmoji = value.String
			}
		case supportcase.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case supportcase.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SupportCase.
// This includes values selected through modifiers, order, etc.
func (_m *SupportCase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvidence queries the "evidence" edge of the SupportCase entity.
func (_m *SupportCase) QueryEvidence() *CaseEvidenceQuery {
	return NewSupportCaseClient(_m.config).QueryEvidence(_m)
}

// Update returns a builder for updating this SupportCase.
// Note that you need to call SupportCase.Unwrap() before calling this method if this SupportCase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SupportCase) Update() *SupportCaseUpdateOne {
	return NewSupportCaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SupportCase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SupportCase) Unwrap() *SupportCase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SupportCase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SupportCase) String() string {
	var builder strings.Builder
	builder.WriteString("SupportCase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("group_id=")
	builder.WriteString(_m.GroupID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("problem_title=")
	builder.WriteString(_m.ProblemTitle)
	builder.WriteString(", ")
	builder.WriteString("problem_summary=")
	builder.WriteString(_m.ProblemSummary)
	builder.WriteString(", ")
	builder.WriteString("solution_summary=")
	builder.WriteString(_m.SolutionSummary)
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("dedup_embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.DedupEmbedding))
	builder.WriteString(", ")
	builder.WriteString("in_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.InIndex))
	builder.WriteString(", ")
	if v := _m.ClosedEmoji; v != nil {
		builder.WriteString("closed_emoji=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SupportCases is a parsable slice of SupportCase.
type SupportCases []*SupportCase
