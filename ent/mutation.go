// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/casemine/casemine/ent/admingrouplink"
	"github.com/casemine/casemine/ent/adminsession"
	"github.com/casemine/casemine/ent/caseevidence"
	"github.com/casemine/casemine/ent/groupbuffer"
	"github.com/casemine/casemine/ent/historytoken"
	"github.com/casemine/casemine/ent/job"
	"github.com/casemine/casemine/ent/predicate"
	"github.com/casemine/casemine/ent/rawmessage"
	"github.com/casemine/casemine/ent/reaction"
	"github.com/casemine/casemine/ent/sentreply"
	"github.com/casemine/casemine/ent/supportcase"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdminGroupLink = "AdminGroupLink"
	TypeAdminSession   = "AdminSession"
	TypeCaseEvidence   = "CaseEvidence"
	TypeGroupBuffer    = "GroupBuffer"
	TypeHistoryToken   = "HistoryToken"
	TypeJob            = "Job"
	TypeRawMessage     = "RawMessage"
	TypeReaction       = "Reaction"
	TypeSentReply      = "SentReply"
	TypeSupportCase    = "SupportCase"
)

// AdminGroupLinkMutation represents an operation that mutates the AdminGroupLink nodes in the graph.
type AdminGroupLinkMutation struct {
	config
	op            Op
	typ           string
	id            *int
	admin_id      *string
	group_id      *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AdminGroupLink, error)
	predicates    []predicate.AdminGroupLink
}

var _ ent.Mutation = (*AdminGroupLinkMutation)(nil)

// admingrouplinkOption allows management of the mutation configuration using functional options.
type admingrouplinkOption func(*AdminGroupLinkMutation)

// newAdminGroupLinkMutation creates new mutation for the AdminGroupLink entity.
func newAdminGroupLinkMutation(c config, op Op, opts ...admingrouplinkOption) *AdminGroupLinkMutation {
	m := &AdminGroupLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeAdminGroupLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdminGroupLinkID sets the ID field of the mutation.
func withAdminGroupLinkID(id int) admingrouplinkOption {
	return func(m *AdminGroupLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *AdminGroupLink
		)
		m.oldValue = func(ctx context.Context) (*AdminGroupLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdminGroupLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdminGroupLink sets the old AdminGroupLink of the mutation.
func withAdminGroupLink(node *AdminGroupLink) admingrouplinkOption {
	return func(m *AdminGroupLinkMutation) {
		m.oldValue = func(context.Context) (*AdminGroupLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdminGroupLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdminGroupLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdminGroupLinkMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdminGroupLinkMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdminGroupLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAdminID sets the "admin_id" field.
func (m *AdminGroupLinkMutation) SetAdminID(s string) {
	m.admin_id = &s
}

// AdminID returns the value of the "admin_id" field in the mutation.
func (m *AdminGroupLinkMutation) AdminID() (r string, exists bool) {
	v := m.admin_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminID returns the old "admin_id" field's value of the AdminGroupLink entity.
// If the AdminGroupLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminGroupLinkMutation) OldAdminID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminID: %w", err)
	}
	return oldValue.AdminID, nil
}

// ResetAdminID resets all changes to the "admin_id" field.
func (m *AdminGroupLinkMutation) ResetAdminID() {
	m.admin_id = nil
}

// SetGroupID sets the "group_id" field.
func (m *AdminGroupLinkMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *AdminGroupLinkMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the AdminGroupLink entity.
// If the AdminGroupLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminGroupLinkMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *AdminGroupLinkMutation) ResetGroupID() {
	m.group_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AdminGroupLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AdminGroupLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AdminGroupLink entity.
// If the AdminGroupLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminGroupLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AdminGroupLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AdminGroupLinkMutation builder.
func (m *AdminGroupLinkMutation) Where(ps ...predicate.AdminGroupLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdminGroupLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdminGroupLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdminGroupLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdminGroupLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdminGroupLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdminGroupLink).
func (m *AdminGroupLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdminGroupLinkMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.admin_id != nil {
		fields = append(fields, admingrouplink.FieldAdminID)
	}
	if m.group_id != nil {
		fields = append(fields, admingrouplink.FieldGroupID)
	}
	if m.created_at != nil {
		fields = append(fields, admingrouplink.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdminGroupLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case admingrouplink.FieldAdminID:
		return m.AdminID()
	case admingrouplink.FieldGroupID:
		return m.GroupID()
	case admingrouplink.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdminGroupLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case admingrouplink.FieldAdminID:
		return m.OldAdminID(ctx)
	case admingrouplink.FieldGroupID:
		return m.OldGroupID(ctx)
	case admingrouplink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AdminGroupLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminGroupLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case admingrouplink.FieldAdminID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminID(v)
		return nil
	case admingrouplink.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case admingrouplink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AdminGroupLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdminGroupLinkMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdminGroupLinkMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminGroupLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AdminGroupLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdminGroupLinkMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdminGroupLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdminGroupLinkMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AdminGroupLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdminGroupLinkMutation) ResetField(name string) error {
	switch name {
	case admingrouplink.FieldAdminID:
		m.ResetAdminID()
		return nil
	case admingrouplink.FieldGroupID:
		m.ResetGroupID()
		return nil
	case admingrouplink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AdminGroupLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdminGroupLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdminGroupLinkMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdminGroupLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdminGroupLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdminGroupLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdminGroupLinkMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdminGroupLinkMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AdminGroupLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdminGroupLinkMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AdminGroupLink edge %s", name)
}

// AdminSessionMutation represents an operation that mutates the AdminSession nodes in the graph.
type AdminSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	state              *adminsession.State
	pending_group_id   *string
	pending_group_name *string
	pending_token      *string
	lang               *adminsession.Lang
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*AdminSession, error)
	predicates         []predicate.AdminSession
}

var _ ent.Mutation = (*AdminSessionMutation)(nil)

// adminsessionOption allows management of the mutation configuration using functional options.
type adminsessionOption func(*AdminSessionMutation)

// newAdminSessionMutation creates new mutation for the AdminSession entity.
func newAdminSessionMutation(c config, op Op, opts ...adminsessionOption) *AdminSessionMutation {
	m := &AdminSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAdminSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdminSessionID sets the ID field of the mutation.
func withAdminSessionID(id string) adminsessionOption {
	return func(m *AdminSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AdminSession
		)
		m.oldValue = func(ctx context.Context) (*AdminSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdminSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdminSession sets the old AdminSession of the mutation.
func withAdminSession(node *AdminSession) adminsessionOption {
	return func(m *AdminSessionMutation) {
		m.oldValue = func(context.Context) (*AdminSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdminSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdminSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AdminSession entities.
func (m *AdminSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdminSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdminSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdminSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetState sets the "state" field.
func (m *AdminSessionMutation) SetState(a adminsession.State) {
	m.state = &a
}

// State returns the value of the "state" field in the mutation.
func (m *AdminSessionMutation) State() (r adminsession.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the AdminSession entity.
// If the AdminSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminSessionMutation) OldState(ctx context.Context) (v adminsession.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *AdminSessionMutation) ResetState() {
	m.state = nil
}

// SetPendingGroupID sets the "pending_group_id" field.
func (m *AdminSessionMutation) SetPendingGroupID(s string) {
	m.pending_group_id = &s
}

// PendingGroupID returns the value of the "pending_group_id" field in the mutation.
func (m *AdminSessionMutation) PendingGroupID() (r string, exists bool) {
	v := m.pending_group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingGroupID returns the old "pending_group_id" field's value of the AdminSession entity.
// If the AdminSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminSessionMutation) OldPendingGroupID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingGroupID: %w", err)
	}
	return oldValue.PendingGroupID, nil
}

// ClearPendingGroupID clears the value of the "pending_group_id" field.
func (m *AdminSessionMutation) ClearPendingGroupID() {
	m.pending_group_id = nil
	m.clearedFields[adminsession.FieldPendingGroupID] = struct{}{}
}

// PendingGroupIDCleared returns if the "pending_group_id" field was cleared in this mutation.
func (m *AdminSessionMutation) PendingGroupIDCleared() bool {
	_, ok := m.clearedFields[adminsession.FieldPendingGroupID]
	return ok
}

// ResetPendingGroupID resets all changes to the "pending_group_id" field.
func (m *AdminSessionMutation) ResetPendingGroupID() {
	m.pending_group_id = nil
	delete(m.clearedFields, adminsession.FieldPendingGroupID)
}

// SetPendingGroupName sets the "pending_group_name" field.
func (m *AdminSessionMutation) SetPendingGroupName(s string) {
	m.pending_group_name = &s
}

// PendingGroupName returns the value of the "pending_group_name" field in the mutation.
func (m *AdminSessionMutation) PendingGroupName() (r string, exists bool) {
	v := m.pending_group_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingGroupName returns the old "pending_group_name" field's value of the AdminSession entity.
// If the AdminSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminSessionMutation) OldPendingGroupName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingGroupName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingGroupName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingGroupName: %w", err)
	}
	return oldValue.PendingGroupName, nil
}

// ClearPendingGroupName clears the value of the "pending_group_name" field.
func (m *AdminSessionMutation) ClearPendingGroupName() {
	m.pending_group_name = nil
	m.clearedFields[adminsession.FieldPendingGroupName] = struct{}{}
}

// PendingGroupNameCleared returns if the "pending_group_name" field was cleared in this mutation.
func (m *AdminSessionMutation) PendingGroupNameCleared() bool {
	_, ok := m.clearedFields[adminsession.FieldPendingGroupName]
	return ok
}

// ResetPendingGroupName resets all changes to the "pending_group_name" field.
func (m *AdminSessionMutation) ResetPendingGroupName() {
	m.pending_group_name = nil
	delete(m.clearedFields, adminsession.FieldPendingGroupName)
}

// SetPendingToken sets the "pending_token" field.
func (m *AdminSessionMutation) SetPendingToken(s string) {
	m.pending_token = &s
}

// PendingToken returns the value of the "pending_token" field in the mutation.
func (m *AdminSessionMutation) PendingToken() (r string, exists bool) {
	v := m.pending_token
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingToken returns the old "pending_token" field's value of the AdminSession entity.
// If the AdminSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminSessionMutation) OldPendingToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingToken: %w", err)
	}
	return oldValue.PendingToken, nil
}

// ClearPendingToken clears the value of the "pending_token" field.
func (m *AdminSessionMutation) ClearPendingToken() {
	m.pending_token = nil
	m.clearedFields[adminsession.FieldPendingToken] = struct{}{}
}

// PendingTokenCleared returns if the "pending_token" field was cleared in this mutation.
func (m *AdminSessionMutation) PendingTokenCleared() bool {
	_, ok := m.clearedFields[adminsession.FieldPendingToken]
	return ok
}

// ResetPendingToken resets all changes to the "pending_token" field.
func (m *AdminSessionMutation) ResetPendingToken() {
	m.pending_token = nil
	delete(m.clearedFields, adminsession.FieldPendingToken)
}

// SetLang sets the "lang" field.
func (m *AdminSessionMutation) SetLang(a adminsession.Lang) {
	m.lang = &a
}

// Lang returns the value of the "lang" field in the mutation.
func (m *AdminSessionMutation) Lang() (r adminsession.Lang, exists bool) {
	v := m.lang
	if v == nil {
		return
	}
	return *v, true
}

// OldLang returns the old "lang" field's value of the AdminSession entity.
// If the AdminSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminSessionMutation) OldLang(ctx context.Context) (v adminsession.Lang, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLang is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLang requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLang: %w", err)
	}
	return oldValue.Lang, nil
}

// ResetLang resets all changes to the "lang" field.
func (m *AdminSessionMutation) ResetLang() {
	m.lang = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AdminSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AdminSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AdminSession entity.
// If the AdminSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AdminSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AdminSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AdminSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AdminSession entity.
// If the AdminSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AdminSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AdminSessionMutation builder.
func (m *AdminSessionMutation) Where(ps ...predicate.AdminSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdminSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdminSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdminSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdminSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdminSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdminSession).
func (m *AdminSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdminSessionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.state != nil {
		fields = append(fields, adminsession.FieldState)
	}
	if m.pending_group_id != nil {
		fields = append(fields, adminsession.FieldPendingGroupID)
	}
	if m.pending_group_name != nil {
		fields = append(fields, adminsession.FieldPendingGroupName)
	}
	if m.pending_token != nil {
		fields = append(fields, adminsession.FieldPendingToken)
	}
	if m.lang != nil {
		fields = append(fields, adminsession.FieldLang)
	}
	if m.created_at != nil {
		fields = append(fields, adminsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, adminsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdminSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case adminsession.FieldState:
		return m.State()
	case adminsession.FieldPendingGroupID:
		return m.PendingGroupID()
	case adminsession.FieldPendingGroupName:
		return m.PendingGroupName()
	case adminsession.FieldPendingToken:
		return m.PendingToken()
	case adminsession.FieldLang:
		return m.Lang()
	case adminsession.FieldCreatedAt:
		return m.CreatedAt()
	case adminsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdminSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case adminsession.FieldState:
		return m.OldState(ctx)
	case adminsession.FieldPendingGroupID:
		return m.OldPendingGroupID(ctx)
	case adminsession.FieldPendingGroupName:
		return m.OldPendingGroupName(ctx)
	case adminsession.FieldPendingToken:
		return m.OldPendingToken(ctx)
	case adminsession.FieldLang:
		return m.OldLang(ctx)
	case adminsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case adminsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AdminSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case adminsession.FieldState:
		v, ok := value.(adminsession.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case adminsession.FieldPendingGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingGroupID(v)
		return nil
	case adminsession.FieldPendingGroupName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingGroupName(v)
		return nil
	case adminsession.FieldPendingToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingToken(v)
		return nil
	case adminsession.FieldLang:
		v, ok := value.(adminsession.Lang)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLang(v)
		return nil
	case adminsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case adminsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AdminSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdminSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdminSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AdminSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdminSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(adminsession.FieldPendingGroupID) {
		fields = append(fields, adminsession.FieldPendingGroupID)
	}
	if m.FieldCleared(adminsession.FieldPendingGroupName) {
		fields = append(fields, adminsession.FieldPendingGroupName)
	}
	if m.FieldCleared(adminsession.FieldPendingToken) {
		fields = append(fields, adminsession.FieldPendingToken)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdminSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdminSessionMutation) ClearField(name string) error {
	switch name {
	case adminsession.FieldPendingGroupID:
		m.ClearPendingGroupID()
		return nil
	case adminsession.FieldPendingGroupName:
		m.ClearPendingGroupName()
		return nil
	case adminsession.FieldPendingToken:
		m.ClearPendingToken()
		return nil
	}
	return fmt.Errorf("unknown AdminSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdminSessionMutation) ResetField(name string) error {
	switch name {
	case adminsession.FieldState:
		m.ResetState()
		return nil
	case adminsession.FieldPendingGroupID:
		m.ResetPendingGroupID()
		return nil
	case adminsession.FieldPendingGroupName:
		m.ResetPendingGroupName()
		return nil
	case adminsession.FieldPendingToken:
		m.ResetPendingToken()
		return nil
	case adminsession.FieldLang:
		m.ResetLang()
		return nil
	case adminsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case adminsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AdminSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdminSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdminSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdminSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdminSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdminSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdminSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdminSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AdminSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdminSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AdminSession edge %s", name)
}

// CaseEvidenceMutation represents an operation that mutates the CaseEvidence nodes in the graph.
type CaseEvidenceMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	message_id          *string
	message_ts          *int64
	addmessage_ts       *int64
	position            *int
	addposition         *int
	clearedFields       map[string]struct{}
	support_case        *string
	clearedsupport_case bool
	done                bool
	oldValue            func(context.Context) (*CaseEvidence, error)
	predicates          []predicate.CaseEvidence
}

var _ ent.Mutation = (*CaseEvidenceMutation)(nil)

// caseevidenceOption allows management of the mutation configuration using functional options.
type caseevidenceOption func(*CaseEvidenceMutation)

// newCaseEvidenceMutation creates new mutation for the CaseEvidence entity.
func newCaseEvidenceMutation(c config, op Op, opts ...caseevidenceOption) *CaseEvidenceMutation {
	m := &CaseEvidenceMutation{
		config:        c,
		op:            op,
		typ:           TypeCaseEvidence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCaseEvidenceID sets the ID field of the mutation.
func withCaseEvidenceID(id int) caseevidenceOption {
	return func(m *CaseEvidenceMutation) {
		var (
			err   error
			once  sync.Once
			value *CaseEvidence
		)
		m.oldValue = func(ctx context.Context) (*CaseEvidence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CaseEvidence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCaseEvidence sets the old CaseEvidence of the mutation.
func withCaseEvidence(node *CaseEvidence) caseevidenceOption {
	return func(m *CaseEvidenceMutation) {
		m.oldValue = func(context.Context) (*CaseEvidence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CaseEvidenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CaseEvidenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CaseEvidenceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CaseEvidenceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CaseEvidence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *CaseEvidenceMutation) SetCaseID(s string) {
	m.support_case = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *CaseEvidenceMutation) CaseID() (r string, exists bool) {
	v := m.support_case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the CaseEvidence entity.
// If the CaseEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseEvidenceMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *CaseEvidenceMutation) ResetCaseID() {
	m.support_case = nil
}

// SetMessageID sets the "message_id" field.
func (m *CaseEvidenceMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *CaseEvidenceMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the CaseEvidence entity.
// If the CaseEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseEvidenceMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *CaseEvidenceMutation) ResetMessageID() {
	m.message_id = nil
}

// SetMessageTs sets the "message_ts" field.
func (m *CaseEvidenceMutation) SetMessageTs(i int64) {
	m.message_ts = &i
	m.addmessage_ts = nil
}

// MessageTs returns the value of the "message_ts" field in the mutation.
func (m *CaseEvidenceMutation) MessageTs() (r int64, exists bool) {
	v := m.message_ts
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageTs returns the old "message_ts" field's value of the CaseEvidence entity.
// If the CaseEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseEvidenceMutation) OldMessageTs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageTs: %w", err)
	}
	return oldValue.MessageTs, nil
}

// AddMessageTs adds i to the "message_ts" field.
func (m *CaseEvidenceMutation) AddMessageTs(i int64) {
	if m.addmessage_ts != nil {
		*m.addmessage_ts += i
	} else {
		m.addmessage_ts = &i
	}
}

// AddedMessageTs returns the value that was added to the "message_ts" field in this mutation.
func (m *CaseEvidenceMutation) AddedMessageTs() (r int64, exists bool) {
	v := m.addmessage_ts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageTs resets all changes to the "message_ts" field.
func (m *CaseEvidenceMutation) ResetMessageTs() {
	m.message_ts = nil
	m.addmessage_ts = nil
}

// SetPosition sets the "position" field.
func (m *CaseEvidenceMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *CaseEvidenceMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the CaseEvidence entity.
// If the CaseEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseEvidenceMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *CaseEvidenceMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *CaseEvidenceMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *CaseEvidenceMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetSupportCaseID sets the "support_case" edge to the SupportCase entity by id.
func (m *CaseEvidenceMutation) SetSupportCaseID(id string) {
	m.support_case = &id
}

// ClearSupportCase clears the "support_case" edge to the SupportCase entity.
func (m *CaseEvidenceMutation) ClearSupportCase() {
	m.clearedsupport_case = true
	m.clearedFields[caseevidence.FieldCaseID] = struct{}{}
}

// SupportCaseCleared reports if the "support_case" edge to the SupportCase entity was cleared.
func (m *CaseEvidenceMutation) SupportCaseCleared() bool {
	return m.clearedsupport_case
}

// SupportCaseID returns the "support_case" edge ID in the mutation.
func (m *CaseEvidenceMutation) SupportCaseID() (id string, exists bool) {
	if m.support_case != nil {
		return *m.support_case, true
	}
	return
}

// SupportCaseIDs returns the "support_case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SupportCaseID instead. It exists only for internal usage by the builders.
func (m *CaseEvidenceMutation) SupportCaseIDs() (ids []string) {
	if id := m.support_case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSupportCase resets all changes to the "support_case" edge.
func (m *CaseEvidenceMutation) ResetSupportCase() {
	m.support_case = nil
	m.clearedsupport_case = false
}

// Where appends a list predicates to the CaseEvidenceMutation builder.
func (m *CaseEvidenceMutation) Where(ps ...predicate.CaseEvidence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CaseEvidenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CaseEvidenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CaseEvidence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CaseEvidenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CaseEvidenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CaseEvidence).
func (m *CaseEvidenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CaseEvidenceMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.support_case != nil {
		fields = append(fields, caseevidence.FieldCaseID)
	}
	if m.message_id != nil {
		fields = append(fields, caseevidence.FieldMessageID)
	}
	if m.message_ts != nil {
		fields = append(fields, caseevidence.FieldMessageTs)
	}
	if m.position != nil {
		fields = append(fields, caseevidence.FieldPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CaseEvidenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case caseevidence.FieldCaseID:
		return m.CaseID()
	case caseevidence.FieldMessageID:
		return m.MessageID()
	case caseevidence.FieldMessageTs:
		return m.MessageTs()
	case caseevidence.FieldPosition:
		return m.Position()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CaseEvidenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case caseevidence.FieldCaseID:
		return m.OldCaseID(ctx)
	case caseevidence.FieldMessageID:
		return m.OldMessageID(ctx)
	case caseevidence.FieldMessageTs:
		return m.OldMessageTs(ctx)
	case caseevidence.FieldPosition:
		return m.OldPosition(ctx)
	}
	return nil, fmt.Errorf("unknown CaseEvidence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseEvidenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case caseevidence.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case caseevidence.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case caseevidence.FieldMessageTs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageTs(v)
		return nil
	case caseevidence.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	}
	return fmt.Errorf("unknown CaseEvidence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CaseEvidenceMutation) AddedFields() []string {
	var fields []string
	if m.addmessage_ts != nil {
		fields = append(fields, caseevidence.FieldMessageTs)
	}
	if m.addposition != nil {
		fields = append(fields, caseevidence.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CaseEvidenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case caseevidence.FieldMessageTs:
		return m.AddedMessageTs()
	case caseevidence.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseEvidenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case caseevidence.FieldMessageTs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageTs(v)
		return nil
	case caseevidence.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown CaseEvidence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CaseEvidenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CaseEvidenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CaseEvidenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CaseEvidence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CaseEvidenceMutation) ResetField(name string) error {
	switch name {
	case caseevidence.FieldCaseID:
		m.ResetCaseID()
		return nil
	case caseevidence.FieldMessageID:
		m.ResetMessageID()
		return nil
	case caseevidence.FieldMessageTs:
		m.ResetMessageTs()
		return nil
	case caseevidence.FieldPosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown CaseEvidence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CaseEvidenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.support_case != nil {
		edges = append(edges, caseevidence.EdgeSupportCase)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CaseEvidenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case caseevidence.EdgeSupportCase:
		if id := m.support_case; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CaseEvidenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CaseEvidenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CaseEvidenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsupport_case {
		edges = append(edges, caseevidence.EdgeSupportCase)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CaseEvidenceMutation) EdgeCleared(name string) bool {
	switch name {
	case caseevidence.EdgeSupportCase:
		return m.clearedsupport_case
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CaseEvidenceMutation) ClearEdge(name string) error {
	switch name {
	case caseevidence.EdgeSupportCase:
		m.ClearSupportCase()
		return nil
	}
	return fmt.Errorf("unknown CaseEvidence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CaseEvidenceMutation) ResetEdge(name string) error {
	switch name {
	case caseevidence.EdgeSupportCase:
		m.ResetSupportCase()
		return nil
	}
	return fmt.Errorf("unknown CaseEvidence edge %s", name)
}

// GroupBufferMutation represents an operation that mutates the GroupBuffer nodes in the graph.
type GroupBufferMutation struct {
	config
	op             Op
	typ            string
	id             *string
	buffer_text    *string
	doc_urls       *[]string
	appenddoc_urls []string
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*GroupBuffer, error)
	predicates     []predicate.GroupBuffer
}

var _ ent.Mutation = (*GroupBufferMutation)(nil)

// groupbufferOption allows management of the mutation configuration using functional options.
type groupbufferOption func(*GroupBufferMutation)

// newGroupBufferMutation creates new mutation for the GroupBuffer entity.
func newGroupBufferMutation(c config, op Op, opts ...groupbufferOption) *GroupBufferMutation {
	m := &GroupBufferMutation{
		config:        c,
		op:            op,
		typ:           TypeGroupBuffer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupBufferID sets the ID field of the mutation.
func withGroupBufferID(id string) groupbufferOption {
	return func(m *GroupBufferMutation) {
		var (
			err   error
			once  sync.Once
			value *GroupBuffer
		)
		m.oldValue = func(ctx context.Context) (*GroupBuffer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GroupBuffer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroupBuffer sets the old GroupBuffer of the mutation.
func withGroupBuffer(node *GroupBuffer) groupbufferOption {
	return func(m *GroupBufferMutation) {
		m.oldValue = func(context.Context) (*GroupBuffer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupBufferMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupBufferMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GroupBuffer entities.
func (m *GroupBufferMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupBufferMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupBufferMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GroupBuffer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBufferText sets the "buffer_text" field.
func (m *GroupBufferMutation) SetBufferText(s string) {
	m.buffer_text = &s
}

// BufferText returns the value of the "buffer_text" field in the mutation.
func (m *GroupBufferMutation) BufferText() (r string, exists bool) {
	v := m.buffer_text
	if v == nil {
		return
	}
	return *v, true
}

// OldBufferText returns the old "buffer_text" field's value of the GroupBuffer entity.
// If the GroupBuffer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupBufferMutation) OldBufferText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBufferText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBufferText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBufferText: %w", err)
	}
	return oldValue.BufferText, nil
}

// ResetBufferText resets all changes to the "buffer_text" field.
func (m *GroupBufferMutation) ResetBufferText() {
	m.buffer_text = nil
}

// SetDocUrls sets the "doc_urls" field.
func (m *GroupBufferMutation) SetDocUrls(s []string) {
	m.doc_urls = &s
	m.appenddoc_urls = nil
}

// DocUrls returns the value of the "doc_urls" field in the mutation.
func (m *GroupBufferMutation) DocUrls() (r []string, exists bool) {
	v := m.doc_urls
	if v == nil {
		return
	}
	return *v, true
}

// OldDocUrls returns the old "doc_urls" field's value of the GroupBuffer entity.
// If the GroupBuffer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupBufferMutation) OldDocUrls(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocUrls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocUrls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocUrls: %w", err)
	}
	return oldValue.DocUrls, nil
}

// AppendDocUrls adds s to the "doc_urls" field.
func (m *GroupBufferMutation) AppendDocUrls(s []string) {
	m.appenddoc_urls = append(m.appenddoc_urls, s...)
}

// AppendedDocUrls returns the list of values that were appended to the "doc_urls" field in this mutation.
func (m *GroupBufferMutation) AppendedDocUrls() ([]string, bool) {
	if len(m.appenddoc_urls) == 0 {
		return nil, false
	}
	return m.appenddoc_urls, true
}

// ClearDocUrls clears the value of the "doc_urls" field.
func (m *GroupBufferMutation) ClearDocUrls() {
	m.doc_urls = nil
	m.appenddoc_urls = nil
	m.clearedFields[groupbuffer.FieldDocUrls] = struct{}{}
}

// DocUrlsCleared returns if the "doc_urls" field was cleared in this mutation.
func (m *GroupBufferMutation) DocUrlsCleared() bool {
	_, ok := m.clearedFields[groupbuffer.FieldDocUrls]
	return ok
}

// ResetDocUrls resets all changes to the "doc_urls" field.
func (m *GroupBufferMutation) ResetDocUrls() {
	m.doc_urls = nil
	m.appenddoc_urls = nil
	delete(m.clearedFields, groupbuffer.FieldDocUrls)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GroupBufferMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GroupBufferMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the GroupBuffer entity.
// If the GroupBuffer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupBufferMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GroupBufferMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the GroupBufferMutation builder.
func (m *GroupBufferMutation) Where(ps ...predicate.GroupBuffer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupBufferMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupBufferMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GroupBuffer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupBufferMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupBufferMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GroupBuffer).
func (m *GroupBufferMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupBufferMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.buffer_text != nil {
		fields = append(fields, groupbuffer.FieldBufferText)
	}
	if m.doc_urls != nil {
		fields = append(fields, groupbuffer.FieldDocUrls)
	}
	if m.updated_at != nil {
		fields = append(fields, groupbuffer.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupBufferMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case groupbuffer.FieldBufferText:
		return m.BufferText()
	case groupbuffer.FieldDocUrls:
		return m.DocUrls()
	case groupbuffer.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupBufferMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case groupbuffer.FieldBufferText:
		return m.OldBufferText(ctx)
	case groupbuffer.FieldDocUrls:
		return m.OldDocUrls(ctx)
	case groupbuffer.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GroupBuffer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupBufferMutation) SetField(name string, value ent.Value) error {
	switch name {
	case groupbuffer.FieldBufferText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBufferText(v)
		return nil
	case groupbuffer.FieldDocUrls:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocUrls(v)
		return nil
	case groupbuffer.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GroupBuffer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupBufferMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupBufferMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupBufferMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GroupBuffer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupBufferMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(groupbuffer.FieldDocUrls) {
		fields = append(fields, groupbuffer.FieldDocUrls)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupBufferMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupBufferMutation) ClearField(name string) error {
	switch name {
	case groupbuffer.FieldDocUrls:
		m.ClearDocUrls()
		return nil
	}
	return fmt.Errorf("unknown GroupBuffer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupBufferMutation) ResetField(name string) error {
	switch name {
	case groupbuffer.FieldBufferText:
		m.ResetBufferText()
		return nil
	case groupbuffer.FieldDocUrls:
		m.ResetDocUrls()
		return nil
	case groupbuffer.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown GroupBuffer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupBufferMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupBufferMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupBufferMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupBufferMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupBufferMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupBufferMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupBufferMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GroupBuffer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupBufferMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GroupBuffer edge %s", name)
}

// HistoryTokenMutation represents an operation that mutates the HistoryToken nodes in the graph.
type HistoryTokenMutation struct {
	config
	op            Op
	typ           string
	id            *string
	admin_id      *string
	group_id      *string
	expires_at    *time.Time
	consumed      *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*HistoryToken, error)
	predicates    []predicate.HistoryToken
}

var _ ent.Mutation = (*HistoryTokenMutation)(nil)

// historytokenOption allows management of the mutation configuration using functional options.
type historytokenOption func(*HistoryTokenMutation)

// newHistoryTokenMutation creates new mutation for the HistoryToken entity.
func newHistoryTokenMutation(c config, op Op, opts ...historytokenOption) *HistoryTokenMutation {
	m := &HistoryTokenMutation{
		config:        c,
		op:            op,
		typ:           TypeHistoryToken,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHistoryTokenID sets the ID field of the mutation.
func withHistoryTokenID(id string) historytokenOption {
	return func(m *HistoryTokenMutation) {
		var (
			err   error
			once  sync.Once
			value *HistoryToken
		)
		m.oldValue = func(ctx context.Context) (*HistoryToken, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HistoryToken.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHistoryToken sets the old HistoryToken of the mutation.
func withHistoryToken(node *HistoryToken) historytokenOption {
	return func(m *HistoryTokenMutation) {
		m.oldValue = func(context.Context) (*HistoryToken, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HistoryTokenMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HistoryTokenMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HistoryToken entities.
func (m *HistoryTokenMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HistoryTokenMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HistoryTokenMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HistoryToken.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAdminID sets the "admin_id" field.
func (m *HistoryTokenMutation) SetAdminID(s string) {
	m.admin_id = &s
}

// AdminID returns the value of the "admin_id" field in the mutation.
func (m *HistoryTokenMutation) AdminID() (r string, exists bool) {
	v := m.admin_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminID returns the old "admin_id" field's value of the HistoryToken entity.
// If the HistoryToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HistoryTokenMutation) OldAdminID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminID: %w", err)
	}
	return oldValue.AdminID, nil
}

// ResetAdminID resets all changes to the "admin_id" field.
func (m *HistoryTokenMutation) ResetAdminID() {
	m.admin_id = nil
}

// SetGroupID sets the "group_id" field.
func (m *HistoryTokenMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *HistoryTokenMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the HistoryToken entity.
// If the HistoryToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HistoryTokenMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *HistoryTokenMutation) ResetGroupID() {
	m.group_id = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *HistoryTokenMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *HistoryTokenMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the HistoryToken entity.
// If the HistoryToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HistoryTokenMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *HistoryTokenMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetConsumed sets the "consumed" field.
func (m *HistoryTokenMutation) SetConsumed(b bool) {
	m.consumed = &b
}

// Consumed returns the value of the "consumed" field in the mutation.
func (m *HistoryTokenMutation) Consumed() (r bool, exists bool) {
	v := m.consumed
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumed returns the old "consumed" field's value of the HistoryToken entity.
// If the HistoryToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HistoryTokenMutation) OldConsumed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumed: %w", err)
	}
	return oldValue.Consumed, nil
}

// ResetConsumed resets all changes to the "consumed" field.
func (m *HistoryTokenMutation) ResetConsumed() {
	m.consumed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *HistoryTokenMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HistoryTokenMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HistoryToken entity.
// If the HistoryToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HistoryTokenMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HistoryTokenMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the HistoryTokenMutation builder.
func (m *HistoryTokenMutation) Where(ps ...predicate.HistoryToken) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HistoryTokenMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HistoryTokenMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HistoryToken, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HistoryTokenMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HistoryTokenMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HistoryToken).
func (m *HistoryTokenMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HistoryTokenMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.admin_id != nil {
		fields = append(fields, historytoken.FieldAdminID)
	}
	if m.group_id != nil {
		fields = append(fields, historytoken.FieldGroupID)
	}
	if m.expires_at != nil {
		fields = append(fields, historytoken.FieldExpiresAt)
	}
	if m.consumed != nil {
		fields = append(fields, historytoken.FieldConsumed)
	}
	if m.created_at != nil {
		fields = append(fields, historytoken.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HistoryTokenMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case historytoken.FieldAdminID:
		return m.AdminID()
	case historytoken.FieldGroupID:
		return m.GroupID()
	case historytoken.FieldExpiresAt:
		return m.ExpiresAt()
	case historytoken.FieldConsumed:
		return m.Consumed()
	case historytoken.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HistoryTokenMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case historytoken.FieldAdminID:
		return m.OldAdminID(ctx)
	case historytoken.FieldGroupID:
		return m.OldGroupID(ctx)
	case historytoken.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case historytoken.FieldConsumed:
		return m.OldConsumed(ctx)
	case historytoken.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HistoryToken field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HistoryTokenMutation) SetField(name string, value ent.Value) error {
	switch name {
	case historytoken.FieldAdminID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminID(v)
		return nil
	case historytoken.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case historytoken.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case historytoken.FieldConsumed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumed(v)
		return nil
	case historytoken.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HistoryToken field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HistoryTokenMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HistoryTokenMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HistoryTokenMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown HistoryToken numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HistoryTokenMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HistoryTokenMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HistoryTokenMutation) ClearField(name string) error {
	return fmt.Errorf("unknown HistoryToken nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HistoryTokenMutation) ResetField(name string) error {
	switch name {
	case historytoken.FieldAdminID:
		m.ResetAdminID()
		return nil
	case historytoken.FieldGroupID:
		m.ResetGroupID()
		return nil
	case historytoken.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case historytoken.FieldConsumed:
		m.ResetConsumed()
		return nil
	case historytoken.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown HistoryToken field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HistoryTokenMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HistoryTokenMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HistoryTokenMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HistoryTokenMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HistoryTokenMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HistoryTokenMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HistoryTokenMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown HistoryToken unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HistoryTokenMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown HistoryToken edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op               Op
	typ              string
	id               *string
	_type            *job.Type
	group_id         *string
	payload          *[]byte
	status           *job.Status
	attempts         *int
	addattempts      *int
	next_visible_at  *time.Time
	lease_expires_at *time.Time
	worker_id        *string
	error_message    *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Job, error)
	predicates       []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *JobMutation) SetType(j job.Type) {
	m._type = &j
}

// GetType returns the value of the "type" field in the mutation.
func (m *JobMutation) GetType() (r job.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldType(ctx context.Context) (v job.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *JobMutation) ResetType() {
	m._type = nil
}

// SetGroupID sets the "group_id" field.
func (m *JobMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *JobMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ClearGroupID clears the value of the "group_id" field.
func (m *JobMutation) ClearGroupID() {
	m.group_id = nil
	m.clearedFields[job.FieldGroupID] = struct{}{}
}

// GroupIDCleared returns if the "group_id" field was cleared in this mutation.
func (m *JobMutation) GroupIDCleared() bool {
	_, ok := m.clearedFields[job.FieldGroupID]
	return ok
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *JobMutation) ResetGroupID() {
	m.group_id = nil
	delete(m.clearedFields, job.FieldGroupID)
}

// SetPayload sets the "payload" field.
func (m *JobMutation) SetPayload(b []byte) {
	m.payload = &b
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JobMutation) Payload() (r []byte, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPayload(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *JobMutation) ResetPayload() {
	m.payload = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *JobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *JobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *JobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *JobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *JobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetNextVisibleAt sets the "next_visible_at" field.
func (m *JobMutation) SetNextVisibleAt(t time.Time) {
	m.next_visible_at = &t
}

// NextVisibleAt returns the value of the "next_visible_at" field in the mutation.
func (m *JobMutation) NextVisibleAt() (r time.Time, exists bool) {
	v := m.next_visible_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextVisibleAt returns the old "next_visible_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldNextVisibleAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextVisibleAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextVisibleAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextVisibleAt: %w", err)
	}
	return oldValue.NextVisibleAt, nil
}

// ResetNextVisibleAt resets all changes to the "next_visible_at" field.
func (m *JobMutation) ResetNextVisibleAt() {
	m.next_visible_at = nil
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *JobMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *JobMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLeaseExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (m *JobMutation) ClearLeaseExpiresAt() {
	m.lease_expires_at = nil
	m.clearedFields[job.FieldLeaseExpiresAt] = struct{}{}
}

// LeaseExpiresAtCleared returns if the "lease_expires_at" field was cleared in this mutation.
func (m *JobMutation) LeaseExpiresAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLeaseExpiresAt]
	return ok
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *JobMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
	delete(m.clearedFields, job.FieldLeaseExpiresAt)
}

// SetWorkerID sets the "worker_id" field.
func (m *JobMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *JobMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *JobMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[job.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *JobMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[job.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *JobMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, job.FieldWorkerID)
}

// SetErrorMessage sets the "error_message" field.
func (m *JobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[job.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, job.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m._type != nil {
		fields = append(fields, job.FieldType)
	}
	if m.group_id != nil {
		fields = append(fields, job.FieldGroupID)
	}
	if m.payload != nil {
		fields = append(fields, job.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	if m.next_visible_at != nil {
		fields = append(fields, job.FieldNextVisibleAt)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, job.FieldLeaseExpiresAt)
	}
	if m.worker_id != nil {
		fields = append(fields, job.FieldWorkerID)
	}
	if m.error_message != nil {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldType:
		return m.GetType()
	case job.FieldGroupID:
		return m.GroupID()
	case job.FieldPayload:
		return m.Payload()
	case job.FieldStatus:
		return m.Status()
	case job.FieldAttempts:
		return m.Attempts()
	case job.FieldNextVisibleAt:
		return m.NextVisibleAt()
	case job.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	case job.FieldWorkerID:
		return m.WorkerID()
	case job.FieldErrorMessage:
		return m.ErrorMessage()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldType:
		return m.OldType(ctx)
	case job.FieldGroupID:
		return m.OldGroupID(ctx)
	case job.FieldPayload:
		return m.OldPayload(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldAttempts:
		return m.OldAttempts(ctx)
	case job.FieldNextVisibleAt:
		return m.OldNextVisibleAt(ctx)
	case job.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	case job.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case job.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldType:
		v, ok := value.(job.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case job.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case job.FieldPayload:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case job.FieldNextVisibleAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextVisibleAt(v)
		return nil
	case job.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	case job.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case job.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldGroupID) {
		fields = append(fields, job.FieldGroupID)
	}
	if m.FieldCleared(job.FieldLeaseExpiresAt) {
		fields = append(fields, job.FieldLeaseExpiresAt)
	}
	if m.FieldCleared(job.FieldWorkerID) {
		fields = append(fields, job.FieldWorkerID)
	}
	if m.FieldCleared(job.FieldErrorMessage) {
		fields = append(fields, job.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldGroupID:
		m.ClearGroupID()
		return nil
	case job.FieldLeaseExpiresAt:
		m.ClearLeaseExpiresAt()
		return nil
	case job.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case job.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldType:
		m.ResetType()
		return nil
	case job.FieldGroupID:
		m.ResetGroupID()
		return nil
	case job.FieldPayload:
		m.ResetPayload()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldAttempts:
		m.ResetAttempts()
		return nil
	case job.FieldNextVisibleAt:
		m.ResetNextVisibleAt()
		return nil
	case job.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	case job.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case job.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// RawMessageMutation represents an operation that mutates the RawMessage nodes in the graph.
type RawMessageMutation struct {
	config
	op                Op
	typ               string
	id                *string
	group_id          *string
	message_id        *string
	ts                *int64
	addts             *int64
	sender_hash       *string
	sender_name       *string
	content_text      *string
	image_paths       *[]string
	appendimage_paths []string
	reply_to_id       *string
	reaction_count    *int
	addreaction_count *int
	from_bot          *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*RawMessage, error)
	predicates        []predicate.RawMessage
}

var _ ent.Mutation = (*RawMessageMutation)(nil)

// rawmessageOption allows management of the mutation configuration using functional options.
type rawmessageOption func(*RawMessageMutation)

// newRawMessageMutation creates new mutation for the RawMessage entity.
func newRawMessageMutation(c config, op Op, opts ...rawmessageOption) *RawMessageMutation {
	m := &RawMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeRawMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRawMessageID sets the ID field of the mutation.
func withRawMessageID(id string) rawmessageOption {
	return func(m *RawMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *RawMessage
		)
		m.oldValue = func(ctx context.Context) (*RawMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RawMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRawMessage sets the old RawMessage of the mutation.
func withRawMessage(node *RawMessage) rawmessageOption {
	return func(m *RawMessageMutation) {
		m.oldValue = func(context.Context) (*RawMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RawMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RawMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RawMessage entities.
func (m *RawMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RawMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RawMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RawMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGroupID sets the "group_id" field.
func (m *RawMessageMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *RawMessageMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *RawMessageMutation) ResetGroupID() {
	m.group_id = nil
}

// SetMessageID sets the "message_id" field.
func (m *RawMessageMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *RawMessageMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *RawMessageMutation) ResetMessageID() {
	m.message_id = nil
}

// SetTs sets the "ts" field.
func (m *RawMessageMutation) SetTs(i int64) {
	m.ts = &i
	m.addts = nil
}

// Ts returns the value of the "ts" field in the mutation.
func (m *RawMessageMutation) Ts() (r int64, exists bool) {
	v := m.ts
	if v == nil {
		return
	}
	return *v, true
}

// OldTs returns the old "ts" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldTs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTs: %w", err)
	}
	return oldValue.Ts, nil
}

// AddTs adds i to the "ts" field.
func (m *RawMessageMutation) AddTs(i int64) {
	if m.addts != nil {
		*m.addts += i
	} else {
		m.addts = &i
	}
}

// AddedTs returns the value that was added to the "ts" field in this mutation.
func (m *RawMessageMutation) AddedTs() (r int64, exists bool) {
	v := m.addts
	if v == nil {
		return
	}
	return *v, true
}

// ResetTs resets all changes to the "ts" field.
func (m *RawMessageMutation) ResetTs() {
	m.ts = nil
	m.addts = nil
}

// SetSenderHash sets the "sender_hash" field.
func (m *RawMessageMutation) SetSenderHash(s string) {
	m.sender_hash = &s
}

// SenderHash returns the value of the "sender_hash" field in the mutation.
func (m *RawMessageMutation) SenderHash() (r string, exists bool) {
	v := m.sender_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderHash returns the old "sender_hash" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldSenderHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderHash: %w", err)
	}
	return oldValue.SenderHash, nil
}

// ResetSenderHash resets all changes to the "sender_hash" field.
func (m *RawMessageMutation) ResetSenderHash() {
	m.sender_hash = nil
}

// SetSenderName sets the "sender_name" field.
func (m *RawMessageMutation) SetSenderName(s string) {
	m.sender_name = &s
}

// SenderName returns the value of the "sender_name" field in the mutation.
func (m *RawMessageMutation) SenderName() (r string, exists bool) {
	v := m.sender_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderName returns the old "sender_name" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldSenderName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderName: %w", err)
	}
	return oldValue.SenderName, nil
}

// ClearSenderName clears the value of the "sender_name" field.
func (m *RawMessageMutation) ClearSenderName() {
	m.sender_name = nil
	m.clearedFields[rawmessage.FieldSenderName] = struct{}{}
}

// SenderNameCleared returns if the "sender_name" field was cleared in this mutation.
func (m *RawMessageMutation) SenderNameCleared() bool {
	_, ok := m.clearedFields[rawmessage.FieldSenderName]
	return ok
}

// ResetSenderName resets all changes to the "sender_name" field.
func (m *RawMessageMutation) ResetSenderName() {
	m.sender_name = nil
	delete(m.clearedFields, rawmessage.FieldSenderName)
}

// SetContentText sets the "content_text" field.
func (m *RawMessageMutation) SetContentText(s string) {
	m.content_text = &s
}

// ContentText returns the value of the "content_text" field in the mutation.
func (m *RawMessageMutation) ContentText() (r string, exists bool) {
	v := m.content_text
	if v == nil {
		return
	}
	return *v, true
}

// OldContentText returns the old "content_text" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldContentText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentText: %w", err)
	}
	return oldValue.ContentText, nil
}

// ResetContentText resets all changes to the "content_text" field.
func (m *RawMessageMutation) ResetContentText() {
	m.content_text = nil
}

// SetImagePaths sets the "image_paths" field.
func (m *RawMessageMutation) SetImagePaths(s []string) {
	m.image_paths = &s
	m.appendimage_paths = nil
}

// ImagePaths returns the value of the "image_paths" field in the mutation.
func (m *RawMessageMutation) ImagePaths() (r []string, exists bool) {
	v := m.image_paths
	if v == nil {
		return
	}
	return *v, true
}

// OldImagePaths returns the old "image_paths" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldImagePaths(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagePaths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagePaths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagePaths: %w", err)
	}
	return oldValue.ImagePaths, nil
}

// AppendImagePaths adds s to the "image_paths" field.
func (m *RawMessageMutation) AppendImagePaths(s []string) {
	m.appendimage_paths = append(m.appendimage_paths, s...)
}

// AppendedImagePaths returns the list of values that were appended to the "image_paths" field in this mutation.
func (m *RawMessageMutation) AppendedImagePaths() ([]string, bool) {
	if len(m.appendimage_paths) == 0 {
		return nil, false
	}
	return m.appendimage_paths, true
}

// ClearImagePaths clears the value of the "image_paths" field.
func (m *RawMessageMutation) ClearImagePaths() {
	m.image_paths = nil
	m.appendimage_paths = nil
	m.clearedFields[rawmessage.FieldImagePaths] = struct{}{}
}

// ImagePathsCleared returns if the "image_paths" field was cleared in this mutation.
func (m *RawMessageMutation) ImagePathsCleared() bool {
	_, ok := m.clearedFields[rawmessage.FieldImagePaths]
	return ok
}

// ResetImagePaths resets all changes to the "image_paths" field.
func (m *RawMessageMutation) ResetImagePaths() {
	m.image_paths = nil
	m.appendimage_paths = nil
	delete(m.clearedFields, rawmessage.FieldImagePaths)
}

// SetReplyToID sets the "reply_to_id" field.
func (m *RawMessageMutation) SetReplyToID(s string) {
	m.reply_to_id = &s
}

// ReplyToID returns the value of the "reply_to_id" field in the mutation.
func (m *RawMessageMutation) ReplyToID() (r string, exists bool) {
	v := m.reply_to_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReplyToID returns the old "reply_to_id" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldReplyToID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplyToID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplyToID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplyToID: %w", err)
	}
	return oldValue.ReplyToID, nil
}

// ClearReplyToID clears the value of the "reply_to_id" field.
func (m *RawMessageMutation) ClearReplyToID() {
	m.reply_to_id = nil
	m.clearedFields[rawmessage.FieldReplyToID] = struct{}{}
}

// ReplyToIDCleared returns if the "reply_to_id" field was cleared in this mutation.
func (m *RawMessageMutation) ReplyToIDCleared() bool {
	_, ok := m.clearedFields[rawmessage.FieldReplyToID]
	return ok
}

// ResetReplyToID resets all changes to the "reply_to_id" field.
func (m *RawMessageMutation) ResetReplyToID() {
	m.reply_to_id = nil
	delete(m.clearedFields, rawmessage.FieldReplyToID)
}

// SetReactionCount sets the "reaction_count" field.
func (m *RawMessageMutation) SetReactionCount(i int) {
	m.reaction_count = &i
	m.addreaction_count = nil
}

// ReactionCount returns the value of the "reaction_count" field in the mutation.
func (m *RawMessageMutation) ReactionCount() (r int, exists bool) {
	v := m.reaction_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReactionCount returns the old "reaction_count" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldReactionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReactionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReactionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReactionCount: %w", err)
	}
	return oldValue.ReactionCount, nil
}

// AddReactionCount adds i to the "reaction_count" field.
func (m *RawMessageMutation) AddReactionCount(i int) {
	if m.addreaction_count != nil {
		*m.addreaction_count += i
	} else {
		m.addreaction_count = &i
	}
}

// AddedReactionCount returns the value that was added to the "reaction_count" field in this mutation.
func (m *RawMessageMutation) AddedReactionCount() (r int, exists bool) {
	v := m.addreaction_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReactionCount resets all changes to the "reaction_count" field.
func (m *RawMessageMutation) ResetReactionCount() {
	m.reaction_count = nil
	m.addreaction_count = nil
}

// SetFromBot sets the "from_bot" field.
func (m *RawMessageMutation) SetFromBot(b bool) {
	m.from_bot = &b
}

// FromBot returns the value of the "from_bot" field in the mutation.
func (m *RawMessageMutation) FromBot() (r bool, exists bool) {
	v := m.from_bot
	if v == nil {
		return
	}
	return *v, true
}

// OldFromBot returns the old "from_bot" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldFromBot(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromBot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromBot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromBot: %w", err)
	}
	return oldValue.FromBot, nil
}

// ResetFromBot resets all changes to the "from_bot" field.
func (m *RawMessageMutation) ResetFromBot() {
	m.from_bot = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RawMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RawMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RawMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the RawMessageMutation builder.
func (m *RawMessageMutation) Where(ps ...predicate.RawMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RawMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RawMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RawMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RawMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RawMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RawMessage).
func (m *RawMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RawMessageMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.group_id != nil {
		fields = append(fields, rawmessage.FieldGroupID)
	}
	if m.message_id != nil {
		fields = append(fields, rawmessage.FieldMessageID)
	}
	if m.ts != nil {
		fields = append(fields, rawmessage.FieldTs)
	}
	if m.sender_hash != nil {
		fields = append(fields, rawmessage.FieldSenderHash)
	}
	if m.sender_name != nil {
		fields = append(fields, rawmessage.FieldSenderName)
	}
	if m.content_text != nil {
		fields = append(fields, rawmessage.FieldContentText)
	}
	if m.image_paths != nil {
		fields = append(fields, rawmessage.FieldImagePaths)
	}
	if m.reply_to_id != nil {
		fields = append(fields, rawmessage.FieldReplyToID)
	}
	if m.reaction_count != nil {
		fields = append(fields, rawmessage.FieldReactionCount)
	}
	if m.from_bot != nil {
		fields = append(fields, rawmessage.FieldFromBot)
	}
	if m.created_at != nil {
		fields = append(fields, rawmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RawMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rawmessage.FieldGroupID:
		return m.GroupID()
	case rawmessage.FieldMessageID:
		return m.MessageID()
	case rawmessage.FieldTs:
		return m.Ts()
	case rawmessage.FieldSenderHash:
		return m.SenderHash()
	case rawmessage.FieldSenderName:
		return m.SenderName()
	case rawmessage.FieldContentText:
		return m.ContentText()
	case rawmessage.FieldImagePaths:
		return m.ImagePaths()
	case rawmessage.FieldReplyToID:
		return m.ReplyToID()
	case rawmessage.FieldReactionCount:
		return m.ReactionCount()
	case rawmessage.FieldFromBot:
		return m.FromBot()
	case rawmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RawMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rawmessage.FieldGroupID:
		return m.OldGroupID(ctx)
	case rawmessage.FieldMessageID:
		return m.OldMessageID(ctx)
	case rawmessage.FieldTs:
		return m.OldTs(ctx)
	case rawmessage.FieldSenderHash:
		return m.OldSenderHash(ctx)
	case rawmessage.FieldSenderName:
		return m.OldSenderName(ctx)
	case rawmessage.FieldContentText:
		return m.OldContentText(ctx)
	case rawmessage.FieldImagePaths:
		return m.OldImagePaths(ctx)
	case rawmessage.FieldReplyToID:
		return m.OldReplyToID(ctx)
	case rawmessage.FieldReactionCount:
		return m.OldReactionCount(ctx)
	case rawmessage.FieldFromBot:
		return m.OldFromBot(ctx)
	case rawmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RawMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RawMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rawmessage.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case rawmessage.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case rawmessage.FieldTs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTs(v)
		return nil
	case rawmessage.FieldSenderHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderHash(v)
		return nil
	case rawmessage.FieldSenderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderName(v)
		return nil
	case rawmessage.FieldContentText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentText(v)
		return nil
	case rawmessage.FieldImagePaths:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagePaths(v)
		return nil
	case rawmessage.FieldReplyToID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplyToID(v)
		return nil
	case rawmessage.FieldReactionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReactionCount(v)
		return nil
	case rawmessage.FieldFromBot:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromBot(v)
		return nil
	case rawmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RawMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RawMessageMutation) AddedFields() []string {
	var fields []string
	if m.addts != nil {
		fields = append(fields, rawmessage.FieldTs)
	}
	if m.addreaction_count != nil {
		fields = append(fields, rawmessage.FieldReactionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RawMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rawmessage.FieldTs:
		return m.AddedTs()
	case rawmessage.FieldReactionCount:
		return m.AddedReactionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RawMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rawmessage.FieldTs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTs(v)
		return nil
	case rawmessage.FieldReactionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReactionCount(v)
		return nil
	}
	return fmt.Errorf("unknown RawMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RawMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rawmessage.FieldSenderName) {
		fields = append(fields, rawmessage.FieldSenderName)
	}
	if m.FieldCleared(rawmessage.FieldImagePaths) {
		fields = append(fields, rawmessage.FieldImagePaths)
	}
	if m.FieldCleared(rawmessage.FieldReplyToID) {
		fields = append(fields, rawmessage.FieldReplyToID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RawMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RawMessageMutation) ClearField(name string) error {
	switch name {
	case rawmessage.FieldSenderName:
		m.ClearSenderName()
		return nil
	case rawmessage.FieldImagePaths:
		m.ClearImagePaths()
		return nil
	case rawmessage.FieldReplyToID:
		m.ClearReplyToID()
		return nil
	}
	return fmt.Errorf("unknown RawMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RawMessageMutation) ResetField(name string) error {
	switch name {
	case rawmessage.FieldGroupID:
		m.ResetGroupID()
		return nil
	case rawmessage.FieldMessageID:
		m.ResetMessageID()
		return nil
	case rawmessage.FieldTs:
		m.ResetTs()
		return nil
	case rawmessage.FieldSenderHash:
		m.ResetSenderHash()
		return nil
	case rawmessage.FieldSenderName:
		m.ResetSenderName()
		return nil
	case rawmessage.FieldContentText:
		m.ResetContentText()
		return nil
	case rawmessage.FieldImagePaths:
		m.ResetImagePaths()
		return nil
	case rawmessage.FieldReplyToID:
		m.ResetReplyToID()
		return nil
	case rawmessage.FieldReactionCount:
		m.ResetReactionCount()
		return nil
	case rawmessage.FieldFromBot:
		m.ResetFromBot()
		return nil
	case rawmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RawMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RawMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RawMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RawMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RawMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RawMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RawMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RawMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RawMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RawMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RawMessage edge %s", name)
}

// ReactionMutation represents an operation that mutates the Reaction nodes in the graph.
type ReactionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	group_id      *string
	target_ts     *int64
	addtarget_ts  *int64
	target_author *string
	sender_hash   *string
	emoji         *string
	is_positive   *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Reaction, error)
	predicates    []predicate.Reaction
}

var _ ent.Mutation = (*ReactionMutation)(nil)

// reactionOption allows management of the mutation configuration using functional options.
type reactionOption func(*ReactionMutation)

// newReactionMutation creates new mutation for the Reaction entity.
func newReactionMutation(c config, op Op, opts ...reactionOption) *ReactionMutation {
	m := &ReactionMutation{
		config:        c,
		op:            op,
		typ:           TypeReaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReactionID sets the ID field of the mutation.
func withReactionID(id int) reactionOption {
	return func(m *ReactionMutation) {
		var (
			err   error
			once  sync.Once
			value *Reaction
		)
		m.oldValue = func(ctx context.Context) (*Reaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Reaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReaction sets the old Reaction of the mutation.
func withReaction(node *Reaction) reactionOption {
	return func(m *ReactionMutation) {
		m.oldValue = func(context.Context) (*Reaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReactionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReactionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Reaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGroupID sets the "group_id" field.
func (m *ReactionMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *ReactionMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the Reaction entity.
// If the Reaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReactionMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *ReactionMutation) ResetGroupID() {
	m.group_id = nil
}

// SetTargetTs sets the "target_ts" field.
func (m *ReactionMutation) SetTargetTs(i int64) {
	m.target_ts = &i
	m.addtarget_ts = nil
}

// TargetTs returns the value of the "target_ts" field in the mutation.
func (m *ReactionMutation) TargetTs() (r int64, exists bool) {
	v := m.target_ts
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetTs returns the old "target_ts" field's value of the Reaction entity.
// If the Reaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReactionMutation) OldTargetTs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetTs: %w", err)
	}
	return oldValue.TargetTs, nil
}

// AddTargetTs adds i to the "target_ts" field.
func (m *ReactionMutation) AddTargetTs(i int64) {
	if m.addtarget_ts != nil {
		*m.addtarget_ts += i
	} else {
		m.addtarget_ts = &i
	}
}

// AddedTargetTs returns the value that was added to the "target_ts" field in this mutation.
func (m *ReactionMutation) AddedTargetTs() (r int64, exists bool) {
	v := m.addtarget_ts
	if v == nil {
		return
	}
	return *v, true
}

// ResetTargetTs resets all changes to the "target_ts" field.
func (m *ReactionMutation) ResetTargetTs() {
	m.target_ts = nil
	m.addtarget_ts = nil
}

// SetTargetAuthor sets the "target_author" field.
func (m *ReactionMutation) SetTargetAuthor(s string) {
	m.target_author = &s
}

// TargetAuthor returns the value of the "target_author" field in the mutation.
func (m *ReactionMutation) TargetAuthor() (r string, exists bool) {
	v := m.target_author
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetAuthor returns the old "target_author" field's value of the Reaction entity.
// If the Reaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReactionMutation) OldTargetAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetAuthor: %w", err)
	}
	return oldValue.TargetAuthor, nil
}

// ResetTargetAuthor resets all changes to the "target_author" field.
func (m *ReactionMutation) ResetTargetAuthor() {
	m.target_author = nil
}

// SetSenderHash sets the "sender_hash" field.
func (m *ReactionMutation) SetSenderHash(s string) {
	m.sender_hash = &s
}

// SenderHash returns the value of the "sender_hash" field in the mutation.
func (m *ReactionMutation) SenderHash() (r string, exists bool) {
	v := m.sender_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderHash returns the old "sender_hash" field's value of the Reaction entity.
// If the Reaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReactionMutation) OldSenderHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderHash: %w", err)
	}
	return oldValue.SenderHash, nil
}

// ResetSenderHash resets all changes to the "sender_hash" field.
func (m *ReactionMutation) ResetSenderHash() {
	m.sender_hash = nil
}

// SetEmoji sets the "emoji" field.
func (m *ReactionMutation) SetEmoji(s string) {
	m.emoji = &s
}

// Emoji returns the value of the "emoji" field in the mutation.
func (m *ReactionMutation) Emoji() (r string, exists bool) {
	v := m.emoji
	if v == nil {
		return
	}
	return *v, true
}

// OldEmoji returns the old "emoji" field's value of the Reaction entity.
// If the Reaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReactionMutation) OldEmoji(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmoji is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmoji requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmoji: %w", err)
	}
	return oldValue.Emoji, nil
}

// ResetEmoji resets all changes to the "emoji" field.
func (m *ReactionMutation) ResetEmoji() {
	m.emoji = nil
}

// SetIsPositive sets the "is_positive" field.
func (m *ReactionMutation) SetIsPositive(b bool) {
	m.is_positive = &b
}

// IsPositive returns the value of the "is_positive" field in the mutation.
func (m *ReactionMutation) IsPositive() (r bool, exists bool) {
	v := m.is_positive
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPositive returns the old "is_positive" field's value of the Reaction entity.
// If the Reaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReactionMutation) OldIsPositive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPositive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPositive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPositive: %w", err)
	}
	return oldValue.IsPositive, nil
}

// ResetIsPositive resets all changes to the "is_positive" field.
func (m *ReactionMutation) ResetIsPositive() {
	m.is_positive = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Reaction entity.
// If the Reaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ReactionMutation builder.
func (m *ReactionMutation) Where(ps ...predicate.Reaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Reaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Reaction).
func (m *ReactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReactionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.group_id != nil {
		fields = append(fields, reaction.FieldGroupID)
	}
	if m.target_ts != nil {
		fields = append(fields, reaction.FieldTargetTs)
	}
	if m.target_author != nil {
		fields = append(fields, reaction.FieldTargetAuthor)
	}
	if m.sender_hash != nil {
		fields = append(fields, reaction.FieldSenderHash)
	}
	if m.emoji != nil {
		fields = append(fields, reaction.FieldEmoji)
	}
	if m.is_positive != nil {
		fields = append(fields, reaction.FieldIsPositive)
	}
	if m.created_at != nil {
		fields = append(fields, reaction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reaction.FieldGroupID:
		return m.GroupID()
	case reaction.FieldTargetTs:
		return m.TargetTs()
	case reaction.FieldTargetAuthor:
		return m.TargetAuthor()
	case reaction.FieldSenderHash:
		return m.SenderHash()
	case reaction.FieldEmoji:
		return m.Emoji()
	case reaction.FieldIsPositive:
		return m.IsPositive()
	case reaction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reaction.FieldGroupID:
		return m.OldGroupID(ctx)
	case reaction.FieldTargetTs:
		return m.OldTargetTs(ctx)
	case reaction.FieldTargetAuthor:
		return m.OldTargetAuthor(ctx)
	case reaction.FieldSenderHash:
		return m.OldSenderHash(ctx)
	case reaction.FieldEmoji:
		return m.OldEmoji(ctx)
	case reaction.FieldIsPositive:
		return m.OldIsPositive(ctx)
	case reaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Reaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reaction.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case reaction.FieldTargetTs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetTs(v)
		return nil
	case reaction.FieldTargetAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetAuthor(v)
		return nil
	case reaction.FieldSenderHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderHash(v)
		return nil
	case reaction.FieldEmoji:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmoji(v)
		return nil
	case reaction.FieldIsPositive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPositive(v)
		return nil
	case reaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Reaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReactionMutation) AddedFields() []string {
	var fields []string
	if m.addtarget_ts != nil {
		fields = append(fields, reaction.FieldTargetTs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reaction.FieldTargetTs:
		return m.AddedTargetTs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reaction.FieldTargetTs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetTs(v)
		return nil
	}
	return fmt.Errorf("unknown Reaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReactionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReactionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Reaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReactionMutation) ResetField(name string) error {
	switch name {
	case reaction.FieldGroupID:
		m.ResetGroupID()
		return nil
	case reaction.FieldTargetTs:
		m.ResetTargetTs()
		return nil
	case reaction.FieldTargetAuthor:
		m.ResetTargetAuthor()
		return nil
	case reaction.FieldSenderHash:
		m.ResetSenderHash()
		return nil
	case reaction.FieldEmoji:
		m.ResetEmoji()
		return nil
	case reaction.FieldIsPositive:
		m.ResetIsPositive()
		return nil
	case reaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Reaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReactionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReactionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReactionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Reaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReactionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Reaction edge %s", name)
}

// SentReplyMutation represents an operation that mutates the SentReply nodes in the graph.
type SentReplyMutation struct {
	config
	op            Op
	typ           string
	id            *int
	group_id      *string
	message_id    *string
	sent_at       *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SentReply, error)
	predicates    []predicate.SentReply
}

var _ ent.Mutation = (*SentReplyMutation)(nil)

// sentreplyOption allows management of the mutation configuration using functional options.
type sentreplyOption func(*SentReplyMutation)

// newSentReplyMutation creates new mutation for the SentReply entity.
func newSentReplyMutation(c config, op Op, opts ...sentreplyOption) *SentReplyMutation {
	m := &SentReplyMutation{
		config:        c,
		op:            op,
		typ:           TypeSentReply,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSentReplyID sets the ID field of the mutation.
func withSentReplyID(id int) sentreplyOption {
	return func(m *SentReplyMutation) {
		var (
			err   error
			once  sync.Once
			value *SentReply
		)
		m.oldValue = func(ctx context.Context) (*SentReply, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SentReply.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSentReply sets the old SentReply of the mutation.
func withSentReply(node *SentReply) sentreplyOption {
	return func(m *SentReplyMutation) {
		m.oldValue = func(context.Context) (*SentReply, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SentReplyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SentReplyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SentReplyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SentReplyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SentReply.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGroupID sets the "group_id" field.
func (m *SentReplyMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *SentReplyMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the SentReply entity.
// If the SentReply object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentReplyMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *SentReplyMutation) ResetGroupID() {
	m.group_id = nil
}

// SetMessageID sets the "message_id" field.
func (m *SentReplyMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *SentReplyMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the SentReply entity.
// If the SentReply object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentReplyMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *SentReplyMutation) ResetMessageID() {
	m.message_id = nil
}

// SetSentAt sets the "sent_at" field.
func (m *SentReplyMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *SentReplyMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the SentReply entity.
// If the SentReply object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentReplyMutation) OldSentAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *SentReplyMutation) ResetSentAt() {
	m.sent_at = nil
}

// Where appends a list predicates to the SentReplyMutation builder.
func (m *SentReplyMutation) Where(ps ...predicate.SentReply) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SentReplyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SentReplyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SentReply, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SentReplyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SentReplyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SentReply).
func (m *SentReplyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SentReplyMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.group_id != nil {
		fields = append(fields, sentreply.FieldGroupID)
	}
	if m.message_id != nil {
		fields = append(fields, sentreply.FieldMessageID)
	}
	if m.sent_at != nil {
		fields = append(fields, sentreply.FieldSentAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SentReplyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sentreply.FieldGroupID:
		return m.GroupID()
	case sentreply.FieldMessageID:
		return m.MessageID()
	case sentreply.FieldSentAt:
		return m.SentAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SentReplyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sentreply.FieldGroupID:
		return m.OldGroupID(ctx)
	case sentreply.FieldMessageID:
		return m.OldMessageID(ctx)
	case sentreply.FieldSentAt:
		return m.OldSentAt(ctx)
	}
	return nil, fmt.Errorf("unknown SentReply field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SentReplyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sentreply.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case sentreply.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case sentreply.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	}
	return fmt.Errorf("unknown SentReply field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SentReplyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SentReplyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SentReplyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SentReply numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SentReplyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SentReplyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SentReplyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SentReply nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SentReplyMutation) ResetField(name string) error {
	switch name {
	case sentreply.FieldGroupID:
		m.ResetGroupID()
		return nil
	case sentreply.FieldMessageID:
		m.ResetMessageID()
		return nil
	case sentreply.FieldSentAt:
		m.ResetSentAt()
		return nil
	}
	return fmt.Errorf("unknown SentReply field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SentReplyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SentReplyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SentReplyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SentReplyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SentReplyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SentReplyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SentReplyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SentReply unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SentReplyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SentReply edge %s", name)
}

// SupportCaseMutation represents an operation that mutates the SupportCase nodes in the graph.
type SupportCaseMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	group_id              *string
	status                *supportcase.Status
	problem_title         *string
	problem_summary       *string
	solution_summary      *string
	tags                  *[]string
	appendtags            []string
	dedup_embedding       *[]float32
	appenddedup_embedding []float32
	in_index              *bool
	closed_emoji          *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	evidence              map[int]struct{}
	removedevidence       map[int]struct{}
	clearedevidence       bool
	done                  bool
	oldValue              func(context.Context) (*SupportCase, error)
	predicates            []predicate.SupportCase
}

var _ ent.Mutation = (*SupportCaseMutation)(nil)

// supportcaseOption allows management of the mutation configuration using functional options.
type supportcaseOption func(*SupportCaseMutation)

// newSupportCaseMutation creates new mutation for the SupportCase entity.
func newSupportCaseMutation(c config, op Op, opts ...supportcaseOption) *SupportCaseMutation {
	m := &SupportCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeSupportCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSupportCaseID sets the ID field of the mutation.
func withSupportCaseID(id string) supportcaseOption {
	return func(m *SupportCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *SupportCase
		)
		m.oldValue = func(ctx context.Context) (*SupportCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SupportCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSupportCase sets the old SupportCase of the mutation.
func withSupportCase(node *SupportCase) supportcaseOption {
	return func(m *SupportCaseMutation) {
		m.oldValue = func(context.Context) (*SupportCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SupportCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SupportCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SupportCase entities.
func (m *SupportCaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SupportCaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SupportCaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SupportCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGroupID sets the "group_id" field.
func (m *SupportCaseMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *SupportCaseMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the SupportCase entity.
// If the SupportCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportCaseMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *SupportCaseMutation) ResetGroupID() {
	m.group_id = nil
}

// SetStatus sets the "status" field.
func (m *SupportCaseMutation) SetStatus(s supportcase.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SupportCaseMutation) Status() (r supportcase.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SupportCase entity.
// If the SupportCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportCaseMutation) OldStatus(ctx context.Context) (v supportcase.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SupportCaseMutation) ResetStatus() {
	m.status = nil
}

// SetProblemTitle sets the "problem_title" field.
func (m *SupportCaseMutation) SetProblemTitle(s string) {
	m.problem_title = &s
}

// ProblemTitle returns the value of the "problem_title" field in the mutation.
func (m *SupportCaseMutation) ProblemTitle() (r string, exists bool) {
	v := m.problem_title
	if v == nil {
		return
	}
	return *v, true
}

// OldProblemTitle returns the old "problem_title" field's value of the SupportCase entity.
// If the SupportCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportCaseMutation) OldProblemTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblemTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblemTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblemTitle: %w", err)
	}
	return oldValue.ProblemTitle, nil
}

// ResetProblemTitle resets all changes to the "problem_title" field.
func (m *SupportCaseMutation) ResetProblemTitle() {
	m.problem_title = nil
}

// SetProblemSummary sets the "problem_summary" field.
func (m *SupportCaseMutation) SetProblemSummary(s string) {
	m.problem_summary = &s
}

// ProblemSummary returns the value of the "problem_summary" field in the mutation.
func (m *SupportCaseMutation) ProblemSummary() (r string, exists bool) {
	v := m.problem_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldProblemSummary returns the old "problem_summary" field's value of the SupportCase entity.
// If the SupportCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportCaseMutation) OldProblemSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblemSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblemSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblemSummary: %w", err)
	}
	return oldValue.ProblemSummary, nil
}

// ResetProblemSummary resets all changes to the "problem_summary" field.
func (m *SupportCaseMutation) ResetProblemSummary() {
	m.problem_summary = nil
}

// SetSolutionSummary sets the "solution_summary" field.
func (m *SupportCaseMutation) SetSolutionSummary(s string) {
	m.solution_summary = &s
}

// SolutionSummary returns the value of the "solution_summary" field in the mutation.
func (m *SupportCaseMutation) SolutionSummary() (r string, exists bool) {
	v := m.solution_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSolutionSummary returns the old "solution_summary" field's value of the SupportCase entity.
// If the SupportCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportCaseMutation) OldSolutionSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolutionSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolutionSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolutionSummary: %w", err)
	}
	return oldValue.SolutionSummary, nil
}

// ResetSolutionSummary resets all changes to the "solution_summary" field.
func (m *SupportCaseMutation) ResetSolutionSummary() {
	m.solution_summary = nil
}

// SetTags sets the "tags" field.
func (m *SupportCaseMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *SupportCaseMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the SupportCase entity.
// If the SupportCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportCaseMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *SupportCaseMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *SupportCaseMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *SupportCaseMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[supportcase.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *SupportCaseMutation) TagsCleared() bool {
	_, ok := m.clearedFields[supportcase.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *SupportCaseMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, supportcase.FieldTags)
}

// SetDedupEmbedding sets the "dedup_embedding" field.
func (m *SupportCaseMutation) SetDedupEmbedding(f []float32) {
	m.dedup_embedding = &f
	m.appenddedup_embedding = nil
}

// DedupEmbedding returns the value of the "dedup_embedding" field in the mutation.
func (m *SupportCaseMutation) DedupEmbedding() (r []float32, exists bool) {
	v := m.dedup_embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupEmbedding returns the old "dedup_embedding" field's value of the SupportCase entity.
// If the SupportCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportCaseMutation) OldDedupEmbedding(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupEmbedding: %w", err)
	}
	return oldValue.DedupEmbedding, nil
}

// AppendDedupEmbedding adds f to the "dedup_embedding" field.
func (m *SupportCaseMutation) AppendDedupEmbedding(f []float32) {
	m.appenddedup_embedding = append(m.appenddedup_embedding, f...)
}

// AppendedDedupEmbedding returns the list of values that were appended to the "dedup_embedding" field in this mutation.
func (m *SupportCaseMutation) AppendedDedupEmbedding() ([]float32, bool) {
	if len(m.appenddedup_embedding) == 0 {
		return nil, false
	}
	return m.appenddedup_embedding, true
}

// ClearDedupEmbedding clears the value of the "dedup_embedding" field.
func (m *SupportCaseMutation) ClearDedupEmbedding() {
	m.dedup_embedding = nil
	m.appenddedup_embedding = nil
	m.clearedFields[supportcase.FieldDedupEmbedding] = struct{}{}
}

// DedupEmbeddingCleared returns if the "dedup_embedding" field was cleared in this mutation.
func (m *SupportCaseMutation) DedupEmbeddingCleared() bool {
	_, ok := m.clearedFields[supportcase.FieldDedupEmbedding]
	return ok
}

// ResetDedupEmbedding resets all changes to the "dedup_embedding" field.
func (m *SupportCaseMutation) ResetDedupEmbedding() {
	m.dedup_embedding = nil
	m.appenddedup_embedding = nil
	delete(m.clearedFields, supportcase.FieldDedupEmbedding)
}

// SetInIndex sets the "in_index" field.
func (m *SupportCaseMutation) SetInIndex(b bool) {
	m.in_index = &b
}

// InIndex returns the value of the "in_index" field in the mutation.
func (m *SupportCaseMutation) InIndex() (r bool, exists bool) {
	v := m.in_index
	if v == nil {
		return
	}
	return *v, true
}

// OldInIndex returns the old "in_index" field's value of the SupportCase entity.
// If the SupportCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportCaseMutation) OldInIndex(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInIndex: %w", err)
	}
	return oldValue.InIndex, nil
}

// ResetInIndex resets all changes to the "in_index" field.
func (m *SupportCaseMutation) ResetInIndex() {
	m.in_index = nil
}

// SetClosedEmoji sets the "closed_emoji" field.
func (m *SupportCaseMutation) SetClosedEmoji(s string) {
	m.closed_emoji = &s
}

// ClosedEmoji returns the value of the "closed_emoji" field in the mutation.
func (m *SupportCaseMutation) ClosedEmoji() (r string, exists bool) {
	v := m.closed_emoji
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedEmoji returns the old "closed_emoji" field's value of the SupportCase entity.
// If the SupportCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportCaseMutation) OldClosedEmoji(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedEmoji is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedEmoji requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedEmoji: %w", err)
	}
	return oldValue.ClosedEmoji, nil
}

// ClearClosedEmoji clears the value of the "closed_emoji" field.
func (m *SupportCaseMutation) ClearClosedEmoji() {
	m.closed_emoji = nil
	m.clearedFields[supportcase.FieldClosedEmoji] = struct{}{}
}

// ClosedEmojiCleared returns if the "closed_emoji" field was cleared in this mutation.
func (m *SupportCaseMutation) ClosedEmojiCleared() bool {
	_, ok := m.clearedFields[supportcase.FieldClosedEmoji]
	return ok
}

// ResetClosedEmoji resets all changes to the "closed_emoji" field.
func (m *SupportCaseMutation) ResetClosedEmoji() {
	m.closed_emoji = nil
	delete(m.clearedFields, supportcase.FieldClosedEmoji)
}

// SetCreatedAt sets the "created_at" field.
func (m *SupportCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SupportCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SupportCase entity.
// If the SupportCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SupportCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SupportCaseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SupportCaseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SupportCase entity.
// If the SupportCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportCaseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SupportCaseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddEvidenceIDs adds the "evidence" edge to the CaseEvidence entity by ids.
func (m *SupportCaseMutation) AddEvidenceIDs(ids ...int) {
	if m.evidence == nil {
		m.evidence = make(map[int]struct{})
	}
	for i := range ids {
		m.evidence[ids[i]] = struct{}{}
	}
}

// ClearEvidence clears the "evidence" edge to the CaseEvidence entity.
func (m *SupportCaseMutation) ClearEvidence() {
	m.clearedevidence = true
}

// EvidenceCleared reports if the "evidence" edge to the CaseEvidence entity was cleared.
func (m *SupportCaseMutation) EvidenceCleared() bool {
	return m.clearedevidence
}

// RemoveEvidenceIDs removes the "evidence" edge to the CaseEvidence entity by IDs.
func (m *SupportCaseMutation) RemoveEvidenceIDs(ids ...int) {
	if m.removedevidence == nil {
		m.removedevidence = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.evidence, ids[i])
		m.removedevidence[ids[i]] = struct{}{}
	}
}

// RemovedEvidence returns the removed IDs of the "evidence" edge to the CaseEvidence entity.
func (m *SupportCaseMutation) RemovedEvidenceIDs() (ids []int) {
	for id := range m.removedevidence {
		ids = append(ids, id)
	}
	return
}

// EvidenceIDs returns the "evidence" edge IDs in the mutation.
func (m *SupportCaseMutation) EvidenceIDs() (ids []int) {
	for id := range m.evidence {
		ids = append(ids, id)
	}
	return
}

// ResetEvidence resets all changes to the "evidence" edge.
func (m *SupportCaseMutation) ResetEvidence() {
	m.evidence = nil
	m.clearedevidence = false
	m.removedevidence = nil
}

// Where appends a list predicates to the SupportCaseMutation builder.
func (m *SupportCaseMutation) Where(ps ...predicate.SupportCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SupportCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SupportCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SupportCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SupportCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SupportCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SupportCase).
func (m *SupportCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SupportCaseMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.group_id != nil {
		fields = append(fields, supportcase.FieldGroupID)
	}
	if m.status != nil {
		fields = append(fields, supportcase.FieldStatus)
	}
	if m.problem_title != nil {
		fields = append(fields, supportcase.FieldProblemTitle)
	}
	if m.problem_summary != nil {
		fields = append(fields, supportcase.FieldProblemSummary)
	}
	if m.solution_summary != nil {
		fields = append(fields, supportcase.FieldSolutionSummary)
	}
	if m.tags != nil {
		fields = append(fields, supportcase.FieldTags)
	}
	if m.dedup_embedding != nil {
		fields = append(fields, supportcase.FieldDedupEmbedding)
	}
	if m.in_index != nil {
		fields = append(fields, supportcase.FieldInIndex)
	}
	if m.closed_emoji != nil {
		fields = append(fields, supportcase.FieldClosedEmoji)
	}
	if m.created_at != nil {
		fields = append(fields, supportcase.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, supportcase.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SupportCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case supportcase.FieldGroupID:
		return m.GroupID()
	case supportcase.FieldStatus:
		return m.Status()
	case supportcase.FieldProblemTitle:
		return m.ProblemTitle()
	case supportcase.FieldProblemSummary:
		return m.ProblemSummary()
	case supportcase.FieldSolutionSummary:
		return m.SolutionSummary()
	case supportcase.FieldTags:
		return m.Tags()
	case supportcase.FieldDedupEmbedding:
		return m.DedupEmbedding()
	case supportcase.FieldInIndex:
		return m.InIndex()
	case supportcase.FieldClosedEmoji:
		return m.ClosedEmoji()
	case supportcase.FieldCreatedAt:
		return m.CreatedAt()
	case supportcase.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SupportCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case supportcase.FieldGroupID:
		return m.OldGroupID(ctx)
	case supportcase.FieldStatus:
		return m.OldStatus(ctx)
	case supportcase.FieldProblemTitle:
		return m.OldProblemTitle(ctx)
	case supportcase.FieldProblemSummary:
		return m.OldProblemSummary(ctx)
	case supportcase.FieldSolutionSummary:
		return m.OldSolutionSummary(ctx)
	case supportcase.FieldTags:
		return m.OldTags(ctx)
	case supportcase.FieldDedupEmbedding:
		return m.OldDedupEmbedding(ctx)
	case supportcase.FieldInIndex:
		return m.OldInIndex(ctx)
	case supportcase.FieldClosedEmoji:
		return m.OldClosedEmoji(ctx)
	case supportcase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case supportcase.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SupportCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupportCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case supportcase.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case supportcase.FieldStatus:
		v, ok := value.(supportcase.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case supportcase.FieldProblemTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblemTitle(v)
		return nil
	case supportcase.FieldProblemSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblemSummary(v)
		return nil
	case supportcase.FieldSolutionSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolutionSummary(v)
		return nil
	case supportcase.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case supportcase.FieldDedupEmbedding:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupEmbedding(v)
		return nil
	case supportcase.FieldInIndex:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInIndex(v)
		return nil
	case supportcase.FieldClosedEmoji:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedEmoji(v)
		return nil
	case supportcase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case supportcase.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SupportCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SupportCaseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SupportCaseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupportCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SupportCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SupportCaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(supportcase.FieldTags) {
		fields = append(fields, supportcase.FieldTags)
	}
	if m.FieldCleared(supportcase.FieldDedupEmbedding) {
		fields = append(fields, supportcase.FieldDedupEmbedding)
	}
	if m.FieldCleared(supportcase.FieldClosedEmoji) {
		fields = append(fields, supportcase.FieldClosedEmoji)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SupportCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SupportCaseMutation) ClearField(name string) error {
	switch name {
	case supportcase.FieldTags:
		m.ClearTags()
		return nil
	case supportcase.FieldDedupEmbedding:
		m.ClearDedupEmbedding()
		return nil
	case supportcase.FieldClosedEmoji:
		m.ClearClosedEmoji()
		return nil
	}
	return fmt.Errorf("unknown SupportCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SupportCaseMutation) ResetField(name string) error {
	switch name {
	case supportcase.FieldGroupID:
		m.ResetGroupID()
		return nil
	case supportcase.FieldStatus:
		m.ResetStatus()
		return nil
	case supportcase.FieldProblemTitle:
		m.ResetProblemTitle()
		return nil
	case supportcase.FieldProblemSummary:
		m.ResetProblemSummary()
		return nil
	case supportcase.FieldSolutionSummary:
		m.ResetSolutionSummary()
		return nil
	case supportcase.FieldTags:
		m.ResetTags()
		return nil
	case supportcase.FieldDedupEmbedding:
		m.ResetDedupEmbedding()
		return nil
	case supportcase.FieldInIndex:
		m.ResetInIndex()
		return nil
	case supportcase.FieldClosedEmoji:
		m.ResetClosedEmoji()
		return nil
	case supportcase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case supportcase.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SupportCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SupportCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.evidence != nil {
		edges = append(edges, supportcase.EdgeEvidence)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SupportCaseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case supportcase.EdgeEvidence:
		ids := make([]ent.Value, 0, len(m.evidence))
		for id := range m.evidence {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SupportCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedevidence != nil {
		edges = append(edges, supportcase.EdgeEvidence)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SupportCaseMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case supportcase.EdgeEvidence:
		ids := make([]ent.Value, 0, len(m.removedevidence))
		for id := range m.removedevidence {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SupportCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevidence {
		edges = append(edges, supportcase.EdgeEvidence)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SupportCaseMutation) EdgeCleared(name string) bool {
	switch name {
	case supportcase.EdgeEvidence:
		return m.clearedevidence
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SupportCaseMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown SupportCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SupportCaseMutation) ResetEdge(name string) error {
	switch name {
	case supportcase.EdgeEvidence:
		m.ResetEvidence()
		return nil
	}
	return fmt.Errorf("unknown SupportCase edge %s", name)
}
