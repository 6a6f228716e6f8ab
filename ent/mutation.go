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
	"github.com/wuyifannppp/poco-agent/ent/agentmessage"
	"github.com/wuyifannppp/poco-agent/ent/agentrun"
	"github.com/wuyifannppp/poco-agent/ent/agentsession"
	"github.com/wuyifannppp/poco-agent/ent/mcppreset"
	"github.com/wuyifannppp/poco-agent/ent/predicate"
	"github.com/wuyifannppp/poco-agent/ent/project"
	"github.com/wuyifannppp/poco-agent/ent/skillpreset"
	"github.com/wuyifannppp/poco-agent/ent/toolexecution"
	"github.com/wuyifannppp/poco-agent/ent/usagelog"
	"github.com/wuyifannppp/poco-agent/ent/userenvvar"
	"github.com/wuyifannppp/poco-agent/ent/usermcpconfig"
	"github.com/wuyifannppp/poco-agent/ent/userskillinstall"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentMessage     = "AgentMessage"
	TypeAgentRun         = "AgentRun"
	TypeAgentSession     = "AgentSession"
	TypeMcpPreset        = "McpPreset"
	TypeProject          = "Project"
	TypeSkillPreset      = "SkillPreset"
	TypeToolExecution    = "ToolExecution"
	TypeUsageLog         = "UsageLog"
	TypeUserEnvVar       = "UserEnvVar"
	TypeUserMcpConfig    = "UserMcpConfig"
	TypeUserSkillInstall = "UserSkillInstall"
)

// AgentMessageMutation represents an operation that mutates the AgentMessage nodes in the graph.
type AgentMessageMutation struct {
	config
	op             Op
	typ            string
	id             *int
	role           *agentmessage.Role
	content        *map[string]interface{}
	text_preview   *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*AgentMessage, error)
	predicates     []predicate.AgentMessage
}

var _ ent.Mutation = (*AgentMessageMutation)(nil)

// agentmessageOption allows management of the mutation configuration using functional options.
type agentmessageOption func(*AgentMessageMutation)

// newAgentMessageMutation creates new mutation for the AgentMessage entity.
func newAgentMessageMutation(c config, op Op, opts ...agentmessageOption) *AgentMessageMutation {
	m := &AgentMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentMessageID sets the ID field of the mutation.
func withAgentMessageID(id int) agentmessageOption {
	return func(m *AgentMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentMessage
		)
		m.oldValue = func(ctx context.Context) (*AgentMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentMessage sets the old AgentMessage of the mutation.
func withAgentMessage(node *AgentMessage) agentmessageOption {
	return func(m *AgentMessageMutation) {
		m.oldValue = func(context.Context) (*AgentMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentMessage entities.
func (m *AgentMessageMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AgentMessageMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AgentMessageMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AgentMessageMutation) ResetSessionID() {
	m.session = nil
}

// SetRole sets the "role" field.
func (m *AgentMessageMutation) SetRole(a agentmessage.Role) {
	m.role = &a
}

// Role returns the value of the "role" field in the mutation.
func (m *AgentMessageMutation) Role() (r agentmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldRole(ctx context.Context) (v agentmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *AgentMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *AgentMessageMutation) SetContent(value map[string]interface{}) {
	m.content = &value
}

// Content returns the value of the "content" field in the mutation.
func (m *AgentMessageMutation) Content() (r map[string]interface{}, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldContent(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *AgentMessageMutation) ResetContent() {
	m.content = nil
}

// SetTextPreview sets the "text_preview" field.
func (m *AgentMessageMutation) SetTextPreview(s string) {
	m.text_preview = &s
}

// TextPreview returns the value of the "text_preview" field in the mutation.
func (m *AgentMessageMutation) TextPreview() (r string, exists bool) {
	v := m.text_preview
	if v == nil {
		return
	}
	return *v, true
}

// OldTextPreview returns the old "text_preview" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldTextPreview(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextPreview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextPreview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextPreview: %w", err)
	}
	return oldValue.TextPreview, nil
}

// ClearTextPreview clears the value of the "text_preview" field.
func (m *AgentMessageMutation) ClearTextPreview() {
	m.text_preview = nil
	m.clearedFields[agentmessage.FieldTextPreview] = struct{}{}
}

// TextPreviewCleared returns if the "text_preview" field was cleared in this mutation.
func (m *AgentMessageMutation) TextPreviewCleared() bool {
	_, ok := m.clearedFields[agentmessage.FieldTextPreview]
	return ok
}

// ResetTextPreview resets all changes to the "text_preview" field.
func (m *AgentMessageMutation) ResetTextPreview() {
	m.text_preview = nil
	delete(m.clearedFields, agentmessage.FieldTextPreview)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AgentMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the AgentSession entity.
func (m *AgentMessageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[agentmessage.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AgentSession entity was cleared.
func (m *AgentMessageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *AgentMessageMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *AgentMessageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the AgentMessageMutation builder.
func (m *AgentMessageMutation) Where(ps ...predicate.AgentMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentMessage).
func (m *AgentMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMessageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session != nil {
		fields = append(fields, agentmessage.FieldSessionID)
	}
	if m.role != nil {
		fields = append(fields, agentmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, agentmessage.FieldContent)
	}
	if m.text_preview != nil {
		fields = append(fields, agentmessage.FieldTextPreview)
	}
	if m.created_at != nil {
		fields = append(fields, agentmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentmessage.FieldSessionID:
		return m.SessionID()
	case agentmessage.FieldRole:
		return m.Role()
	case agentmessage.FieldContent:
		return m.Content()
	case agentmessage.FieldTextPreview:
		return m.TextPreview()
	case agentmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentmessage.FieldSessionID:
		return m.OldSessionID(ctx)
	case agentmessage.FieldRole:
		return m.OldRole(ctx)
	case agentmessage.FieldContent:
		return m.OldContent(ctx)
	case agentmessage.FieldTextPreview:
		return m.OldTextPreview(ctx)
	case agentmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentmessage.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case agentmessage.FieldRole:
		v, ok := value.(agentmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case agentmessage.FieldContent:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case agentmessage.FieldTextPreview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextPreview(v)
		return nil
	case agentmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentmessage.FieldTextPreview) {
		fields = append(fields, agentmessage.FieldTextPreview)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMessageMutation) ClearField(name string) error {
	switch name {
	case agentmessage.FieldTextPreview:
		m.ClearTextPreview()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMessageMutation) ResetField(name string) error {
	switch name {
	case agentmessage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case agentmessage.FieldRole:
		m.ResetRole()
		return nil
	case agentmessage.FieldContent:
		m.ResetContent()
		return nil
	case agentmessage.FieldTextPreview:
		m.ResetTextPreview()
		return nil
	case agentmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, agentmessage.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentmessage.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, agentmessage.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case agentmessage.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMessageMutation) ClearEdge(name string) error {
	switch name {
	case agentmessage.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMessageMutation) ResetEdge(name string) error {
	switch name {
	case agentmessage.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage edge %s", name)
}

// AgentRunMutation represents an operation that mutates the AgentRun nodes in the graph.
type AgentRunMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	user_message_id        *int
	adduser_message_id     *int
	status                 *agentrun.Status
	config_snapshot        *map[string]interface{}
	sdk_session_id         *string
	claim_token            *string
	worker_id              *string
	claimed_at             *time.Time
	started_at             *time.Time
	finished_at            *time.Time
	error                  *map[string]interface{}
	attempt                *int
	addattempt             *int
	cancel_requested       *bool
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	session                *string
	clearedsession         bool
	tool_executions        map[string]struct{}
	removedtool_executions map[string]struct{}
	clearedtool_executions bool
	usage_logs             map[string]struct{}
	removedusage_logs      map[string]struct{}
	clearedusage_logs      bool
	done                   bool
	oldValue               func(context.Context) (*AgentRun, error)
	predicates             []predicate.AgentRun
}

var _ ent.Mutation = (*AgentRunMutation)(nil)

// agentrunOption allows management of the mutation configuration using functional options.
type agentrunOption func(*AgentRunMutation)

// newAgentRunMutation creates new mutation for the AgentRun entity.
func newAgentRunMutation(c config, op Op, opts ...agentrunOption) *AgentRunMutation {
	m := &AgentRunMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentRunID sets the ID field of the mutation.
func withAgentRunID(id string) agentrunOption {
	return func(m *AgentRunMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentRun
		)
		m.oldValue = func(ctx context.Context) (*AgentRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentRun sets the old AgentRun of the mutation.
func withAgentRun(node *AgentRun) agentrunOption {
	return func(m *AgentRunMutation) {
		m.oldValue = func(context.Context) (*AgentRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentRun entities.
func (m *AgentRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AgentRunMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AgentRunMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AgentRunMutation) ResetSessionID() {
	m.session = nil
}

// SetUserMessageID sets the "user_message_id" field.
func (m *AgentRunMutation) SetUserMessageID(i int) {
	m.user_message_id = &i
	m.adduser_message_id = nil
}

// UserMessageID returns the value of the "user_message_id" field in the mutation.
func (m *AgentRunMutation) UserMessageID() (r int, exists bool) {
	v := m.user_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserMessageID returns the old "user_message_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldUserMessageID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserMessageID: %w", err)
	}
	return oldValue.UserMessageID, nil
}

// AddUserMessageID adds i to the "user_message_id" field.
func (m *AgentRunMutation) AddUserMessageID(i int) {
	if m.adduser_message_id != nil {
		*m.adduser_message_id += i
	} else {
		m.adduser_message_id = &i
	}
}

// AddedUserMessageID returns the value that was added to the "user_message_id" field in this mutation.
func (m *AgentRunMutation) AddedUserMessageID() (r int, exists bool) {
	v := m.adduser_message_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserMessageID resets all changes to the "user_message_id" field.
func (m *AgentRunMutation) ResetUserMessageID() {
	m.user_message_id = nil
	m.adduser_message_id = nil
}

// SetStatus sets the "status" field.
func (m *AgentRunMutation) SetStatus(a agentrun.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentRunMutation) Status() (r agentrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldStatus(ctx context.Context) (v agentrun.Status, err error) {
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
func (m *AgentRunMutation) ResetStatus() {
	m.status = nil
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (m *AgentRunMutation) SetConfigSnapshot(value map[string]interface{}) {
	m.config_snapshot = &value
}

// ConfigSnapshot returns the value of the "config_snapshot" field in the mutation.
func (m *AgentRunMutation) ConfigSnapshot() (r map[string]interface{}, exists bool) {
	v := m.config_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigSnapshot returns the old "config_snapshot" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldConfigSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigSnapshot: %w", err)
	}
	return oldValue.ConfigSnapshot, nil
}

// ClearConfigSnapshot clears the value of the "config_snapshot" field.
func (m *AgentRunMutation) ClearConfigSnapshot() {
	m.config_snapshot = nil
	m.clearedFields[agentrun.FieldConfigSnapshot] = struct{}{}
}

// ConfigSnapshotCleared returns if the "config_snapshot" field was cleared in this mutation.
func (m *AgentRunMutation) ConfigSnapshotCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldConfigSnapshot]
	return ok
}

// ResetConfigSnapshot resets all changes to the "config_snapshot" field.
func (m *AgentRunMutation) ResetConfigSnapshot() {
	m.config_snapshot = nil
	delete(m.clearedFields, agentrun.FieldConfigSnapshot)
}

// SetSdkSessionID sets the "sdk_session_id" field.
func (m *AgentRunMutation) SetSdkSessionID(s string) {
	m.sdk_session_id = &s
}

// SdkSessionID returns the value of the "sdk_session_id" field in the mutation.
func (m *AgentRunMutation) SdkSessionID() (r string, exists bool) {
	v := m.sdk_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSdkSessionID returns the old "sdk_session_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldSdkSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSdkSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSdkSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSdkSessionID: %w", err)
	}
	return oldValue.SdkSessionID, nil
}

// ClearSdkSessionID clears the value of the "sdk_session_id" field.
func (m *AgentRunMutation) ClearSdkSessionID() {
	m.sdk_session_id = nil
	m.clearedFields[agentrun.FieldSdkSessionID] = struct{}{}
}

// SdkSessionIDCleared returns if the "sdk_session_id" field was cleared in this mutation.
func (m *AgentRunMutation) SdkSessionIDCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldSdkSessionID]
	return ok
}

// ResetSdkSessionID resets all changes to the "sdk_session_id" field.
func (m *AgentRunMutation) ResetSdkSessionID() {
	m.sdk_session_id = nil
	delete(m.clearedFields, agentrun.FieldSdkSessionID)
}

// SetClaimToken sets the "claim_token" field.
func (m *AgentRunMutation) SetClaimToken(s string) {
	m.claim_token = &s
}

// ClaimToken returns the value of the "claim_token" field in the mutation.
func (m *AgentRunMutation) ClaimToken() (r string, exists bool) {
	v := m.claim_token
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimToken returns the old "claim_token" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldClaimToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimToken: %w", err)
	}
	return oldValue.ClaimToken, nil
}

// ClearClaimToken clears the value of the "claim_token" field.
func (m *AgentRunMutation) ClearClaimToken() {
	m.claim_token = nil
	m.clearedFields[agentrun.FieldClaimToken] = struct{}{}
}

// ClaimTokenCleared returns if the "claim_token" field was cleared in this mutation.
func (m *AgentRunMutation) ClaimTokenCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldClaimToken]
	return ok
}

// ResetClaimToken resets all changes to the "claim_token" field.
func (m *AgentRunMutation) ResetClaimToken() {
	m.claim_token = nil
	delete(m.clearedFields, agentrun.FieldClaimToken)
}

// SetWorkerID sets the "worker_id" field.
func (m *AgentRunMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *AgentRunMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
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
func (m *AgentRunMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[agentrun.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *AgentRunMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *AgentRunMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, agentrun.FieldWorkerID)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *AgentRunMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *AgentRunMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *AgentRunMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[agentrun.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *AgentRunMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *AgentRunMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, agentrun.FieldClaimedAt)
}

// SetStartedAt sets the "started_at" field.
func (m *AgentRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AgentRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[agentrun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AgentRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, agentrun.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *AgentRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *AgentRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *AgentRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[agentrun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *AgentRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *AgentRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, agentrun.FieldFinishedAt)
}

// SetError sets the "error" field.
func (m *AgentRunMutation) SetError(value map[string]interface{}) {
	m.error = &value
}

// Error returns the value of the "error" field in the mutation.
func (m *AgentRunMutation) Error() (r map[string]interface{}, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldError(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *AgentRunMutation) ClearError() {
	m.error = nil
	m.clearedFields[agentrun.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *AgentRunMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *AgentRunMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, agentrun.FieldError)
}

// SetAttempt sets the "attempt" field.
func (m *AgentRunMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *AgentRunMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *AgentRunMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *AgentRunMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *AgentRunMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *AgentRunMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *AgentRunMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *AgentRunMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AgentRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentRunMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentRunMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AgentRunMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSession clears the "session" edge to the AgentSession entity.
func (m *AgentRunMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[agentrun.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AgentSession entity was cleared.
func (m *AgentRunMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *AgentRunMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *AgentRunMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecution entity by ids.
func (m *AgentRunMutation) AddToolExecutionIDs(ids ...string) {
	if m.tool_executions == nil {
		m.tool_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.tool_executions[ids[i]] = struct{}{}
	}
}

// ClearToolExecutions clears the "tool_executions" edge to the ToolExecution entity.
func (m *AgentRunMutation) ClearToolExecutions() {
	m.clearedtool_executions = true
}

// ToolExecutionsCleared reports if the "tool_executions" edge to the ToolExecution entity was cleared.
func (m *AgentRunMutation) ToolExecutionsCleared() bool {
	return m.clearedtool_executions
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to the ToolExecution entity by IDs.
func (m *AgentRunMutation) RemoveToolExecutionIDs(ids ...string) {
	if m.removedtool_executions == nil {
		m.removedtool_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tool_executions, ids[i])
		m.removedtool_executions[ids[i]] = struct{}{}
	}
}

// RemovedToolExecutions returns the removed IDs of the "tool_executions" edge to the ToolExecution entity.
func (m *AgentRunMutation) RemovedToolExecutionsIDs() (ids []string) {
	for id := range m.removedtool_executions {
		ids = append(ids, id)
	}
	return
}

// ToolExecutionsIDs returns the "tool_executions" edge IDs in the mutation.
func (m *AgentRunMutation) ToolExecutionsIDs() (ids []string) {
	for id := range m.tool_executions {
		ids = append(ids, id)
	}
	return
}

// ResetToolExecutions resets all changes to the "tool_executions" edge.
func (m *AgentRunMutation) ResetToolExecutions() {
	m.tool_executions = nil
	m.clearedtool_executions = false
	m.removedtool_executions = nil
}

// AddUsageLogIDs adds the "usage_logs" edge to the UsageLog entity by ids.
func (m *AgentRunMutation) AddUsageLogIDs(ids ...string) {
	if m.usage_logs == nil {
		m.usage_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.usage_logs[ids[i]] = struct{}{}
	}
}

// ClearUsageLogs clears the "usage_logs" edge to the UsageLog entity.
func (m *AgentRunMutation) ClearUsageLogs() {
	m.clearedusage_logs = true
}

// UsageLogsCleared reports if the "usage_logs" edge to the UsageLog entity was cleared.
func (m *AgentRunMutation) UsageLogsCleared() bool {
	return m.clearedusage_logs
}

// RemoveUsageLogIDs removes the "usage_logs" edge to the UsageLog entity by IDs.
func (m *AgentRunMutation) RemoveUsageLogIDs(ids ...string) {
	if m.removedusage_logs == nil {
		m.removedusage_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.usage_logs, ids[i])
		m.removedusage_logs[ids[i]] = struct{}{}
	}
}

// RemovedUsageLogs returns the removed IDs of the "usage_logs" edge to the UsageLog entity.
func (m *AgentRunMutation) RemovedUsageLogsIDs() (ids []string) {
	for id := range m.removedusage_logs {
		ids = append(ids, id)
	}
	return
}

// UsageLogsIDs returns the "usage_logs" edge IDs in the mutation.
func (m *AgentRunMutation) UsageLogsIDs() (ids []string) {
	for id := range m.usage_logs {
		ids = append(ids, id)
	}
	return
}

// ResetUsageLogs resets all changes to the "usage_logs" edge.
func (m *AgentRunMutation) ResetUsageLogs() {
	m.usage_logs = nil
	m.clearedusage_logs = false
	m.removedusage_logs = nil
}

// Where appends a list predicates to the AgentRunMutation builder.
func (m *AgentRunMutation) Where(ps ...predicate.AgentRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentRun).
func (m *AgentRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentRunMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.session != nil {
		fields = append(fields, agentrun.FieldSessionID)
	}
	if m.user_message_id != nil {
		fields = append(fields, agentrun.FieldUserMessageID)
	}
	if m.status != nil {
		fields = append(fields, agentrun.FieldStatus)
	}
	if m.config_snapshot != nil {
		fields = append(fields, agentrun.FieldConfigSnapshot)
	}
	if m.sdk_session_id != nil {
		fields = append(fields, agentrun.FieldSdkSessionID)
	}
	if m.claim_token != nil {
		fields = append(fields, agentrun.FieldClaimToken)
	}
	if m.worker_id != nil {
		fields = append(fields, agentrun.FieldWorkerID)
	}
	if m.claimed_at != nil {
		fields = append(fields, agentrun.FieldClaimedAt)
	}
	if m.started_at != nil {
		fields = append(fields, agentrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, agentrun.FieldFinishedAt)
	}
	if m.error != nil {
		fields = append(fields, agentrun.FieldError)
	}
	if m.attempt != nil {
		fields = append(fields, agentrun.FieldAttempt)
	}
	if m.cancel_requested != nil {
		fields = append(fields, agentrun.FieldCancelRequested)
	}
	if m.created_at != nil {
		fields = append(fields, agentrun.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentrun.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldSessionID:
		return m.SessionID()
	case agentrun.FieldUserMessageID:
		return m.UserMessageID()
	case agentrun.FieldStatus:
		return m.Status()
	case agentrun.FieldConfigSnapshot:
		return m.ConfigSnapshot()
	case agentrun.FieldSdkSessionID:
		return m.SdkSessionID()
	case agentrun.FieldClaimToken:
		return m.ClaimToken()
	case agentrun.FieldWorkerID:
		return m.WorkerID()
	case agentrun.FieldClaimedAt:
		return m.ClaimedAt()
	case agentrun.FieldStartedAt:
		return m.StartedAt()
	case agentrun.FieldFinishedAt:
		return m.FinishedAt()
	case agentrun.FieldError:
		return m.Error()
	case agentrun.FieldAttempt:
		return m.Attempt()
	case agentrun.FieldCancelRequested:
		return m.CancelRequested()
	case agentrun.FieldCreatedAt:
		return m.CreatedAt()
	case agentrun.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentrun.FieldSessionID:
		return m.OldSessionID(ctx)
	case agentrun.FieldUserMessageID:
		return m.OldUserMessageID(ctx)
	case agentrun.FieldStatus:
		return m.OldStatus(ctx)
	case agentrun.FieldConfigSnapshot:
		return m.OldConfigSnapshot(ctx)
	case agentrun.FieldSdkSessionID:
		return m.OldSdkSessionID(ctx)
	case agentrun.FieldClaimToken:
		return m.OldClaimToken(ctx)
	case agentrun.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case agentrun.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case agentrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case agentrun.FieldError:
		return m.OldError(ctx)
	case agentrun.FieldAttempt:
		return m.OldAttempt(ctx)
	case agentrun.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case agentrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentrun.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case agentrun.FieldUserMessageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserMessageID(v)
		return nil
	case agentrun.FieldStatus:
		v, ok := value.(agentrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentrun.FieldConfigSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigSnapshot(v)
		return nil
	case agentrun.FieldSdkSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSdkSessionID(v)
		return nil
	case agentrun.FieldClaimToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimToken(v)
		return nil
	case agentrun.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case agentrun.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case agentrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case agentrun.FieldError:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case agentrun.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case agentrun.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case agentrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentrun.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentRunMutation) AddedFields() []string {
	var fields []string
	if m.adduser_message_id != nil {
		fields = append(fields, agentrun.FieldUserMessageID)
	}
	if m.addattempt != nil {
		fields = append(fields, agentrun.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldUserMessageID:
		return m.AddedUserMessageID()
	case agentrun.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldUserMessageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserMessageID(v)
		return nil
	case agentrun.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentrun.FieldConfigSnapshot) {
		fields = append(fields, agentrun.FieldConfigSnapshot)
	}
	if m.FieldCleared(agentrun.FieldSdkSessionID) {
		fields = append(fields, agentrun.FieldSdkSessionID)
	}
	if m.FieldCleared(agentrun.FieldClaimToken) {
		fields = append(fields, agentrun.FieldClaimToken)
	}
	if m.FieldCleared(agentrun.FieldWorkerID) {
		fields = append(fields, agentrun.FieldWorkerID)
	}
	if m.FieldCleared(agentrun.FieldClaimedAt) {
		fields = append(fields, agentrun.FieldClaimedAt)
	}
	if m.FieldCleared(agentrun.FieldStartedAt) {
		fields = append(fields, agentrun.FieldStartedAt)
	}
	if m.FieldCleared(agentrun.FieldFinishedAt) {
		fields = append(fields, agentrun.FieldFinishedAt)
	}
	if m.FieldCleared(agentrun.FieldError) {
		fields = append(fields, agentrun.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentRunMutation) ClearField(name string) error {
	switch name {
	case agentrun.FieldConfigSnapshot:
		m.ClearConfigSnapshot()
		return nil
	case agentrun.FieldSdkSessionID:
		m.ClearSdkSessionID()
		return nil
	case agentrun.FieldClaimToken:
		m.ClearClaimToken()
		return nil
	case agentrun.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case agentrun.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case agentrun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case agentrun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case agentrun.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown AgentRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentRunMutation) ResetField(name string) error {
	switch name {
	case agentrun.FieldSessionID:
		m.ResetSessionID()
		return nil
	case agentrun.FieldUserMessageID:
		m.ResetUserMessageID()
		return nil
	case agentrun.FieldStatus:
		m.ResetStatus()
		return nil
	case agentrun.FieldConfigSnapshot:
		m.ResetConfigSnapshot()
		return nil
	case agentrun.FieldSdkSessionID:
		m.ResetSdkSessionID()
		return nil
	case agentrun.FieldClaimToken:
		m.ResetClaimToken()
		return nil
	case agentrun.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case agentrun.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case agentrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case agentrun.FieldError:
		m.ResetError()
		return nil
	case agentrun.FieldAttempt:
		m.ResetAttempt()
		return nil
	case agentrun.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case agentrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentrun.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.session != nil {
		edges = append(edges, agentrun.EdgeSession)
	}
	if m.tool_executions != nil {
		edges = append(edges, agentrun.EdgeToolExecutions)
	}
	if m.usage_logs != nil {
		edges = append(edges, agentrun.EdgeUsageLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentrun.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case agentrun.EdgeToolExecutions:
		ids := make([]ent.Value, 0, len(m.tool_executions))
		for id := range m.tool_executions {
			ids = append(ids, id)
		}
		return ids
	case agentrun.EdgeUsageLogs:
		ids := make([]ent.Value, 0, len(m.usage_logs))
		for id := range m.usage_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtool_executions != nil {
		edges = append(edges, agentrun.EdgeToolExecutions)
	}
	if m.removedusage_logs != nil {
		edges = append(edges, agentrun.EdgeUsageLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentrun.EdgeToolExecutions:
		ids := make([]ent.Value, 0, len(m.removedtool_executions))
		for id := range m.removedtool_executions {
			ids = append(ids, id)
		}
		return ids
	case agentrun.EdgeUsageLogs:
		ids := make([]ent.Value, 0, len(m.removedusage_logs))
		for id := range m.removedusage_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsession {
		edges = append(edges, agentrun.EdgeSession)
	}
	if m.clearedtool_executions {
		edges = append(edges, agentrun.EdgeToolExecutions)
	}
	if m.clearedusage_logs {
		edges = append(edges, agentrun.EdgeUsageLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentRunMutation) EdgeCleared(name string) bool {
	switch name {
	case agentrun.EdgeSession:
		return m.clearedsession
	case agentrun.EdgeToolExecutions:
		return m.clearedtool_executions
	case agentrun.EdgeUsageLogs:
		return m.clearedusage_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentRunMutation) ClearEdge(name string) error {
	switch name {
	case agentrun.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown AgentRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentRunMutation) ResetEdge(name string) error {
	switch name {
	case agentrun.EdgeSession:
		m.ResetSession()
		return nil
	case agentrun.EdgeToolExecutions:
		m.ResetToolExecutions()
		return nil
	case agentrun.EdgeUsageLogs:
		m.ResetUsageLogs()
		return nil
	}
	return fmt.Errorf("unknown AgentRun edge %s", name)
}

// AgentSessionMutation represents an operation that mutates the AgentSession nodes in the graph.
type AgentSessionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	user_id                 *string
	sdk_session_id          *string
	status                  *agentsession.Status
	config_snapshot         *map[string]interface{}
	state_patch             *map[string]interface{}
	workspace_files_prefix  *string
	workspace_manifest_key  *string
	workspace_archive_key   *string
	workspace_export_status *string
	is_deleted              *bool
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	project                 *string
	clearedproject          bool
	messages                map[int]struct{}
	removedmessages         map[int]struct{}
	clearedmessages         bool
	runs                    map[string]struct{}
	removedruns             map[string]struct{}
	clearedruns             bool
	tool_executions         map[string]struct{}
	removedtool_executions  map[string]struct{}
	clearedtool_executions  bool
	usage_logs              map[string]struct{}
	removedusage_logs       map[string]struct{}
	clearedusage_logs       bool
	done                    bool
	oldValue                func(context.Context) (*AgentSession, error)
	predicates              []predicate.AgentSession
}

var _ ent.Mutation = (*AgentSessionMutation)(nil)

// agentsessionOption allows management of the mutation configuration using functional options.
type agentsessionOption func(*AgentSessionMutation)

// newAgentSessionMutation creates new mutation for the AgentSession entity.
func newAgentSessionMutation(c config, op Op, opts ...agentsessionOption) *AgentSessionMutation {
	m := &AgentSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentSessionID sets the ID field of the mutation.
func withAgentSessionID(id string) agentsessionOption {
	return func(m *AgentSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentSession
		)
		m.oldValue = func(ctx context.Context) (*AgentSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentSession sets the old AgentSession of the mutation.
func withAgentSession(node *AgentSession) agentsessionOption {
	return func(m *AgentSessionMutation) {
		m.oldValue = func(context.Context) (*AgentSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentSession entities.
func (m *AgentSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AgentSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AgentSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AgentSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *AgentSessionMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *AgentSessionMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldProjectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *AgentSessionMutation) ClearProjectID() {
	m.project = nil
	m.clearedFields[agentsession.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *AgentSessionMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *AgentSessionMutation) ResetProjectID() {
	m.project = nil
	delete(m.clearedFields, agentsession.FieldProjectID)
}

// SetSdkSessionID sets the "sdk_session_id" field.
func (m *AgentSessionMutation) SetSdkSessionID(s string) {
	m.sdk_session_id = &s
}

// SdkSessionID returns the value of the "sdk_session_id" field in the mutation.
func (m *AgentSessionMutation) SdkSessionID() (r string, exists bool) {
	v := m.sdk_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSdkSessionID returns the old "sdk_session_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldSdkSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSdkSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSdkSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSdkSessionID: %w", err)
	}
	return oldValue.SdkSessionID, nil
}

// ClearSdkSessionID clears the value of the "sdk_session_id" field.
func (m *AgentSessionMutation) ClearSdkSessionID() {
	m.sdk_session_id = nil
	m.clearedFields[agentsession.FieldSdkSessionID] = struct{}{}
}

// SdkSessionIDCleared returns if the "sdk_session_id" field was cleared in this mutation.
func (m *AgentSessionMutation) SdkSessionIDCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldSdkSessionID]
	return ok
}

// ResetSdkSessionID resets all changes to the "sdk_session_id" field.
func (m *AgentSessionMutation) ResetSdkSessionID() {
	m.sdk_session_id = nil
	delete(m.clearedFields, agentsession.FieldSdkSessionID)
}

// SetStatus sets the "status" field.
func (m *AgentSessionMutation) SetStatus(a agentsession.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentSessionMutation) Status() (r agentsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldStatus(ctx context.Context) (v agentsession.Status, err error) {
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
func (m *AgentSessionMutation) ResetStatus() {
	m.status = nil
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (m *AgentSessionMutation) SetConfigSnapshot(value map[string]interface{}) {
	m.config_snapshot = &value
}

// ConfigSnapshot returns the value of the "config_snapshot" field in the mutation.
func (m *AgentSessionMutation) ConfigSnapshot() (r map[string]interface{}, exists bool) {
	v := m.config_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigSnapshot returns the old "config_snapshot" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldConfigSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigSnapshot: %w", err)
	}
	return oldValue.ConfigSnapshot, nil
}

// ClearConfigSnapshot clears the value of the "config_snapshot" field.
func (m *AgentSessionMutation) ClearConfigSnapshot() {
	m.config_snapshot = nil
	m.clearedFields[agentsession.FieldConfigSnapshot] = struct{}{}
}

// ConfigSnapshotCleared returns if the "config_snapshot" field was cleared in this mutation.
func (m *AgentSessionMutation) ConfigSnapshotCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldConfigSnapshot]
	return ok
}

// ResetConfigSnapshot resets all changes to the "config_snapshot" field.
func (m *AgentSessionMutation) ResetConfigSnapshot() {
	m.config_snapshot = nil
	delete(m.clearedFields, agentsession.FieldConfigSnapshot)
}

// SetStatePatch sets the "state_patch" field.
func (m *AgentSessionMutation) SetStatePatch(value map[string]interface{}) {
	m.state_patch = &value
}

// StatePatch returns the value of the "state_patch" field in the mutation.
func (m *AgentSessionMutation) StatePatch() (r map[string]interface{}, exists bool) {
	v := m.state_patch
	if v == nil {
		return
	}
	return *v, true
}

// OldStatePatch returns the old "state_patch" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldStatePatch(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatePatch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatePatch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatePatch: %w", err)
	}
	return oldValue.StatePatch, nil
}

// ClearStatePatch clears the value of the "state_patch" field.
func (m *AgentSessionMutation) ClearStatePatch() {
	m.state_patch = nil
	m.clearedFields[agentsession.FieldStatePatch] = struct{}{}
}

// StatePatchCleared returns if the "state_patch" field was cleared in this mutation.
func (m *AgentSessionMutation) StatePatchCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldStatePatch]
	return ok
}

// ResetStatePatch resets all changes to the "state_patch" field.
func (m *AgentSessionMutation) ResetStatePatch() {
	m.state_patch = nil
	delete(m.clearedFields, agentsession.FieldStatePatch)
}

// SetWorkspaceFilesPrefix sets the "workspace_files_prefix" field.
func (m *AgentSessionMutation) SetWorkspaceFilesPrefix(s string) {
	m.workspace_files_prefix = &s
}

// WorkspaceFilesPrefix returns the value of the "workspace_files_prefix" field in the mutation.
func (m *AgentSessionMutation) WorkspaceFilesPrefix() (r string, exists bool) {
	v := m.workspace_files_prefix
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceFilesPrefix returns the old "workspace_files_prefix" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldWorkspaceFilesPrefix(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceFilesPrefix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceFilesPrefix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceFilesPrefix: %w", err)
	}
	return oldValue.WorkspaceFilesPrefix, nil
}

// ClearWorkspaceFilesPrefix clears the value of the "workspace_files_prefix" field.
func (m *AgentSessionMutation) ClearWorkspaceFilesPrefix() {
	m.workspace_files_prefix = nil
	m.clearedFields[agentsession.FieldWorkspaceFilesPrefix] = struct{}{}
}

// WorkspaceFilesPrefixCleared returns if the "workspace_files_prefix" field was cleared in this mutation.
func (m *AgentSessionMutation) WorkspaceFilesPrefixCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldWorkspaceFilesPrefix]
	return ok
}

// ResetWorkspaceFilesPrefix resets all changes to the "workspace_files_prefix" field.
func (m *AgentSessionMutation) ResetWorkspaceFilesPrefix() {
	m.workspace_files_prefix = nil
	delete(m.clearedFields, agentsession.FieldWorkspaceFilesPrefix)
}

// SetWorkspaceManifestKey sets the "workspace_manifest_key" field.
func (m *AgentSessionMutation) SetWorkspaceManifestKey(s string) {
	m.workspace_manifest_key = &s
}

// WorkspaceManifestKey returns the value of the "workspace_manifest_key" field in the mutation.
func (m *AgentSessionMutation) WorkspaceManifestKey() (r string, exists bool) {
	v := m.workspace_manifest_key
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceManifestKey returns the old "workspace_manifest_key" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldWorkspaceManifestKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceManifestKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceManifestKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceManifestKey: %w", err)
	}
	return oldValue.WorkspaceManifestKey, nil
}

// ClearWorkspaceManifestKey clears the value of the "workspace_manifest_key" field.
func (m *AgentSessionMutation) ClearWorkspaceManifestKey() {
	m.workspace_manifest_key = nil
	m.clearedFields[agentsession.FieldWorkspaceManifestKey] = struct{}{}
}

// WorkspaceManifestKeyCleared returns if the "workspace_manifest_key" field was cleared in this mutation.
func (m *AgentSessionMutation) WorkspaceManifestKeyCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldWorkspaceManifestKey]
	return ok
}

// ResetWorkspaceManifestKey resets all changes to the "workspace_manifest_key" field.
func (m *AgentSessionMutation) ResetWorkspaceManifestKey() {
	m.workspace_manifest_key = nil
	delete(m.clearedFields, agentsession.FieldWorkspaceManifestKey)
}

// SetWorkspaceArchiveKey sets the "workspace_archive_key" field.
func (m *AgentSessionMutation) SetWorkspaceArchiveKey(s string) {
	m.workspace_archive_key = &s
}

// WorkspaceArchiveKey returns the value of the "workspace_archive_key" field in the mutation.
func (m *AgentSessionMutation) WorkspaceArchiveKey() (r string, exists bool) {
	v := m.workspace_archive_key
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceArchiveKey returns the old "workspace_archive_key" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldWorkspaceArchiveKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceArchiveKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceArchiveKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceArchiveKey: %w", err)
	}
	return oldValue.WorkspaceArchiveKey, nil
}

// ClearWorkspaceArchiveKey clears the value of the "workspace_archive_key" field.
func (m *AgentSessionMutation) ClearWorkspaceArchiveKey() {
	m.workspace_archive_key = nil
	m.clearedFields[agentsession.FieldWorkspaceArchiveKey] = struct{}{}
}

// WorkspaceArchiveKeyCleared returns if the "workspace_archive_key" field was cleared in this mutation.
func (m *AgentSessionMutation) WorkspaceArchiveKeyCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldWorkspaceArchiveKey]
	return ok
}

// ResetWorkspaceArchiveKey resets all changes to the "workspace_archive_key" field.
func (m *AgentSessionMutation) ResetWorkspaceArchiveKey() {
	m.workspace_archive_key = nil
	delete(m.clearedFields, agentsession.FieldWorkspaceArchiveKey)
}

// SetWorkspaceExportStatus sets the "workspace_export_status" field.
func (m *AgentSessionMutation) SetWorkspaceExportStatus(s string) {
	m.workspace_export_status = &s
}

// WorkspaceExportStatus returns the value of the "workspace_export_status" field in the mutation.
func (m *AgentSessionMutation) WorkspaceExportStatus() (r string, exists bool) {
	v := m.workspace_export_status
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceExportStatus returns the old "workspace_export_status" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldWorkspaceExportStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceExportStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceExportStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceExportStatus: %w", err)
	}
	return oldValue.WorkspaceExportStatus, nil
}

// ClearWorkspaceExportStatus clears the value of the "workspace_export_status" field.
func (m *AgentSessionMutation) ClearWorkspaceExportStatus() {
	m.workspace_export_status = nil
	m.clearedFields[agentsession.FieldWorkspaceExportStatus] = struct{}{}
}

// WorkspaceExportStatusCleared returns if the "workspace_export_status" field was cleared in this mutation.
func (m *AgentSessionMutation) WorkspaceExportStatusCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldWorkspaceExportStatus]
	return ok
}

// ResetWorkspaceExportStatus resets all changes to the "workspace_export_status" field.
func (m *AgentSessionMutation) ResetWorkspaceExportStatus() {
	m.workspace_export_status = nil
	delete(m.clearedFields, agentsession.FieldWorkspaceExportStatus)
}

// SetIsDeleted sets the "is_deleted" field.
func (m *AgentSessionMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *AgentSessionMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *AgentSessionMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AgentSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AgentSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *AgentSessionMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[agentsession.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *AgentSessionMutation) ProjectCleared() bool {
	return m.ProjectIDCleared() || m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *AgentSessionMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *AgentSessionMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddMessageIDs adds the "messages" edge to the AgentMessage entity by ids.
func (m *AgentSessionMutation) AddMessageIDs(ids ...int) {
	if m.messages == nil {
		m.messages = make(map[int]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the AgentMessage entity.
func (m *AgentSessionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the AgentMessage entity was cleared.
func (m *AgentSessionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the AgentMessage entity by IDs.
func (m *AgentSessionMutation) RemoveMessageIDs(ids ...int) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the AgentMessage entity.
func (m *AgentSessionMutation) RemovedMessagesIDs() (ids []int) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *AgentSessionMutation) MessagesIDs() (ids []int) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *AgentSessionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddRunIDs adds the "runs" edge to the AgentRun entity by ids.
func (m *AgentSessionMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the AgentRun entity.
func (m *AgentSessionMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the AgentRun entity was cleared.
func (m *AgentSessionMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the AgentRun entity by IDs.
func (m *AgentSessionMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the AgentRun entity.
func (m *AgentSessionMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *AgentSessionMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *AgentSessionMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecution entity by ids.
func (m *AgentSessionMutation) AddToolExecutionIDs(ids ...string) {
	if m.tool_executions == nil {
		m.tool_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.tool_executions[ids[i]] = struct{}{}
	}
}

// ClearToolExecutions clears the "tool_executions" edge to the ToolExecution entity.
func (m *AgentSessionMutation) ClearToolExecutions() {
	m.clearedtool_executions = true
}

// ToolExecutionsCleared reports if the "tool_executions" edge to the ToolExecution entity was cleared.
func (m *AgentSessionMutation) ToolExecutionsCleared() bool {
	return m.clearedtool_executions
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to the ToolExecution entity by IDs.
func (m *AgentSessionMutation) RemoveToolExecutionIDs(ids ...string) {
	if m.removedtool_executions == nil {
		m.removedtool_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tool_executions, ids[i])
		m.removedtool_executions[ids[i]] = struct{}{}
	}
}

// RemovedToolExecutions returns the removed IDs of the "tool_executions" edge to the ToolExecution entity.
func (m *AgentSessionMutation) RemovedToolExecutionsIDs() (ids []string) {
	for id := range m.removedtool_executions {
		ids = append(ids, id)
	}
	return
}

// ToolExecutionsIDs returns the "tool_executions" edge IDs in the mutation.
func (m *AgentSessionMutation) ToolExecutionsIDs() (ids []string) {
	for id := range m.tool_executions {
		ids = append(ids, id)
	}
	return
}

// ResetToolExecutions resets all changes to the "tool_executions" edge.
func (m *AgentSessionMutation) ResetToolExecutions() {
	m.tool_executions = nil
	m.clearedtool_executions = false
	m.removedtool_executions = nil
}

// AddUsageLogIDs adds the "usage_logs" edge to the UsageLog entity by ids.
func (m *AgentSessionMutation) AddUsageLogIDs(ids ...string) {
	if m.usage_logs == nil {
		m.usage_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.usage_logs[ids[i]] = struct{}{}
	}
}

// ClearUsageLogs clears the "usage_logs" edge to the UsageLog entity.
func (m *AgentSessionMutation) ClearUsageLogs() {
	m.clearedusage_logs = true
}

// UsageLogsCleared reports if the "usage_logs" edge to the UsageLog entity was cleared.
func (m *AgentSessionMutation) UsageLogsCleared() bool {
	return m.clearedusage_logs
}

// RemoveUsageLogIDs removes the "usage_logs" edge to the UsageLog entity by IDs.
func (m *AgentSessionMutation) RemoveUsageLogIDs(ids ...string) {
	if m.removedusage_logs == nil {
		m.removedusage_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.usage_logs, ids[i])
		m.removedusage_logs[ids[i]] = struct{}{}
	}
}

// RemovedUsageLogs returns the removed IDs of the "usage_logs" edge to the UsageLog entity.
func (m *AgentSessionMutation) RemovedUsageLogsIDs() (ids []string) {
	for id := range m.removedusage_logs {
		ids = append(ids, id)
	}
	return
}

// UsageLogsIDs returns the "usage_logs" edge IDs in the mutation.
func (m *AgentSessionMutation) UsageLogsIDs() (ids []string) {
	for id := range m.usage_logs {
		ids = append(ids, id)
	}
	return
}

// ResetUsageLogs resets all changes to the "usage_logs" edge.
func (m *AgentSessionMutation) ResetUsageLogs() {
	m.usage_logs = nil
	m.clearedusage_logs = false
	m.removedusage_logs = nil
}

// Where appends a list predicates to the AgentSessionMutation builder.
func (m *AgentSessionMutation) Where(ps ...predicate.AgentSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentSession).
func (m *AgentSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentSessionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.user_id != nil {
		fields = append(fields, agentsession.FieldUserID)
	}
	if m.project != nil {
		fields = append(fields, agentsession.FieldProjectID)
	}
	if m.sdk_session_id != nil {
		fields = append(fields, agentsession.FieldSdkSessionID)
	}
	if m.status != nil {
		fields = append(fields, agentsession.FieldStatus)
	}
	if m.config_snapshot != nil {
		fields = append(fields, agentsession.FieldConfigSnapshot)
	}
	if m.state_patch != nil {
		fields = append(fields, agentsession.FieldStatePatch)
	}
	if m.workspace_files_prefix != nil {
		fields = append(fields, agentsession.FieldWorkspaceFilesPrefix)
	}
	if m.workspace_manifest_key != nil {
		fields = append(fields, agentsession.FieldWorkspaceManifestKey)
	}
	if m.workspace_archive_key != nil {
		fields = append(fields, agentsession.FieldWorkspaceArchiveKey)
	}
	if m.workspace_export_status != nil {
		fields = append(fields, agentsession.FieldWorkspaceExportStatus)
	}
	if m.is_deleted != nil {
		fields = append(fields, agentsession.FieldIsDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, agentsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentsession.FieldUserID:
		return m.UserID()
	case agentsession.FieldProjectID:
		return m.ProjectID()
	case agentsession.FieldSdkSessionID:
		return m.SdkSessionID()
	case agentsession.FieldStatus:
		return m.Status()
	case agentsession.FieldConfigSnapshot:
		return m.ConfigSnapshot()
	case agentsession.FieldStatePatch:
		return m.StatePatch()
	case agentsession.FieldWorkspaceFilesPrefix:
		return m.WorkspaceFilesPrefix()
	case agentsession.FieldWorkspaceManifestKey:
		return m.WorkspaceManifestKey()
	case agentsession.FieldWorkspaceArchiveKey:
		return m.WorkspaceArchiveKey()
	case agentsession.FieldWorkspaceExportStatus:
		return m.WorkspaceExportStatus()
	case agentsession.FieldIsDeleted:
		return m.IsDeleted()
	case agentsession.FieldCreatedAt:
		return m.CreatedAt()
	case agentsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentsession.FieldUserID:
		return m.OldUserID(ctx)
	case agentsession.FieldProjectID:
		return m.OldProjectID(ctx)
	case agentsession.FieldSdkSessionID:
		return m.OldSdkSessionID(ctx)
	case agentsession.FieldStatus:
		return m.OldStatus(ctx)
	case agentsession.FieldConfigSnapshot:
		return m.OldConfigSnapshot(ctx)
	case agentsession.FieldStatePatch:
		return m.OldStatePatch(ctx)
	case agentsession.FieldWorkspaceFilesPrefix:
		return m.OldWorkspaceFilesPrefix(ctx)
	case agentsession.FieldWorkspaceManifestKey:
		return m.OldWorkspaceManifestKey(ctx)
	case agentsession.FieldWorkspaceArchiveKey:
		return m.OldWorkspaceArchiveKey(ctx)
	case agentsession.FieldWorkspaceExportStatus:
		return m.OldWorkspaceExportStatus(ctx)
	case agentsession.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case agentsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case agentsession.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case agentsession.FieldSdkSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSdkSessionID(v)
		return nil
	case agentsession.FieldStatus:
		v, ok := value.(agentsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentsession.FieldConfigSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigSnapshot(v)
		return nil
	case agentsession.FieldStatePatch:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatePatch(v)
		return nil
	case agentsession.FieldWorkspaceFilesPrefix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceFilesPrefix(v)
		return nil
	case agentsession.FieldWorkspaceManifestKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceManifestKey(v)
		return nil
	case agentsession.FieldWorkspaceArchiveKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceArchiveKey(v)
		return nil
	case agentsession.FieldWorkspaceExportStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceExportStatus(v)
		return nil
	case agentsession.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case agentsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentsession.FieldProjectID) {
		fields = append(fields, agentsession.FieldProjectID)
	}
	if m.FieldCleared(agentsession.FieldSdkSessionID) {
		fields = append(fields, agentsession.FieldSdkSessionID)
	}
	if m.FieldCleared(agentsession.FieldConfigSnapshot) {
		fields = append(fields, agentsession.FieldConfigSnapshot)
	}
	if m.FieldCleared(agentsession.FieldStatePatch) {
		fields = append(fields, agentsession.FieldStatePatch)
	}
	if m.FieldCleared(agentsession.FieldWorkspaceFilesPrefix) {
		fields = append(fields, agentsession.FieldWorkspaceFilesPrefix)
	}
	if m.FieldCleared(agentsession.FieldWorkspaceManifestKey) {
		fields = append(fields, agentsession.FieldWorkspaceManifestKey)
	}
	if m.FieldCleared(agentsession.FieldWorkspaceArchiveKey) {
		fields = append(fields, agentsession.FieldWorkspaceArchiveKey)
	}
	if m.FieldCleared(agentsession.FieldWorkspaceExportStatus) {
		fields = append(fields, agentsession.FieldWorkspaceExportStatus)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentSessionMutation) ClearField(name string) error {
	switch name {
	case agentsession.FieldProjectID:
		m.ClearProjectID()
		return nil
	case agentsession.FieldSdkSessionID:
		m.ClearSdkSessionID()
		return nil
	case agentsession.FieldConfigSnapshot:
		m.ClearConfigSnapshot()
		return nil
	case agentsession.FieldStatePatch:
		m.ClearStatePatch()
		return nil
	case agentsession.FieldWorkspaceFilesPrefix:
		m.ClearWorkspaceFilesPrefix()
		return nil
	case agentsession.FieldWorkspaceManifestKey:
		m.ClearWorkspaceManifestKey()
		return nil
	case agentsession.FieldWorkspaceArchiveKey:
		m.ClearWorkspaceArchiveKey()
		return nil
	case agentsession.FieldWorkspaceExportStatus:
		m.ClearWorkspaceExportStatus()
		return nil
	}
	return fmt.Errorf("unknown AgentSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentSessionMutation) ResetField(name string) error {
	switch name {
	case agentsession.FieldUserID:
		m.ResetUserID()
		return nil
	case agentsession.FieldProjectID:
		m.ResetProjectID()
		return nil
	case agentsession.FieldSdkSessionID:
		m.ResetSdkSessionID()
		return nil
	case agentsession.FieldStatus:
		m.ResetStatus()
		return nil
	case agentsession.FieldConfigSnapshot:
		m.ResetConfigSnapshot()
		return nil
	case agentsession.FieldStatePatch:
		m.ResetStatePatch()
		return nil
	case agentsession.FieldWorkspaceFilesPrefix:
		m.ResetWorkspaceFilesPrefix()
		return nil
	case agentsession.FieldWorkspaceManifestKey:
		m.ResetWorkspaceManifestKey()
		return nil
	case agentsession.FieldWorkspaceArchiveKey:
		m.ResetWorkspaceArchiveKey()
		return nil
	case agentsession.FieldWorkspaceExportStatus:
		m.ResetWorkspaceExportStatus()
		return nil
	case agentsession.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case agentsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.project != nil {
		edges = append(edges, agentsession.EdgeProject)
	}
	if m.messages != nil {
		edges = append(edges, agentsession.EdgeMessages)
	}
	if m.runs != nil {
		edges = append(edges, agentsession.EdgeRuns)
	}
	if m.tool_executions != nil {
		edges = append(edges, agentsession.EdgeToolExecutions)
	}
	if m.usage_logs != nil {
		edges = append(edges, agentsession.EdgeUsageLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentsession.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case agentsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case agentsession.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	case agentsession.EdgeToolExecutions:
		ids := make([]ent.Value, 0, len(m.tool_executions))
		for id := range m.tool_executions {
			ids = append(ids, id)
		}
		return ids
	case agentsession.EdgeUsageLogs:
		ids := make([]ent.Value, 0, len(m.usage_logs))
		for id := range m.usage_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedmessages != nil {
		edges = append(edges, agentsession.EdgeMessages)
	}
	if m.removedruns != nil {
		edges = append(edges, agentsession.EdgeRuns)
	}
	if m.removedtool_executions != nil {
		edges = append(edges, agentsession.EdgeToolExecutions)
	}
	if m.removedusage_logs != nil {
		edges = append(edges, agentsession.EdgeUsageLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case agentsession.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	case agentsession.EdgeToolExecutions:
		ids := make([]ent.Value, 0, len(m.removedtool_executions))
		for id := range m.removedtool_executions {
			ids = append(ids, id)
		}
		return ids
	case agentsession.EdgeUsageLogs:
		ids := make([]ent.Value, 0, len(m.removedusage_logs))
		for id := range m.removedusage_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedproject {
		edges = append(edges, agentsession.EdgeProject)
	}
	if m.clearedmessages {
		edges = append(edges, agentsession.EdgeMessages)
	}
	if m.clearedruns {
		edges = append(edges, agentsession.EdgeRuns)
	}
	if m.clearedtool_executions {
		edges = append(edges, agentsession.EdgeToolExecutions)
	}
	if m.clearedusage_logs {
		edges = append(edges, agentsession.EdgeUsageLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentsession.EdgeProject:
		return m.clearedproject
	case agentsession.EdgeMessages:
		return m.clearedmessages
	case agentsession.EdgeRuns:
		return m.clearedruns
	case agentsession.EdgeToolExecutions:
		return m.clearedtool_executions
	case agentsession.EdgeUsageLogs:
		return m.clearedusage_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentSessionMutation) ClearEdge(name string) error {
	switch name {
	case agentsession.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown AgentSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentSessionMutation) ResetEdge(name string) error {
	switch name {
	case agentsession.EdgeProject:
		m.ResetProject()
		return nil
	case agentsession.EdgeMessages:
		m.ResetMessages()
		return nil
	case agentsession.EdgeRuns:
		m.ResetRuns()
		return nil
	case agentsession.EdgeToolExecutions:
		m.ResetToolExecutions()
		return nil
	case agentsession.EdgeUsageLogs:
		m.ResetUsageLogs()
		return nil
	}
	return fmt.Errorf("unknown AgentSession edge %s", name)
}

// McpPresetMutation represents an operation that mutates the McpPreset nodes in the graph.
type McpPresetMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	_config       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*McpPreset, error)
	predicates    []predicate.McpPreset
}

var _ ent.Mutation = (*McpPresetMutation)(nil)

// mcppresetOption allows management of the mutation configuration using functional options.
type mcppresetOption func(*McpPresetMutation)

// newMcpPresetMutation creates new mutation for the McpPreset entity.
func newMcpPresetMutation(c config, op Op, opts ...mcppresetOption) *McpPresetMutation {
	m := &McpPresetMutation{
		config:        c,
		op:            op,
		typ:           TypeMcpPreset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMcpPresetID sets the ID field of the mutation.
func withMcpPresetID(id int) mcppresetOption {
	return func(m *McpPresetMutation) {
		var (
			err   error
			once  sync.Once
			value *McpPreset
		)
		m.oldValue = func(ctx context.Context) (*McpPreset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().McpPreset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMcpPreset sets the old McpPreset of the mutation.
func withMcpPreset(node *McpPreset) mcppresetOption {
	return func(m *McpPresetMutation) {
		m.oldValue = func(context.Context) (*McpPreset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m McpPresetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m McpPresetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of McpPreset entities.
func (m *McpPresetMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *McpPresetMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *McpPresetMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().McpPreset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *McpPresetMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *McpPresetMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the McpPreset entity.
// If the McpPreset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *McpPresetMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *McpPresetMutation) ResetName() {
	m.name = nil
}

// SetConfig sets the "config" field.
func (m *McpPresetMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *McpPresetMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the McpPreset entity.
// If the McpPreset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *McpPresetMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ResetConfig resets all changes to the "config" field.
func (m *McpPresetMutation) ResetConfig() {
	m._config = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *McpPresetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *McpPresetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the McpPreset entity.
// If the McpPreset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *McpPresetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *McpPresetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the McpPresetMutation builder.
func (m *McpPresetMutation) Where(ps ...predicate.McpPreset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the McpPresetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *McpPresetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.McpPreset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *McpPresetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *McpPresetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (McpPreset).
func (m *McpPresetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *McpPresetMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, mcppreset.FieldName)
	}
	if m._config != nil {
		fields = append(fields, mcppreset.FieldConfig)
	}
	if m.created_at != nil {
		fields = append(fields, mcppreset.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *McpPresetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mcppreset.FieldName:
		return m.Name()
	case mcppreset.FieldConfig:
		return m.Config()
	case mcppreset.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *McpPresetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mcppreset.FieldName:
		return m.OldName(ctx)
	case mcppreset.FieldConfig:
		return m.OldConfig(ctx)
	case mcppreset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown McpPreset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *McpPresetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mcppreset.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case mcppreset.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case mcppreset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown McpPreset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *McpPresetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *McpPresetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *McpPresetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown McpPreset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *McpPresetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *McpPresetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *McpPresetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown McpPreset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *McpPresetMutation) ResetField(name string) error {
	switch name {
	case mcppreset.FieldName:
		m.ResetName()
		return nil
	case mcppreset.FieldConfig:
		m.ResetConfig()
		return nil
	case mcppreset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown McpPreset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *McpPresetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *McpPresetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *McpPresetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *McpPresetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *McpPresetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *McpPresetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *McpPresetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown McpPreset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *McpPresetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown McpPreset edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op              Op
	typ             string
	id              *string
	user_id         *string
	name            *string
	is_deleted      *bool
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	sessions        map[string]struct{}
	removedsessions map[string]struct{}
	clearedsessions bool
	done            bool
	oldValue        func(context.Context) (*Project, error)
	predicates      []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ProjectMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ProjectMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ProjectMutation) ResetUserID() {
	m.user_id = nil
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetIsDeleted sets the "is_deleted" field.
func (m *ProjectMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *ProjectMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *ProjectMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddSessionIDs adds the "sessions" edge to the AgentSession entity by ids.
func (m *ProjectMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the AgentSession entity.
func (m *ProjectMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the AgentSession entity was cleared.
func (m *ProjectMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the AgentSession entity by IDs.
func (m *ProjectMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the AgentSession entity.
func (m *ProjectMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *ProjectMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *ProjectMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, project.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.is_deleted != nil {
		fields = append(fields, project.FieldIsDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldUserID:
		return m.UserID()
	case project.FieldName:
		return m.Name()
	case project.FieldIsDeleted:
		return m.IsDeleted()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldUserID:
		return m.OldUserID(ctx)
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldUserID:
		m.ResetUserID()
		return nil
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.sessions != nil {
		edges = append(edges, project.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsessions != nil {
		edges = append(edges, project.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsessions {
		edges = append(edges, project.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// SkillPresetMutation represents an operation that mutates the SkillPreset nodes in the graph.
type SkillPresetMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	entries       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SkillPreset, error)
	predicates    []predicate.SkillPreset
}

var _ ent.Mutation = (*SkillPresetMutation)(nil)

// skillpresetOption allows management of the mutation configuration using functional options.
type skillpresetOption func(*SkillPresetMutation)

// newSkillPresetMutation creates new mutation for the SkillPreset entity.
func newSkillPresetMutation(c config, op Op, opts ...skillpresetOption) *SkillPresetMutation {
	m := &SkillPresetMutation{
		config:        c,
		op:            op,
		typ:           TypeSkillPreset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSkillPresetID sets the ID field of the mutation.
func withSkillPresetID(id int) skillpresetOption {
	return func(m *SkillPresetMutation) {
		var (
			err   error
			once  sync.Once
			value *SkillPreset
		)
		m.oldValue = func(ctx context.Context) (*SkillPreset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SkillPreset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSkillPreset sets the old SkillPreset of the mutation.
func withSkillPreset(node *SkillPreset) skillpresetOption {
	return func(m *SkillPresetMutation) {
		m.oldValue = func(context.Context) (*SkillPreset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SkillPresetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SkillPresetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SkillPreset entities.
func (m *SkillPresetMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SkillPresetMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SkillPresetMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SkillPreset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SkillPresetMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SkillPresetMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SkillPreset entity.
// If the SkillPreset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillPresetMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SkillPresetMutation) ResetName() {
	m.name = nil
}

// SetEntries sets the "entries" field.
func (m *SkillPresetMutation) SetEntries(value map[string]interface{}) {
	m.entries = &value
}

// Entries returns the value of the "entries" field in the mutation.
func (m *SkillPresetMutation) Entries() (r map[string]interface{}, exists bool) {
	v := m.entries
	if v == nil {
		return
	}
	return *v, true
}

// OldEntries returns the old "entries" field's value of the SkillPreset entity.
// If the SkillPreset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillPresetMutation) OldEntries(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntries: %w", err)
	}
	return oldValue.Entries, nil
}

// ResetEntries resets all changes to the "entries" field.
func (m *SkillPresetMutation) ResetEntries() {
	m.entries = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SkillPresetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SkillPresetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SkillPreset entity.
// If the SkillPreset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillPresetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SkillPresetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SkillPresetMutation builder.
func (m *SkillPresetMutation) Where(ps ...predicate.SkillPreset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SkillPresetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SkillPresetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SkillPreset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SkillPresetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SkillPresetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SkillPreset).
func (m *SkillPresetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SkillPresetMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, skillpreset.FieldName)
	}
	if m.entries != nil {
		fields = append(fields, skillpreset.FieldEntries)
	}
	if m.created_at != nil {
		fields = append(fields, skillpreset.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SkillPresetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case skillpreset.FieldName:
		return m.Name()
	case skillpreset.FieldEntries:
		return m.Entries()
	case skillpreset.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SkillPresetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case skillpreset.FieldName:
		return m.OldName(ctx)
	case skillpreset.FieldEntries:
		return m.OldEntries(ctx)
	case skillpreset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SkillPreset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillPresetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case skillpreset.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case skillpreset.FieldEntries:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntries(v)
		return nil
	case skillpreset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SkillPreset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SkillPresetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SkillPresetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillPresetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SkillPreset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SkillPresetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SkillPresetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SkillPresetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SkillPreset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SkillPresetMutation) ResetField(name string) error {
	switch name {
	case skillpreset.FieldName:
		m.ResetName()
		return nil
	case skillpreset.FieldEntries:
		m.ResetEntries()
		return nil
	case skillpreset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SkillPreset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SkillPresetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SkillPresetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SkillPresetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SkillPresetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SkillPresetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SkillPresetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SkillPresetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SkillPreset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SkillPresetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SkillPreset edge %s", name)
}

// ToolExecutionMutation represents an operation that mutates the ToolExecution nodes in the graph.
type ToolExecutionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	tool_name      *string
	status         *toolexecution.Status
	input          *map[string]interface{}
	output         *map[string]interface{}
	error          *map[string]interface{}
	started_at     *time.Time
	finished_at    *time.Time
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	run            *string
	clearedrun     bool
	done           bool
	oldValue       func(context.Context) (*ToolExecution, error)
	predicates     []predicate.ToolExecution
}

var _ ent.Mutation = (*ToolExecutionMutation)(nil)

// toolexecutionOption allows management of the mutation configuration using functional options.
type toolexecutionOption func(*ToolExecutionMutation)

// newToolExecutionMutation creates new mutation for the ToolExecution entity.
func newToolExecutionMutation(c config, op Op, opts ...toolexecutionOption) *ToolExecutionMutation {
	m := &ToolExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeToolExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolExecutionID sets the ID field of the mutation.
func withToolExecutionID(id string) toolexecutionOption {
	return func(m *ToolExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolExecution
		)
		m.oldValue = func(ctx context.Context) (*ToolExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolExecution sets the old ToolExecution of the mutation.
func withToolExecution(node *ToolExecution) toolexecutionOption {
	return func(m *ToolExecutionMutation) {
		m.oldValue = func(context.Context) (*ToolExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolExecution entities.
func (m *ToolExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ToolExecutionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ToolExecutionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ToolExecutionMutation) ResetSessionID() {
	m.session = nil
}

// SetRunID sets the "run_id" field.
func (m *ToolExecutionMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ToolExecutionMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ToolExecutionMutation) ResetRunID() {
	m.run = nil
}

// SetToolName sets the "tool_name" field.
func (m *ToolExecutionMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ToolExecutionMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ToolExecutionMutation) ResetToolName() {
	m.tool_name = nil
}

// SetStatus sets the "status" field.
func (m *ToolExecutionMutation) SetStatus(t toolexecution.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *ToolExecutionMutation) Status() (r toolexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldStatus(ctx context.Context) (v toolexecution.Status, err error) {
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
func (m *ToolExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetInput sets the "input" field.
func (m *ToolExecutionMutation) SetInput(value map[string]interface{}) {
	m.input = &value
}

// Input returns the value of the "input" field in the mutation.
func (m *ToolExecutionMutation) Input() (r map[string]interface{}, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ClearInput clears the value of the "input" field.
func (m *ToolExecutionMutation) ClearInput() {
	m.input = nil
	m.clearedFields[toolexecution.FieldInput] = struct{}{}
}

// InputCleared returns if the "input" field was cleared in this mutation.
func (m *ToolExecutionMutation) InputCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldInput]
	return ok
}

// ResetInput resets all changes to the "input" field.
func (m *ToolExecutionMutation) ResetInput() {
	m.input = nil
	delete(m.clearedFields, toolexecution.FieldInput)
}

// SetOutput sets the "output" field.
func (m *ToolExecutionMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *ToolExecutionMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *ToolExecutionMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[toolexecution.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *ToolExecutionMutation) OutputCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *ToolExecutionMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, toolexecution.FieldOutput)
}

// SetError sets the "error" field.
func (m *ToolExecutionMutation) SetError(value map[string]interface{}) {
	m.error = &value
}

// Error returns the value of the "error" field in the mutation.
func (m *ToolExecutionMutation) Error() (r map[string]interface{}, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldError(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *ToolExecutionMutation) ClearError() {
	m.error = nil
	m.clearedFields[toolexecution.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *ToolExecutionMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *ToolExecutionMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, toolexecution.FieldError)
}

// SetStartedAt sets the "started_at" field.
func (m *ToolExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ToolExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ToolExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[toolexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ToolExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ToolExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, toolexecution.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *ToolExecutionMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ToolExecutionMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ToolExecutionMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[toolexecution.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ToolExecutionMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ToolExecutionMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, toolexecution.FieldFinishedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ToolExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the AgentSession entity.
func (m *ToolExecutionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[toolexecution.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AgentSession entity was cleared.
func (m *ToolExecutionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ToolExecutionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ToolExecutionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearRun clears the "run" edge to the AgentRun entity.
func (m *ToolExecutionMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[toolexecution.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the AgentRun entity was cleared.
func (m *ToolExecutionMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *ToolExecutionMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *ToolExecutionMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the ToolExecutionMutation builder.
func (m *ToolExecutionMutation) Where(ps ...predicate.ToolExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolExecution).
func (m *ToolExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolExecutionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.session != nil {
		fields = append(fields, toolexecution.FieldSessionID)
	}
	if m.run != nil {
		fields = append(fields, toolexecution.FieldRunID)
	}
	if m.tool_name != nil {
		fields = append(fields, toolexecution.FieldToolName)
	}
	if m.status != nil {
		fields = append(fields, toolexecution.FieldStatus)
	}
	if m.input != nil {
		fields = append(fields, toolexecution.FieldInput)
	}
	if m.output != nil {
		fields = append(fields, toolexecution.FieldOutput)
	}
	if m.error != nil {
		fields = append(fields, toolexecution.FieldError)
	}
	if m.started_at != nil {
		fields = append(fields, toolexecution.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, toolexecution.FieldFinishedAt)
	}
	if m.created_at != nil {
		fields = append(fields, toolexecution.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolexecution.FieldSessionID:
		return m.SessionID()
	case toolexecution.FieldRunID:
		return m.RunID()
	case toolexecution.FieldToolName:
		return m.ToolName()
	case toolexecution.FieldStatus:
		return m.Status()
	case toolexecution.FieldInput:
		return m.Input()
	case toolexecution.FieldOutput:
		return m.Output()
	case toolexecution.FieldError:
		return m.Error()
	case toolexecution.FieldStartedAt:
		return m.StartedAt()
	case toolexecution.FieldFinishedAt:
		return m.FinishedAt()
	case toolexecution.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolexecution.FieldSessionID:
		return m.OldSessionID(ctx)
	case toolexecution.FieldRunID:
		return m.OldRunID(ctx)
	case toolexecution.FieldToolName:
		return m.OldToolName(ctx)
	case toolexecution.FieldStatus:
		return m.OldStatus(ctx)
	case toolexecution.FieldInput:
		return m.OldInput(ctx)
	case toolexecution.FieldOutput:
		return m.OldOutput(ctx)
	case toolexecution.FieldError:
		return m.OldError(ctx)
	case toolexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case toolexecution.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case toolexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolexecution.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case toolexecution.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case toolexecution.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case toolexecution.FieldStatus:
		v, ok := value.(toolexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case toolexecution.FieldInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case toolexecution.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case toolexecution.FieldError:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case toolexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case toolexecution.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case toolexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolExecutionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolExecutionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ToolExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolexecution.FieldInput) {
		fields = append(fields, toolexecution.FieldInput)
	}
	if m.FieldCleared(toolexecution.FieldOutput) {
		fields = append(fields, toolexecution.FieldOutput)
	}
	if m.FieldCleared(toolexecution.FieldError) {
		fields = append(fields, toolexecution.FieldError)
	}
	if m.FieldCleared(toolexecution.FieldStartedAt) {
		fields = append(fields, toolexecution.FieldStartedAt)
	}
	if m.FieldCleared(toolexecution.FieldFinishedAt) {
		fields = append(fields, toolexecution.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolExecutionMutation) ClearField(name string) error {
	switch name {
	case toolexecution.FieldInput:
		m.ClearInput()
		return nil
	case toolexecution.FieldOutput:
		m.ClearOutput()
		return nil
	case toolexecution.FieldError:
		m.ClearError()
		return nil
	case toolexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case toolexecution.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolExecutionMutation) ResetField(name string) error {
	switch name {
	case toolexecution.FieldSessionID:
		m.ResetSessionID()
		return nil
	case toolexecution.FieldRunID:
		m.ResetRunID()
		return nil
	case toolexecution.FieldToolName:
		m.ResetToolName()
		return nil
	case toolexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case toolexecution.FieldInput:
		m.ResetInput()
		return nil
	case toolexecution.FieldOutput:
		m.ResetOutput()
		return nil
	case toolexecution.FieldError:
		m.ResetError()
		return nil
	case toolexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case toolexecution.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case toolexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, toolexecution.EdgeSession)
	}
	if m.run != nil {
		edges = append(edges, toolexecution.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case toolexecution.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case toolexecution.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, toolexecution.EdgeSession)
	}
	if m.clearedrun {
		edges = append(edges, toolexecution.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case toolexecution.EdgeSession:
		return m.clearedsession
	case toolexecution.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolExecutionMutation) ClearEdge(name string) error {
	switch name {
	case toolexecution.EdgeSession:
		m.ClearSession()
		return nil
	case toolexecution.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown ToolExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolExecutionMutation) ResetEdge(name string) error {
	switch name {
	case toolexecution.EdgeSession:
		m.ResetSession()
		return nil
	case toolexecution.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown ToolExecution edge %s", name)
}

// UsageLogMutation represents an operation that mutates the UsageLog nodes in the graph.
type UsageLogMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	input_tokens          *int
	addinput_tokens       *int
	output_tokens         *int
	addoutput_tokens      *int
	cache_read_tokens     *int
	addcache_read_tokens  *int
	cache_write_tokens    *int
	addcache_write_tokens *int
	model                 *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	session               *string
	clearedsession        bool
	run                   *string
	clearedrun            bool
	done                  bool
	oldValue              func(context.Context) (*UsageLog, error)
	predicates            []predicate.UsageLog
}

var _ ent.Mutation = (*UsageLogMutation)(nil)

// usagelogOption allows management of the mutation configuration using functional options.
type usagelogOption func(*UsageLogMutation)

// newUsageLogMutation creates new mutation for the UsageLog entity.
func newUsageLogMutation(c config, op Op, opts ...usagelogOption) *UsageLogMutation {
	m := &UsageLogMutation{
		config:        c,
		op:            op,
		typ:           TypeUsageLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsageLogID sets the ID field of the mutation.
func withUsageLogID(id string) usagelogOption {
	return func(m *UsageLogMutation) {
		var (
			err   error
			once  sync.Once
			value *UsageLog
		)
		m.oldValue = func(ctx context.Context) (*UsageLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UsageLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsageLog sets the old UsageLog of the mutation.
func withUsageLog(node *UsageLog) usagelogOption {
	return func(m *UsageLogMutation) {
		m.oldValue = func(context.Context) (*UsageLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsageLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsageLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UsageLog entities.
func (m *UsageLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsageLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsageLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UsageLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *UsageLogMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *UsageLogMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the UsageLog entity.
// If the UsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLogMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *UsageLogMutation) ResetSessionID() {
	m.session = nil
}

// SetRunID sets the "run_id" field.
func (m *UsageLogMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *UsageLogMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the UsageLog entity.
// If the UsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLogMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *UsageLogMutation) ResetRunID() {
	m.run = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *UsageLogMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *UsageLogMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the UsageLog entity.
// If the UsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLogMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *UsageLogMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *UsageLogMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *UsageLogMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *UsageLogMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *UsageLogMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the UsageLog entity.
// If the UsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLogMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *UsageLogMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *UsageLogMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *UsageLogMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCacheReadTokens sets the "cache_read_tokens" field.
func (m *UsageLogMutation) SetCacheReadTokens(i int) {
	m.cache_read_tokens = &i
	m.addcache_read_tokens = nil
}

// CacheReadTokens returns the value of the "cache_read_tokens" field in the mutation.
func (m *UsageLogMutation) CacheReadTokens() (r int, exists bool) {
	v := m.cache_read_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheReadTokens returns the old "cache_read_tokens" field's value of the UsageLog entity.
// If the UsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLogMutation) OldCacheReadTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheReadTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheReadTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheReadTokens: %w", err)
	}
	return oldValue.CacheReadTokens, nil
}

// AddCacheReadTokens adds i to the "cache_read_tokens" field.
func (m *UsageLogMutation) AddCacheReadTokens(i int) {
	if m.addcache_read_tokens != nil {
		*m.addcache_read_tokens += i
	} else {
		m.addcache_read_tokens = &i
	}
}

// AddedCacheReadTokens returns the value that was added to the "cache_read_tokens" field in this mutation.
func (m *UsageLogMutation) AddedCacheReadTokens() (r int, exists bool) {
	v := m.addcache_read_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCacheReadTokens resets all changes to the "cache_read_tokens" field.
func (m *UsageLogMutation) ResetCacheReadTokens() {
	m.cache_read_tokens = nil
	m.addcache_read_tokens = nil
}

// SetCacheWriteTokens sets the "cache_write_tokens" field.
func (m *UsageLogMutation) SetCacheWriteTokens(i int) {
	m.cache_write_tokens = &i
	m.addcache_write_tokens = nil
}

// CacheWriteTokens returns the value of the "cache_write_tokens" field in the mutation.
func (m *UsageLogMutation) CacheWriteTokens() (r int, exists bool) {
	v := m.cache_write_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheWriteTokens returns the old "cache_write_tokens" field's value of the UsageLog entity.
// If the UsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLogMutation) OldCacheWriteTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheWriteTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheWriteTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheWriteTokens: %w", err)
	}
	return oldValue.CacheWriteTokens, nil
}

// AddCacheWriteTokens adds i to the "cache_write_tokens" field.
func (m *UsageLogMutation) AddCacheWriteTokens(i int) {
	if m.addcache_write_tokens != nil {
		*m.addcache_write_tokens += i
	} else {
		m.addcache_write_tokens = &i
	}
}

// AddedCacheWriteTokens returns the value that was added to the "cache_write_tokens" field in this mutation.
func (m *UsageLogMutation) AddedCacheWriteTokens() (r int, exists bool) {
	v := m.addcache_write_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCacheWriteTokens resets all changes to the "cache_write_tokens" field.
func (m *UsageLogMutation) ResetCacheWriteTokens() {
	m.cache_write_tokens = nil
	m.addcache_write_tokens = nil
}

// SetModel sets the "model" field.
func (m *UsageLogMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *UsageLogMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the UsageLog entity.
// If the UsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLogMutation) OldModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *UsageLogMutation) ClearModel() {
	m.model = nil
	m.clearedFields[usagelog.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *UsageLogMutation) ModelCleared() bool {
	_, ok := m.clearedFields[usagelog.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *UsageLogMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, usagelog.FieldModel)
}

// SetCreatedAt sets the "created_at" field.
func (m *UsageLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UsageLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UsageLog entity.
// If the UsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UsageLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the AgentSession entity.
func (m *UsageLogMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[usagelog.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AgentSession entity was cleared.
func (m *UsageLogMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *UsageLogMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *UsageLogMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearRun clears the "run" edge to the AgentRun entity.
func (m *UsageLogMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[usagelog.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the AgentRun entity was cleared.
func (m *UsageLogMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *UsageLogMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *UsageLogMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the UsageLogMutation builder.
func (m *UsageLogMutation) Where(ps ...predicate.UsageLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsageLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsageLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UsageLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsageLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsageLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UsageLog).
func (m *UsageLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsageLogMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session != nil {
		fields = append(fields, usagelog.FieldSessionID)
	}
	if m.run != nil {
		fields = append(fields, usagelog.FieldRunID)
	}
	if m.input_tokens != nil {
		fields = append(fields, usagelog.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, usagelog.FieldOutputTokens)
	}
	if m.cache_read_tokens != nil {
		fields = append(fields, usagelog.FieldCacheReadTokens)
	}
	if m.cache_write_tokens != nil {
		fields = append(fields, usagelog.FieldCacheWriteTokens)
	}
	if m.model != nil {
		fields = append(fields, usagelog.FieldModel)
	}
	if m.created_at != nil {
		fields = append(fields, usagelog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsageLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usagelog.FieldSessionID:
		return m.SessionID()
	case usagelog.FieldRunID:
		return m.RunID()
	case usagelog.FieldInputTokens:
		return m.InputTokens()
	case usagelog.FieldOutputTokens:
		return m.OutputTokens()
	case usagelog.FieldCacheReadTokens:
		return m.CacheReadTokens()
	case usagelog.FieldCacheWriteTokens:
		return m.CacheWriteTokens()
	case usagelog.FieldModel:
		return m.Model()
	case usagelog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsageLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usagelog.FieldSessionID:
		return m.OldSessionID(ctx)
	case usagelog.FieldRunID:
		return m.OldRunID(ctx)
	case usagelog.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case usagelog.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case usagelog.FieldCacheReadTokens:
		return m.OldCacheReadTokens(ctx)
	case usagelog.FieldCacheWriteTokens:
		return m.OldCacheWriteTokens(ctx)
	case usagelog.FieldModel:
		return m.OldModel(ctx)
	case usagelog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UsageLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usagelog.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case usagelog.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case usagelog.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case usagelog.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case usagelog.FieldCacheReadTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheReadTokens(v)
		return nil
	case usagelog.FieldCacheWriteTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheWriteTokens(v)
		return nil
	case usagelog.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case usagelog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UsageLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsageLogMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, usagelog.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, usagelog.FieldOutputTokens)
	}
	if m.addcache_read_tokens != nil {
		fields = append(fields, usagelog.FieldCacheReadTokens)
	}
	if m.addcache_write_tokens != nil {
		fields = append(fields, usagelog.FieldCacheWriteTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsageLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usagelog.FieldInputTokens:
		return m.AddedInputTokens()
	case usagelog.FieldOutputTokens:
		return m.AddedOutputTokens()
	case usagelog.FieldCacheReadTokens:
		return m.AddedCacheReadTokens()
	case usagelog.FieldCacheWriteTokens:
		return m.AddedCacheWriteTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usagelog.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case usagelog.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case usagelog.FieldCacheReadTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCacheReadTokens(v)
		return nil
	case usagelog.FieldCacheWriteTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCacheWriteTokens(v)
		return nil
	}
	return fmt.Errorf("unknown UsageLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsageLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usagelog.FieldModel) {
		fields = append(fields, usagelog.FieldModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsageLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsageLogMutation) ClearField(name string) error {
	switch name {
	case usagelog.FieldModel:
		m.ClearModel()
		return nil
	}
	return fmt.Errorf("unknown UsageLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsageLogMutation) ResetField(name string) error {
	switch name {
	case usagelog.FieldSessionID:
		m.ResetSessionID()
		return nil
	case usagelog.FieldRunID:
		m.ResetRunID()
		return nil
	case usagelog.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case usagelog.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case usagelog.FieldCacheReadTokens:
		m.ResetCacheReadTokens()
		return nil
	case usagelog.FieldCacheWriteTokens:
		m.ResetCacheWriteTokens()
		return nil
	case usagelog.FieldModel:
		m.ResetModel()
		return nil
	case usagelog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UsageLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsageLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, usagelog.EdgeSession)
	}
	if m.run != nil {
		edges = append(edges, usagelog.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsageLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usagelog.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case usagelog.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsageLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsageLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsageLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, usagelog.EdgeSession)
	}
	if m.clearedrun {
		edges = append(edges, usagelog.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsageLogMutation) EdgeCleared(name string) bool {
	switch name {
	case usagelog.EdgeSession:
		return m.clearedsession
	case usagelog.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsageLogMutation) ClearEdge(name string) error {
	switch name {
	case usagelog.EdgeSession:
		m.ClearSession()
		return nil
	case usagelog.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown UsageLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsageLogMutation) ResetEdge(name string) error {
	switch name {
	case usagelog.EdgeSession:
		m.ResetSession()
		return nil
	case usagelog.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown UsageLog edge %s", name)
}

// UserEnvVarMutation represents an operation that mutates the UserEnvVar nodes in the graph.
type UserEnvVarMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	name          *string
	value         *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UserEnvVar, error)
	predicates    []predicate.UserEnvVar
}

var _ ent.Mutation = (*UserEnvVarMutation)(nil)

// userenvvarOption allows management of the mutation configuration using functional options.
type userenvvarOption func(*UserEnvVarMutation)

// newUserEnvVarMutation creates new mutation for the UserEnvVar entity.
func newUserEnvVarMutation(c config, op Op, opts ...userenvvarOption) *UserEnvVarMutation {
	m := &UserEnvVarMutation{
		config:        c,
		op:            op,
		typ:           TypeUserEnvVar,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserEnvVarID sets the ID field of the mutation.
func withUserEnvVarID(id string) userenvvarOption {
	return func(m *UserEnvVarMutation) {
		var (
			err   error
			once  sync.Once
			value *UserEnvVar
		)
		m.oldValue = func(ctx context.Context) (*UserEnvVar, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserEnvVar.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserEnvVar sets the old UserEnvVar of the mutation.
func withUserEnvVar(node *UserEnvVar) userenvvarOption {
	return func(m *UserEnvVarMutation) {
		m.oldValue = func(context.Context) (*UserEnvVar, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserEnvVarMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserEnvVarMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserEnvVar entities.
func (m *UserEnvVarMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserEnvVarMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserEnvVarMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserEnvVar.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserEnvVarMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserEnvVarMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserEnvVar entity.
// If the UserEnvVar object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserEnvVarMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserEnvVarMutation) ResetUserID() {
	m.user_id = nil
}

// SetName sets the "name" field.
func (m *UserEnvVarMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserEnvVarMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the UserEnvVar entity.
// If the UserEnvVar object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserEnvVarMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserEnvVarMutation) ResetName() {
	m.name = nil
}

// SetValue sets the "value" field.
func (m *UserEnvVarMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *UserEnvVarMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the UserEnvVar entity.
// If the UserEnvVar object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserEnvVarMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *UserEnvVarMutation) ResetValue() {
	m.value = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserEnvVarMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserEnvVarMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserEnvVar entity.
// If the UserEnvVar object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserEnvVarMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserEnvVarMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserEnvVarMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserEnvVarMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserEnvVar entity.
// If the UserEnvVar object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserEnvVarMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserEnvVarMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserEnvVarMutation builder.
func (m *UserEnvVarMutation) Where(ps ...predicate.UserEnvVar) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserEnvVarMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserEnvVarMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserEnvVar, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserEnvVarMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserEnvVarMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserEnvVar).
func (m *UserEnvVarMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserEnvVarMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, userenvvar.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, userenvvar.FieldName)
	}
	if m.value != nil {
		fields = append(fields, userenvvar.FieldValue)
	}
	if m.created_at != nil {
		fields = append(fields, userenvvar.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, userenvvar.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserEnvVarMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userenvvar.FieldUserID:
		return m.UserID()
	case userenvvar.FieldName:
		return m.Name()
	case userenvvar.FieldValue:
		return m.Value()
	case userenvvar.FieldCreatedAt:
		return m.CreatedAt()
	case userenvvar.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserEnvVarMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userenvvar.FieldUserID:
		return m.OldUserID(ctx)
	case userenvvar.FieldName:
		return m.OldName(ctx)
	case userenvvar.FieldValue:
		return m.OldValue(ctx)
	case userenvvar.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case userenvvar.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserEnvVar field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserEnvVarMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userenvvar.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userenvvar.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case userenvvar.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case userenvvar.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case userenvvar.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserEnvVar field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserEnvVarMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserEnvVarMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserEnvVarMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserEnvVar numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserEnvVarMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserEnvVarMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserEnvVarMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserEnvVar nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserEnvVarMutation) ResetField(name string) error {
	switch name {
	case userenvvar.FieldUserID:
		m.ResetUserID()
		return nil
	case userenvvar.FieldName:
		m.ResetName()
		return nil
	case userenvvar.FieldValue:
		m.ResetValue()
		return nil
	case userenvvar.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case userenvvar.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserEnvVar field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserEnvVarMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserEnvVarMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserEnvVarMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserEnvVarMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserEnvVarMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserEnvVarMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserEnvVarMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserEnvVar unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserEnvVarMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserEnvVar edge %s", name)
}

// UserMcpConfigMutation represents an operation that mutates the UserMcpConfig nodes in the graph.
type UserMcpConfigMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	preset_id     *int
	addpreset_id  *int
	overrides     *map[string]interface{}
	enabled       *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UserMcpConfig, error)
	predicates    []predicate.UserMcpConfig
}

var _ ent.Mutation = (*UserMcpConfigMutation)(nil)

// usermcpconfigOption allows management of the mutation configuration using functional options.
type usermcpconfigOption func(*UserMcpConfigMutation)

// newUserMcpConfigMutation creates new mutation for the UserMcpConfig entity.
func newUserMcpConfigMutation(c config, op Op, opts ...usermcpconfigOption) *UserMcpConfigMutation {
	m := &UserMcpConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeUserMcpConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserMcpConfigID sets the ID field of the mutation.
func withUserMcpConfigID(id string) usermcpconfigOption {
	return func(m *UserMcpConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *UserMcpConfig
		)
		m.oldValue = func(ctx context.Context) (*UserMcpConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserMcpConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserMcpConfig sets the old UserMcpConfig of the mutation.
func withUserMcpConfig(node *UserMcpConfig) usermcpconfigOption {
	return func(m *UserMcpConfigMutation) {
		m.oldValue = func(context.Context) (*UserMcpConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMcpConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMcpConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserMcpConfig entities.
func (m *UserMcpConfigMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMcpConfigMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMcpConfigMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserMcpConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserMcpConfigMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserMcpConfigMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserMcpConfig entity.
// If the UserMcpConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMcpConfigMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserMcpConfigMutation) ResetUserID() {
	m.user_id = nil
}

// SetPresetID sets the "preset_id" field.
func (m *UserMcpConfigMutation) SetPresetID(i int) {
	m.preset_id = &i
	m.addpreset_id = nil
}

// PresetID returns the value of the "preset_id" field in the mutation.
func (m *UserMcpConfigMutation) PresetID() (r int, exists bool) {
	v := m.preset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPresetID returns the old "preset_id" field's value of the UserMcpConfig entity.
// If the UserMcpConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMcpConfigMutation) OldPresetID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPresetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPresetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPresetID: %w", err)
	}
	return oldValue.PresetID, nil
}

// AddPresetID adds i to the "preset_id" field.
func (m *UserMcpConfigMutation) AddPresetID(i int) {
	if m.addpreset_id != nil {
		*m.addpreset_id += i
	} else {
		m.addpreset_id = &i
	}
}

// AddedPresetID returns the value that was added to the "preset_id" field in this mutation.
func (m *UserMcpConfigMutation) AddedPresetID() (r int, exists bool) {
	v := m.addpreset_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetPresetID resets all changes to the "preset_id" field.
func (m *UserMcpConfigMutation) ResetPresetID() {
	m.preset_id = nil
	m.addpreset_id = nil
}

// SetOverrides sets the "overrides" field.
func (m *UserMcpConfigMutation) SetOverrides(value map[string]interface{}) {
	m.overrides = &value
}

// Overrides returns the value of the "overrides" field in the mutation.
func (m *UserMcpConfigMutation) Overrides() (r map[string]interface{}, exists bool) {
	v := m.overrides
	if v == nil {
		return
	}
	return *v, true
}

// OldOverrides returns the old "overrides" field's value of the UserMcpConfig entity.
// If the UserMcpConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMcpConfigMutation) OldOverrides(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverrides is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverrides requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverrides: %w", err)
	}
	return oldValue.Overrides, nil
}

// ClearOverrides clears the value of the "overrides" field.
func (m *UserMcpConfigMutation) ClearOverrides() {
	m.overrides = nil
	m.clearedFields[usermcpconfig.FieldOverrides] = struct{}{}
}

// OverridesCleared returns if the "overrides" field was cleared in this mutation.
func (m *UserMcpConfigMutation) OverridesCleared() bool {
	_, ok := m.clearedFields[usermcpconfig.FieldOverrides]
	return ok
}

// ResetOverrides resets all changes to the "overrides" field.
func (m *UserMcpConfigMutation) ResetOverrides() {
	m.overrides = nil
	delete(m.clearedFields, usermcpconfig.FieldOverrides)
}

// SetEnabled sets the "enabled" field.
func (m *UserMcpConfigMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *UserMcpConfigMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the UserMcpConfig entity.
// If the UserMcpConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMcpConfigMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *UserMcpConfigMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMcpConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMcpConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserMcpConfig entity.
// If the UserMcpConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMcpConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserMcpConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMcpConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMcpConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserMcpConfig entity.
// If the UserMcpConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMcpConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserMcpConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserMcpConfigMutation builder.
func (m *UserMcpConfigMutation) Where(ps ...predicate.UserMcpConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMcpConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMcpConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserMcpConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMcpConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMcpConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserMcpConfig).
func (m *UserMcpConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMcpConfigMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, usermcpconfig.FieldUserID)
	}
	if m.preset_id != nil {
		fields = append(fields, usermcpconfig.FieldPresetID)
	}
	if m.overrides != nil {
		fields = append(fields, usermcpconfig.FieldOverrides)
	}
	if m.enabled != nil {
		fields = append(fields, usermcpconfig.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, usermcpconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usermcpconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMcpConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usermcpconfig.FieldUserID:
		return m.UserID()
	case usermcpconfig.FieldPresetID:
		return m.PresetID()
	case usermcpconfig.FieldOverrides:
		return m.Overrides()
	case usermcpconfig.FieldEnabled:
		return m.Enabled()
	case usermcpconfig.FieldCreatedAt:
		return m.CreatedAt()
	case usermcpconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMcpConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usermcpconfig.FieldUserID:
		return m.OldUserID(ctx)
	case usermcpconfig.FieldPresetID:
		return m.OldPresetID(ctx)
	case usermcpconfig.FieldOverrides:
		return m.OldOverrides(ctx)
	case usermcpconfig.FieldEnabled:
		return m.OldEnabled(ctx)
	case usermcpconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usermcpconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserMcpConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMcpConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usermcpconfig.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usermcpconfig.FieldPresetID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPresetID(v)
		return nil
	case usermcpconfig.FieldOverrides:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverrides(v)
		return nil
	case usermcpconfig.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case usermcpconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usermcpconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserMcpConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMcpConfigMutation) AddedFields() []string {
	var fields []string
	if m.addpreset_id != nil {
		fields = append(fields, usermcpconfig.FieldPresetID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMcpConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usermcpconfig.FieldPresetID:
		return m.AddedPresetID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMcpConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usermcpconfig.FieldPresetID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPresetID(v)
		return nil
	}
	return fmt.Errorf("unknown UserMcpConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMcpConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usermcpconfig.FieldOverrides) {
		fields = append(fields, usermcpconfig.FieldOverrides)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMcpConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMcpConfigMutation) ClearField(name string) error {
	switch name {
	case usermcpconfig.FieldOverrides:
		m.ClearOverrides()
		return nil
	}
	return fmt.Errorf("unknown UserMcpConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMcpConfigMutation) ResetField(name string) error {
	switch name {
	case usermcpconfig.FieldUserID:
		m.ResetUserID()
		return nil
	case usermcpconfig.FieldPresetID:
		m.ResetPresetID()
		return nil
	case usermcpconfig.FieldOverrides:
		m.ResetOverrides()
		return nil
	case usermcpconfig.FieldEnabled:
		m.ResetEnabled()
		return nil
	case usermcpconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usermcpconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserMcpConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMcpConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMcpConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMcpConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMcpConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMcpConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMcpConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMcpConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserMcpConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMcpConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserMcpConfig edge %s", name)
}

// UserSkillInstallMutation represents an operation that mutates the UserSkillInstall nodes in the graph.
type UserSkillInstallMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	preset_id     *int
	addpreset_id  *int
	enabled       *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UserSkillInstall, error)
	predicates    []predicate.UserSkillInstall
}

var _ ent.Mutation = (*UserSkillInstallMutation)(nil)

// userskillinstallOption allows management of the mutation configuration using functional options.
type userskillinstallOption func(*UserSkillInstallMutation)

// newUserSkillInstallMutation creates new mutation for the UserSkillInstall entity.
func newUserSkillInstallMutation(c config, op Op, opts ...userskillinstallOption) *UserSkillInstallMutation {
	m := &UserSkillInstallMutation{
		config:        c,
		op:            op,
		typ:           TypeUserSkillInstall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserSkillInstallID sets the ID field of the mutation.
func withUserSkillInstallID(id string) userskillinstallOption {
	return func(m *UserSkillInstallMutation) {
		var (
			err   error
			once  sync.Once
			value *UserSkillInstall
		)
		m.oldValue = func(ctx context.Context) (*UserSkillInstall, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserSkillInstall.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserSkillInstall sets the old UserSkillInstall of the mutation.
func withUserSkillInstall(node *UserSkillInstall) userskillinstallOption {
	return func(m *UserSkillInstallMutation) {
		m.oldValue = func(context.Context) (*UserSkillInstall, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserSkillInstallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserSkillInstallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserSkillInstall entities.
func (m *UserSkillInstallMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserSkillInstallMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserSkillInstallMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserSkillInstall.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserSkillInstallMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserSkillInstallMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserSkillInstall entity.
// If the UserSkillInstall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillInstallMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserSkillInstallMutation) ResetUserID() {
	m.user_id = nil
}

// SetPresetID sets the "preset_id" field.
func (m *UserSkillInstallMutation) SetPresetID(i int) {
	m.preset_id = &i
	m.addpreset_id = nil
}

// PresetID returns the value of the "preset_id" field in the mutation.
func (m *UserSkillInstallMutation) PresetID() (r int, exists bool) {
	v := m.preset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPresetID returns the old "preset_id" field's value of the UserSkillInstall entity.
// If the UserSkillInstall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillInstallMutation) OldPresetID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPresetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPresetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPresetID: %w", err)
	}
	return oldValue.PresetID, nil
}

// AddPresetID adds i to the "preset_id" field.
func (m *UserSkillInstallMutation) AddPresetID(i int) {
	if m.addpreset_id != nil {
		*m.addpreset_id += i
	} else {
		m.addpreset_id = &i
	}
}

// AddedPresetID returns the value that was added to the "preset_id" field in this mutation.
func (m *UserSkillInstallMutation) AddedPresetID() (r int, exists bool) {
	v := m.addpreset_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetPresetID resets all changes to the "preset_id" field.
func (m *UserSkillInstallMutation) ResetPresetID() {
	m.preset_id = nil
	m.addpreset_id = nil
}

// SetEnabled sets the "enabled" field.
func (m *UserSkillInstallMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *UserSkillInstallMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the UserSkillInstall entity.
// If the UserSkillInstall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillInstallMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *UserSkillInstallMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserSkillInstallMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserSkillInstallMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserSkillInstall entity.
// If the UserSkillInstall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillInstallMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserSkillInstallMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UserSkillInstallMutation builder.
func (m *UserSkillInstallMutation) Where(ps ...predicate.UserSkillInstall) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserSkillInstallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserSkillInstallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserSkillInstall, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserSkillInstallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserSkillInstallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserSkillInstall).
func (m *UserSkillInstallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserSkillInstallMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, userskillinstall.FieldUserID)
	}
	if m.preset_id != nil {
		fields = append(fields, userskillinstall.FieldPresetID)
	}
	if m.enabled != nil {
		fields = append(fields, userskillinstall.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, userskillinstall.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserSkillInstallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userskillinstall.FieldUserID:
		return m.UserID()
	case userskillinstall.FieldPresetID:
		return m.PresetID()
	case userskillinstall.FieldEnabled:
		return m.Enabled()
	case userskillinstall.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserSkillInstallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userskillinstall.FieldUserID:
		return m.OldUserID(ctx)
	case userskillinstall.FieldPresetID:
		return m.OldPresetID(ctx)
	case userskillinstall.FieldEnabled:
		return m.OldEnabled(ctx)
	case userskillinstall.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserSkillInstall field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSkillInstallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userskillinstall.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userskillinstall.FieldPresetID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPresetID(v)
		return nil
	case userskillinstall.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case userskillinstall.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserSkillInstall field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserSkillInstallMutation) AddedFields() []string {
	var fields []string
	if m.addpreset_id != nil {
		fields = append(fields, userskillinstall.FieldPresetID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserSkillInstallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userskillinstall.FieldPresetID:
		return m.AddedPresetID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSkillInstallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userskillinstall.FieldPresetID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPresetID(v)
		return nil
	}
	return fmt.Errorf("unknown UserSkillInstall numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserSkillInstallMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserSkillInstallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserSkillInstallMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserSkillInstall nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserSkillInstallMutation) ResetField(name string) error {
	switch name {
	case userskillinstall.FieldUserID:
		m.ResetUserID()
		return nil
	case userskillinstall.FieldPresetID:
		m.ResetPresetID()
		return nil
	case userskillinstall.FieldEnabled:
		m.ResetEnabled()
		return nil
	case userskillinstall.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSkillInstall field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserSkillInstallMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserSkillInstallMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserSkillInstallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserSkillInstallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserSkillInstallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserSkillInstallMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserSkillInstallMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserSkillInstall unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserSkillInstallMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserSkillInstall edge %s", name)
}
