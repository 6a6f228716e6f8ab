// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wuyifannppp/poco-agent/ent/agentmessage"
	"github.com/wuyifannppp/poco-agent/ent/agentsession"
)

// AgentMessage is the model entity for the AgentMessage schema.
type AgentMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Role holds the value of the "role" field.
	Role agentmessage.Role `json:"role,omitempty"`
	// Structured message payload from the agent runtime
	Content map[string]interface{} `json:"content,omitempty"`
	// Short plain-text summary for listings
	TextPreview *string `json:"text_preview,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentMessageQuery when eager-loading is set.
	Edges        AgentMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentMessageEdges holds the relations/edges for other nodes in the graph.
type AgentMessageEdges struct {
	// Session holds the value of the session edge.
	Session *AgentSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentMessageEdges) SessionOrErr() (*AgentSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentmessage.FieldContent:
			values[i] = new([]byte)
		case agentmessage.FieldID:
			values[i] = new(sql.NullInt64)
		case agentmessage.FieldSessionID, agentmessage.FieldRole, agentmessage.FieldTextPreview:
			values[i] = new(sql.NullString)
		case agentmessage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentMessage fields.
func (_m *AgentMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentmessage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case agentmessage.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case agentmessage.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = agentmessage.Role(value.String)
			}
		case agentmessage.FieldContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Content); err != nil {
					return fmt.Errorf("unmarshal field content: %w", err)
				}
			}
		case agentmessage.FieldTextPreview:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_preview", values[i])
			} else if value.Valid {
				_m.TextPreview = new(string)
				*_m.TextPreview = value.String
			}
		case agentmessage.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentMessage.
// This includes values selected through modifiers, order, etc.
func (_m *AgentMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the AgentMessage entity.
func (_m *AgentMessage) QuerySession() *AgentSessionQuery {
	return NewAgentMessageClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this AgentMessage.
// Note that you need to call AgentMessage.Unwrap() before calling this method if this AgentMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentMessage) Update() *AgentMessageUpdateOne {
	return NewAgentMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentMessage) Unwrap() *AgentMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentMessage) String() string {
	var builder strings.Builder
	builder.WriteString("AgentMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(fmt.Sprintf("%v", _m.Content))
	builder.WriteString(", ")
	if v := _m.TextPreview; v != nil {
		builder.WriteString("text_preview=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentMessages is a parsable slice of AgentMessage.
type AgentMessages []*AgentMessage
