// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wuyifannppp/poco-agent/ent/usermcpconfig"
)

// UserMcpConfig is the model entity for the UserMcpConfig schema.
type UserMcpConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// PresetID holds the value of the "preset_id" field.
	PresetID int `json:"preset_id,omitempty"`
	// Overrides holds the value of the "overrides" field.
	Overrides map[string]interface{} `json:"overrides,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserMcpConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usermcpconfig.FieldOverrides:
			values[i] = new([]byte)
		case usermcpconfig.FieldEnabled:
			values[i] = new(sql.NullBool)
		case usermcpconfig.FieldPresetID:
			values[i] = new(sql.NullInt64)
		case usermcpconfig.FieldID, usermcpconfig.FieldUserID:
			values[i] = new(sql.NullString)
		case usermcpconfig.FieldCreatedAt, usermcpconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserMcpConfig fields.
func (_m *UserMcpConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usermcpconfig.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case usermcpconfig.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case usermcpconfig.FieldPresetID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field preset_id", values[i])
			} else if value.Valid {
				_m.PresetID = int(value.Int64)
			}
		case usermcpconfig.FieldOverrides:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field overrides", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Overrides); err != nil {
					return fmt.Errorf("unmarshal field overrides: %w", err)
				}
			}
		case usermcpconfig.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case usermcpconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case usermcpconfig.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the UserMcpConfig.
// This includes values selected through modifiers, order, etc.
func (_m *UserMcpConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserMcpConfig.
// Note that you need to call UserMcpConfig.Unwrap() before calling this method if this UserMcpConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserMcpConfig) Update() *UserMcpConfigUpdateOne {
	return NewUserMcpConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserMcpConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserMcpConfig) Unwrap() *UserMcpConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserMcpConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserMcpConfig) String() string {
	var builder strings.Builder
	builder.WriteString("UserMcpConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("preset_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PresetID))
	builder.WriteString(", ")
	builder.WriteString("overrides=")
	builder.WriteString(fmt.Sprintf("%v", _m.Overrides))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserMcpConfigs is a parsable slice of UserMcpConfig.
type UserMcpConfigs []*UserMcpConfig
