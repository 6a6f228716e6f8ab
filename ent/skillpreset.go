// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wuyifannppp/poco-agent/ent/skillpreset"
)

// SkillPreset is the model entity for the SkillPreset schema.
type SkillPreset struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// File name -> content or descriptor map
	Entries map[string]interface{} `json:"entries,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SkillPreset) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case skillpreset.FieldEntries:
			values[i] = new([]byte)
		case skillpreset.FieldID:
			values[i] = new(sql.NullInt64)
		case skillpreset.FieldName:
			values[i] = new(sql.NullString)
		case skillpreset.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SkillPreset fields.
func (_m *SkillPreset) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case skillpreset.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case skillpreset.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case skillpreset.FieldEntries:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field entries", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Entries); err != nil {
					return fmt.Errorf("unmarshal field entries: %w", err)
				}
			}
		case skillpreset.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SkillPreset.
// This includes values selected through modifiers, order, etc.
func (_m *SkillPreset) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SkillPreset.
// Note that you need to call SkillPreset.Unwrap() before calling this method if this SkillPreset
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SkillPreset) Update() *SkillPresetUpdateOne {
	return NewSkillPresetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SkillPreset entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SkillPreset) Unwrap() *SkillPreset {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SkillPreset is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SkillPreset) String() string {
	var builder strings.Builder
	builder.WriteString("SkillPreset(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("entries=")
	builder.WriteString(fmt.Sprintf("%v", _m.Entries))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SkillPresets is a parsable slice of SkillPreset.
type SkillPresets []*SkillPreset
