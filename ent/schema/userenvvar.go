package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserEnvVar holds the schema definition for the UserEnvVar entity.
// Per-user environment variables consumed by the config resolver.
type UserEnvVar struct {
	ent.Schema
}

// Fields of the UserEnvVar.
func (UserEnvVar) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("env_var_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("name"),
		field.String("value"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the UserEnvVar.
func (UserEnvVar) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "name").
			Unique(),
	}
}
