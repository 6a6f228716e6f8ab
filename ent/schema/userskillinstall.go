package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserSkillInstall holds the schema definition for the UserSkillInstall entity.
// Records that a user has installed a skill preset.
type UserSkillInstall struct {
	ent.Schema
}

// Fields of the UserSkillInstall.
func (UserSkillInstall) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("skill_install_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Int("preset_id").
			Immutable(),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the UserSkillInstall.
func (UserSkillInstall) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "preset_id").
			Unique(),
	}
}
