package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SkillPreset holds the schema definition for the SkillPreset entity.
// Catalog bundle of skill files keyed by file name.
type SkillPreset struct {
	ent.Schema
}

// Fields of the SkillPreset.
func (SkillPreset) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique().
			Immutable(),
		field.String("name"),
		field.JSON("entries", map[string]interface{}{}).
			Comment("File name -> content or descriptor map"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
