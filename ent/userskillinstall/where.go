// Code generated by ent, DO NOT EDIT.

package userskillinstall

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/wuyifannppp/poco-agent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldEQ(FieldUserID, v))
}

// PresetID applies equality check predicate on the "preset_id" field. It's identical to PresetIDEQ.
func PresetID(v int) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldEQ(FieldPresetID, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldEQ(FieldEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldContainsFold(FieldUserID, v))
}

// PresetIDEQ applies the EQ predicate on the "preset_id" field.
func PresetIDEQ(v int) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldEQ(FieldPresetID, v))
}

// PresetIDNEQ applies the NEQ predicate on the "preset_id" field.
func PresetIDNEQ(v int) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldNEQ(FieldPresetID, v))
}

// PresetIDIn applies the In predicate on the "preset_id" field.
func PresetIDIn(vs ...int) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldIn(FieldPresetID, vs...))
}

// PresetIDNotIn applies the NotIn predicate on the "preset_id" field.
func PresetIDNotIn(vs ...int) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldNotIn(FieldPresetID, vs...))
}

// PresetIDGT applies the GT predicate on the "preset_id" field.
func PresetIDGT(v int) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldGT(FieldPresetID, v))
}

// PresetIDGTE applies the GTE predicate on the "preset_id" field.
func PresetIDGTE(v int) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldGTE(FieldPresetID, v))
}

// PresetIDLT applies the LT predicate on the "preset_id" field.
func PresetIDLT(v int) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldLT(FieldPresetID, v))
}

// PresetIDLTE applies the LTE predicate on the "preset_id" field.
func PresetIDLTE(v int) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldLTE(FieldPresetID, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldNEQ(FieldEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserSkillInstall) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserSkillInstall) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserSkillInstall) predicate.UserSkillInstall {
	return predicate.UserSkillInstall(sql.NotPredicates(p))
}
