// Code generated by ent, DO NOT EDIT.

package agentmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/wuyifannppp/poco-agent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldSessionID, v))
}

// TextPreview applies equality check predicate on the "text_preview" field. It's identical to TextPreviewEQ.
func TextPreview(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldTextPreview, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldContainsFold(FieldSessionID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNotIn(FieldRole, vs...))
}

// TextPreviewEQ applies the EQ predicate on the "text_preview" field.
func TextPreviewEQ(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldTextPreview, v))
}

// TextPreviewNEQ applies the NEQ predicate on the "text_preview" field.
func TextPreviewNEQ(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNEQ(FieldTextPreview, v))
}

// TextPreviewIn applies the In predicate on the "text_preview" field.
func TextPreviewIn(vs ...string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldIn(FieldTextPreview, vs...))
}

// TextPreviewNotIn applies the NotIn predicate on the "text_preview" field.
func TextPreviewNotIn(vs ...string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNotIn(FieldTextPreview, vs...))
}

// TextPreviewGT applies the GT predicate on the "text_preview" field.
func TextPreviewGT(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGT(FieldTextPreview, v))
}

// TextPreviewGTE applies the GTE predicate on the "text_preview" field.
func TextPreviewGTE(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGTE(FieldTextPreview, v))
}

// TextPreviewLT applies the LT predicate on the "text_preview" field.
func TextPreviewLT(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLT(FieldTextPreview, v))
}

// TextPreviewLTE applies the LTE predicate on the "text_preview" field.
func TextPreviewLTE(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLTE(FieldTextPreview, v))
}

// TextPreviewContains applies the Contains predicate on the "text_preview" field.
func TextPreviewContains(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldContains(FieldTextPreview, v))
}

// TextPreviewHasPrefix applies the HasPrefix predicate on the "text_preview" field.
func TextPreviewHasPrefix(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldHasPrefix(FieldTextPreview, v))
}

// TextPreviewHasSuffix applies the HasSuffix predicate on the "text_preview" field.
func TextPreviewHasSuffix(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldHasSuffix(FieldTextPreview, v))
}

// TextPreviewIsNil applies the IsNil predicate on the "text_preview" field.
func TextPreviewIsNil() predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldIsNull(FieldTextPreview))
}

// TextPreviewNotNil applies the NotNil predicate on the "text_preview" field.
func TextPreviewNotNil() predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNotNull(FieldTextPreview))
}

// TextPreviewEqualFold applies the EqualFold predicate on the "text_preview" field.
func TextPreviewEqualFold(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEqualFold(FieldTextPreview, v))
}

// TextPreviewContainsFold applies the ContainsFold predicate on the "text_preview" field.
func TextPreviewContainsFold(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldContainsFold(FieldTextPreview, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.AgentMessage {
	return predicate.AgentMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.AgentSession) predicate.AgentMessage {
	return predicate.AgentMessage(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentMessage) predicate.AgentMessage {
	return predicate.AgentMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentMessage) predicate.AgentMessage {
	return predicate.AgentMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentMessage) predicate.AgentMessage {
	return predicate.AgentMessage(sql.NotPredicates(p))
}
