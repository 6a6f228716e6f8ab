// Code generated by ent, DO NOT EDIT.

package agentsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/wuyifannppp/poco-agent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldUserID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldProjectID, v))
}

// SdkSessionID applies equality check predicate on the "sdk_session_id" field. It's identical to SdkSessionIDEQ.
func SdkSessionID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldSdkSessionID, v))
}

// WorkspaceFilesPrefix applies equality check predicate on the "workspace_files_prefix" field. It's identical to WorkspaceFilesPrefixEQ.
func WorkspaceFilesPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldWorkspaceFilesPrefix, v))
}

// WorkspaceManifestKey applies equality check predicate on the "workspace_manifest_key" field. It's identical to WorkspaceManifestKeyEQ.
func WorkspaceManifestKey(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldWorkspaceManifestKey, v))
}

// WorkspaceArchiveKey applies equality check predicate on the "workspace_archive_key" field. It's identical to WorkspaceArchiveKeyEQ.
func WorkspaceArchiveKey(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldWorkspaceArchiveKey, v))
}

// WorkspaceExportStatus applies equality check predicate on the "workspace_export_status" field. It's identical to WorkspaceExportStatusEQ.
func WorkspaceExportStatus(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldWorkspaceExportStatus, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v bool) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldIsDeleted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldUserID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDIsNil applies the IsNil predicate on the "project_id" field.
func ProjectIDIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldProjectID))
}

// ProjectIDNotNil applies the NotNil predicate on the "project_id" field.
func ProjectIDNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldProjectID))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldProjectID, v))
}

// SdkSessionIDEQ applies the EQ predicate on the "sdk_session_id" field.
func SdkSessionIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldSdkSessionID, v))
}

// SdkSessionIDNEQ applies the NEQ predicate on the "sdk_session_id" field.
func SdkSessionIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldSdkSessionID, v))
}

// SdkSessionIDIn applies the In predicate on the "sdk_session_id" field.
func SdkSessionIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldSdkSessionID, vs...))
}

// SdkSessionIDNotIn applies the NotIn predicate on the "sdk_session_id" field.
func SdkSessionIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldSdkSessionID, vs...))
}

// SdkSessionIDGT applies the GT predicate on the "sdk_session_id" field.
func SdkSessionIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldSdkSessionID, v))
}

// SdkSessionIDGTE applies the GTE predicate on the "sdk_session_id" field.
func SdkSessionIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldSdkSessionID, v))
}

// SdkSessionIDLT applies the LT predicate on the "sdk_session_id" field.
func SdkSessionIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldSdkSessionID, v))
}

// SdkSessionIDLTE applies the LTE predicate on the "sdk_session_id" field.
func SdkSessionIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldSdkSessionID, v))
}

// SdkSessionIDContains applies the Contains predicate on the "sdk_session_id" field.
func SdkSessionIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldSdkSessionID, v))
}

// SdkSessionIDHasPrefix applies the HasPrefix predicate on the "sdk_session_id" field.
func SdkSessionIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldSdkSessionID, v))
}

// SdkSessionIDHasSuffix applies the HasSuffix predicate on the "sdk_session_id" field.
func SdkSessionIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldSdkSessionID, v))
}

// SdkSessionIDIsNil applies the IsNil predicate on the "sdk_session_id" field.
func SdkSessionIDIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldSdkSessionID))
}

// SdkSessionIDNotNil applies the NotNil predicate on the "sdk_session_id" field.
func SdkSessionIDNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldSdkSessionID))
}

// SdkSessionIDEqualFold applies the EqualFold predicate on the "sdk_session_id" field.
func SdkSessionIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldSdkSessionID, v))
}

// SdkSessionIDContainsFold applies the ContainsFold predicate on the "sdk_session_id" field.
func SdkSessionIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldSdkSessionID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldStatus, vs...))
}

// ConfigSnapshotIsNil applies the IsNil predicate on the "config_snapshot" field.
func ConfigSnapshotIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldConfigSnapshot))
}

// ConfigSnapshotNotNil applies the NotNil predicate on the "config_snapshot" field.
func ConfigSnapshotNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldConfigSnapshot))
}

// StatePatchIsNil applies the IsNil predicate on the "state_patch" field.
func StatePatchIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldStatePatch))
}

// StatePatchNotNil applies the NotNil predicate on the "state_patch" field.
func StatePatchNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldStatePatch))
}

// WorkspaceFilesPrefixEQ applies the EQ predicate on the "workspace_files_prefix" field.
func WorkspaceFilesPrefixEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldWorkspaceFilesPrefix, v))
}

// WorkspaceFilesPrefixNEQ applies the NEQ predicate on the "workspace_files_prefix" field.
func WorkspaceFilesPrefixNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldWorkspaceFilesPrefix, v))
}

// WorkspaceFilesPrefixIn applies the In predicate on the "workspace_files_prefix" field.
func WorkspaceFilesPrefixIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldWorkspaceFilesPrefix, vs...))
}

// WorkspaceFilesPrefixNotIn applies the NotIn predicate on the "workspace_files_prefix" field.
func WorkspaceFilesPrefixNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldWorkspaceFilesPrefix, vs...))
}

// WorkspaceFilesPrefixGT applies the GT predicate on the "workspace_files_prefix" field.
func WorkspaceFilesPrefixGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldWorkspaceFilesPrefix, v))
}

// WorkspaceFilesPrefixGTE applies the GTE predicate on the "workspace_files_prefix" field.
func WorkspaceFilesPrefixGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldWorkspaceFilesPrefix, v))
}

// WorkspaceFilesPrefixLT applies the LT predicate on the "workspace_files_prefix" field.
func WorkspaceFilesPrefixLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldWorkspaceFilesPrefix, v))
}

// WorkspaceFilesPrefixLTE applies the LTE predicate on the "workspace_files_prefix" field.
func WorkspaceFilesPrefixLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldWorkspaceFilesPrefix, v))
}

// WorkspaceFilesPrefixContains applies the Contains predicate on the "workspace_files_prefix" field.
func WorkspaceFilesPrefixContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldWorkspaceFilesPrefix, v))
}

// WorkspaceFilesPrefixHasPrefix applies the HasPrefix predicate on the "workspace_files_prefix" field.
func WorkspaceFilesPrefixHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldWorkspaceFilesPrefix, v))
}

// WorkspaceFilesPrefixHasSuffix applies the HasSuffix predicate on the "workspace_files_prefix" field.
func WorkspaceFilesPrefixHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldWorkspaceFilesPrefix, v))
}

// WorkspaceFilesPrefixIsNil applies the IsNil predicate on the "workspace_files_prefix" field.
func WorkspaceFilesPrefixIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldWorkspaceFilesPrefix))
}

// WorkspaceFilesPrefixNotNil applies the NotNil predicate on the "workspace_files_prefix" field.
func WorkspaceFilesPrefixNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldWorkspaceFilesPrefix))
}

// WorkspaceFilesPrefixEqualFold applies the EqualFold predicate on the "workspace_files_prefix" field.
func WorkspaceFilesPrefixEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldWorkspaceFilesPrefix, v))
}

// WorkspaceFilesPrefixContainsFold applies the ContainsFold predicate on the "workspace_files_prefix" field.
func WorkspaceFilesPrefixContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldWorkspaceFilesPrefix, v))
}

// WorkspaceManifestKeyEQ applies the EQ predicate on the "workspace_manifest_key" field.
func WorkspaceManifestKeyEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldWorkspaceManifestKey, v))
}

// WorkspaceManifestKeyNEQ applies the NEQ predicate on the "workspace_manifest_key" field.
func WorkspaceManifestKeyNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldWorkspaceManifestKey, v))
}

// WorkspaceManifestKeyIn applies the In predicate on the "workspace_manifest_key" field.
func WorkspaceManifestKeyIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldWorkspaceManifestKey, vs...))
}

// WorkspaceManifestKeyNotIn applies the NotIn predicate on the "workspace_manifest_key" field.
func WorkspaceManifestKeyNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldWorkspaceManifestKey, vs...))
}

// WorkspaceManifestKeyGT applies the GT predicate on the "workspace_manifest_key" field.
func WorkspaceManifestKeyGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldWorkspaceManifestKey, v))
}

// WorkspaceManifestKeyGTE applies the GTE predicate on the "workspace_manifest_key" field.
func WorkspaceManifestKeyGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldWorkspaceManifestKey, v))
}

// WorkspaceManifestKeyLT applies the LT predicate on the "workspace_manifest_key" field.
func WorkspaceManifestKeyLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldWorkspaceManifestKey, v))
}

// WorkspaceManifestKeyLTE applies the LTE predicate on the "workspace_manifest_key" field.
func WorkspaceManifestKeyLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldWorkspaceManifestKey, v))
}

// WorkspaceManifestKeyContains applies the Contains predicate on the "workspace_manifest_key" field.
func WorkspaceManifestKeyContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldWorkspaceManifestKey, v))
}

// WorkspaceManifestKeyHasPrefix applies the HasPrefix predicate on the "workspace_manifest_key" field.
func WorkspaceManifestKeyHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldWorkspaceManifestKey, v))
}

// WorkspaceManifestKeyHasSuffix applies the HasSuffix predicate on the "workspace_manifest_key" field.
func WorkspaceManifestKeyHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldWorkspaceManifestKey, v))
}

// WorkspaceManifestKeyIsNil applies the IsNil predicate on the "workspace_manifest_key" field.
func WorkspaceManifestKeyIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldWorkspaceManifestKey))
}

// WorkspaceManifestKeyNotNil applies the NotNil predicate on the "workspace_manifest_key" field.
func WorkspaceManifestKeyNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldWorkspaceManifestKey))
}

// WorkspaceManifestKeyEqualFold applies the EqualFold predicate on the "workspace_manifest_key" field.
func WorkspaceManifestKeyEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldWorkspaceManifestKey, v))
}

// WorkspaceManifestKeyContainsFold applies the ContainsFold predicate on the "workspace_manifest_key" field.
func WorkspaceManifestKeyContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldWorkspaceManifestKey, v))
}

// WorkspaceArchiveKeyEQ applies the EQ predicate on the "workspace_archive_key" field.
func WorkspaceArchiveKeyEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldWorkspaceArchiveKey, v))
}

// WorkspaceArchiveKeyNEQ applies the NEQ predicate on the "workspace_archive_key" field.
func WorkspaceArchiveKeyNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldWorkspaceArchiveKey, v))
}

// WorkspaceArchiveKeyIn applies the In predicate on the "workspace_archive_key" field.
func WorkspaceArchiveKeyIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldWorkspaceArchiveKey, vs...))
}

// WorkspaceArchiveKeyNotIn applies the NotIn predicate on the "workspace_archive_key" field.
func WorkspaceArchiveKeyNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldWorkspaceArchiveKey, vs...))
}

// WorkspaceArchiveKeyGT applies the GT predicate on the "workspace_archive_key" field.
func WorkspaceArchiveKeyGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldWorkspaceArchiveKey, v))
}

// WorkspaceArchiveKeyGTE applies the GTE predicate on the "workspace_archive_key" field.
func WorkspaceArchiveKeyGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldWorkspaceArchiveKey, v))
}

// WorkspaceArchiveKeyLT applies the LT predicate on the "workspace_archive_key" field.
func WorkspaceArchiveKeyLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldWorkspaceArchiveKey, v))
}

// WorkspaceArchiveKeyLTE applies the LTE predicate on the "workspace_archive_key" field.
func WorkspaceArchiveKeyLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldWorkspaceArchiveKey, v))
}

// WorkspaceArchiveKeyContains applies the Contains predicate on the "workspace_archive_key" field.
func WorkspaceArchiveKeyContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldWorkspaceArchiveKey, v))
}

// WorkspaceArchiveKeyHasPrefix applies the HasPrefix predicate on the "workspace_archive_key" field.
func WorkspaceArchiveKeyHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldWorkspaceArchiveKey, v))
}

// WorkspaceArchiveKeyHasSuffix applies the HasSuffix predicate on the "workspace_archive_key" field.
func WorkspaceArchiveKeyHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldWorkspaceArchiveKey, v))
}

// WorkspaceArchiveKeyIsNil applies the IsNil predicate on the "workspace_archive_key" field.
func WorkspaceArchiveKeyIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldWorkspaceArchiveKey))
}

// WorkspaceArchiveKeyNotNil applies the NotNil predicate on the "workspace_archive_key" field.
func WorkspaceArchiveKeyNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldWorkspaceArchiveKey))
}

// WorkspaceArchiveKeyEqualFold applies the EqualFold predicate on the "workspace_archive_key" field.
func WorkspaceArchiveKeyEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldWorkspaceArchiveKey, v))
}

// WorkspaceArchiveKeyContainsFold applies the ContainsFold predicate on the "workspace_archive_key" field.
func WorkspaceArchiveKeyContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldWorkspaceArchiveKey, v))
}

// WorkspaceExportStatusEQ applies the EQ predicate on the "workspace_export_status" field.
func WorkspaceExportStatusEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldWorkspaceExportStatus, v))
}

// WorkspaceExportStatusNEQ applies the NEQ predicate on the "workspace_export_status" field.
func WorkspaceExportStatusNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldWorkspaceExportStatus, v))
}

// WorkspaceExportStatusIn applies the In predicate on the "workspace_export_status" field.
func WorkspaceExportStatusIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldWorkspaceExportStatus, vs...))
}

// WorkspaceExportStatusNotIn applies the NotIn predicate on the "workspace_export_status" field.
func WorkspaceExportStatusNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldWorkspaceExportStatus, vs...))
}

// WorkspaceExportStatusGT applies the GT predicate on the "workspace_export_status" field.
func WorkspaceExportStatusGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldWorkspaceExportStatus, v))
}

// WorkspaceExportStatusGTE applies the GTE predicate on the "workspace_export_status" field.
func WorkspaceExportStatusGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldWorkspaceExportStatus, v))
}

// WorkspaceExportStatusLT applies the LT predicate on the "workspace_export_status" field.
func WorkspaceExportStatusLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldWorkspaceExportStatus, v))
}

// WorkspaceExportStatusLTE applies the LTE predicate on the "workspace_export_status" field.
func WorkspaceExportStatusLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldWorkspaceExportStatus, v))
}

// WorkspaceExportStatusContains applies the Contains predicate on the "workspace_export_status" field.
func WorkspaceExportStatusContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldWorkspaceExportStatus, v))
}

// WorkspaceExportStatusHasPrefix applies the HasPrefix predicate on the "workspace_export_status" field.
func WorkspaceExportStatusHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldWorkspaceExportStatus, v))
}

// WorkspaceExportStatusHasSuffix applies the HasSuffix predicate on the "workspace_export_status" field.
func WorkspaceExportStatusHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldWorkspaceExportStatus, v))
}

// WorkspaceExportStatusIsNil applies the IsNil predicate on the "workspace_export_status" field.
func WorkspaceExportStatusIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldWorkspaceExportStatus))
}

// WorkspaceExportStatusNotNil applies the NotNil predicate on the "workspace_export_status" field.
func WorkspaceExportStatusNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldWorkspaceExportStatus))
}

// WorkspaceExportStatusEqualFold applies the EqualFold predicate on the "workspace_export_status" field.
func WorkspaceExportStatusEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldWorkspaceExportStatus, v))
}

// WorkspaceExportStatusContainsFold applies the ContainsFold predicate on the "workspace_export_status" field.
func WorkspaceExportStatusContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldWorkspaceExportStatus, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v bool) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v bool) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldIsDeleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.AgentMessage) predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRuns applies the HasEdge predicate on the "runs" edge.
func HasRuns() predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunsWith applies the HasEdge predicate on the "runs" edge with a given conditions (other predicates).
func HasRunsWith(preds ...predicate.AgentRun) predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := newRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasToolExecutions applies the HasEdge predicate on the "tool_executions" edge.
func HasToolExecutions() predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ToolExecutionsTable, ToolExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasToolExecutionsWith applies the HasEdge predicate on the "tool_executions" edge with a given conditions (other predicates).
func HasToolExecutionsWith(preds ...predicate.ToolExecution) predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := newToolExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUsageLogs applies the HasEdge predicate on the "usage_logs" edge.
func HasUsageLogs() predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UsageLogsTable, UsageLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUsageLogsWith applies the HasEdge predicate on the "usage_logs" edge with a given conditions (other predicates).
func HasUsageLogsWith(preds ...predicate.UsageLog) predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := newUsageLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(sql.NotPredicates(p))
}
