package models

import "github.com/wuyifannppp/poco-agent/ent"

// SessionCreateRequest creates a new agent session.
type SessionCreateRequest struct {
	ProjectID *string        `json:"project_id,omitempty"`
	Config    map[string]any `json:"config,omitempty"`
}

// SessionUpdateRequest patches mutable session fields. Pointer fields
// distinguish "absent" from zero values.
type SessionUpdateRequest struct {
	ProjectID             *string        `json:"project_id,omitempty"`
	ProjectIDSet          bool           `json:"-"`
	Status                *string        `json:"status,omitempty"`
	SdkSessionID          *string        `json:"sdk_session_id,omitempty"`
	StatePatch            map[string]any `json:"state_patch,omitempty"`
	WorkspaceFilesPrefix  *string        `json:"workspace_files_prefix,omitempty"`
	WorkspaceManifestKey  *string        `json:"workspace_manifest_key,omitempty"`
	WorkspaceArchiveKey   *string        `json:"workspace_archive_key,omitempty"`
	WorkspaceExportStatus *string        `json:"workspace_export_status,omitempty"`
}

// SessionWithTitle pairs a session with a title derived from its first user
// message.
//
// Deprecated: compatibility shape for the legacy list-with-titles endpoint.
type SessionWithTitle struct {
	*ent.AgentSession
	Title string `json:"title,omitempty"`
}

// MessageWithFiles pairs a message with the attachments recovered from the
// run snapshot that the message spawned.
type MessageWithFiles struct {
	*ent.AgentMessage
	Attachments []InputFile `json:"attachments"`
}
