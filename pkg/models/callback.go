package models

import "time"

// Callback kinds emitted by executors. This is the complete negotiated set;
// anything else is rejected with BAD_REQUEST.
const (
	CallbackMessageAppended = "message.appended"
	CallbackToolStarted     = "tool.started"
	CallbackToolFinished    = "tool.finished"
	CallbackUsageRecorded   = "usage.recorded"
	CallbackRunSucceeded    = "run.succeeded"
	CallbackRunFailed       = "run.failed"
	CallbackSessionState    = "session.state"
)

// AgentCallbackRequest is one progress event posted by an executor.
// Payload fields are populated per kind; unused fields stay empty.
type AgentCallbackRequest struct {
	Kind      string `json:"kind" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
	RunID     string `json:"run_id,omitempty"`

	// message.appended
	Message *CallbackMessage `json:"message,omitempty"`

	// tool.started / tool.finished
	Tool *CallbackTool `json:"tool,omitempty"`

	// usage.recorded
	Usage *CallbackUsage `json:"usage,omitempty"`

	// run.succeeded / run.failed / session.state
	ClaimToken   string         `json:"claim_token,omitempty"`
	Error        *RunError      `json:"error,omitempty"`
	SdkSessionID string         `json:"sdk_session_id,omitempty"`
	StatePatch   map[string]any `json:"state_patch,omitempty"`
	Workspace    *WorkspaceInfo `json:"workspace,omitempty"`
}

// CallbackMessage is the message.appended payload.
type CallbackMessage struct {
	Role        string         `json:"role"`
	Content     map[string]any `json:"content"`
	TextPreview string         `json:"text_preview,omitempty"`
}

// CallbackTool is the tool.started / tool.finished payload. Upserted by id.
type CallbackTool struct {
	ID         string         `json:"id"`
	Name       string         `json:"name,omitempty"`
	Input      map[string]any `json:"input,omitempty"`
	Output     map[string]any `json:"output,omitempty"`
	Error      map[string]any `json:"error,omitempty"`
	StartedAt  *time.Time     `json:"started_at,omitempty"`
	FinishedAt *time.Time     `json:"finished_at,omitempty"`
	Status     string         `json:"status,omitempty"`
}

// CallbackUsage is the usage.recorded payload.
type CallbackUsage struct {
	InputTokens      int    `json:"input_tokens"`
	OutputTokens     int    `json:"output_tokens"`
	CacheReadTokens  int    `json:"cache_read_tokens,omitempty"`
	CacheWriteTokens int    `json:"cache_write_tokens,omitempty"`
	Model            string `json:"model,omitempty"`
}

// WorkspaceInfo carries workspace export keys reported on run completion.
type WorkspaceInfo struct {
	FilesPrefix  string `json:"files_prefix,omitempty"`
	ManifestKey  string `json:"manifest_key,omitempty"`
	ArchiveKey   string `json:"archive_key,omitempty"`
	ExportStatus string `json:"export_status,omitempty"`
}

// CallbackResponse acknowledges a callback and carries the cooperative
// cancellation flag the executor polls.
type CallbackResponse struct {
	CancelRequested bool `json:"cancel_requested"`
}
