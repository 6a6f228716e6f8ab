package models

import "github.com/wuyifannppp/poco-agent/ent"

// RunClaimRequest asks the backend to claim the next eligible queued run.
type RunClaimRequest struct {
	WorkerID     string   `json:"worker_id" binding:"required"`
	Capabilities []string `json:"capabilities,omitempty"`
}

// RunClaimResponse carries the claimed run and its claim token.
// Nil data means no runs were eligible.
type RunClaimResponse struct {
	Run        *ent.AgentRun `json:"run"`
	ClaimToken string        `json:"claim_token"`
}

// RunStartRequest transitions a claimed run to running.
type RunStartRequest struct {
	ClaimToken   string `json:"claim_token" binding:"required"`
	SdkSessionID string `json:"sdk_session_id,omitempty"`
}

// RunFailRequest marks a claimed or running run as failed.
type RunFailRequest struct {
	ClaimToken string    `json:"claim_token" binding:"required"`
	Error      *RunError `json:"error,omitempty"`
}

// RunError is the persisted failure descriptor for a run.
type RunError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// AsMap converts the error into the JSON shape stored on the run row.
func (e *RunError) AsMap() map[string]any {
	if e == nil {
		return nil
	}
	m := map[string]any{
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		m["details"] = e.Details
	}
	return m
}

// PromptRequest submits a prompt to a session, creating a user message and
// a queued run.
type PromptRequest struct {
	Prompt     string         `json:"prompt" binding:"required"`
	Config     map[string]any `json:"config,omitempty"`
	InputFiles []InputFile    `json:"input_files,omitempty"`
}
