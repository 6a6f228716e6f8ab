package api

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/wuyifannppp/poco-agent/pkg/models"
)

// CreateSession handles POST /api/v1/sessions
func (s *Server) CreateSession(c *gin.Context) {
	var req models.SessionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, CodeBadRequest, err.Error())
		return
	}

	session, err := s.sessions.CreateSession(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, session)
}

// ListSessions handles GET /api/v1/sessions
func (s *Server) ListSessions(c *gin.Context) {
	var projectID *string
	if p := c.Query("project_id"); p != "" {
		projectID = &p
	}

	sessions, err := s.sessions.ListSessions(c.Request.Context(), currentUserID(c), projectID, listParams(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, sessions)
}

// ListSessionsWithTitles handles GET /api/v1/sessions/list-with-titles
//
// Deprecated: compatibility endpoint for older clients.
func (s *Server) ListSessionsWithTitles(c *gin.Context) {
	sessions, err := s.sessions.ListSessionsWithTitles(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, sessions)
}

// GetSession handles GET /api/v1/sessions/:id
func (s *Server) GetSession(c *gin.Context) {
	session, err := s.sessions.GetSession(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, session)
}

// UpdateSession handles PATCH /api/v1/sessions/:id
func (s *Server) UpdateSession(c *gin.Context) {
	// Decode into a raw map first so "project_id": null can be told apart
	// from an absent project_id.
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		respondError(c, 400, CodeBadRequest, err.Error())
		return
	}

	var req models.SessionUpdateRequest
	for key, value := range raw {
		var err error
		switch key {
		case "project_id":
			req.ProjectIDSet = true
			err = json.Unmarshal(value, &req.ProjectID)
		case "status":
			err = json.Unmarshal(value, &req.Status)
		case "sdk_session_id":
			err = json.Unmarshal(value, &req.SdkSessionID)
		case "state_patch":
			err = json.Unmarshal(value, &req.StatePatch)
		case "workspace_files_prefix":
			err = json.Unmarshal(value, &req.WorkspaceFilesPrefix)
		case "workspace_manifest_key":
			err = json.Unmarshal(value, &req.WorkspaceManifestKey)
		case "workspace_archive_key":
			err = json.Unmarshal(value, &req.WorkspaceArchiveKey)
		case "workspace_export_status":
			err = json.Unmarshal(value, &req.WorkspaceExportStatus)
		}
		if err != nil {
			respondError(c, 400, CodeBadRequest, err.Error())
			return
		}
	}

	session, err := s.sessions.UpdateSession(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, session)
}

// DeleteSession handles DELETE /api/v1/sessions/:id
func (s *Server) DeleteSession(c *gin.Context) {
	if err := s.sessions.DeleteSession(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, nil)
}

// SubmitPrompt handles POST /api/v1/sessions/:id/prompt
func (s *Server) SubmitPrompt(c *gin.Context) {
	var req models.PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, CodeBadRequest, err.Error())
		return
	}

	run, err := s.runs.CreateRun(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, run)
}
