package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/wuyifannppp/poco-agent/pkg/models"
	"github.com/wuyifannppp/poco-agent/pkg/services"
)

// WorkspaceFiles handles GET /api/v1/sessions/:id/workspace/files by
// proxying the executor manager's workspace listing and rewriting file links
// to point back at this API.
func (s *Server) WorkspaceFiles(c *gin.Context) {
	userID := currentUserID(c)
	sessionID := c.Param("id")

	if _, err := s.sessions.GetSession(c.Request.Context(), userID, sessionID); err != nil {
		respondServiceError(c, err)
		return
	}

	upstream := fmt.Sprintf("%s/api/v1/workspace/files/%s/%s",
		s.cfg.ManagerURL, url.PathEscape(userID), url.PathEscape(sessionID))
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, upstream, nil)
	if err != nil {
		respondServiceError(c, services.NewExternalServiceError("executor-manager", err))
		return
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		respondServiceError(c, services.NewExternalServiceError("executor-manager", err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respondServiceError(c, services.NewExternalServiceError("executor-manager",
			fmt.Errorf("workspace listing returned status %d", resp.StatusCode)))
		return
	}

	var envelope struct {
		Code    int               `json:"code"`
		Message string            `json:"message"`
		Data    []models.FileNode `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		respondServiceError(c, services.NewExternalServiceError("executor-manager", err))
		return
	}

	rewriteFileLinks(envelope.Data, sessionID)
	respondOK(c, envelope.Data)
}

// rewriteFileLinks points every file node at this API's workspace file
// endpoint so clients never talk to the manager directly.
func rewriteFileLinks(nodes []models.FileNode, sessionID string) {
	for i := range nodes {
		if nodes[i].Type == "file" {
			nodes[i].URL = fmt.Sprintf("/api/v1/sessions/%s/workspace/file?path=%s",
				sessionID, url.QueryEscape(nodes[i].Path))
		}
		rewriteFileLinks(nodes[i].Children, sessionID)
	}
}

// WorkspaceFile handles GET /api/v1/sessions/:id/workspace/file?path=… with
// a 307 redirect into the executor manager.
func (s *Server) WorkspaceFile(c *gin.Context) {
	userID := currentUserID(c)
	sessionID := c.Param("id")
	path := c.Query("path")
	if path == "" {
		respondError(c, 400, CodeBadRequest, "path query parameter is required")
		return
	}

	if _, err := s.sessions.GetSession(c.Request.Context(), userID, sessionID); err != nil {
		respondServiceError(c, err)
		return
	}

	target := fmt.Sprintf("%s/api/v1/workspace/file/%s/%s?path=%s",
		s.cfg.ManagerURL, url.PathEscape(userID), url.PathEscape(sessionID), url.QueryEscape(path))
	c.Redirect(http.StatusTemporaryRedirect, target)
}
