package api

import (
	"github.com/gin-gonic/gin"

	"github.com/wuyifannppp/poco-agent/pkg/models"
)

// ListEnvVars handles GET /api/v1/env-vars. Only names are returned; values
// never leave the internal surface.
func (s *Server) ListEnvVars(c *gin.Context) {
	names, err := s.envVars.ListEnvVarNames(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, names)
}

// UpsertEnvVar handles PUT /api/v1/env-vars
func (s *Server) UpsertEnvVar(c *gin.Context) {
	var req models.EnvVarUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, CodeBadRequest, err.Error())
		return
	}

	if err := s.envVars.UpsertEnvVar(c.Request.Context(), currentUserID(c), req.Name, req.Value); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, nil)
}

// DeleteEnvVar handles DELETE /api/v1/env-vars/:name
func (s *Server) DeleteEnvVar(c *gin.Context) {
	if err := s.envVars.DeleteEnvVar(c.Request.Context(), currentUserID(c), c.Param("name")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, nil)
}
