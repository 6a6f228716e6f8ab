package api

import (
	"github.com/gin-gonic/gin"

	"github.com/wuyifannppp/poco-agent/pkg/models"
)

// InternalEnvMap handles GET /internal/users/:user_id/env-map. Full values;
// service-to-service surface only, never exposed publicly.
func (s *Server) InternalEnvMap(c *gin.Context) {
	envMap, err := s.envVars.GetEnvMap(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, envMap)
}

// InternalResolveMcpConfig handles POST /internal/mcp-config/resolve
func (s *Server) InternalResolveMcpConfig(c *gin.Context) {
	var req models.ResolvePresetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, CodeBadRequest, err.Error())
		return
	}

	cfg, err := s.presets.ResolveMcpConfig(c.Request.Context(), req.UserID, req.IDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, cfg)
}

// InternalResolveSkillConfig handles POST /internal/skill-config/resolve
func (s *Server) InternalResolveSkillConfig(c *gin.Context) {
	var req models.ResolvePresetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, CodeBadRequest, err.Error())
		return
	}

	files, err := s.presets.ResolveSkillConfig(c.Request.Context(), req.UserID, req.IDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, files)
}
