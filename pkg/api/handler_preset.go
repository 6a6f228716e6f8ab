package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// userPresetRequest is the body for per-user preset configuration.
type userPresetRequest struct {
	Overrides map[string]any `json:"overrides,omitempty"`
	Enabled   *bool          `json:"enabled,omitempty"`
}

// ListMcpPresets handles GET /api/v1/mcp-presets
func (s *Server) ListMcpPresets(c *gin.Context) {
	presets, err := s.presets.ListMcpPresets(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, presets)
}

// ListSkillPresets handles GET /api/v1/skill-presets
func (s *Server) ListSkillPresets(c *gin.Context) {
	presets, err := s.presets.ListSkillPresets(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, presets)
}

// ListUserMcpConfigs handles GET /api/v1/mcp-configs
func (s *Server) ListUserMcpConfigs(c *gin.Context) {
	configs, err := s.presets.ListUserMcpConfigs(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, configs)
}

// SetUserMcpConfig handles PUT /api/v1/mcp-configs/:preset_id
func (s *Server) SetUserMcpConfig(c *gin.Context) {
	presetID, err := strconv.Atoi(c.Param("preset_id"))
	if err != nil {
		respondError(c, 400, CodeBadRequest, "preset_id must be an integer")
		return
	}

	var req userPresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, CodeBadRequest, err.Error())
		return
	}
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	cfg, err := s.presets.SetUserMcpConfig(c.Request.Context(), currentUserID(c), presetID, req.Overrides, enabled)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, cfg)
}

// ListUserSkillInstalls handles GET /api/v1/skill-installs
func (s *Server) ListUserSkillInstalls(c *gin.Context) {
	installs, err := s.presets.ListUserSkillInstalls(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, installs)
}

// SetUserSkillInstall handles PUT /api/v1/skill-installs/:preset_id
func (s *Server) SetUserSkillInstall(c *gin.Context) {
	presetID, err := strconv.Atoi(c.Param("preset_id"))
	if err != nil {
		respondError(c, 400, CodeBadRequest, "preset_id must be an integer")
		return
	}

	var req userPresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, CodeBadRequest, err.Error())
		return
	}
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	install, err := s.presets.SetUserSkillInstall(c.Request.Context(), currentUserID(c), presetID, enabled)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, install)
}
