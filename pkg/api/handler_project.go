package api

import (
	"github.com/gin-gonic/gin"

	"github.com/wuyifannppp/poco-agent/pkg/models"
)

// CreateProject handles POST /api/v1/projects
func (s *Server) CreateProject(c *gin.Context) {
	var req models.ProjectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, CodeBadRequest, err.Error())
		return
	}

	project, err := s.projects.CreateProject(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, project)
}

// ListProjects handles GET /api/v1/projects
func (s *Server) ListProjects(c *gin.Context) {
	projects, err := s.projects.ListProjects(c.Request.Context(), currentUserID(c), listParams(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, projects)
}

// GetProject handles GET /api/v1/projects/:id
func (s *Server) GetProject(c *gin.Context) {
	project, err := s.projects.GetProject(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, project)
}

// UpdateProject handles PATCH /api/v1/projects/:id
func (s *Server) UpdateProject(c *gin.Context) {
	var req models.ProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, CodeBadRequest, err.Error())
		return
	}

	project, err := s.projects.UpdateProject(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, project)
}

// DeleteProject handles DELETE /api/v1/projects/:id
func (s *Server) DeleteProject(c *gin.Context) {
	if err := s.projects.DeleteProject(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, nil)
}
