// Package managerapi is the executor manager's HTTP surface: workspace
// browsing plus worker pool health.
package managerapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wuyifannppp/poco-agent/pkg/dispatch"
	"github.com/wuyifannppp/poco-agent/pkg/workspace"
)

// Server exposes the manager API.
type Server struct {
	workspaces *workspace.Manager
	pool       *dispatch.WorkerPool
}

// NewServer creates a new manager API server.
func NewServer(workspaces *workspace.Manager, pool *dispatch.WorkerPool) *Server {
	return &Server{workspaces: workspaces, pool: pool}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.Health)
	v1 := r.Group("/api/v1")
	{
		v1.GET("/workspace/files/:user/:session", s.WorkspaceFiles)
		v1.GET("/workspace/file/:user/:session", s.WorkspaceFile)
	}
	return r
}

// Health reports worker pool status.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"workers": s.pool.Health(),
	})
}

// WorkspaceFiles handles GET /api/v1/workspace/files/:user/:session
func (s *Server) WorkspaceFiles(c *gin.Context) {
	files, err := s.workspaces.ListFiles(c.Param("user"), c.Param("session"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    50000,
			"message": err.Error(),
			"data":    nil,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "ok",
		"data":    files,
	})
}

// WorkspaceFile handles GET /api/v1/workspace/file/:user/:session?path=…
// The file is served directly; path traversal is rejected.
func (s *Server) WorkspaceFile(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    40000,
			"message": "path query parameter is required",
			"data":    nil,
		})
		return
	}

	abs, err := s.workspaces.ResolveFile(c.Param("user"), c.Param("session"), path)
	if err != nil {
		status := http.StatusInternalServerError
		code := 50000
		switch {
		case errors.Is(err, workspace.ErrPathEscapesRoot):
			status, code = http.StatusBadRequest, 40000
		case errors.Is(err, workspace.ErrFileNotFound):
			status, code = http.StatusNotFound, 40400
		}
		c.JSON(status, gin.H{
			"code":    code,
			"message": err.Error(),
			"data":    nil,
		})
		return
	}

	c.File(abs)
}
