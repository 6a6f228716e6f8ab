package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wuyifannppp/poco-agent/pkg/config"
	"github.com/wuyifannppp/poco-agent/pkg/database"
	"github.com/wuyifannppp/poco-agent/pkg/services"
)

// Server wires the service layer to the HTTP surface.
type Server struct {
	cfg *config.BackendConfig
	db  *database.Client

	sessions       *services.SessionService
	projects       *services.ProjectService
	runs           *services.RunService
	messages       *services.MessageService
	toolExecutions *services.ToolExecutionService
	usage          *services.UsageService
	callbacks      *services.CallbackService
	envVars        *services.EnvVarService
	presets        *services.PresetService
	attachments    *services.AttachmentService

	httpClient *http.Client
}

// NewServer creates a new API server over the given service layer.
func NewServer(
	cfg *config.BackendConfig,
	db *database.Client,
	sessions *services.SessionService,
	projects *services.ProjectService,
	runs *services.RunService,
	messages *services.MessageService,
	toolExecutions *services.ToolExecutionService,
	usage *services.UsageService,
	callbacks *services.CallbackService,
	envVars *services.EnvVarService,
	presets *services.PresetService,
	attachments *services.AttachmentService,
) *Server {
	return &Server{
		cfg:            cfg,
		db:             db,
		sessions:       sessions,
		projects:       projects,
		runs:           runs,
		messages:       messages,
		toolExecutions: toolExecutions,
		usage:          usage,
		callbacks:      callbacks,
		envVars:        envVars,
		presets:        presets,
		attachments:    attachments,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	r.GET("/health", s.Health)

	v1 := r.Group("/api/v1", AuthMiddleware())
	{
		v1.GET("/health", s.Health)
		v1.GET("/callback/health", s.Liveness)
		v1.GET("/attachments/health", s.Liveness)

		v1.POST("/attachments/upload", s.UploadAttachment)

		v1.POST("/sessions", s.CreateSession)
		v1.GET("/sessions", s.ListSessions)
		v1.GET("/sessions/list-with-titles", s.ListSessionsWithTitles)
		v1.GET("/sessions/:id", s.GetSession)
		v1.PATCH("/sessions/:id", s.UpdateSession)
		v1.DELETE("/sessions/:id", s.DeleteSession)
		v1.POST("/sessions/:id/prompt", s.SubmitPrompt)
		v1.GET("/sessions/:id/messages", s.ListMessages)
		v1.GET("/sessions/:id/tool-executions", s.ListToolExecutions)
		v1.GET("/sessions/:id/usage", s.ListUsage)
		v1.GET("/sessions/:id/usage/summary", s.UsageSummary)
		v1.GET("/sessions/:id/workspace/files", s.WorkspaceFiles)
		v1.GET("/sessions/:id/workspace/file", s.WorkspaceFile)

		v1.POST("/projects", s.CreateProject)
		v1.GET("/projects", s.ListProjects)
		v1.GET("/projects/:id", s.GetProject)
		v1.PATCH("/projects/:id", s.UpdateProject)
		v1.DELETE("/projects/:id", s.DeleteProject)

		v1.POST("/runs/claim", s.ClaimRun)
		v1.POST("/runs/:id/start", s.StartRun)
		v1.POST("/runs/:id/fail", s.FailRun)
		v1.POST("/runs/:id/cancel", s.CancelRun)
		v1.GET("/runs/:id", s.GetRun)
		v1.GET("/runs/session/:sid", s.ListSessionRuns)

		v1.POST("/callback", s.HandleCallback)

		v1.GET("/env-vars", s.ListEnvVars)
		v1.PUT("/env-vars", s.UpsertEnvVar)
		v1.DELETE("/env-vars/:name", s.DeleteEnvVar)

		v1.GET("/mcp-presets", s.ListMcpPresets)
		v1.GET("/skill-presets", s.ListSkillPresets)
		v1.GET("/mcp-configs", s.ListUserMcpConfigs)
		v1.PUT("/mcp-configs/:preset_id", s.SetUserMcpConfig)
		v1.GET("/skill-installs", s.ListUserSkillInstalls)
		v1.PUT("/skill-installs/:preset_id", s.SetUserSkillInstall)
	}

	internal := r.Group("/internal")
	{
		internal.GET("/users/:user_id/env-map", s.InternalEnvMap)
		internal.POST("/mcp-config/resolve", s.InternalResolveMcpConfig)
		internal.POST("/skill-config/resolve", s.InternalResolveSkillConfig)
	}

	return r
}

// Health reports process and database liveness.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}

// Liveness is a constant-true probe for sub-surfaces.
func (s *Server) Liveness(c *gin.Context) {
	respondOK(c, gin.H{"status": "ok"})
}
