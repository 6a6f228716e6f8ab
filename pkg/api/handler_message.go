package api

import (
	"github.com/gin-gonic/gin"
)

// ListMessages handles GET /api/v1/sessions/:id/messages
func (s *Server) ListMessages(c *gin.Context) {
	messages, err := s.messages.ListMessages(c.Request.Context(), currentUserID(c), c.Param("id"), listParams(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, messages)
}

// ListToolExecutions handles GET /api/v1/sessions/:id/tool-executions
func (s *Server) ListToolExecutions(c *gin.Context) {
	execs, err := s.toolExecutions.ListToolExecutions(c.Request.Context(), currentUserID(c), c.Param("id"), listParams(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, execs)
}

// ListUsage handles GET /api/v1/sessions/:id/usage
func (s *Server) ListUsage(c *gin.Context) {
	logs, err := s.usage.ListUsage(c.Request.Context(), currentUserID(c), c.Param("id"), listParams(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, logs)
}

// UsageSummary handles GET /api/v1/sessions/:id/usage/summary
func (s *Server) UsageSummary(c *gin.Context) {
	summary, err := s.usage.SummarizeUsage(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, summary)
}
