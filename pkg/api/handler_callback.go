package api

import (
	"github.com/gin-gonic/gin"

	"github.com/wuyifannppp/poco-agent/pkg/models"
)

// HandleCallback handles POST /api/v1/callback — the executor progress sink.
func (s *Server) HandleCallback(c *gin.Context) {
	var req models.AgentCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, CodeBadRequest, err.Error())
		return
	}

	resp, err := s.callbacks.Handle(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, resp)
}
