package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wuyifannppp/poco-agent/pkg/models"
	"github.com/wuyifannppp/poco-agent/pkg/services"
)

// ClaimRun handles POST /api/v1/runs/claim. An empty-queue claim is a
// success with null data, not an error: the manager polls this continuously.
func (s *Server) ClaimRun(c *gin.Context) {
	var req models.RunClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, CodeBadRequest, err.Error())
		return
	}

	run, token, err := s.runs.ClaimNextRun(c.Request.Context(), req.WorkerID, req.Capabilities)
	if err != nil {
		if errors.Is(err, services.ErrNoRunsAvailable) {
			respondOK(c, nil)
			return
		}
		respondServiceError(c, err)
		return
	}
	respondOK(c, models.RunClaimResponse{Run: run, ClaimToken: token})
}

// StartRun handles POST /api/v1/runs/:id/start
func (s *Server) StartRun(c *gin.Context) {
	var req models.RunStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, CodeBadRequest, err.Error())
		return
	}

	run, err := s.runs.StartRun(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, run)
}

// FailRun handles POST /api/v1/runs/:id/fail
func (s *Server) FailRun(c *gin.Context) {
	var req models.RunFailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, CodeBadRequest, err.Error())
		return
	}

	run, err := s.runs.FailRun(c.Request.Context(), c.Param("id"), req.ClaimToken, req.Error)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, run)
}

// CancelRun handles POST /api/v1/runs/:id/cancel
func (s *Server) CancelRun(c *gin.Context) {
	run, err := s.runs.CancelRun(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, run)
}

// GetRun handles GET /api/v1/runs/:id
func (s *Server) GetRun(c *gin.Context) {
	run, err := s.runs.GetRun(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, run)
}

// ListSessionRuns handles GET /api/v1/runs/session/:sid
func (s *Server) ListSessionRuns(c *gin.Context) {
	runs, err := s.runs.ListRuns(c.Request.Context(), currentUserID(c), c.Param("sid"), listParams(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, runs)
}
