// Package executor implements the task execution service: a gRPC server
// that accepts tasks from the manager and drives a Runner, reporting
// progress and completion through the backend callback API.
package executor

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/wuyifannppp/poco-agent/pkg/models"
	pb "github.com/wuyifannppp/poco-agent/proto"
)

// taskTimeout bounds a single task execution.
const taskTimeout = 30 * time.Minute

// Server implements the executor gRPC service.
type Server struct {
	pb.UnimplementedExecutorServiceServer

	runner    Runner
	callbacks *CallbackClient
	wg        sync.WaitGroup
}

// NewServer creates an executor server driving the given runner.
func NewServer(runner Runner, callbacks *CallbackClient) *Server {
	return &Server{runner: runner, callbacks: callbacks}
}

// RunTask accepts a task and executes it asynchronously. The ack only means
// the task was admitted; outcome flows through callbacks.
func (s *Server) RunTask(_ context.Context, req *pb.TaskRequest) (*pb.TaskAck, error) {
	if req.RunId == "" || req.SessionId == "" || req.ClaimToken == "" {
		return &pb.TaskAck{Accepted: false, Message: "run_id, session_id and claim_token are required"}, nil
	}

	var effective map[string]any
	if req.EffectiveConfigJson != "" {
		if err := json.Unmarshal([]byte(req.EffectiveConfigJson), &effective); err != nil {
			return &pb.TaskAck{Accepted: false, Message: "invalid effective config"}, nil
		}
	}

	task := Task{
		RunID:           req.RunId,
		SessionID:       req.SessionId,
		UserID:          req.UserId,
		ClaimToken:      req.ClaimToken,
		Prompt:          req.Prompt,
		SdkSessionID:    req.SdkSessionId,
		WorkspaceDir:    req.WorkspaceDir,
		EffectiveConfig: effective,
	}

	s.wg.Add(1)
	go s.execute(task)

	return &pb.TaskAck{Accepted: true}, nil
}

// Wait blocks until all in-flight tasks finish. Used during shutdown.
func (s *Server) Wait() {
	s.wg.Wait()
}

// execute drives the runner and reports the terminal callback.
func (s *Server) execute(task Task) {
	defer s.wg.Done()

	log := slog.With("run_id", task.RunID, "session_id", task.SessionID)
	log.Info("Task started")

	ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
	defer cancel()

	err := s.runner.Run(ctx, task, s.callbacks)

	// Terminal reporting uses a fresh context; the task context may have
	// expired.
	reportCtx, cancelReport := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelReport()

	terminal := models.AgentCallbackRequest{
		Kind:       models.CallbackRunSucceeded,
		SessionID:  task.SessionID,
		RunID:      task.RunID,
		ClaimToken: task.ClaimToken,
	}
	switch {
	case err == nil:
		// success
	case errors.Is(err, ErrCancelled):
		terminal.Kind = models.CallbackRunFailed
		terminal.Error = &models.RunError{Code: "CANCELLED", Message: "task cancelled on request"}
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		terminal.Kind = models.CallbackRunFailed
		terminal.Error = &models.RunError{Code: "TIMEOUT", Message: "task timed out"}
	default:
		terminal.Kind = models.CallbackRunFailed
		terminal.Error = &models.RunError{Code: "INTERNAL_ERROR", Message: err.Error()}
	}

	if _, cbErr := s.callbacks.Post(reportCtx, terminal); cbErr != nil {
		log.Error("Failed to report task outcome", "error", cbErr)
		return
	}
	log.Info("Task finished", "kind", terminal.Kind)
}
