package services

import (
	"context"
	"fmt"

	"github.com/wuyifannppp/poco-agent/ent"
	"github.com/wuyifannppp/poco-agent/ent/toolexecution"
	"github.com/wuyifannppp/poco-agent/pkg/models"
)

// ToolExecutionService reads tool call records for a session.
type ToolExecutionService struct {
	client *ent.Client
}

// NewToolExecutionService creates a new ToolExecutionService
func NewToolExecutionService(client *ent.Client) *ToolExecutionService {
	return &ToolExecutionService{client: client}
}

// ListToolExecutions returns a page of a session's tool executions, newest
// first.
func (s *ToolExecutionService) ListToolExecutions(ctx context.Context, userID, sessionID string, params models.ListParams) ([]*ent.ToolExecution, error) {
	if err := checkSessionOwnership(ctx, s.client, userID, sessionID); err != nil {
		return nil, err
	}

	limit, offset := pageWindow(params)
	execs, err := s.client.ToolExecution.Query().
		Where(toolexecution.SessionIDEQ(sessionID)).
		Order(ent.Desc(toolexecution.FieldCreatedAt), ent.Desc(toolexecution.FieldID)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tool executions: %w", err)
	}
	return execs, nil
}

// checkSessionOwnership verifies the session exists, is not deleted, and
// belongs to the user.
func checkSessionOwnership(ctx context.Context, client *ent.Client, userID, sessionID string) error {
	session, err := client.AgentSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to query session: %w", err)
	}
	if session.IsDeleted {
		return ErrNotFound
	}
	if session.UserID != userID {
		return ErrForbidden
	}
	return nil
}
