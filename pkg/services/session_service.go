package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wuyifannppp/poco-agent/ent"
	"github.com/wuyifannppp/poco-agent/ent/agentmessage"
	"github.com/wuyifannppp/poco-agent/ent/agentsession"
	"github.com/wuyifannppp/poco-agent/ent/project"
	"github.com/wuyifannppp/poco-agent/pkg/models"
)

// SessionService manages agent session lifecycle
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSession creates a new agent session for the user.
func (s *SessionService) CreateSession(httpCtx context.Context, userID string, req models.SessionCreateRequest) (*ent.AgentSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if req.ProjectID != nil {
		if err := s.checkProjectOwnership(ctx, userID, *req.ProjectID); err != nil {
			return nil, err
		}
	}

	builder := s.client.AgentSession.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetStatus(agentsession.StatusPending)
	if req.ProjectID != nil {
		builder = builder.SetProjectID(*req.ProjectID)
	}
	if req.Config != nil {
		builder = builder.SetConfigSnapshot(req.Config)
	}

	session, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	slog.Info("Session created", "session_id", session.ID, "user_id", userID)
	return session, nil
}

// GetSession returns a session owned by the user. Soft-deleted sessions are
// treated as not found.
func (s *SessionService) GetSession(ctx context.Context, userID, sessionID string) (*ent.AgentSession, error) {
	session, err := s.client.AgentSession.Query().
		Where(
			agentsession.IDEQ(sessionID),
			agentsession.IsDeletedEQ(false),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}
	return session, nil
}

// ListSessions returns a page of the user's sessions, newest first,
// optionally filtered by project.
func (s *SessionService) ListSessions(ctx context.Context, userID string, projectID *string, params models.ListParams) ([]*ent.AgentSession, error) {
	limit, offset := pageWindow(params)
	q := s.client.AgentSession.Query().
		Where(
			agentsession.UserIDEQ(userID),
			agentsession.IsDeletedEQ(false),
		)
	if projectID != nil {
		q = q.Where(agentsession.ProjectIDEQ(*projectID))
	}
	sessions, err := q.
		Order(ent.Desc(agentsession.FieldCreatedAt), ent.Desc(agentsession.FieldID)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// ListSessionsWithTitles returns the user's sessions paired with a title
// derived from each session's first user message.
//
// Deprecated: kept for older clients; new clients list sessions and read the
// first message themselves.
func (s *SessionService) ListSessionsWithTitles(ctx context.Context, userID string) ([]models.SessionWithTitle, error) {
	sessions, err := s.ListSessions(ctx, userID, nil, models.ListParams{})
	if err != nil {
		return nil, err
	}

	out := make([]models.SessionWithTitle, 0, len(sessions))
	for _, session := range sessions {
		first, err := s.client.AgentMessage.Query().
			Where(
				agentmessage.SessionIDEQ(session.ID),
				agentmessage.RoleEQ(agentmessage.RoleUser),
			).
			Order(ent.Asc(agentmessage.FieldCreatedAt), ent.Asc(agentmessage.FieldID)).
			First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query first message: %w", err)
		}
		out = append(out, models.SessionWithTitle{
			AgentSession: session,
			Title:        deriveTitle(first),
		})
	}
	return out, nil
}

// deriveTitle picks a session title from a message: the stored preview when
// present, otherwise the text or prompt field of the content.
func deriveTitle(msg *ent.AgentMessage) string {
	if msg == nil {
		return ""
	}
	if msg.TextPreview != nil && *msg.TextPreview != "" {
		return *msg.TextPreview
	}
	for _, key := range []string{"text", "prompt"} {
		if v, ok := msg.Content[key].(string); ok && v != "" {
			return truncatePreview(v)
		}
	}
	return ""
}

// UpdateSession patches mutable session fields. Ownership is enforced;
// state_patch is shallow-merged into the stored state.
func (s *SessionService) UpdateSession(ctx context.Context, userID, sessionID string, req models.SessionUpdateRequest) (*ent.AgentSession, error) {
	session, err := s.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	update := session.Update()

	if req.ProjectIDSet {
		if req.ProjectID == nil {
			update = update.ClearProjectID()
		} else {
			if err := s.checkProjectOwnership(ctx, userID, *req.ProjectID); err != nil {
				return nil, err
			}
			update = update.SetProjectID(*req.ProjectID)
		}
	}
	if req.Status != nil {
		status := agentsession.Status(*req.Status)
		if err := agentsession.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		update = update.SetStatus(status)
	}
	if req.SdkSessionID != nil {
		update = update.SetSdkSessionID(*req.SdkSessionID)
	}
	if req.StatePatch != nil {
		update = update.SetStatePatch(mergeConfig(session.StatePatch, req.StatePatch))
	}
	if req.WorkspaceFilesPrefix != nil {
		update = update.SetWorkspaceFilesPrefix(*req.WorkspaceFilesPrefix)
	}
	if req.WorkspaceManifestKey != nil {
		update = update.SetWorkspaceManifestKey(*req.WorkspaceManifestKey)
	}
	if req.WorkspaceArchiveKey != nil {
		update = update.SetWorkspaceArchiveKey(*req.WorkspaceArchiveKey)
	}
	if req.WorkspaceExportStatus != nil {
		update = update.SetWorkspaceExportStatus(*req.WorkspaceExportStatus)
	}

	session, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return session, nil
}

// DeleteSession soft-deletes a session. The row and its children stay in the
// database but disappear from all read paths.
func (s *SessionService) DeleteSession(ctx context.Context, userID, sessionID string) error {
	session, err := s.GetSession(ctx, userID, sessionID)
	if err != nil {
		return err
	}

	if err := session.Update().
		SetIsDeleted(true).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	slog.Info("Session deleted", "session_id", sessionID)
	return nil
}

// FindBySdkSessionID returns the session with the given sdk session id.
func (s *SessionService) FindBySdkSessionID(ctx context.Context, sdkSessionID string) (*ent.AgentSession, error) {
	session, err := s.client.AgentSession.Query().
		Where(
			agentsession.SdkSessionIDEQ(sdkSessionID),
			agentsession.IsDeletedEQ(false),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query session by sdk id: %w", err)
	}
	return session, nil
}

func (s *SessionService) checkProjectOwnership(ctx context.Context, userID, projectID string) error {
	proj, err := s.client.Project.Query().
		Where(
			project.IDEQ(projectID),
			project.IsDeletedEQ(false),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to query project: %w", err)
	}
	if proj.UserID != userID {
		return ErrForbidden
	}
	return nil
}
