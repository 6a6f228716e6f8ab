package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/wuyifannppp/poco-agent/ent"
	"github.com/wuyifannppp/poco-agent/ent/agentsession"
	"github.com/wuyifannppp/poco-agent/ent/project"
	"github.com/wuyifannppp/poco-agent/pkg/models"
)

// ProjectService manages projects, the grouping unit for sessions.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// CreateProject creates a project for the user.
func (s *ProjectService) CreateProject(ctx context.Context, userID string, req models.ProjectCreateRequest) (*ent.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	proj, err := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	slog.Info("Project created", "project_id", proj.ID, "user_id", userID)
	return proj, nil
}

// GetProject returns a project owned by the user. Soft-deleted projects are
// treated as not found.
func (s *ProjectService) GetProject(ctx context.Context, userID, projectID string) (*ent.Project, error) {
	proj, err := s.client.Project.Query().
		Where(
			project.IDEQ(projectID),
			project.IsDeletedEQ(false),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query project: %w", err)
	}
	if proj.UserID != userID {
		return nil, ErrForbidden
	}
	return proj, nil
}

// ListProjects returns a page of the user's projects, newest first.
func (s *ProjectService) ListProjects(ctx context.Context, userID string, params models.ListParams) ([]*ent.Project, error) {
	limit, offset := pageWindow(params)
	projects, err := s.client.Project.Query().
		Where(
			project.UserIDEQ(userID),
			project.IsDeletedEQ(false),
		).
		Order(ent.Desc(project.FieldCreatedAt), ent.Desc(project.FieldID)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// UpdateProject renames a project.
func (s *ProjectService) UpdateProject(ctx context.Context, userID, projectID string, req models.ProjectUpdateRequest) (*ent.Project, error) {
	proj, err := s.GetProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		proj, err = proj.Update().SetName(name).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update project: %w", err)
		}
	}
	return proj, nil
}

// DeleteProject soft-deletes a project. Sessions that referenced it are
// detached, not deleted.
func (s *ProjectService) DeleteProject(ctx context.Context, userID, projectID string) error {
	if _, err := s.GetProject(ctx, userID, projectID); err != nil {
		return err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := tx.AgentSession.Update().
		Where(agentsession.ProjectIDEQ(projectID)).
		ClearProjectID().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to detach sessions: %w", err)
	}

	if err := tx.Project.UpdateOneID(projectID).
		SetIsDeleted(true).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit project deletion: %w", err)
	}

	slog.Info("Project deleted", "project_id", projectID)
	return nil
}
