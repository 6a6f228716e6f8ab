package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/google/uuid"

	"github.com/wuyifannppp/poco-agent/ent"
	"github.com/wuyifannppp/poco-agent/ent/userenvvar"
)

// envVarNamePattern restricts env var names to the usual shell identifier
// shape.
var envVarNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// EnvVarService manages per-user environment variables referenced by config
// templates. Values are never returned on user-facing read paths.
type EnvVarService struct {
	client *ent.Client
}

// NewEnvVarService creates a new EnvVarService
func NewEnvVarService(client *ent.Client) *EnvVarService {
	return &EnvVarService{client: client}
}

// ListEnvVarNames returns the names of the user's env vars, sorted by name.
func (s *EnvVarService) ListEnvVarNames(ctx context.Context, userID string) ([]string, error) {
	vars, err := s.client.UserEnvVar.Query().
		Where(userenvvar.UserIDEQ(userID)).
		Order(ent.Asc(userenvvar.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list env vars: %w", err)
	}
	names := make([]string, 0, len(vars))
	for _, v := range vars {
		names = append(names, v.Name)
	}
	return names, nil
}

// GetEnvMap returns the user's full name-to-value map. Internal surface only.
func (s *EnvVarService) GetEnvMap(ctx context.Context, userID string) (map[string]string, error) {
	vars, err := s.client.UserEnvVar.Query().
		Where(userenvvar.UserIDEQ(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query env vars: %w", err)
	}
	m := make(map[string]string, len(vars))
	for _, v := range vars {
		m[v.Name] = v.Value
	}
	return m, nil
}

// UpsertEnvVar creates or replaces one env var for the user.
func (s *EnvVarService) UpsertEnvVar(ctx context.Context, userID, name, value string) error {
	if !envVarNamePattern.MatchString(name) {
		return NewValidationError("name", "must match [A-Za-z_][A-Za-z0-9_]*")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.UserEnvVar.Query().
		Where(
			userenvvar.UserIDEQ(userID),
			userenvvar.NameEQ(name),
		).
		Only(ctx)
	switch {
	case err == nil:
		if err := existing.Update().SetValue(value).Exec(ctx); err != nil {
			return fmt.Errorf("failed to update env var: %w", err)
		}
	case ent.IsNotFound(err):
		if err := tx.UserEnvVar.Create().
			SetID(uuid.New().String()).
			SetUserID(userID).
			SetName(name).
			SetValue(value).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create env var: %w", err)
		}
	default:
		return fmt.Errorf("failed to query env var: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit env var upsert: %w", err)
	}

	slog.Info("Env var set", "user_id", userID, "name", name)
	return nil
}

// DeleteEnvVar removes one env var for the user.
func (s *EnvVarService) DeleteEnvVar(ctx context.Context, userID, name string) error {
	n, err := s.client.UserEnvVar.Delete().
		Where(
			userenvvar.UserIDEQ(userID),
			userenvvar.NameEQ(name),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete env var: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
