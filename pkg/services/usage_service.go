package services

import (
	"context"
	"fmt"

	"github.com/wuyifannppp/poco-agent/ent"
	"github.com/wuyifannppp/poco-agent/ent/usagelog"
	"github.com/wuyifannppp/poco-agent/pkg/models"
)

// UsageService reads token usage records for a session.
type UsageService struct {
	client *ent.Client
}

// NewUsageService creates a new UsageService
func NewUsageService(client *ent.Client) *UsageService {
	return &UsageService{client: client}
}

// ListUsage returns a page of a session's usage entries, newest first.
func (s *UsageService) ListUsage(ctx context.Context, userID, sessionID string, params models.ListParams) ([]*ent.UsageLog, error) {
	if err := checkSessionOwnership(ctx, s.client, userID, sessionID); err != nil {
		return nil, err
	}

	limit, offset := pageWindow(params)
	logs, err := s.client.UsageLog.Query().
		Where(usagelog.SessionIDEQ(sessionID)).
		Order(ent.Desc(usagelog.FieldCreatedAt), ent.Desc(usagelog.FieldID)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list usage: %w", err)
	}
	return logs, nil
}

// SummarizeUsage totals a session's token usage over every entry.
func (s *UsageService) SummarizeUsage(ctx context.Context, userID, sessionID string) (*models.UsageSummary, error) {
	if err := checkSessionOwnership(ctx, s.client, userID, sessionID); err != nil {
		return nil, err
	}

	logs, err := s.client.UsageLog.Query().
		Where(usagelog.SessionIDEQ(sessionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list usage: %w", err)
	}

	summary := &models.UsageSummary{Entries: len(logs)}
	for _, l := range logs {
		summary.InputTokens += l.InputTokens
		summary.OutputTokens += l.OutputTokens
		summary.CacheReadTokens += l.CacheReadTokens
		summary.CacheWriteTokens += l.CacheWriteTokens
	}
	return summary, nil
}
