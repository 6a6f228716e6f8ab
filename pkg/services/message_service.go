package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wuyifannppp/poco-agent/ent"
	"github.com/wuyifannppp/poco-agent/ent/agentmessage"
	"github.com/wuyifannppp/poco-agent/ent/agentrun"
	"github.com/wuyifannppp/poco-agent/pkg/models"
	"github.com/wuyifannppp/poco-agent/pkg/storage"
)

// MessageService reads session transcripts. Attachments on user messages are
// recovered from the run snapshot the message spawned and get presigned
// download URLs.
type MessageService struct {
	client *ent.Client
	store  storage.ObjectStore
}

// NewMessageService creates a new MessageService. store may be nil
// (attachment URLs omitted).
func NewMessageService(client *ent.Client, store storage.ObjectStore) *MessageService {
	return &MessageService{client: client, store: store}
}

// ListMessages returns a page of a session's messages in append order, each
// user message paired with its attachments.
func (s *MessageService) ListMessages(ctx context.Context, userID, sessionID string, params models.ListParams) ([]models.MessageWithFiles, error) {
	if err := checkSessionOwnership(ctx, s.client, userID, sessionID); err != nil {
		return nil, err
	}

	limit, offset := pageWindow(params)
	messages, err := s.client.AgentMessage.Query().
		Where(agentmessage.SessionIDEQ(sessionID)).
		Order(ent.Asc(agentmessage.FieldCreatedAt), ent.Asc(agentmessage.FieldID)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	runs, err := s.client.AgentRun.Query().
		Where(agentrun.SessionIDEQ(sessionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	runByMessage := make(map[int]*ent.AgentRun, len(runs))
	for _, run := range runs {
		runByMessage[run.UserMessageID] = run
	}

	out := make([]models.MessageWithFiles, 0, len(messages))
	for _, msg := range messages {
		entry := models.MessageWithFiles{
			AgentMessage: msg,
			Attachments:  []models.InputFile{},
		}
		if run, ok := runByMessage[msg.ID]; ok {
			entry.Attachments = s.attachmentsFromSnapshot(ctx, run.ConfigSnapshot)
		}
		out = append(out, entry)
	}
	return out, nil
}

// attachmentsFromSnapshot decodes the input_files frozen in a run snapshot
// and presigns download URLs for uploaded files. Presign failures degrade to
// entries without URLs.
func (s *MessageService) attachmentsFromSnapshot(ctx context.Context, snapshot map[string]any) []models.InputFile {
	raw, ok := snapshot["input_files"].([]any)
	if !ok {
		return []models.InputFile{}
	}

	files := make([]models.InputFile, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		f := models.InputFile{
			ID:          stringField(entry, "id"),
			Type:        stringField(entry, "type"),
			Name:        stringField(entry, "name"),
			Source:      stringField(entry, "source"),
			ContentType: stringField(entry, "content_type"),
		}
		if size, ok := entry["size"].(float64); ok {
			n := int64(size)
			f.Size = &n
		}
		if f.Type == models.InputFileTypeFile && s.store != nil && f.Source != "" {
			url, err := s.store.PresignGet(ctx, f.Source)
			if err != nil {
				slog.Warn("Failed to presign attachment", "key", f.Source, "error", err)
			} else {
				f.URL = url
			}
		}
		files = append(files, f)
	}
	return files
}

func stringField(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}
