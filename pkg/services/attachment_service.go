package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"

	"github.com/wuyifannppp/poco-agent/pkg/models"
	"github.com/wuyifannppp/poco-agent/pkg/storage"
)

// unsafeFilenameChars matches every character run not allowed in stored
// attachment names.
var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// fallbackFilename is used when sanitization leaves nothing usable.
const fallbackFilename = "upload.bin"

// AttachmentService uploads user attachments to the object store under
// per-upload unique keys.
type AttachmentService struct {
	store storage.ObjectStore
}

// NewAttachmentService creates a new AttachmentService
func NewAttachmentService(store storage.ObjectStore) *AttachmentService {
	return &AttachmentService{store: store}
}

// Upload stores one attachment and returns its descriptor. The key embeds a
// fresh UUID so same-named uploads never collide.
func (s *AttachmentService) Upload(ctx context.Context, userID, filename string, body io.Reader, size int64, contentType string) (*models.InputFile, error) {
	if s.store == nil {
		return nil, NewExternalServiceError("storage", fmt.Errorf("object store not configured"))
	}

	id := uuid.New().String()
	name := SanitizeFilename(filename)
	key := fmt.Sprintf("attachments/%s/%s/%s", userID, id, name)

	if err := s.store.Put(ctx, key, body, size, contentType); err != nil {
		return nil, NewExternalServiceError("storage", err)
	}

	slog.Info("Attachment uploaded", "user_id", userID, "key", key, "size", size)

	f := &models.InputFile{
		ID:          id,
		Type:        models.InputFileTypeFile,
		Name:        name,
		Source:      key,
		ContentType: contentType,
	}
	if size >= 0 {
		f.Size = &size
	}
	return f, nil
}

// SanitizeFilename reduces a client-supplied filename to a safe basename:
// path components are stripped and disallowed character runs collapse to an
// underscore.
func SanitizeFilename(name string) string {
	base := filepath.Base(name)
	if base == "." || base == ".." || base == "/" {
		return fallbackFilename
	}
	clean := unsafeFilenameChars.ReplaceAllString(base, "_")
	if clean == "" || clean == "." || clean == ".." {
		return fallbackFilename
	}
	return clean
}
