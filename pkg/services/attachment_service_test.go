package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuyifannppp/poco-agent/pkg/models"
)

func TestAttachmentService_Upload(t *testing.T) {
	store := newFakeStore()
	service := NewAttachmentService(store)
	ctx := context.Background()

	file, err := service.Upload(ctx, testUser, "notes.txt", strings.NewReader("hello"), 5, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, models.InputFileTypeFile, file.Type)
	assert.Equal(t, "notes.txt", file.Name)
	assert.NotEmpty(t, file.ID)
	require.NotNil(t, file.Size)
	assert.Equal(t, int64(5), *file.Size)
	assert.Equal(t, "attachments/"+testUser+"/"+file.ID+"/notes.txt", file.Source)

	body, err := store.Get(ctx, file.Source)
	require.NoError(t, err)
	defer body.Close()
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	t.Run("same name never collides", func(t *testing.T) {
		again, err := service.Upload(ctx, testUser, "notes.txt", strings.NewReader("other"), 5, "text/plain")
		require.NoError(t, err)
		assert.NotEqual(t, file.Source, again.Source)
	})

	t.Run("unknown size", func(t *testing.T) {
		f, err := service.Upload(ctx, testUser, "stream.bin", strings.NewReader("x"), -1, "")
		require.NoError(t, err)
		assert.Nil(t, f.Size)
	})

	t.Run("nil store", func(t *testing.T) {
		service := NewAttachmentService(nil)
		_, err := service.Upload(ctx, testUser, "x", strings.NewReader(""), 0, "")
		assert.True(t, IsExternalServiceError(err))
	})
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report.pdf"},
		{"My Report (final).pdf", "My_Report_final_.pdf"},
		{"../../etc/passwd", "passwd"},
		{"/tmp/x.txt", "x.txt"},
		{"..", "upload.bin"},
		{".", "upload.bin"},
		{"", "upload.bin"},
		{"データ.csv", "_.csv"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), "input %q", tt.in)
	}
}
