package stager

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuyifannppp/poco-agent/pkg/services"
	"github.com/wuyifannppp/poco-agent/pkg/storage"
	"github.com/wuyifannppp/poco-agent/pkg/workspace"
)

// fakeStore implements ObjectStore for stager tests; only DownloadToFile is
// exercised.
type fakeStore struct {
	downloads map[string]string // key -> path
	failKey   string
}

func (f *fakeStore) DownloadToFile(_ context.Context, key, path string) error {
	if key == f.failKey {
		return services.NewExternalServiceError("storage", fmt.Errorf("object %s missing", key))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if f.downloads == nil {
		f.downloads = map[string]string{}
	}
	f.downloads[key] = path
	return os.WriteFile(path, []byte("content of "+key), 0o644)
}

func (f *fakeStore) Put(context.Context, string, io.Reader, int64, string) error { return nil }
func (f *fakeStore) Get(context.Context, string) (io.ReadCloser, error)          { return nil, nil }
func (f *fakeStore) PresignGet(context.Context, string) (string, error)          { return "", nil }
func (f *fakeStore) List(context.Context, string) ([]storage.ObjectInfo, error)  { return nil, nil }
func (f *fakeStore) Delete(context.Context, string) error                        { return nil }

// fakeCloner records clone calls and creates the destination directory.
type fakeCloner struct {
	calls []cloneCall
	err   error
}

type cloneCall struct {
	url, branch, dest string
}

func (f *fakeCloner) Clone(_ context.Context, url, branch, dest string) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, cloneCall{url, branch, dest})
	return os.MkdirAll(dest, 0o755)
}

func newTestStager(t *testing.T, store storage.ObjectStore, git GitCloner) (*Stager, *workspace.Manager) {
	t.Helper()
	ws := workspace.NewManager(t.TempDir())
	return New(ws, store, git), ws
}

func TestStager_Stage(t *testing.T) {
	ctx := context.Background()

	t.Run("stages file entries and rewrites descriptors", func(t *testing.T) {
		store := &fakeStore{}
		stager, ws := newTestStager(t, store, &fakeCloner{})

		staged, err := stager.Stage(ctx, "u1", "s1", []any{
			map[string]any{
				"type":   "file",
				"name":   "data.csv",
				"source": "attachments/u1/abc/data.csv",
			},
			map[string]any{
				"type":        "file",
				"source":      "attachments/u1/def/archive.zip",
				"target_path": "bundles/archive.zip",
			},
		})
		require.NoError(t, err)
		require.Len(t, staged, 2)

		assert.Equal(t, "/inputs/data.csv", staged[0]["path"])
		assert.Equal(t, "data.csv", staged[0]["name"])
		assert.Equal(t, "/inputs/bundles/archive.zip", staged[1]["path"])

		inputs := ws.InputsDir("u1", "s1")
		assert.FileExists(t, filepath.Join(inputs, "data.csv"))
		assert.FileExists(t, filepath.Join(inputs, "bundles", "archive.zip"))
	})

	t.Run("target falls back to key basename", func(t *testing.T) {
		store := &fakeStore{}
		stager, _ := newTestStager(t, store, &fakeCloner{})

		staged, err := stager.Stage(ctx, "u1", "s1", []any{
			map[string]any{"type": "file", "source": "attachments/u1/xyz/report.pdf"},
		})
		require.NoError(t, err)
		require.Len(t, staged, 1)
		assert.Equal(t, "/inputs/report.pdf", staged[0]["path"])
		assert.Equal(t, "report.pdf", staged[0]["name"])
	})

	t.Run("unsafe target paths are dropped", func(t *testing.T) {
		store := &fakeStore{}
		stager, _ := newTestStager(t, store, &fakeCloner{})

		staged, err := stager.Stage(ctx, "u1", "s1", []any{
			map[string]any{"type": "file", "source": "k1", "target_path": "../../escape.txt"},
			map[string]any{"type": "file", "source": "k2", "target_path": "ok.txt"},
		})
		require.NoError(t, err)
		require.Len(t, staged, 1)
		assert.Equal(t, "/inputs/ok.txt", staged[0]["path"])
		assert.NotContains(t, store.downloads, "k1")
	})

	t.Run("clones url entries with default target", func(t *testing.T) {
		cloner := &fakeCloner{}
		stager, ws := newTestStager(t, &fakeStore{}, cloner)

		staged, err := stager.Stage(ctx, "u1", "s1", []any{
			map[string]any{
				"type": "url",
				"url":  "https://github.com/acme/widgets/tree/dev",
			},
		})
		require.NoError(t, err)
		require.Len(t, staged, 1)
		assert.Equal(t, "/inputs/repo", staged[0]["path"])
		assert.Equal(t, "repo", staged[0]["name"])

		require.Len(t, cloner.calls, 1)
		assert.Equal(t, "https://github.com/acme/widgets.git", cloner.calls[0].url)
		assert.Equal(t, "dev", cloner.calls[0].branch)
		assert.Equal(t, filepath.Join(ws.InputsDir("u1", "s1"), "repo"), cloner.calls[0].dest)
	})

	t.Run("non-github urls abort the stage", func(t *testing.T) {
		cloner := &fakeCloner{}
		stager, _ := newTestStager(t, &fakeStore{}, cloner)

		_, err := stager.Stage(ctx, "u1", "s1", []any{
			map[string]any{"type": "url", "url": "https://gitlab.com/acme/widgets"},
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
		assert.Empty(t, cloner.calls)
	})

	t.Run("malformed repository urls abort the stage", func(t *testing.T) {
		stager, _ := newTestStager(t, &fakeStore{}, &fakeCloner{})

		_, err := stager.Stage(ctx, "u1", "s1", []any{
			map[string]any{"type": "url", "url": "https://github.com/acme"},
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("malformed and unknown entries are dropped", func(t *testing.T) {
		stager, _ := newTestStager(t, &fakeStore{}, &fakeCloner{})

		staged, err := stager.Stage(ctx, "u1", "s1", []any{
			"not a map",
			map[string]any{"type": "ftp", "source": "x"},
			map[string]any{"type": "file"}, // no source
		})
		require.NoError(t, err)
		assert.Empty(t, staged)
	})

	t.Run("download failure aborts the stage", func(t *testing.T) {
		store := &fakeStore{failKey: "gone"}
		stager, _ := newTestStager(t, store, &fakeCloner{})

		_, err := stager.Stage(ctx, "u1", "s1", []any{
			map[string]any{"type": "file", "source": "gone"},
		})
		require.Error(t, err)
		assert.True(t, services.IsExternalServiceError(err))
	})

	t.Run("clone failure aborts the stage", func(t *testing.T) {
		cloner := &fakeCloner{err: services.NewExternalServiceError("github", fmt.Errorf("auth required"))}
		stager, _ := newTestStager(t, &fakeStore{}, cloner)

		_, err := stager.Stage(ctx, "u1", "s1", []any{
			map[string]any{"type": "url", "url": "https://github.com/acme/private"},
		})
		require.Error(t, err)
		assert.True(t, services.IsExternalServiceError(err))
	})
}
