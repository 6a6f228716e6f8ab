package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRelPath(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		tests := map[string]string{
			"inputs/data.csv":        "inputs/data.csv",
			"/inputs/data.csv":       "inputs/data.csv",
			"inputs\\repo\\main.go":  "inputs/repo/main.go",
			"a/b/c":                  "a/b/c",
			"file.txt":               "file.txt",
		}
		for in, want := range tests {
			got, err := NormalizeRelPath(in)
			require.NoError(t, err, "input %q", in)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		tests := []string{
			"",
			"/",
			"..",
			"../etc/passwd",
			"a/../b",
			"a/./b",
			"a//b",
			"..\\escape",
		}
		for _, in := range tests {
			_, err := NormalizeRelPath(in)
			assert.ErrorIs(t, err, ErrPathEscapesRoot, "input %q", in)
		}
	})
}

func TestManager_ListFiles(t *testing.T) {
	m := NewManager(t.TempDir())

	t.Run("missing workspace is empty", func(t *testing.T) {
		nodes, err := m.ListFiles("u1", "nope")
		require.NoError(t, err)
		assert.Empty(t, nodes)
	})

	t.Run("lists tree sorted", func(t *testing.T) {
		dir, err := m.EnsureInputsDir("u1", "s1")
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("bb"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(m.SessionDir("u1", "s1"), "out.log"), []byte("x"), 0o644))

		nodes, err := m.ListFiles("u1", "s1")
		require.NoError(t, err)
		require.Len(t, nodes, 2)

		assert.Equal(t, "inputs", nodes[0].Name)
		assert.Equal(t, "dir", nodes[0].Type)
		require.Len(t, nodes[0].Children, 2)
		assert.Equal(t, "a.txt", nodes[0].Children[0].Name)
		assert.Equal(t, "inputs/a.txt", nodes[0].Children[0].Path)
		assert.Equal(t, int64(1), nodes[0].Children[0].Size)
		assert.Equal(t, "b.txt", nodes[0].Children[1].Name)

		assert.Equal(t, "out.log", nodes[1].Name)
		assert.Equal(t, "file", nodes[1].Type)
	})
}

func TestManager_ResolveFile(t *testing.T) {
	m := NewManager(t.TempDir())
	dir, err := m.EnsureInputsDir("u1", "s1")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.csv"), []byte("1,2"), 0o644))

	t.Run("resolves existing file", func(t *testing.T) {
		abs, err := m.ResolveFile("u1", "s1", "inputs/data.csv")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "data.csv"), abs)
	})

	t.Run("directory is not a file", func(t *testing.T) {
		_, err := m.ResolveFile("u1", "s1", "inputs")
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := m.ResolveFile("u1", "s1", "inputs/nope.csv")
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("traversal rejected", func(t *testing.T) {
		_, err := m.ResolveFile("u1", "s1", "../s2/secret.txt")
		assert.ErrorIs(t, err, ErrPathEscapesRoot)
	})
}
