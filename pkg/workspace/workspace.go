// Package workspace manages per-session working directories on the executor
// manager host: layout, listing and traversal-safe file access.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wuyifannppp/poco-agent/pkg/models"
)

// ErrPathEscapesRoot is returned when a requested path resolves outside the
// session workspace.
var ErrPathEscapesRoot = errors.New("path escapes workspace root")

// ErrFileNotFound is returned when a requested workspace path does not exist.
var ErrFileNotFound = errors.New("file not found in workspace")

// Manager resolves and inspects session workspaces under a fixed root.
// Layout: <root>/<user>/<session>/workspace, with staged inputs under
// workspace/inputs.
type Manager struct {
	root string
}

// NewManager creates a workspace manager rooted at root.
func NewManager(root string) *Manager {
	return &Manager{root: root}
}

// SessionDir returns the workspace directory for a session.
func (m *Manager) SessionDir(userID, sessionID string) string {
	return filepath.Join(m.root, userID, sessionID, "workspace")
}

// InputsDir returns the staged-inputs directory for a session.
func (m *Manager) InputsDir(userID, sessionID string) string {
	return filepath.Join(m.SessionDir(userID, sessionID), "inputs")
}

// EnsureInputsDir creates the staged-inputs directory.
func (m *Manager) EnsureInputsDir(userID, sessionID string) (string, error) {
	dir := m.InputsDir(userID, sessionID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create inputs directory: %w", err)
	}
	return dir, nil
}

// ListFiles returns the session workspace as a file tree. A missing
// workspace yields an empty listing, not an error.
func (m *Manager) ListFiles(userID, sessionID string) ([]models.FileNode, error) {
	dir := m.SessionDir(userID, sessionID)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return []models.FileNode{}, nil
		}
		return nil, fmt.Errorf("failed to stat workspace: %w", err)
	}
	return listDir(dir, "")
}

func listDir(dir, rel string) ([]models.FileNode, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	nodes := make([]models.FileNode, 0, len(entries))
	for _, entry := range entries {
		childRel := filepath.ToSlash(filepath.Join(rel, entry.Name()))
		node := models.FileNode{
			Name: entry.Name(),
			Path: childRel,
		}
		if entry.IsDir() {
			node.Type = "dir"
			children, err := listDir(filepath.Join(dir, entry.Name()), childRel)
			if err != nil {
				return nil, err
			}
			node.Children = children
		} else {
			node.Type = "file"
			if info, err := entry.Info(); err == nil {
				node.Size = info.Size()
			}
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// ResolveFile maps a client-supplied relative path to an absolute path inside
// the session workspace, rejecting traversal.
func (m *Manager) ResolveFile(userID, sessionID, relPath string) (string, error) {
	rel, err := NormalizeRelPath(relPath)
	if err != nil {
		return "", err
	}

	abs := filepath.Join(m.SessionDir(userID, sessionID), filepath.FromSlash(rel))
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrFileNotFound
		}
		return "", fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return "", ErrFileNotFound
	}
	return abs, nil
}

// NormalizeRelPath validates a relative path segment by segment: empty, "."
// and ".." segments are rejected, as is any absolute path.
func NormalizeRelPath(p string) (string, error) {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "", ErrPathEscapesRoot
	}
	segments := strings.Split(p, "/")
	clean := make([]string, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" || seg == "." || seg == ".." {
			return "", ErrPathEscapesRoot
		}
		clean = append(clean, seg)
	}
	return strings.Join(clean, "/"), nil
}
