// Package stager materializes run input files into a session workspace:
// uploaded attachments are downloaded from the object store, repository URLs
// are shallow-cloned. Descriptors come back rewritten with the staged path.
package stager

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/wuyifannppp/poco-agent/pkg/services"
	"github.com/wuyifannppp/poco-agent/pkg/storage"
	"github.com/wuyifannppp/poco-agent/pkg/workspace"
)

// Stager stages input file entries under <workspace>/inputs.
type Stager struct {
	workspaces *workspace.Manager
	store      storage.ObjectStore
	git        GitCloner
}

// GitCloner performs shallow clones. Swappable for tests.
type GitCloner interface {
	Clone(ctx context.Context, url, branch, dest string) error
}

// New creates a Stager. store may be nil when only URL entries are expected.
func New(workspaces *workspace.Manager, store storage.ObjectStore, git GitCloner) *Stager {
	return &Stager{workspaces: workspaces, store: store, git: git}
}

// Stage materializes every entry and returns rewritten descriptors whose
// path points at the staged location. Entries with invalid target paths are
// dropped with a warning; unsupported repository URLs, download failures and
// clone failures abort the whole stage.
// Re-running with the same list reproduces the same tree: files are
// overwritten and repositories removed-and-recloned.
func (s *Stager) Stage(ctx context.Context, userID, sessionID string, entries []any) ([]map[string]any, error) {
	inputsDir, err := s.workspaces.EnsureInputsDir(userID, sessionID)
	if err != nil {
		return nil, err
	}

	staged := make([]map[string]any, 0, len(entries))
	for _, item := range entries {
		entry, ok := item.(map[string]any)
		if !ok {
			slog.Warn("Dropping malformed input entry", "session_id", sessionID)
			continue
		}

		var out map[string]any
		switch entryKind(entry) {
		case "file":
			out, err = s.stageFile(ctx, inputsDir, entry)
		case "url":
			out, err = s.stageURL(ctx, inputsDir, entry)
		default:
			slog.Warn("Dropping input entry with unknown type",
				"session_id", sessionID, "type", entryKind(entry))
			continue
		}
		if err != nil {
			return nil, err
		}
		if out != nil {
			staged = append(staged, out)
		}
	}
	return staged, nil
}

// stageFile downloads an object-store key to its target path. Entries whose
// target path is invalid are dropped, not fatal.
func (s *Stager) stageFile(ctx context.Context, inputsDir string, entry map[string]any) (map[string]any, error) {
	source, _ := entry["source"].(string)
	if source == "" {
		slog.Warn("Dropping file entry without source")
		return nil, nil
	}

	rel, err := workspace.NormalizeRelPath(fileTargetPath(entry, source))
	if err != nil {
		slog.Warn("Dropping file entry with unsafe path", "source", source, "error", err)
		return nil, nil
	}

	dest := path.Join(inputsDir, rel)
	if err := s.store.DownloadToFile(ctx, source, dest); err != nil {
		return nil, fmt.Errorf("failed to stage file %s: %w", source, err)
	}

	slog.Info("Staged input file", "source", source, "path", rel)
	return rewriteEntry(entry, rel), nil
}

// stageURL shallow-clones a GitHub repository to its target path.
func (s *Stager) stageURL(ctx context.Context, inputsDir string, entry map[string]any) (map[string]any, error) {
	source := stringOr(entry, "url", "source")
	repo, err := ParseGitHubURL(source)
	if err != nil {
		return nil, services.NewValidationError("input_files",
			fmt.Sprintf("unsupported repository url %q: %v", source, err))
	}

	target := "repo"
	if t := stringOr(entry, "target_path", "path"); t != "" {
		target = t
	}
	rel, err := workspace.NormalizeRelPath(target)
	if err != nil {
		slog.Warn("Dropping URL entry with unsafe path", "source", source, "error", err)
		return nil, nil
	}

	dest := path.Join(inputsDir, rel)
	if err := s.git.Clone(ctx, repo.CloneURL, repo.Branch, dest); err != nil {
		return nil, err
	}

	slog.Info("Staged repository", "url", repo.CloneURL, "branch", repo.Branch, "path", rel)
	return rewriteEntry(entry, rel), nil
}

// fileTargetPath picks the relative target for a file entry: explicit
// target_path/path first, then name, then the key's basename.
func fileTargetPath(entry map[string]any, source string) string {
	if t := stringOr(entry, "target_path", "path"); t != "" {
		return t
	}
	if name, _ := entry["name"].(string); name != "" {
		return name
	}
	return path.Base(source)
}

// rewriteEntry copies the descriptor and sets name and the staged path.
func rewriteEntry(entry map[string]any, rel string) map[string]any {
	out := make(map[string]any, len(entry)+1)
	for k, v := range entry {
		out[k] = v
	}
	if name, _ := out["name"].(string); name == "" {
		out["name"] = path.Base(rel)
	}
	out["path"] = "/inputs/" + rel
	return out
}

// entryKind returns the lowercased type discriminator, accepting both the
// type and kind field names.
func entryKind(entry map[string]any) string {
	if t, _ := entry["type"].(string); t != "" {
		return strings.ToLower(t)
	}
	if k, _ := entry["kind"].(string); k != "" {
		return strings.ToLower(k)
	}
	return ""
}

func stringOr(entry map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, _ := entry[key].(string); v != "" {
			return v
		}
	}
	return ""
}
