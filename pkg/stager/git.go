package stager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strings"

	"github.com/wuyifannppp/poco-agent/pkg/services"
)

// ErrUnsupportedRepoURL is returned for URLs that are not public GitHub
// repository links.
var ErrUnsupportedRepoURL = errors.New("unsupported repository URL")

// GitHubRepo is a parsed repository reference.
type GitHubRepo struct {
	Owner    string
	Name     string
	Branch   string
	CloneURL string
}

// ParseGitHubURL validates and parses a repository URL. Only http(s) links to
// github.com are accepted, in the form
// /{owner}/{repo}(.git)?(/tree/{branch})?.
func ParseGitHubURL(raw string) (*GitHubRepo, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedRepoURL, raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedRepoURL, u.Scheme)
	}
	host := strings.ToLower(u.Host)
	if host != "github.com" && host != "www.github.com" {
		return nil, fmt.Errorf("%w: host %q", ErrUnsupportedRepoURL, u.Host)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return nil, fmt.Errorf("%w: path %q", ErrUnsupportedRepoURL, u.Path)
	}

	repo := &GitHubRepo{
		Owner: segments[0],
		Name:  strings.TrimSuffix(segments[1], ".git"),
	}
	if repo.Name == "" {
		return nil, fmt.Errorf("%w: path %q", ErrUnsupportedRepoURL, u.Path)
	}
	if len(segments) >= 4 && segments[2] == "tree" {
		repo.Branch = strings.Join(segments[3:], "/")
	} else if len(segments) > 2 {
		return nil, fmt.Errorf("%w: path %q", ErrUnsupportedRepoURL, u.Path)
	}

	repo.CloneURL = fmt.Sprintf("https://github.com/%s/%s.git", repo.Owner, repo.Name)
	return repo, nil
}

// SubprocessCloner clones with the git binary. Interactive credential
// prompts are disabled so clones of private repositories fail fast instead
// of hanging.
type SubprocessCloner struct{}

// Clone shallow-clones url into dest, removing any existing destination
// first so restaging is deterministic.
func (SubprocessCloner) Clone(ctx context.Context, cloneURL, branch, dest string) error {
	if err := os.RemoveAll(dest); err != nil {
		return fmt.Errorf("failed to clear clone destination %s: %w", dest, err)
	}

	args := []string{"clone", "--depth", "1", "--single-branch"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, cloneURL, dest)

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return services.NewExternalServiceError("github",
			fmt.Errorf("git clone %s failed: %s", cloneURL, strings.TrimSpace(stderr.String())))
	}
	return nil
}
