package stager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGitHubURL(t *testing.T) {
	t.Run("accepted forms", func(t *testing.T) {
		tests := []struct {
			name   string
			in     string
			owner  string
			repo   string
			branch string
		}{
			{"plain", "https://github.com/acme/widgets", "acme", "widgets", ""},
			{"dot git suffix", "https://github.com/acme/widgets.git", "acme", "widgets", ""},
			{"www host", "https://www.github.com/acme/widgets", "acme", "widgets", ""},
			{"http scheme", "http://github.com/acme/widgets", "acme", "widgets", ""},
			{"branch", "https://github.com/acme/widgets/tree/main", "acme", "widgets", "main"},
			{"branch with slashes", "https://github.com/acme/widgets/tree/feature/fast/path", "acme", "widgets", "feature/fast/path"},
			{"surrounding whitespace", "  https://github.com/acme/widgets  ", "acme", "widgets", ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo, err := ParseGitHubURL(tt.in)
				require.NoError(t, err)
				assert.Equal(t, tt.owner, repo.Owner)
				assert.Equal(t, tt.repo, repo.Name)
				assert.Equal(t, tt.branch, repo.Branch)
				assert.Equal(t, "https://github.com/"+tt.owner+"/"+tt.repo+".git", repo.CloneURL)
			})
		}
	})

	t.Run("rejected forms", func(t *testing.T) {
		tests := []string{
			"https://gitlab.com/acme/widgets",
			"https://github.com.evil.test/acme/widgets",
			"ssh://git@github.com/acme/widgets",
			"git@github.com:acme/widgets.git",
			"https://github.com/acme",
			"https://github.com/",
			"https://github.com/acme/widgets/pull/42",
			"https://github.com/acme/widgets/blob/main/README.md",
			"",
		}
		for _, in := range tests {
			_, err := ParseGitHubURL(in)
			assert.ErrorIs(t, err, ErrUnsupportedRepoURL, "input %q", in)
		}
	})
}
