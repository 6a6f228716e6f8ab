package models

// FileNode is one entry in a session workspace file listing.
type FileNode struct {
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	Type     string     `json:"type"` // "file" or "dir"
	Size     int64      `json:"size,omitempty"`
	URL      string     `json:"url,omitempty"`
	Children []FileNode `json:"children,omitempty"`
}

// UsageSummary aggregates token usage over a session.
type UsageSummary struct {
	InputTokens      int `json:"input_tokens"`
	OutputTokens     int `json:"output_tokens"`
	CacheReadTokens  int `json:"cache_read_tokens"`
	CacheWriteTokens int `json:"cache_write_tokens"`
	Entries          int `json:"entries"`
}

// TaskConfig is the resolved, executable configuration forwarded to an
// executor with a task.
type TaskConfig struct {
	RepoURL    string         `json:"repo_url,omitempty"`
	GitBranch  string         `json:"git_branch,omitempty"`
	McpConfig  map[string]any `json:"mcp_config"`
	SkillFiles map[string]any `json:"skill_files"`
	InputFiles []InputFile    `json:"input_files,omitempty"`
}

// ProjectCreateRequest creates a project.
type ProjectCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

// ProjectUpdateRequest renames a project.
type ProjectUpdateRequest struct {
	Name *string `json:"name,omitempty"`
}

// EnvVarUpsertRequest sets one user env var.
type EnvVarUpsertRequest struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// ResolvePresetsRequest asks the backend internal surface to expand preset
// ids into full configuration for a user.
type ResolvePresetsRequest struct {
	UserID string `json:"user_id" binding:"required"`
	IDs    []int  `json:"ids" binding:"required"`
}
