package models

// InputFile describes a user-provided input attachment: either an uploaded
// file referenced by its object-store key, or a public GitHub repository URL.
type InputFile struct {
	ID          string `json:"id,omitempty"`
	Type        string `json:"type"` // "file" or "url"
	Name        string `json:"name"`
	Source      string `json:"source"`
	Size        *int64 `json:"size,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Path        string `json:"path,omitempty"`
	URL         string `json:"url,omitempty"` // presigned download URL, read paths only
}

// InputFile type discriminators.
const (
	InputFileTypeFile = "file"
	InputFileTypeURL  = "url"
)
