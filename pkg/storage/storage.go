// Package storage abstracts the object store used for attachments and
// workspace exports.
package storage

import (
	"context"
	"io"
)

// ObjectStore is the object storage surface the control plane needs:
// attachment upload, download for staging, and presigned read URLs.
type ObjectStore interface {
	// Put uploads an object. size may be -1 when unknown.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error

	// Get opens an object for reading. The caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// DownloadToFile streams an object to a local file, creating parent
	// directories as needed.
	DownloadToFile(ctx context.Context, key, path string) error

	// PresignGet returns a time-limited download URL for an object.
	PresignGet(ctx context.Context, key string) (string, error)

	// List returns the keys under a prefix.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)

	// Delete removes an object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}

// ObjectInfo describes one stored object.
type ObjectInfo struct {
	Key  string
	Size int64
}
