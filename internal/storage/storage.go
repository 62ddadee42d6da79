// Package storage provides the file stores uploaded company logos are written to.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"jobportal-backend/internal/config"
	"jobportal-backend/internal/jobpost"
)

// ErrNotExist is returned by Open when the file is missing
var ErrNotExist = errors.New("file does not exist")

// FileInfo is one listed file
type FileInfo struct {
	Name    string
	ModTime time.Time
}

// Names returns the names of files in listing order
func Names(files []FileInfo) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names
}

// Store is a jobpost.FileStore that can also read, list and remove what it holds
type Store interface {
	jobpost.FileStore
	// Open streams a stored file. The size is -1 when the backend does not report it.
	Open(ctx context.Context, dir, filename string) (io.ReadCloser, int64, error)
	// List returns the files directly under dir with their last modification time
	List(ctx context.Context, dir string) ([]FileInfo, error)
	Remove(ctx context.Context, dir, filename string) error
}

// New selects the backend named by cfg.Type
func New(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch strings.ToLower(cfg.Type) {
	case "", "local":
		return NewLocalStorage(cfg.BasePath), nil
	case "gcs":
		return NewCloudStorageClient(ctx, cfg.Bucket, cfg.BasePath)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}

// objectKey joins prefix, dir and filename into a slash separated key
func objectKey(prefix, dir, filename string) string {
	return strings.TrimPrefix(path.Join(prefix, dir, filename), "/")
}

// dirPrefix is the listing prefix of dir, always ending in a slash
func dirPrefix(prefix, dir string) string {
	p := strings.TrimPrefix(path.Join(prefix, dir), "/")
	if p == "" || p == "." {
		return ""
	}
	return p + "/"
}

func copyAndClose(w io.WriteCloser, r io.Reader) error {
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}
	return nil
}
