package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage writes files below a directory on disk
type LocalStorage struct {
	BasePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath
func NewLocalStorage(basePath string) *LocalStorage {
	if basePath == "" {
		basePath = "photos"
	}
	return &LocalStorage{BasePath: basePath}
}

func (s *LocalStorage) dir(dir string) string {
	return filepath.Join(s.BasePath, filepath.FromSlash(dir))
}

// SaveFile creates dir if needed and replaces any existing file with the same name
func (s *LocalStorage) SaveFile(ctx context.Context, dir, filename string, content io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := s.dir(dir)
	if err := os.MkdirAll(target, 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", target, err)
	}

	// #nosec G304 -- filename is reduced to its base name by the caller
	f, err := os.OpenFile(filepath.Join(target, filepath.Base(filename)), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o640)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	return copyAndClose(f, content)
}

func (s *LocalStorage) Open(ctx context.Context, dir, filename string) (io.ReadCloser, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	// #nosec G304 -- filename is reduced to its base name
	f, err := os.Open(filepath.Join(s.dir(dir), filepath.Base(filename)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, 0, fmt.Errorf("%w: %s/%s", ErrNotExist, dir, filename)
	}
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}

func (s *LocalStorage) List(ctx context.Context, dir string) ([]FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir(dir))
	if errors.Is(err, os.ErrNotExist) {
		return []FileInfo{}, nil
	}
	if err != nil {
		return nil, err
	}

	files := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		files = append(files, FileInfo{Name: e.Name(), ModTime: info.ModTime()})
	}
	return files, nil
}

func (s *LocalStorage) Remove(ctx context.Context, dir, filename string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(s.dir(dir), filepath.Base(filename)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
