package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileKV persists each key as <baseDir>/<key>.json, written atomically
// with a temp file + rename.
type FileKV struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileKV creates a FileKV rooted at baseDir. The directory is created on first write.
func NewFileKV(baseDir string) *FileKV {
	return &FileKV{baseDir: baseDir}
}

// Dir returns the base directory.
func (f *FileKV) Dir() string { return f.baseDir }

// FilePath returns the file holding key.
func (f *FileKV) FilePath(key string) string {
	return filepath.Join(f.baseDir, key+".json")
}

// Get reads the file for key.
func (f *FileKV) Get(_ context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.FilePath(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}

// Set atomically rewrites the file for key.
func (f *FileKV) Set(_ context.Context, key string, value []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(f.baseDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	path := f.FilePath(key)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("write %s tmp: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", key, err)
	}
	return nil
}

func (f *FileKV) Close() error { return nil }
