package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MrSnakeDoc/alumnet/internal/store"
	"github.com/MrSnakeDoc/alumnet/internal/utils"
)

// Backend keeps one <collection>.json file per collection under a directory.
type Backend struct {
	dir string
}

// New returns a file backend rooted at dir, creating the directory if needed.
func New(dir string) (*Backend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Backend{dir: dir}, nil
}

func (b *Backend) Name() string { return "file" }

// Path returns the file backing a collection.
func (b *Backend) Path(c store.Collection) string {
	return filepath.Join(b.dir, string(c)+".json")
}

func (b *Backend) Load(_ context.Context, c store.Collection) ([]byte, error) {
	data, err := os.ReadFile(b.Path(c))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", b.Path(c), store.ErrCollectionMissing)
		}
		return nil, fmt.Errorf("failed to read %s: %w", b.Path(c), err)
	}
	return data, nil
}

// Save replaces the collection file atomically (temp file + rename).
func (b *Backend) Save(_ context.Context, c store.Collection, data []byte) error {
	tmp, err := os.CreateTemp(b.dir, "."+string(c)+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		utils.Close(tmp)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		utils.Close(tmp)
		return fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, b.Path(c)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", b.Path(c), err)
	}
	return nil
}

func (b *Backend) Ensure(_ context.Context, c store.Collection) (bool, error) {
	_, err := os.Stat(b.Path(c))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := os.WriteFile(b.Path(c), []byte("[]\n"), 0o644); err != nil {
		return false, fmt.Errorf("failed to seed %s: %w", b.Path(c), err)
	}
	return true, nil
}

func (b *Backend) Ping(_ context.Context) error {
	info, err := os.Stat(b.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", b.dir)
	}
	return nil
}

func (b *Backend) Close() error { return nil }
