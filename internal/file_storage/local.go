package filestorage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes variants under a root uploads directory served
// statically by the API server.
type LocalStorage struct {
	root    string
	baseURL string
}

var _ Storage = (*LocalStorage)(nil)

func NewLocalStorage(root string, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	return &LocalStorage{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (l *LocalStorage) Save(_ context.Context, path string, data []byte, _ string) (string, error) {
	fullPath := filepath.Join(l.root, filepath.FromSlash(path))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create variant directory: %w", err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write variant file: %w", err)
	}

	return l.baseURL + "/" + path, nil
}

func (l *LocalStorage) Remove(_ context.Context, path string) error {
	fullPath := filepath.Join(l.root, filepath.FromSlash(path))

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove variant file: %w", err)
	}

	return nil
}
