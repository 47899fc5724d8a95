package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"evocoffee/internal/store"
)

// FileStore keeps the document as an indented JSON file on disk, the
// simplest durable backend and the default.
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (f *FileStore) Read(_ context.Context) (store.Document, error) {
	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return store.Document{}, nil
	}
	if err != nil {
		return store.Document{}, fmt.Errorf("read state file: %w", err)
	}
	// Malformed content degrades to the zero document rather than
	// blocking startup.
	return store.ParseDocument(raw), nil
}

func (f *FileStore) Write(_ context.Context, doc store.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	// Write-then-rename keeps the previous document intact if the
	// process dies mid-write.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

func (f *FileStore) Close() error { return nil }
