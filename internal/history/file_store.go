package history

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// FileStore persists history as a JSON array, rewritten atomically
// (temp file + rename) on every save.
type FileStore struct {
	path      string
	retention time.Duration
	now       func() time.Time
}

func NewFileStore(path string, retention time.Duration) *FileStore {
	return &FileStore{path: path, retention: retention, now: time.Now}
}

// Load reads the history file. A missing, empty or malformed file is an
// empty history, never a startup error. Expired entries are dropped on the
// way in.
func (fs *FileStore) Load(ctx context.Context) ([]Entry, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Warn("malformed history file, starting with empty history",
			"path", fs.path, "error", err)
		return nil, nil
	}

	return Purge(entries, fs.retention, fs.now()), nil
}

// Save purges expired entries and rewrites the file atomically.
func (fs *FileStore) Save(ctx context.Context, entries []Entry) error {
	entries = Purge(entries, fs.retention, fs.now())

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fs.path), ".history-*.json")
	if err != nil {
		return fmt.Errorf("create temp history file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write history file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close history file: %w", err)
	}
	if err := os.Rename(tmp.Name(), fs.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace history file: %w", err)
	}
	return nil
}
