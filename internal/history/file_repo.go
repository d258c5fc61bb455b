package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"
)

// FileRepository persists the full user mapping as a single JSON file.
// Writes go to a temp file in the same directory followed by a rename, so a
// crash mid-write never leaves a truncated file behind.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) (*FileRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure dir: %w", err)
	}
	return &FileRepository{path: path}, nil
}

func (r *FileRepository) Load() (map[string]Record, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	if len(data) == 0 {
		return map[string]Record{}, nil
	}
	var users map[string]Record
	if err := json.Unmarshal(data, &users); err != nil {
		// Quarantine the bad file and start fresh rather than refusing to boot.
		quarantine := fmt.Sprintf("%s.corrupt-%s", r.path, time.Now().UTC().Format("20060102T150405"))
		if renameErr := os.Rename(r.path, quarantine); renameErr != nil {
			return nil, fmt.Errorf("malformed history at %s and quarantine failed: %v (parse error: %w)", r.path, renameErr, err)
		}
		log.Printf("malformed history file quarantined to %s: %v", quarantine, err)
		return map[string]Record{}, nil
	}
	return users, nil
}

func (r *FileRepository) Save(users map[string]Record) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".history-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
