package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/marketflowhq/marketflow/internal/models"
)

// FileSnapshot persists the collection as a single JSON file on disk. The
// default backend.
type FileSnapshot struct {
	path string
}

// NewFileSnapshot creates a file-backed snapshot at the given path.
func NewFileSnapshot(path string) *FileSnapshot {
	return &FileSnapshot{path: path}
}

// Load reads the snapshot file. A missing file is an empty collection.
func (fs *FileSnapshot) Load(ctx context.Context) ([]models.Campaign, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var campaigns []models.Campaign
	if err := json.Unmarshal(data, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// Save rewrites the snapshot file with the full collection.
func (fs *FileSnapshot) Save(ctx context.Context, campaigns []models.Campaign) error {
	data, err := json.Marshal(campaigns)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(fs.path, data, 0o644)
}
