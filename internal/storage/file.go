// FILE: internal/storage/file.go
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"bot-intake-be/internal/entity"
)

// FileStorage keeps the reference document in a single JSON file. Writes go
// through a temp file plus rename so a crash mid-write never leaves a
// truncated document behind.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Load(ctx context.Context) (*entity.ReferenceData, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		data := entity.DefaultReferenceData()
		if err := s.Save(ctx, data); err != nil {
			return nil, fmt.Errorf("failed to seed reference data: %w", err)
		}
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var data entity.ReferenceData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	normalize(&data)
	return &data, nil
}

func (s *FileStorage) Save(_ context.Context, data *entity.ReferenceData) error {
	raw, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal reference data: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".refdata-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

// normalize guards against a hand-edited file with null lists.
func normalize(data *entity.ReferenceData) {
	if data.Industries == nil {
		data.Industries = []string{}
	}
	if data.BotTypes == nil {
		data.BotTypes = []string{}
	}
	if data.Ratings == nil {
		data.Ratings = []int{}
	}
}
