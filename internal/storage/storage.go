// Package storage provides durable backends for the shared reference data.
// Every backend persists the document wholesale: Save overwrites the entire
// structure, never patches it.
package storage

import (
	"context"

	"bot-intake-be/internal/entity"
)

// ReferenceStorage is the durable-storage collaborator. Load returns seeded
// defaults (and writes them back) when no prior state exists, so the lists
// are non-empty after initial load.
type ReferenceStorage interface {
	Load(ctx context.Context) (*entity.ReferenceData, error)
	Save(ctx context.Context, data *entity.ReferenceData) error
}
