// FILE: internal/storage/postgres.go
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bot-intake-be/internal/entity"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// referenceDocument is the single-row table holding the serialized document.
// The fixed primary key makes Save an upsert of one row, which preserves the
// whole-structure overwrite contract.
type referenceDocument struct {
	Id       int            `gorm:"primaryKey"`
	Document datatypes.JSON `gorm:"not null"`
}

func (referenceDocument) TableName() string {
	return "reference_documents"
}

const referenceDocumentId = 1

// PostgresStorage persists the reference document through GORM.
type PostgresStorage struct {
	db *gorm.DB
}

func NewPostgresStorage(db *gorm.DB) (*PostgresStorage, error) {
	if err := db.AutoMigrate(&referenceDocument{}); err != nil {
		return nil, fmt.Errorf("failed to migrate reference_documents: %w", err)
	}
	return &PostgresStorage{db: db}, nil
}

func (s *PostgresStorage) Load(ctx context.Context) (*entity.ReferenceData, error) {
	var row referenceDocument
	err := s.db.WithContext(ctx).First(&row, referenceDocumentId).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		data := entity.DefaultReferenceData()
		if err := s.Save(ctx, data); err != nil {
			return nil, fmt.Errorf("failed to seed reference data: %w", err)
		}
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load reference document: %w", err)
	}

	var data entity.ReferenceData
	if err := json.Unmarshal(row.Document, &data); err != nil {
		return nil, fmt.Errorf("failed to parse reference document: %w", err)
	}
	normalize(&data)
	return &data, nil
}

func (s *PostgresStorage) Save(ctx context.Context, data *entity.ReferenceData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal reference data: %w", err)
	}

	row := referenceDocument{Id: referenceDocumentId, Document: raw}
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("failed to save reference document: %w", err)
	}
	return nil
}
