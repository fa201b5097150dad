// FILE: internal/storage/redis.go
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bot-intake-be/internal/entity"

	"github.com/redis/go-redis/v9"
)

const referenceDataKey = "intake:reference_data"

// RedisStorage keeps the reference document under a single key. SET replaces
// the value atomically, matching the overwrite contract.
type RedisStorage struct {
	rdb *redis.Client
}

func NewRedisStorage(rdb *redis.Client) *RedisStorage {
	return &RedisStorage{rdb: rdb}
}

func (s *RedisStorage) Load(ctx context.Context) (*entity.ReferenceData, error) {
	raw, err := s.rdb.Get(ctx, referenceDataKey).Bytes()
	if errors.Is(err, redis.Nil) {
		data := entity.DefaultReferenceData()
		if err := s.Save(ctx, data); err != nil {
			return nil, fmt.Errorf("failed to seed reference data: %w", err)
		}
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load reference data from redis: %w", err)
	}

	var data entity.ReferenceData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse reference data from redis: %w", err)
	}
	normalize(&data)
	return &data, nil
}

func (s *RedisStorage) Save(ctx context.Context, data *entity.ReferenceData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal reference data: %w", err)
	}
	if err := s.rdb.Set(ctx, referenceDataKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save reference data to redis: %w", err)
	}
	return nil
}
