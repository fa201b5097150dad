// Package refstore owns the in-memory view of the shared reference data.
// All mutation paths funnel through one lock: a mutation clones the current
// document, applies the change, writes it to durable storage and only then
// commits the clone, so storage and memory cannot silently diverge.
package refstore

import (
	"context"
	"sync"

	"bot-intake-be/internal/entity"
	"bot-intake-be/internal/pkg/logger"
	"bot-intake-be/internal/storage"
)

type Store struct {
	mu      sync.RWMutex
	data    *entity.ReferenceData
	backend storage.ReferenceStorage
	logger  logger.ILogger
}

// Open loads the reference data once. Backends seed defaults when empty, so
// the industry and bot-type lists are non-empty after a successful Open.
func Open(ctx context.Context, backend storage.ReferenceStorage, log logger.ILogger) (*Store, error) {
	data, err := backend.Load(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("REFSTORE", "Reference data loaded", map[string]interface{}{
		"industries": len(data.Industries),
		"bot_types":  len(data.BotTypes),
		"ratings":    len(data.Ratings),
	})
	return &Store{data: data, backend: backend, logger: log}, nil
}

// Snapshot returns a consistent copy of the whole document.
func (s *Store) Snapshot() *entity.ReferenceData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

func (s *Store) Industries() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.data.Industries))
	copy(out, s.data.Industries)
	return out
}

func (s *Store) BotTypes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.data.BotTypes))
	copy(out, s.data.BotTypes)
	return out
}

func (s *Store) HasIndustry(value string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return contains(s.data.Industries, value)
}

func (s *Store) HasBotType(value string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return contains(s.data.BotTypes, value)
}

func (s *Store) NotifyTargetID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.NotifyTargetID
}

// AverageRating returns the arithmetic mean and the number of ratings.
func (s *Store) AverageRating() (float64, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.data.Ratings) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range s.data.Ratings {
		sum += r
	}
	return float64(sum) / float64(len(s.data.Ratings)), len(s.data.Ratings)
}

// AddIndustry appends the value verbatim. Duplicates are not rejected; the
// admin flow deliberately mirrors the original intake behavior here.
func (s *Store) AddIndustry(ctx context.Context, value string) error {
	return s.mutate(ctx, func(d *entity.ReferenceData) {
		d.Industries = append(d.Industries, value)
	})
}

// RemoveIndustry removes the first exact match. The boolean reports whether
// anything was removed; a miss is not an error.
func (s *Store) RemoveIndustry(ctx context.Context, value string) (bool, error) {
	return s.remove(ctx, value, func(d *entity.ReferenceData) *[]string {
		return &d.Industries
	})
}

func (s *Store) AddBotType(ctx context.Context, value string) error {
	return s.mutate(ctx, func(d *entity.ReferenceData) {
		d.BotTypes = append(d.BotTypes, value)
	})
}

func (s *Store) RemoveBotType(ctx context.Context, value string) (bool, error) {
	return s.remove(ctx, value, func(d *entity.ReferenceData) *[]string {
		return &d.BotTypes
	})
}

// SetNotifyTarget overwrites the notification target wholesale. Zero means
// "unset" and disables submission delivery.
func (s *Store) SetNotifyTarget(ctx context.Context, id int64) error {
	return s.mutate(ctx, func(d *entity.ReferenceData) {
		d.NotifyTargetID = id
	})
}

// AppendRating records one completed intake. The value must already be
// validated to [1,5] by the session machine.
func (s *Store) AppendRating(ctx context.Context, rating int) error {
	return s.mutate(ctx, func(d *entity.ReferenceData) {
		d.Ratings = append(d.Ratings, rating)
	})
}

// mutate runs apply on a clone, persists it, and commits only on success.
// The write lock covers the whole read-modify-persist sequence so concurrent
// admin edits and rating appends serialize cleanly.
func (s *Store) mutate(ctx context.Context, apply func(*entity.ReferenceData)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	apply(next)

	if err := s.backend.Save(ctx, next); err != nil {
		s.logger.Error("REFSTORE", "Persist failed, mutation rolled back", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	s.data = next
	return nil
}

func (s *Store) remove(ctx context.Context, value string, field func(*entity.ReferenceData) *[]string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	list := field(next)
	idx := -1
	for i, v := range *list {
		if v == value {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	*list = append((*list)[:idx], (*list)[idx+1:]...)

	if err := s.backend.Save(ctx, next); err != nil {
		s.logger.Error("REFSTORE", "Persist failed, removal rolled back", map[string]interface{}{
			"error": err.Error(),
		})
		return false, err
	}
	s.data = next
	return true, nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
