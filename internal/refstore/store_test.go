package refstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"bot-intake-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage records saves and can be told to fail.
type fakeStorage struct {
	mu     sync.Mutex
	data   *entity.ReferenceData
	fail   bool
	saves  int
	failed error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: entity.DefaultReferenceData(), failed: errors.New("disk full")}
}

func (f *fakeStorage) Load(ctx context.Context) (*entity.ReferenceData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data.Clone(), nil
}

func (f *fakeStorage) Save(ctx context.Context, data *entity.ReferenceData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return f.failed
	}
	f.data = data.Clone()
	f.saves++
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func openStore(t *testing.T) (*Store, *fakeStorage) {
	t.Helper()
	backend := newFakeStorage()
	store, err := Open(context.Background(), backend, nopLogger{})
	require.NoError(t, err)
	return store, backend
}

func TestOpenLoadsSeededDefaults(t *testing.T) {
	store, _ := openStore(t)

	assert.Len(t, store.Industries(), 5)
	assert.Len(t, store.BotTypes(), 4)
	assert.EqualValues(t, 0, store.NotifyTargetID())
	_, count := store.AverageRating()
	assert.Zero(t, count)
}

func TestMutationsPersistBeforeCommit(t *testing.T) {
	store, backend := openStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddIndustry(ctx, "Автомойка"))
	assert.True(t, store.HasIndustry("Автомойка"))
	assert.Contains(t, backend.data.Industries, "Автомойка")

	removed, err := store.RemoveIndustry(ctx, "Автомойка")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, store.HasIndustry("Автомойка"))

	removed, err = store.RemoveIndustry(ctx, "Нет такой")
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, store.SetNotifyTarget(ctx, -100500))
	assert.EqualValues(t, -100500, store.NotifyTargetID())
	assert.EqualValues(t, -100500, backend.data.NotifyTargetID)
}

func TestPersistFailureRollsBack(t *testing.T) {
	store, backend := openStore(t)
	ctx := context.Background()

	backend.fail = true
	err := store.AddBotType(ctx, "Бот для аренды")
	require.Error(t, err)
	assert.False(t, store.HasBotType("Бот для аренды"))

	err = store.AppendRating(ctx, 5)
	require.Error(t, err)
	_, count := store.AverageRating()
	assert.Zero(t, count)

	// Recovery: the same mutation succeeds once storage is healthy again.
	backend.fail = false
	require.NoError(t, store.AppendRating(ctx, 5))
	avg, count := store.AverageRating()
	assert.Equal(t, 1, count)
	assert.InDelta(t, 5.0, avg, 0.0001)
}

func TestAverageRating(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	for _, r := range []int{5, 4, 3} {
		require.NoError(t, store.AppendRating(ctx, r))
	}
	avg, count := store.AverageRating()
	assert.Equal(t, 3, count)
	assert.InDelta(t, 4.0, avg, 0.0001)
}

func TestConcurrentRatingAppendsAreNotLost(t *testing.T) {
	store, backend := openStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	const writers = 16
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			assert.NoError(t, store.AppendRating(ctx, r%5+1))
		}(i)
	}
	wg.Wait()

	_, count := store.AverageRating()
	assert.Equal(t, writers, count)
	assert.Len(t, backend.data.Ratings, writers)
}

func TestSnapshotIsACopy(t *testing.T) {
	store, _ := openStore(t)

	snap := store.Snapshot()
	snap.Industries[0] = "changed"
	assert.False(t, store.HasIndustry("changed"))
}
