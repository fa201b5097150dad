package engine

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"bot-intake-be/internal/entity"
	"bot-intake-be/internal/refstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStorage is an in-memory ReferenceStorage for machine tests.
type memStorage struct {
	mu   sync.Mutex
	data *entity.ReferenceData
	fail bool
}

func (m *memStorage) Load(ctx context.Context) (*entity.ReferenceData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = entity.DefaultReferenceData()
	}
	return m.data.Clone(), nil
}

func (m *memStorage) Save(ctx context.Context, data *entity.ReferenceData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return fmt.Errorf("storage unavailable")
	}
	m.data = data.Clone()
	return nil
}

// captureSink records submissions handed to the notification pipeline.
type captureSink struct {
	mu          sync.Mutex
	submissions []entity.Submission
	targets     []int64
}

func (c *captureSink) Submit(ctx context.Context, sub entity.Submission, targetID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submissions = append(c.submissions, sub)
	c.targets = append(c.targets, targetID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

const adminID int64 = 42

func newTestMachine(t *testing.T) (*Machine, *refstore.Store, *captureSink, *memStorage) {
	t.Helper()
	backend := &memStorage{}
	store, err := refstore.Open(context.Background(), backend, nopLogger{})
	require.NoError(t, err)
	sink := &captureSink{}
	return NewMachine(store, []int64{adminID}, sink, nopLogger{}), store, sink, backend
}

func user(id int64, text string) Inbound {
	return Inbound{UserID: id, Text: text, Username: "ivan_p", FullName: "Иван Петров", FirstName: "Иван"}
}

func TestStartResetsAndListsIndustries(t *testing.T) {
	m, store, _, _ := newTestMachine(t)
	s := NewSession(7)

	reply := m.Advance(context.Background(), s, user(7, CommandStart))

	assert.Equal(t, StateAwaitIndustry, s.CurrentState())
	assert.Contains(t, reply.Text, "Иван")
	assert.Equal(t, store.Industries(), reply.Choices)
}

func TestHappyPathRecordsSubmissionAndRating(t *testing.T) {
	m, store, sink, _ := newTestMachine(t)
	require.NoError(t, store.SetNotifyTarget(context.Background(), -100200))
	s := NewSession(7)
	ctx := context.Background()

	m.Advance(ctx, s, user(7, CommandStart))
	m.Advance(ctx, s, user(7, "Фитнес-центр"))
	m.Advance(ctx, s, user(7, "Бот для продаж"))
	m.Advance(ctx, s, user(7, "Умный помощник"))
	m.Advance(ctx, s, user(7, "fitness_helper_bot"))
	reply := m.Advance(ctx, s, user(7, "5"))

	assert.Equal(t, msgThanks, reply.Text)
	assert.True(t, reply.ClearChoices)
	assert.Equal(t, StateIdle, s.CurrentState())

	// Answers are cleared on completion.
	_, ok := s.Answer(FieldIndustry)
	assert.False(t, ok)

	// Exactly one rating appended.
	avg, count := store.AverageRating()
	assert.Equal(t, 1, count)
	assert.InDelta(t, 5.0, avg, 0.0001)

	// The five-field submission reached the sink with the captured target.
	require.Len(t, sink.submissions, 1)
	sub := sink.submissions[0]
	assert.Equal(t, "Фитнес-центр", sub.Industry)
	assert.Equal(t, "Бот для продаж", sub.BotType)
	assert.Equal(t, "Умный помощник", sub.DisplayName)
	assert.Equal(t, "fitness_helper_bot", sub.BotUsername)
	assert.Equal(t, 5, sub.Rating)
	assert.Equal(t, "ivan_p", sub.Username)
	assert.EqualValues(t, -100200, sink.targets[0])
}

func TestNoNotificationWhenTargetUnset(t *testing.T) {
	m, _, sink, _ := newTestMachine(t)
	s := NewSession(7)
	ctx := context.Background()

	m.Advance(ctx, s, user(7, CommandStart))
	m.Advance(ctx, s, user(7, "Ресторан"))
	m.Advance(ctx, s, user(7, "Бот для бронирования"))
	m.Advance(ctx, s, user(7, "Столик"))
	m.Advance(ctx, s, user(7, "table_booking_bot"))
	m.Advance(ctx, s, user(7, "4"))

	assert.Empty(t, sink.submissions)
}

func TestInvalidInputKeepsStateAndAnswers(t *testing.T) {
	m, _, _, _ := newTestMachine(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		setup     []string
		input     string
		wantState State
		wantReply string
	}{
		{"unknown industry", []string{CommandStart}, "Космодром", StateAwaitIndustry, msgIndustryInvalid},
		{"unknown bot type", []string{CommandStart, "Ресторан"}, "Бот для чего-то", StateAwaitBotType, msgBotTypeInvalid},
		{"username without bot suffix", []string{CommandStart, "Ресторан", "Бот для продаж", "Имя"}, "username", StateAwaitBotUsername, msgBotUsernameInvalid},
		{"rating out of range", []string{CommandStart, "Ресторан", "Бот для продаж", "Имя", "resto_helper_bot"}, "6", StateAwaitRating, msgRatingInvalid},
		{"rating not a number", []string{CommandStart, "Ресторан", "Бот для продаж", "Имя", "resto_helper_bot"}, "отлично", StateAwaitRating, msgRatingInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(7)
			for _, step := range tt.setup {
				m.Advance(ctx, s, user(7, step))
			}
			before := len(s.Answers)

			reply := m.Advance(ctx, s, user(7, tt.input))

			assert.Equal(t, tt.wantState, s.CurrentState())
			assert.Equal(t, tt.wantReply, reply.Text)
			assert.Len(t, s.Answers, before)
		})
	}
}

func TestBotUsernameBoundary(t *testing.T) {
	m, _, _, _ := newTestMachine(t)
	ctx := context.Background()

	tests := []struct {
		username string
		accepted bool
	}{
		{"a123bot", true},  // shortest accepted: letter + 3 chars + "bot"
		{"a12bot", false},  // one character shorter
		{"mybot", false},   // the advertised 5-char minimum does not pass the rule
		{"1abcbot", false}, // must start with a letter
		{"my_company_bot", true},
		{"a" + "b234567890123456789012345678901" + "bot", false}, // middle part over 30 chars
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			s := NewSession(7)
			for _, step := range []string{CommandStart, "Ресторан", "Бот для продаж", "Имя"} {
				m.Advance(ctx, s, user(7, step))
			}

			m.Advance(ctx, s, user(7, tt.username))

			if tt.accepted {
				assert.Equal(t, StateAwaitRating, s.CurrentState())
			} else {
				assert.Equal(t, StateAwaitBotUsername, s.CurrentState())
			}
		})
	}
}

func TestEntryCommandHardResetsFromAnyState(t *testing.T) {
	m, _, sink, _ := newTestMachine(t)
	ctx := context.Background()

	s := NewSession(7)
	m.Advance(ctx, s, user(7, CommandStart))
	m.Advance(ctx, s, user(7, "Ресторан"))
	m.Advance(ctx, s, user(7, "Бот для продаж"))
	m.Advance(ctx, s, user(7, "Имя"))
	m.Advance(ctx, s, user(7, "resto_helper_bot"))

	// A rating typed after restart must not complete the old flow.
	m.Advance(ctx, s, user(7, CommandStart))
	assert.Equal(t, StateAwaitIndustry, s.CurrentState())
	assert.Empty(t, s.Answers)

	reply := m.Advance(ctx, s, user(7, "5"))
	assert.Equal(t, msgIndustryInvalid, reply.Text)
	assert.Empty(t, sink.submissions)
}

func TestIdleSessionPromptsForStart(t *testing.T) {
	m, _, _, _ := newTestMachine(t)
	s := NewSession(7)

	reply := m.Advance(context.Background(), s, user(7, "привет"))

	assert.Equal(t, msgSendStart, reply.Text)
	assert.Equal(t, StateIdle, s.CurrentState())
}

func TestRatingPersistFailureKeepsSessionOnRatingStep(t *testing.T) {
	m, store, sink, backend := newTestMachine(t)
	ctx := context.Background()

	s := NewSession(7)
	for _, step := range []string{CommandStart, "Ресторан", "Бот для продаж", "Имя", "resto_helper_bot"} {
		m.Advance(ctx, s, user(7, step))
	}

	backend.fail = true
	reply := m.Advance(ctx, s, user(7, "5"))

	assert.Equal(t, msgPersistFailed, reply.Text)
	assert.Equal(t, StateAwaitRating, s.CurrentState())
	assert.Empty(t, sink.submissions)
	_, count := store.AverageRating()
	assert.Zero(t, count)

	// Retry succeeds once storage recovers.
	backend.fail = false
	reply = m.Advance(ctx, s, user(7, "5"))
	assert.Equal(t, msgThanks, reply.Text)
	_, count = store.AverageRating()
	assert.Equal(t, 1, count)
}

func TestConcurrentCompletionsForDifferentUsers(t *testing.T) {
	m, store, _, backend := newTestMachine(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	const users = 8
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s := NewSession(id)
			for _, step := range []string{CommandStart, "Ресторан", "Бот для продаж", "Имя", "resto_helper_bot", "5"} {
				m.Advance(ctx, s, Inbound{UserID: id, Text: step, FirstName: "U"})
			}
		}(int64(100 + i))
	}
	wg.Wait()

	_, count := store.AverageRating()
	assert.Equal(t, users, count)
	assert.Len(t, backend.data.Ratings, users)
}
