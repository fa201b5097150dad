// FILE: internal/engine/machine.go
package engine

import (
	"context"
	"fmt"
	"time"

	"bot-intake-be/internal/entity"
	"bot-intake-be/internal/pkg/logger"
	"bot-intake-be/internal/refstore"

	"github.com/google/uuid"
)

// Entry commands. Either one acts as a hard reset from any state.
const (
	CommandStart = "/start"
	CommandAdmin = "/admin"
)

// Inbound is one event from the transport, with the identity fields the
// identity collaborator supplies per message.
type Inbound struct {
	UserID    int64
	Text      string
	Username  string
	FullName  string
	FirstName string
}

// Reply is the single outward message produced by one Advance call.
// Choices, when present, is the choice set the transport should render;
// ClearChoices tells it to drop any previously rendered set.
type Reply struct {
	Text         string
	Choices      []string
	ClearChoices bool
}

// SubmissionSink receives completed submissions together with the
// notification target captured at completion time.
type SubmissionSink interface {
	Submit(ctx context.Context, sub entity.Submission, targetID int64) error
}

// Machine drives every session against the shared reference store. It holds
// no per-user state itself; sessions carry that.
type Machine struct {
	store  *refstore.Store
	admins map[int64]struct{}
	sink   SubmissionSink
	logger logger.ILogger
}

func NewMachine(store *refstore.Store, adminIDs []int64, sink SubmissionSink, log logger.ILogger) *Machine {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &Machine{store: store, admins: admins, sink: sink, logger: log}
}

// IsAdmin checks the static allow-list.
func (m *Machine) IsAdmin(userID int64) bool {
	_, ok := m.admins[userID]
	return ok
}

// IsEntryCommand reports whether text (re)starts a flow from its initial
// state.
func IsEntryCommand(text string) bool {
	return text == CommandStart || text == CommandAdmin
}

// Advance feeds one inbound event into the session and returns the reply.
// The session mutex covers the whole evaluation, so events for one user are
// serialized even when the transport delivers them concurrently.
func (m *Machine) Advance(ctx context.Context, s *Session, in Inbound) Reply {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch in.Text {
	case CommandStart:
		return m.startIntake(s, in)
	case CommandAdmin:
		return m.enterAdmin(s, in)
	}

	if s.State.isAdminState() {
		return m.advanceAdmin(ctx, s, in)
	}

	switch s.State {
	case StateAwaitIndustry:
		return m.stepIndustry(s, in)
	case StateAwaitBotType:
		return m.stepBotType(s, in)
	case StateAwaitDisplayName:
		return m.stepDisplayName(s, in)
	case StateAwaitBotUsername:
		return m.stepBotUsername(s, in)
	case StateAwaitRating:
		return m.stepRating(ctx, s, in)
	default:
		return Reply{Text: msgSendStart}
	}
}

func (m *Machine) startIntake(s *Session, in Inbound) Reply {
	s.resetTo(StateAwaitIndustry)
	return Reply{
		Text:    in.FirstName + msgGreeting,
		Choices: m.store.Industries(),
	}
}

func (m *Machine) stepIndustry(s *Session, in Inbound) Reply {
	if !m.store.HasIndustry(in.Text) {
		return Reply{Text: msgIndustryInvalid}
	}
	s.Answers[FieldIndustry] = in.Text
	s.State = StateAwaitBotType
	return Reply{
		Text:    msgChooseBotType,
		Choices: m.store.BotTypes(),
	}
}

func (m *Machine) stepBotType(s *Session, in Inbound) Reply {
	if !m.store.HasBotType(in.Text) {
		return Reply{Text: msgBotTypeInvalid}
	}
	s.Answers[FieldBotType] = in.Text
	s.State = StateAwaitDisplayName
	return Reply{Text: msgAskDisplayName, ClearChoices: true}
}

func (m *Machine) stepDisplayName(s *Session, in Inbound) Reply {
	if !NonEmptyText(in.Text) {
		return Reply{Text: msgAskDisplayName}
	}
	s.Answers[FieldDisplayName] = in.Text
	s.State = StateAwaitBotUsername
	return Reply{Text: msgAskBotUsername}
}

func (m *Machine) stepBotUsername(s *Session, in Inbound) Reply {
	if !ValidBotUsername(in.Text) {
		return Reply{Text: msgBotUsernameInvalid}
	}
	s.Answers[FieldBotUsername] = in.Text
	s.State = StateAwaitRating
	return Reply{Text: fmt.Sprintf(msgApplicationCreatedFmt, s.Answers[FieldBotType])}
}

func (m *Machine) stepRating(ctx context.Context, s *Session, in Inbound) Reply {
	rating, ok := ParseRating(in.Text)
	if !ok {
		return Reply{Text: msgRatingInvalid}
	}

	// Persist-first: the rating must be durable before the session resets.
	// On failure the user stays on this step and can simply retry.
	if err := m.store.AppendRating(ctx, rating); err != nil {
		m.logger.Error("ENGINE", "Failed to persist rating", map[string]interface{}{
			"user_id": s.UserID, "error": err.Error(),
		})
		return Reply{Text: msgPersistFailed}
	}

	sub := entity.Submission{
		Id:          uuid.New(),
		UserID:      s.UserID,
		Username:    in.Username,
		FullName:    in.FullName,
		Industry:    s.Answers[FieldIndustry],
		BotType:     s.Answers[FieldBotType],
		DisplayName: s.Answers[FieldDisplayName],
		BotUsername: s.Answers[FieldBotUsername],
		Rating:      rating,
		SubmittedAt: time.Now(),
	}

	if target := m.store.NotifyTargetID(); target != 0 {
		if err := m.sink.Submit(ctx, sub, target); err != nil {
			// Delivery failure is reported but never blocks completion.
			m.logger.Error("ENGINE", "Failed to hand submission to notifier", map[string]interface{}{
				"user_id": s.UserID, "submission_id": sub.Id, "error": err.Error(),
			})
		}
	}

	m.logger.Info("ENGINE", "Intake completed", map[string]interface{}{
		"user_id": s.UserID, "submission_id": sub.Id, "rating": rating,
	})

	s.resetTo(StateIdle)
	return Reply{Text: msgThanks, ClearChoices: true}
}
