// FILE: internal/engine/admin.go
package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// AdminAction is the closed set of admin menu actions. Menu labels map onto
// these tags; dispatch never compares display text directly.
type AdminAction int

const (
	ActionUnknown AdminAction = iota
	ActionAddIndustry
	ActionRemoveIndustry
	ActionAddBotType
	ActionRemoveBotType
	ActionSetNotifyTarget
	ActionAverageRating
	ActionExitAdmin
)

// adminMenu fixes both the keyboard order and the label-to-action mapping.
var adminMenu = []struct {
	label  string
	action AdminAction
}{
	{"Добавить отрасль", ActionAddIndustry},
	{"Удалить отрасль", ActionRemoveIndustry},
	{"Добавить тип бота", ActionAddBotType},
	{"Удалить тип бота", ActionRemoveBotType},
	{"Изменить ID уведомлений", ActionSetNotifyTarget},
	{"Средняя оценка", ActionAverageRating},
	{"Выйти из админ-панели", ActionExitAdmin},
}

func adminActionForLabel(text string) AdminAction {
	for _, item := range adminMenu {
		if item.label == text {
			return item.action
		}
	}
	return ActionUnknown
}

func adminMenuChoices() []string {
	out := make([]string, len(adminMenu))
	for i, item := range adminMenu {
		out[i] = item.label
	}
	return out
}

// enterAdmin gates on the allow-list and forcibly resets allowed users to
// the admin menu, even mid-leaf-state. Denied users see a fixed message and
// their session, if any, is left untouched.
func (m *Machine) enterAdmin(s *Session, in Inbound) Reply {
	if !m.IsAdmin(in.UserID) {
		m.logger.Warn("ENGINE", "Admin entry denied", map[string]interface{}{"user_id": in.UserID})
		return Reply{Text: msgAdminDenied}
	}
	s.resetTo(StateAdminMenu)
	return m.menuReply(msgAdminWelcome)
}

// advanceAdmin handles every admin sub-machine state. The allow-list is
// re-checked on each event: losing admin rights mid-flow must not allow
// further mutations.
func (m *Machine) advanceAdmin(ctx context.Context, s *Session, in Inbound) Reply {
	if !m.IsAdmin(in.UserID) {
		return Reply{Text: msgAdminDenied}
	}

	switch s.State {
	case StateAdminMenu:
		return m.adminDispatch(s, in.Text)
	case StateAwaitNewIndustry:
		return m.adminAddIndustry(ctx, s, in.Text)
	case StateAwaitRemoveIndustry:
		return m.adminRemoveIndustry(ctx, s, in.Text)
	case StateAwaitNewBotType:
		return m.adminAddBotType(ctx, s, in.Text)
	case StateAwaitRemoveBotType:
		return m.adminRemoveBotType(ctx, s, in.Text)
	case StateAwaitNotifyTarget:
		return m.adminSetNotifyTarget(ctx, s, in.Text)
	default:
		return m.menuReply(msgAdminChooseFromMenu)
	}
}

func (m *Machine) adminDispatch(s *Session, text string) Reply {
	switch adminActionForLabel(text) {
	case ActionAddIndustry:
		s.State = StateAwaitNewIndustry
		return Reply{Text: msgAskNewIndustry, ClearChoices: true}

	case ActionRemoveIndustry:
		industries := m.store.Industries()
		if len(industries) == 0 {
			return m.menuReply(msgIndustriesEmpty)
		}
		s.State = StateAwaitRemoveIndustry
		return Reply{Text: msgChooseIndustryToRemove, Choices: append(industries, cancelLabel)}

	case ActionAddBotType:
		s.State = StateAwaitNewBotType
		return Reply{Text: msgAskNewBotType, ClearChoices: true}

	case ActionRemoveBotType:
		botTypes := m.store.BotTypes()
		if len(botTypes) == 0 {
			return m.menuReply(msgBotTypesEmpty)
		}
		s.State = StateAwaitRemoveBotType
		return Reply{Text: msgChooseBotTypeToRemove, Choices: append(botTypes, cancelLabel)}

	case ActionSetNotifyTarget:
		s.State = StateAwaitNotifyTarget
		return Reply{Text: msgAskNotifyTarget, ClearChoices: true}

	case ActionAverageRating:
		avg, count := m.store.AverageRating()
		if count == 0 {
			return m.menuReply(msgNoRatingsYet)
		}
		return m.menuReply(fmt.Sprintf(msgAverageRatingFmt, avg))

	case ActionExitAdmin:
		s.resetTo(StateIdle)
		return Reply{Text: msgAdminExited, ClearChoices: true}

	default:
		return m.menuReply(msgAdminChooseFromMenu)
	}
}

func (m *Machine) adminAddIndustry(ctx context.Context, s *Session, text string) Reply {
	if IsCancelToken(text) {
		return m.backToMenu(s, msgActionCancelled)
	}
	if err := m.store.AddIndustry(ctx, text); err != nil {
		return Reply{Text: msgPersistFailed}
	}
	return m.backToMenu(s, fmt.Sprintf(msgIndustryAddedFmt, text))
}

func (m *Machine) adminRemoveIndustry(ctx context.Context, s *Session, text string) Reply {
	if text == cancelLabel {
		return m.backToMenu(s, msgActionCancelled)
	}
	removed, err := m.store.RemoveIndustry(ctx, text)
	if err != nil {
		return m.backToMenu(s, msgPersistFailed)
	}
	if !removed {
		// Not-found still exits to the menu; there is no retry loop here.
		return m.backToMenu(s, msgIndustryNotFound)
	}
	return m.backToMenu(s, fmt.Sprintf(msgIndustryRemovedFmt, text))
}

func (m *Machine) adminAddBotType(ctx context.Context, s *Session, text string) Reply {
	if IsCancelToken(text) {
		return m.backToMenu(s, msgActionCancelled)
	}
	if err := m.store.AddBotType(ctx, text); err != nil {
		return Reply{Text: msgPersistFailed}
	}
	return m.backToMenu(s, fmt.Sprintf(msgBotTypeAddedFmt, text))
}

func (m *Machine) adminRemoveBotType(ctx context.Context, s *Session, text string) Reply {
	if text == cancelLabel {
		return m.backToMenu(s, msgActionCancelled)
	}
	removed, err := m.store.RemoveBotType(ctx, text)
	if err != nil {
		return m.backToMenu(s, msgPersistFailed)
	}
	if !removed {
		return m.backToMenu(s, msgBotTypeNotFound)
	}
	return m.backToMenu(s, fmt.Sprintf(msgBotTypeRemovedFmt, text))
}

// adminSetNotifyTarget re-prompts inside the same state on a parse failure,
// unlike the removal flows which always exit to the menu.
func (m *Machine) adminSetNotifyTarget(ctx context.Context, s *Session, text string) Reply {
	if IsCancelToken(text) {
		return m.backToMenu(s, msgActionCancelled)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return Reply{Text: msgNotifyTargetInvalid}
	}
	if err := m.store.SetNotifyTarget(ctx, id); err != nil {
		return Reply{Text: msgPersistFailed}
	}
	return m.backToMenu(s, fmt.Sprintf(msgNotifyTargetSetFmt, id))
}

func (m *Machine) backToMenu(s *Session, text string) Reply {
	s.State = StateAdminMenu
	return m.menuReply(text)
}

func (m *Machine) menuReply(text string) Reply {
	return Reply{Text: text, Choices: adminMenuChoices()}
}
