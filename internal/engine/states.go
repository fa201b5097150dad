// Package engine implements the per-user conversation controller: the
// primary intake flow, the nested admin flow, and the registry of live
// sessions. It is transport-agnostic; callers feed it inbound text and get
// back exactly one reply per call.
package engine

// State is the closed set of conversation states. Dispatch happens on these
// tags, never on display text, so prompt copy can change freely.
type State int

const (
	// StateIdle is both the initial and the terminal state.
	StateIdle State = iota

	// Primary intake flow, in strict step order.
	StateAwaitIndustry
	StateAwaitBotType
	StateAwaitDisplayName
	StateAwaitBotUsername
	StateAwaitRating

	// Admin sub-machine.
	StateAdminMenu
	StateAwaitNewIndustry
	StateAwaitRemoveIndustry
	StateAwaitNewBotType
	StateAwaitRemoveBotType
	StateAwaitNotifyTarget
)

var stateNames = map[State]string{
	StateIdle:                "IDLE",
	StateAwaitIndustry:       "AWAIT_INDUSTRY",
	StateAwaitBotType:        "AWAIT_BOT_TYPE",
	StateAwaitDisplayName:    "AWAIT_DISPLAY_NAME",
	StateAwaitBotUsername:    "AWAIT_BOT_USERNAME",
	StateAwaitRating:         "AWAIT_RATING",
	StateAdminMenu:           "ADMIN_MENU",
	StateAwaitNewIndustry:    "AWAIT_NEW_INDUSTRY",
	StateAwaitRemoveIndustry: "AWAIT_REMOVE_INDUSTRY",
	StateAwaitNewBotType:     "AWAIT_NEW_BOT_TYPE",
	StateAwaitRemoveBotType:  "AWAIT_REMOVE_BOT_TYPE",
	StateAwaitNotifyTarget:   "AWAIT_NOTIFY_TARGET",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// isAdminState reports whether s belongs to the admin sub-machine.
func (s State) isAdminState() bool {
	return s >= StateAdminMenu && s <= StateAwaitNotifyTarget
}

// Answer field keys. Only keys for steps already passed may appear in a
// session's answer map.
const (
	FieldIndustry    = "industry"
	FieldBotType     = "botType"
	FieldDisplayName = "displayName"
	FieldBotUsername = "botUsername"
	FieldRating      = "rating"
)
