// FILE: internal/engine/validators.go
package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// botUsernamePattern: a leading letter, 3 to 30 word characters, then the
// literal "bot" suffix. Total accepted length is 7 to 34; the user-facing
// prompt advertises 5-32, but the stricter rule is the one enforced.
var botUsernamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{3,30}bot$`)

// ValidBotUsername checks the public username rule for the ordered bot.
func ValidBotUsername(value string) bool {
	return botUsernamePattern.MatchString(value)
}

// ParseRating parses a satisfaction rating and confirms it lies in [1,5].
func ParseRating(value string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 || n > 5 {
		return 0, false
	}
	return n, true
}

// NonEmptyText accepts any text with at least one non-whitespace rune.
func NonEmptyText(value string) bool {
	return strings.TrimSpace(value) != ""
}

// IsCancelToken matches the case-insensitive cancel word used by the admin
// add and notify-target flows.
func IsCancelToken(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), cancelLabel)
}
