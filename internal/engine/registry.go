// FILE: internal/engine/registry.go
package engine

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// Registry maps a user identifier to its live session. Entries expire after
// the idle TTL so a long-lived process does not accumulate every user that
// ever wrote to it; an active user refreshes their entry on every event.
type Registry struct {
	sessions *cache.Cache
}

func NewRegistry(idleTTL time.Duration) *Registry {
	if idleTTL <= 0 {
		idleTTL = time.Hour
	}
	return &Registry{
		sessions: cache.New(idleTTL, 10*time.Minute),
	}
}

func (r *Registry) Get(userID int64) (*Session, bool) {
	if x, found := r.sessions.Get(key(userID)); found {
		return x.(*Session), true
	}
	return nil, false
}

// Put stores the session and resets its idle TTL.
func (r *Registry) Put(s *Session) {
	r.sessions.Set(key(s.UserID), s, cache.DefaultExpiration)
}

func (r *Registry) Delete(userID int64) {
	r.sessions.Delete(key(userID))
}

// Len reports the number of stored sessions, including expired entries the
// janitor has not purged yet.
func (r *Registry) Len() int {
	return r.sessions.ItemCount()
}

func key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
