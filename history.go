package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const sessionCookie = "pwmeter_session"

// SavedPassword is the last password a session produced. Generated is false
// for passwords the user typed in to be evaluated.
type SavedPassword struct {
	Value     string
	Generated bool
}

// HistoryStore keeps the most recent password of each session. Only one
// password per session is retained; writes overwrite it.
type HistoryStore struct {
	items *cache.Cache
}

func NewHistoryStore(ttl time.Duration) *HistoryStore {
	cleanup := ttl
	if cleanup < time.Minute {
		cleanup = time.Minute
	}
	return &HistoryStore{items: cache.New(ttl, cleanup)}
}

func (h *HistoryStore) Remember(sessionID string, saved SavedPassword) {
	if sessionID == "" {
		return
	}
	h.items.SetDefault(sessionID, saved)
}

func (h *HistoryStore) Last(sessionID string) (SavedPassword, bool) {
	if sessionID == "" {
		return SavedPassword{}, false
	}
	v, ok := h.items.Get(sessionID)
	if !ok {
		return SavedPassword{}, false
	}
	saved, ok := v.(SavedPassword)
	return saved, ok
}

// Len counts live sessions, including expired ones not yet cleaned up.
func (h *HistoryStore) Len() int {
	return h.items.ItemCount()
}

func newSessionID() string {
	return uuid.NewString()
}

func validSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
