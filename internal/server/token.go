package server

import "sync"

// TokenSlot holds at most one access token for the lifetime of the process.
//
// Every Store overwrites the previous value (last writer wins). The slot is not keyed
// by user or session: all callers of one process share it.
type TokenSlot struct {
	mu    sync.RWMutex
	token string
}

// NewTokenSlot creates an empty [TokenSlot].
func NewTokenSlot() *TokenSlot {
	return &TokenSlot{}
}

// Store replaces the held token.
func (s *TokenSlot) Store(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Load returns the held token and whether it is usable. An empty token counts as absent.
func (s *TokenSlot) Load() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

