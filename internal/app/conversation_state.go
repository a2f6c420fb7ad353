package app

import "sync"

// ConversationState tracks which admins are currently being prompted for a
// broadcast text. It lives in process memory only: a restart drops pending
// prompts, which is a documented limitation, not a defect. Entries for
// different admins are independent.
type ConversationState struct {
	mu       sync.Mutex
	awaiting map[int64]bool
}

func NewConversationState() *ConversationState {
	return &ConversationState{awaiting: make(map[int64]bool)}
}

// SetAwaiting marks the admin as waiting to supply a broadcast text.
func (s *ConversationState) SetAwaiting(adminID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.awaiting[adminID] = true
}

// Clear returns the admin to the idle state.
func (s *ConversationState) Clear(adminID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.awaiting, adminID)
}

// IsAwaiting reports whether the admin has a pending broadcast prompt.
func (s *ConversationState) IsAwaiting(adminID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.awaiting[adminID]
}
