package session

import (
	"context"
	"sync"

	"innkeeper/models"
)

// MemoryStore keeps sessions in process memory for the process lifetime.
// The map itself is guarded against concurrent creation; turns for a single
// session are assumed single-writer.
type MemoryStore struct {
	mu           sync.Mutex
	sessions     map[string]*models.SessionState
	systemPrompt string
}

func NewMemoryStore(systemPrompt string) *MemoryStore {
	return &MemoryStore{
		sessions:     make(map[string]*models.SessionState),
		systemPrompt: systemPrompt,
	}
}

func (s *MemoryStore) get(sessionID string) *models.SessionState {
	st, ok := s.sessions[sessionID]
	if !ok {
		st = newSessionState(s.systemPrompt)
		s.sessions[sessionID] = st
	}
	return st
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*models.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyState(s.get(sessionID)), nil
}

func (s *MemoryStore) Append(ctx context.Context, sessionID, role, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.get(sessionID)
	st.Transcript = append(st.Transcript, models.ChatMessage{Role: role, Content: content})
	return nil
}

func (s *MemoryStore) Mutate(ctx context.Context, sessionID string, fn func(*models.SessionState)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.get(sessionID))
	return nil
}

func (s *MemoryStore) ResetLast(ctx context.Context, sessionID string) (ResetStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[sessionID]
	if !ok {
		return ResetSessionNotFound, nil
	}
	return resetTranscript(st), nil
}
